// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionLoadStore(t *testing.T) {
	m := NewMemMap(0x1000)
	r, err := MapRegion(m, "test", 0x100, 0x200, true)
	require.NoError(t, err)
	assert.Equal(t, "test", r.Name())
	assert.Equal(t, uint(0x100), r.Start())
	assert.Equal(t, uint(0x200), r.Size())
	assert.True(t, r.Writable())
	assert.True(t, r.Contains(0x100))
	assert.True(t, r.Contains(0x2ff))
	assert.False(t, r.Contains(0x300))

	r.StoreUint32(0x100, 0x01020304)
	assert.Equal(t, uint32(0x01020304), r.LoadUint32(0x100))
	assert.Equal(t, uint32(0x01020304), m.Peek32(0x100), "little endian placement")

	r.StoreUint64(0x108, 0x1122334455667788)
	assert.Equal(t, uint64(0x1122334455667788), r.LoadUint64(0x108))
	assert.Equal(t, uint32(0x55667788), m.Peek32(0x108), "low word first")
	assert.Equal(t, uint32(0x11223344), m.Peek32(0x10c))

	r.StoreUint8(0x120, 0xab)
	assert.Equal(t, uint8(0xab), r.LoadUint8(0x120))
	r.StoreUint16(0x122, 0xbeef)
	assert.Equal(t, uint16(0xbeef), r.LoadUint16(0x122))
}

func TestRegionSharedBacking(t *testing.T) {
	m := NewMemMap(0x1000)
	a, err := MapRegion(m, "a", 0x0, 0x100, true)
	require.NoError(t, err)
	b, err := MapRegion(m, "b", 0x0, 0x100, false)
	require.NoError(t, err)
	a.StoreUint32(0x40, 99)
	assert.Equal(t, uint32(99), b.LoadUint32(0x40), "views alias one device")
}

func TestRegionPanics(t *testing.T) {
	m := NewMemMap(0x1000)
	r, err := MapRegion(m, "test", 0x100, 0x100, true)
	require.NoError(t, err)

	assert.Panics(t, func() { r.LoadUint32(0x0) }, "below window")
	assert.Panics(t, func() { r.LoadUint32(0x200) }, "above window")
	assert.Panics(t, func() { r.LoadUint32(0x1fe) }, "straddles end")
	assert.Panics(t, func() { r.LoadUint32(0x102) }, "misaligned")
	assert.Panics(t, func() { r.LoadUint64(0x104) }, "misaligned 64 bit")

	ro, err := MapRegion(m, "ro", 0x100, 0x100, false)
	require.NoError(t, err)
	assert.NotPanics(t, func() { ro.LoadUint32(0x100) })
	assert.Panics(t, func() { ro.StoreUint32(0x100, 1) }, "read-only mapping")

	r.Invalidate()
	assert.Panics(t, func() { r.LoadUint32(0x100) }, "use after detach")
	assert.Panics(t, func() { r.StoreUint32(0x100, 1) }, "use after detach")
}

func TestRegionClearOnRead(t *testing.T) {
	m := NewMemMap(0x1000)
	m.SetClearOnRead(func(offset uint) bool { return offset >= 0x40 && offset < 0x80 })
	r, err := MapRegion(m, "stats", 0x0, 0x100, true)
	require.NoError(t, err)

	m.Poke32(0x20, 5)
	assert.Equal(t, uint32(5), r.LoadUint32(0x20))
	assert.Equal(t, uint32(5), r.LoadUint32(0x20), "plain registers keep their value")

	m.Poke32(0x40, 7)
	assert.Equal(t, uint32(7), r.LoadUint32(0x40))
	assert.Equal(t, uint32(0), r.LoadUint32(0x40), "counter cleared by read")

	m.Poke32(0x48, 1)
	m.Poke32(0x4c, 2)
	assert.Equal(t, uint64(2<<32|1), r.LoadUint64(0x48))
	assert.Equal(t, uint64(0), r.LoadUint64(0x48))
}

func TestMemMapBounds(t *testing.T) {
	m := NewMemMap(0x100)
	_, err := m.Map(0x80, 0x100)
	assert.Error(t, err)
	_, err = MapRegion(m, "x", 0x80, 0x100, true)
	assert.Error(t, err)
}

func TestBaseOffsets(t *testing.T) {
	r := (*U32)(BasePointer)
	assert.Equal(t, uintptr(0), r.Offset())
}
