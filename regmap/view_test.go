// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platinasystems/xge/hw"
)

func testPartition() *Partition {
	return &Partition{
		Name: "p", Start: 0x100, Size: 0x100, ReservedTail: true,
		Fields: []Field{
			{Name: "ctl", Offset: 0x100, Width: 4, Kind: ReadWrite},
			{Name: "status", Offset: 0x104, Width: 4, Kind: ReadOnly},
			{Name: "kick", Offset: 0x108, Width: 4, Kind: WriteOnly},
			{Name: "drops", Offset: 0x10c, Width: 4, Kind: ReadClear},
			{Name: "spare", Offset: 0x110, Width: 4, Kind: Reserved},
			{Name: "ring", Offset: 0x120, Width: 4, Kind: ReadWrite, Extent: 8},
			{Name: "mbox", Offset: 0x140, Width: 4, Kind: ReadWrite, Extent: 16, Dynamic: true},
		},
	}
}

func testView(t *testing.T, writable bool) (*View, *hw.MemMap) {
	m := hw.NewMemMap(0x200)
	r, err := hw.MapRegion(m, "p", 0x100, 0x100, writable)
	require.NoError(t, err)
	v, err := NewView(testPartition(), r)
	require.NoError(t, err)
	return v, m
}

func TestViewRoundTrip(t *testing.T) {
	v, m := testView(t, true)
	for _, x := range []uint64{0, 0xffffffff, 0x55555555, 0xaaaaaaaa, 0xdeadbeef} {
		require.NoError(t, v.Store("ctl", x))
		got, err := v.Load("ctl")
		require.NoError(t, err)
		assert.Equal(t, x, got)
		// Loads are idempotent for plain volatile fields.
		again, err := v.Load("ctl")
		require.NoError(t, err)
		assert.Equal(t, x, again)
	}
	// Byte-exact placement: ctl occupies [0x100,0x104) little endian.
	require.NoError(t, v.Store("ctl", 0x04030201))
	assert.Equal(t, uint32(0x04030201), m.Peek32(0x100))
}

func TestViewArrayIndexing(t *testing.T) {
	v, m := testView(t, true)
	for i := 0; i < 8; i++ {
		require.NoError(t, v.StoreIndex("ring", i, uint64(i)*0x11))
	}
	for i := 0; i < 8; i++ {
		got, err := v.LoadIndex("ring", i)
		require.NoError(t, err)
		assert.Equal(t, uint64(i)*0x11, got)
		assert.Equal(t, uint32(i)*0x11, m.Peek32(0x120+4*uint(i)))
	}
	var ie *IndexError
	_, err := v.LoadIndex("ring", 8)
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 8, ie.Requested)
	assert.Equal(t, uint(8), ie.Max)
	_, err = v.LoadIndex("ring", -1)
	require.ErrorAs(t, err, &ie)
	require.ErrorAs(t, v.StoreIndex("ring", 99, 0), &ie)
}

func TestViewAccessKinds(t *testing.T) {
	v, m := testView(t, true)
	m.Poke32(0x104, 0x1234)

	var ae *AccessError

	got, err := v.Load("status")
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1234), got)
	require.ErrorAs(t, v.Store("status", 1), &ae, "read-only store")
	assert.Equal(t, uint32(0x1234), m.Peek32(0x104), "rejected store must not reach memory")

	require.NoError(t, v.Store("kick", 1))
	_, err = v.Load("kick")
	require.ErrorAs(t, err, &ae, "write-only load")

	_, err = v.Load("spare")
	require.ErrorAs(t, err, &ae, "reserved load")
	require.ErrorAs(t, v.Store("spare", 0), &ae, "reserved store")

	_, err = v.Load("nope")
	var ue *UnknownFieldError
	require.ErrorAs(t, err, &ue)
}

func TestViewReadOnlyMapping(t *testing.T) {
	v, m := testView(t, false)
	m.Poke32(0x100, 7)
	got, err := v.Load("ctl")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got)

	var ae *AccessError
	require.ErrorAs(t, v.Store("ctl", 1), &ae, "writable field, read-only mapping")
	assert.Equal(t, uint32(7), m.Peek32(0x100))
}

func TestViewClearOnRead(t *testing.T) {
	m := hw.NewMemMap(0x200)
	m.SetClearOnRead(func(offset uint) bool { return offset == 0x10c })
	r, err := hw.MapRegion(m, "p", 0x100, 0x100, true)
	require.NoError(t, err)
	v, err := NewView(testPartition(), r)
	require.NoError(t, err)

	m.Poke32(0x10c, 41)
	got, err := v.Load("drops")
	require.NoError(t, err)
	assert.Equal(t, uint64(41), got)

	got, err = v.Load("drops")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got, "counter cleared by the read")
}

func TestViewDynamicExtent(t *testing.T) {
	v, _ := testView(t, true)
	p := v.Partition()

	var ue *UnresolvedExtentError
	_, err := v.Load("mbox")
	require.ErrorAs(t, err, &ue, "unresolved extent rejects access")

	require.NoError(t, p.ResolveExtent("mbox", 4))
	require.NoError(t, v.StoreIndex("mbox", 3, 9))
	got, err := v.LoadIndex("mbox", 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), got)

	var ie *IndexError
	_, err = v.LoadIndex("mbox", 4)
	require.ErrorAs(t, err, &ie, "resolved bound, not the reservation, limits indexing")
	assert.Equal(t, uint(4), ie.Max)
}

func TestViewValueWidth(t *testing.T) {
	v, _ := testView(t, true)
	assert.Error(t, v.Store("ctl", 1<<32), "value wider than register")
	assert.NoError(t, v.Store("ctl", 0xffffffff))
}

func TestNewViewCoverage(t *testing.T) {
	m := hw.NewMemMap(0x200)
	r, err := hw.MapRegion(m, "half", 0x100, 0x80, true)
	require.NoError(t, err)
	_, err = NewView(testPartition(), r)
	assert.Error(t, err, "region shorter than partition")
}
