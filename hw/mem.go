// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hw

import "fmt"

// MemMap is a Mapper over plain memory, standing in for a device BAR
// when no hardware is present (unit tests, layout tooling).  Mapped
// views alias the same backing so device-side updates planted with
// Poke are visible through every view.
type MemMap struct {
	mem         []byte
	clearOnRead func(offset uint) bool
}

func NewMemMap(size uint) *MemMap { return &MemMap{mem: make([]byte, size)} }

// SetClearOnRead registers which offsets behave as clear-on-read
// counters.  Real hardware does this itself; a memory backed map has
// to emulate it for the side effect to be observable.
func (m *MemMap) SetClearOnRead(fn func(offset uint) bool) { m.clearOnRead = fn }

func (m *MemMap) ClearsOnRead(offset uint) bool {
	return m.clearOnRead != nil && m.clearOnRead(offset)
}

func (m *MemMap) Map(offset, size uint) (mem []byte, err error) {
	if offset+size > uint(len(m.mem)) {
		err = fmt.Errorf("map [0x%x,0x%x) outside 0x%x byte memory", offset, offset+size, len(m.mem))
		return
	}
	mem = m.mem[offset : offset+size]
	return
}

func (m *MemMap) Unmap(mem []byte) error { return nil }

// Poke32/Peek32 act as the device side: they bypass access kind and
// ownership discipline entirely.
func (m *MemMap) Poke32(offset uint, v uint32) {
	m.mem[offset+0] = byte(v)
	m.mem[offset+1] = byte(v >> 8)
	m.mem[offset+2] = byte(v >> 16)
	m.mem[offset+3] = byte(v >> 24)
}

func (m *MemMap) Peek32(offset uint) (v uint32) {
	for i := uint(0); i < 4; i++ {
		v |= uint32(m.mem[offset+i]) << (8 * i)
	}
	return
}
