// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hw

import (
	"fmt"
	"unsafe"
)

// Mapper hands out views of device memory.  Implemented by hw/pci
// for real BAR resources and by MemMap for simulated devices.
// Map offsets/lengths are bytes from the start of the resource.
type Mapper interface {
	Map(offset, size uint) ([]byte, error)
	Unmap(mem []byte) error
}

// ReadClearer is implemented by mappers whose backing memory cannot
// clear counters by itself (simulations).  Real MMIO never needs it:
// the device clears the counter as a side effect of the read cycle.
type ReadClearer interface {
	ClearsOnRead(offset uint) bool
}

// Region is one mapped partition of a device address space.  Offsets
// passed to load/store are absolute device offsets; the region checks
// they fall inside its window.
type Region struct {
	name        string
	start, size uint
	mem         []byte
	writable    bool
	clearOnRead func(offset uint) bool
}

func NewRegion(name string, start uint, mem []byte, writable bool) *Region {
	return &Region{name: name, start: start, size: uint(len(mem)), mem: mem, writable: writable}
}

// MapRegion maps [start, start+size) of m as a named region.
func MapRegion(m Mapper, name string, start, size uint, writable bool) (r *Region, err error) {
	var mem []byte
	if mem, err = m.Map(start, size); err != nil {
		return
	}
	r = NewRegion(name, start, mem, writable)
	if c, ok := m.(ReadClearer); ok {
		r.clearOnRead = c.ClearsOnRead
	}
	return
}

func (r *Region) Name() string   { return r.name }
func (r *Region) Start() uint    { return r.start }
func (r *Region) Size() uint     { return r.size }
func (r *Region) Writable() bool { return r.writable }

func (r *Region) Contains(offset uint) bool {
	return offset >= r.start && offset < r.start+r.size
}

// Invalidate severs the region from its mapping.  Used at detach; any
// later access through the region is a use-after-detach bug and panics.
func (r *Region) Invalidate() { r.mem = nil }

func (r *Region) index(offset, width uint) uint {
	if r.mem == nil {
		panic(fmt.Errorf("%s: access after detach", r.name))
	}
	if offset < r.start || offset+width > r.start+r.size {
		panic(fmt.Errorf("%s: offset 0x%x width %d outside [0x%x,0x%x)", r.name, offset, width, r.start, r.start+r.size))
	}
	if offset%width != 0 {
		panic(fmt.Errorf("%s: misaligned %d byte access at 0x%x", r.name, width, offset))
	}
	return offset - r.start
}

func (r *Region) checkStore(offset uint) {
	if !r.writable {
		panic(fmt.Errorf("%s: store at 0x%x via read-only mapping", r.name, offset))
	}
}

func (r *Region) LoadUint32(offset uint) (v uint32) {
	p := (*uint32)(unsafe.Pointer(&r.mem[r.index(offset, 4)]))
	v = LoadUint32(p)
	if r.clearOnRead != nil && r.clearOnRead(offset) {
		StoreUint32(p, 0)
	}
	return
}

func (r *Region) StoreUint32(offset uint, v uint32) {
	r.checkStore(offset)
	StoreUint32((*uint32)(unsafe.Pointer(&r.mem[r.index(offset, 4)])), v)
}

func (r *Region) LoadUint64(offset uint) (v uint64) {
	p := (*uint64)(unsafe.Pointer(&r.mem[r.index(offset, 8)]))
	v = LoadUint64(p)
	if r.clearOnRead != nil && r.clearOnRead(offset) {
		StoreUint64(p, 0)
	}
	return
}

func (r *Region) StoreUint64(offset uint, v uint64) {
	r.checkStore(offset)
	StoreUint64((*uint64)(unsafe.Pointer(&r.mem[r.index(offset, 8)])), v)
}

// 8 and 16 bit registers do not occur in the 10G register file; these
// exist for byte granular tables (packet buffer memory, flex filters).
func (r *Region) LoadUint8(offset uint) (v uint8) {
	i := r.index(offset, 1)
	v = r.mem[i]
	if r.clearOnRead != nil && r.clearOnRead(offset) {
		r.mem[i] = 0
	}
	return
}

func (r *Region) StoreUint8(offset uint, v uint8) {
	r.checkStore(offset)
	r.mem[r.index(offset, 1)] = v
}

func (r *Region) LoadUint16(offset uint) (v uint16) {
	p := (*uint16)(unsafe.Pointer(&r.mem[r.index(offset, 2)]))
	v = *p
	if r.clearOnRead != nil && r.clearOnRead(offset) {
		*p = 0
	}
	return
}

func (r *Region) StoreUint16(offset uint, v uint16) {
	r.checkStore(offset)
	*(*uint16)(unsafe.Pointer(&r.mem[r.index(offset, 2)])) = v
}
