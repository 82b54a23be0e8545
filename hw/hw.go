// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Memory mapped register read/write.
package hw

import (
	"fmt"
	"sync/atomic"
	"syscall"
	"unsafe"
)

// Must point to readable memory since compiler may perform
// read probes (nil checks) as part of memory addressing.
var (
	BasePointer = basePointer()
	BaseAddress = uintptr(BasePointer)
)

func basePointer() unsafe.Pointer {
	// ok for all 32 bit devices.
	x, err := syscall.Mmap(0, 0, 1<<32, syscall.PROT_READ, syscall.MAP_PRIVATE|syscall.MAP_ANON|syscall.MAP_NORESERVE)
	if err != nil {
		panic(err)
	}
	return unsafe.Pointer(&x[0])
}

func CheckRegAddr(name string, got, want uint) {
	if got != want {
		panic(fmt.Errorf("%s got 0x%x != want 0x%x", name, got, want))
	}
}

// Memory-mapped read/write.  Atomic ops so accesses are single
// correctly-sized instructions which the compiler will not merge,
// split or elide.
func LoadUint32(addr *uint32) uint32        { return atomic.LoadUint32(addr) }
func StoreUint32(addr *uint32, data uint32) { atomic.StoreUint32(addr, data) }

// 64 bit access requires a naturally aligned address.
func LoadUint64(addr *uint64) uint64        { return atomic.LoadUint64(addr) }
func StoreUint64(addr *uint64, data uint64) { atomic.StoreUint64(addr, data) }

var barrier uint32

func MemoryBarrier() { atomic.AddUint32(&barrier, 0) }

// Generic 8/16/32/64 bit registers.
type U8 uint8
type U16 uint16
type U32 uint32
type U64 uint64

// Byte offsets relative to the reserved base mapping.  Register
// overlay structs are placed at BasePointer and never dereferenced
// directly; a cell's address only encodes its device byte offset.
func (r *U8) Offset() uintptr  { return uintptr(unsafe.Pointer(r)) - BaseAddress }
func (r *U16) Offset() uintptr { return uintptr(unsafe.Pointer(r)) - BaseAddress }
func (r *U32) Offset() uintptr { return uintptr(unsafe.Pointer(r)) - BaseAddress }
func (r *U64) Offset() uintptr { return uintptr(unsafe.Pointer(r)) - BaseAddress }
