// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Register file of Intel 10G Ethernet controllers (82598/82599/X540),
// as a typed, partitioned overlay of BAR0.
package xge

import (
	"github.com/platinasystems/xge/hw"
)

// One cell type per access kind; an operation outside a register's
// kind does not compile.  The overlay struct lives at hw.BasePointer
// and is never dereferenced: a cell's own address encodes its device
// byte offset, the mapped partition region performs the access.

// rw32: volatile control/status register, load and store.
type rw32 hw.U32

// ro32: device-written status, load only.
type ro32 hw.U32

// wo32: command/trigger register, store only.
type wo32 hw.U32

// rc32: statistics counter, cleared by the hardware on every read.
type rc32 hw.U32

// rsvd32: documented register the driver holds no capability for.
// Keeps offset arithmetic correct; has no accessors.
type rsvd32 hw.U32

func (r *rw32) offset() uint   { return uint((*hw.U32)(r).Offset()) }
func (r *ro32) offset() uint   { return uint((*hw.U32)(r).Offset()) }
func (r *wo32) offset() uint   { return uint((*hw.U32)(r).Offset()) }
func (r *rc32) offset() uint   { return uint((*hw.U32)(r).Offset()) }
func (r *rsvd32) offset() uint { return uint((*hw.U32)(r).Offset()) }

func (r *rw32) get(d *Dev) uint32    { return d.load32(r.offset()) }
func (r *rw32) set(d *Dev, v uint32) { d.store32(r.offset(), v) }
func (r *rw32) or(d *Dev, v uint32) (x uint32) {
	x = r.get(d) | v
	r.set(d, x)
	return
}
func (r *rw32) andnot(d *Dev, v uint32) (x uint32) {
	x = r.get(d) &^ v
	r.set(d, x)
	return
}

func (r *ro32) get(d *Dev) uint32 { return d.load32(r.offset()) }

func (r *wo32) set(d *Dev, v uint32) { d.store32(r.offset(), v) }

// Reading returns the count and zeroes the hardware counter; there is
// no peek.  Callers accumulate.
func (r *rc32) get(d *Dev) uint32 { return d.load32(r.offset()) }

// addr is a 64 bit quantity split over two consecutive registers,
// low word first (descriptor ring base addresses).
type addr [2]rw32

func (a *addr) set(d *Dev, v uint64) {
	a[0].set(d, uint32(v))
	a[1].set(d, uint32(v>>32))
}

func (a *addr) get(d *Dev) uint64 {
	return uint64(a[0].get(d)) | uint64(a[1].get(d))<<32
}
