// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regmap

import (
	"fmt"

	"github.com/platinasystems/xge/hw"
)

// View is the name-keyed guarded accessor over one mapped partition.
// Every load and store is checked against the field's declared access
// kind and bounds before a single raw, correctly sized device access
// is performed.  The typed overlay is the fast path for driver code;
// View serves tooling and tests, and is the runtime rendition of the
// capability discipline where the type system cannot see field names.
type View struct {
	p *Partition
	r *hw.Region
}

func NewView(p *Partition, r *hw.Region) (v *View, err error) {
	if err = p.Validate(); err != nil {
		return
	}
	if r.Start() > p.Start || r.Start()+r.Size() < p.End() {
		err = fmt.Errorf("region %s [0x%x,0x%x) does not cover partition %s [0x%x,0x%x)",
			r.Name(), r.Start(), r.Start()+r.Size(), p.Name, p.Start, p.End())
		return
	}
	v = &View{p: p, r: r}
	return
}

func (v *View) Partition() *Partition { return v.p }

func (v *View) field(name string, i int) (f *Field, offset uint, err error) {
	if f, err = v.p.Lookup(name); err != nil {
		return
	}
	var n uint
	if n, err = v.p.extentOf(f); err != nil {
		return
	}
	if i < 0 || uint(i) >= n {
		err = &IndexError{i, n}
		return
	}
	offset = f.Offset + uint(i)*f.Width
	return
}

func (v *View) load(name string, i int) (x uint64, err error) {
	f, offset, err := v.field(name, i)
	if err != nil {
		return
	}
	if !f.Kind.CanLoad() {
		err = &AccessError{f.Name, "load"}
		return
	}
	switch f.Width {
	case 1:
		x = uint64(v.r.LoadUint8(offset))
	case 2:
		x = uint64(v.r.LoadUint16(offset))
	case 4:
		x = uint64(v.r.LoadUint32(offset))
	case 8:
		x = v.r.LoadUint64(offset)
	}
	return
}

func (v *View) store(name string, i int, x uint64) (err error) {
	f, offset, err := v.field(name, i)
	if err != nil {
		return
	}
	if !f.Kind.CanStore() {
		return &AccessError{f.Name, "store"}
	}
	if !v.r.Writable() {
		return &AccessError{f.Name, "store via read-only mapping"}
	}
	if f.Width < 8 && x>>(8*f.Width) != 0 {
		return fmt.Errorf("field %s: value 0x%x does not fit %d bytes", f.Name, x, f.Width)
	}
	switch f.Width {
	case 1:
		v.r.StoreUint8(offset, uint8(x))
	case 2:
		v.r.StoreUint16(offset, uint16(x))
	case 4:
		v.r.StoreUint32(offset, uint32(x))
	case 8:
		v.r.StoreUint64(offset, x)
	}
	return
}

// Load reads a scalar field.
func (v *View) Load(name string) (uint64, error) { return v.load(name, 0) }

// LoadIndex reads element i of an array field.
func (v *View) LoadIndex(name string, i int) (uint64, error) { return v.load(name, i) }

// Store writes a scalar field.
func (v *View) Store(name string, x uint64) error { return v.store(name, 0, x) }

// StoreIndex writes element i of an array field.
func (v *View) StoreIndex(name string, i int, x uint64) error { return v.store(name, i, x) }
