// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regmap

// Bank is a fixed-stride array of identically laid out per-queue
// register groups.  Queue n's registers start at Base + n*ElemSize;
// nothing else in driver code is allowed to do that arithmetic.
type Bank struct {
	Name     string
	Base     uint // absolute device offset of element 0
	ElemSize uint // bytes per register group
	MaxCount uint // datasheet maximum number of queues

	// Elem optionally describes one element's internal layout,
	// with offsets relative to the element base.
	Elem *Partition

	count    uint
	resolved bool
}

// SetCount bounds indexing by the number of queues actually enabled,
// as discovered at runtime.  The bound may not exceed the datasheet
// maximum the declaration reserved space for.
func (b *Bank) SetCount(n uint) (err error) {
	if n > b.MaxCount {
		return &IndexError{int(n), b.MaxCount}
	}
	b.count, b.resolved = n, true
	return
}

// Count is the working queue bound: the discovered count once set,
// the datasheet maximum before.
func (b *Bank) Count() uint {
	if b.resolved {
		return b.count
	}
	return b.MaxCount
}

// Offset resolves queue i's element base.  Out-of-range indices
// return an IndexError without computing an address.
func (b *Bank) Offset(i int) (offset uint, err error) {
	if max := b.Count(); i < 0 || uint(i) >= max {
		err = &IndexError{i, max}
		return
	}
	offset = b.Base + uint(i)*b.ElemSize
	return
}

// End is one past the last reserved element, using the datasheet
// maximum (reserved space does not shrink with the runtime count).
func (b *Bank) End() uint { return b.Base + b.MaxCount*b.ElemSize }

// Clone returns a bank sharing the declaration but with its own
// runtime count.
func (b *Bank) Clone() *Bank {
	c := *b
	c.count, c.resolved = 0, false
	return &c
}

// Validate checks the element layout, when given, spans exactly one
// stride.
func (b *Bank) Validate() (err error) {
	if b.Elem == nil {
		return
	}
	if err = b.Elem.Validate(); err != nil {
		return
	}
	if b.Elem.Size != b.ElemSize {
		return &SizeError{b.Name, b.ElemSize, b.Elem.Size}
	}
	return
}
