// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateComputesInteriorPadding(t *testing.T) {
	p := &Partition{
		Name: "ctrl", Start: 0, Size: 0x10,
		Fields: []Field{
			{Name: "a", Offset: 0x0, Width: 4},
			{Name: "b", Offset: 0x8, Width: 4, Extent: 2},
		},
	}
	require.NoError(t, p.Validate())
	require.Len(t, p.Padding(), 1)
	assert.Equal(t, Padding{0x4, 0x4}, p.Padding()[0])

	assert.Equal(t, "a", p.FieldAt(0x0).Name)
	assert.Nil(t, p.FieldAt(0x4), "gap is padding")
	assert.Equal(t, "b", p.FieldAt(0xc).Name)
}

func TestValidateSizeMismatch(t *testing.T) {
	p := &Partition{
		Name: "bank", Start: 0, Size: 4096,
		Fields: []Field{
			{Name: "regs", Offset: 0, Width: 4, Extent: 1023},
		},
	}
	err := p.Validate()
	var se *SizeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, uint(4096), se.Want)
	assert.Equal(t, uint(4092), se.Got)

	// The same declaration with a documented reserved tail is fine.
	q := &Partition{
		Name: "bank", Start: 0, Size: 4096, ReservedTail: true,
		Fields: []Field{
			{Name: "regs", Offset: 0, Width: 4, Extent: 1023},
		},
	}
	require.NoError(t, q.Validate())
	require.Len(t, q.Padding(), 1)
	assert.Equal(t, Padding{4092, 4}, q.Padding()[0])
}

func TestValidateOverlap(t *testing.T) {
	p := &Partition{
		Name: "x", Start: 0, Size: 0x10, ReservedTail: true,
		Fields: []Field{
			{Name: "a", Offset: 0, Width: 4},
			{Name: "b", Offset: 0, Width: 4},
		},
	}
	var oe *OverlapError
	require.ErrorAs(t, p.Validate(), &oe)
	assert.Equal(t, "a", oe.A)
	assert.Equal(t, "b", oe.B)

	// Declared as an alias, the same offsets validate.
	q := &Partition{
		Name: "x", Start: 0, Size: 0x10, ReservedTail: true,
		Fields: []Field{
			{Name: "a", Offset: 0, Width: 4},
			{Name: "b", Offset: 0, Width: 4, AliasOf: "a"},
		},
	}
	require.NoError(t, q.Validate())
}

func TestValidateRejections(t *testing.T) {
	for _, x := range []struct {
		name string
		p    *Partition
		want error
	}{
		{"order", &Partition{Name: "p", Start: 0, Size: 0x10, ReservedTail: true,
			Fields: []Field{
				{Name: "a", Offset: 8, Width: 4},
				{Name: "b", Offset: 0, Width: 4},
			}}, &OrderError{}},
		{"alignment", &Partition{Name: "p", Start: 0, Size: 0x10, ReservedTail: true,
			Fields: []Field{{Name: "a", Offset: 2, Width: 4}}}, &AlignError{}},
		{"width", &Partition{Name: "p", Start: 0, Size: 0x10, ReservedTail: true,
			Fields: []Field{{Name: "a", Offset: 0, Width: 3}}}, &WidthError{}},
		{"dup", &Partition{Name: "p", Start: 0, Size: 0x10, ReservedTail: true,
			Fields: []Field{
				{Name: "a", Offset: 0, Width: 4},
				{Name: "a", Offset: 4, Width: 4},
			}}, &DupError{}},
		{"outside", &Partition{Name: "p", Start: 0, Size: 0x10, ReservedTail: true,
			Fields: []Field{{Name: "a", Offset: 0x10, Width: 4}}}, &SizeError{}},
		{"partial overlap", &Partition{Name: "p", Start: 0, Size: 0x10, ReservedTail: true,
			Fields: []Field{
				{Name: "a", Offset: 0, Width: 4, Extent: 2},
				{Name: "b", Offset: 4, Width: 4},
			}}, &OverlapError{}},
		{"alias of nothing", &Partition{Name: "p", Start: 0, Size: 0x10, ReservedTail: true,
			Fields: []Field{{Name: "b", Offset: 0, Width: 4, AliasOf: "a"}}}, &AliasError{}},
		{"alias offset differs", &Partition{Name: "p", Start: 0, Size: 0x10, ReservedTail: true,
			Fields: []Field{
				{Name: "a", Offset: 0, Width: 4},
				{Name: "b", Offset: 4, Width: 4, AliasOf: "a"},
			}}, &AliasError{}},
		{"alias longer than target", &Partition{Name: "p", Start: 0, Size: 0x10, ReservedTail: true,
			Fields: []Field{
				{Name: "a", Offset: 0, Width: 4},
				{Name: "b", Offset: 0, Width: 4, Extent: 2, AliasOf: "a"},
			}}, &AliasError{}},
	} {
		t.Run(x.name, func(t *testing.T) {
			err := x.p.Validate()
			require.Error(t, err)
			switch x.want.(type) {
			case *OrderError:
				var e *OrderError
				assert.ErrorAs(t, err, &e)
			case *AlignError:
				var e *AlignError
				assert.ErrorAs(t, err, &e)
			case *WidthError:
				var e *WidthError
				assert.ErrorAs(t, err, &e)
			case *DupError:
				var e *DupError
				assert.ErrorAs(t, err, &e)
			case *SizeError:
				var e *SizeError
				assert.ErrorAs(t, err, &e)
			case *OverlapError:
				var e *OverlapError
				assert.ErrorAs(t, err, &e)
			case *AliasError:
				var e *AliasError
				assert.ErrorAs(t, err, &e)
			}
		})
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	p := &Partition{
		Name: "p", Start: 0x100, Size: 0x100, ReservedTail: true,
		Fields: []Field{{Name: "a", Offset: 0x100, Width: 4}},
	}
	require.NoError(t, p.Validate())
	pads := len(p.Padding())
	require.NoError(t, p.Validate())
	assert.Len(t, p.Padding(), pads)
}

func TestResolveExtent(t *testing.T) {
	p := &Partition{
		Name: "p", Start: 0, Size: 0x200, ReservedTail: true,
		Fields: []Field{
			{Name: "mbox", Offset: 0, Width: 4, Extent: 64, Dynamic: true},
			{Name: "ctl", Offset: 0x100, Width: 4},
		},
	}
	require.NoError(t, p.Validate())

	assert.Error(t, p.ResolveExtent("ctl", 1), "not dynamic")
	assert.Error(t, p.ResolveExtent("nope", 1))

	var se *SizeError
	require.ErrorAs(t, p.ResolveExtent("mbox", 65), &se, "bound exceeds reservation")

	require.NoError(t, p.ResolveExtent("mbox", 8))
	f, _ := p.Lookup("mbox")
	n, err := p.extentOf(f)
	require.NoError(t, err)
	assert.Equal(t, uint(8), n)

	// Clones do not share resolutions.
	q := p.Clone()
	_, err = q.extentOf(f)
	var ue *UnresolvedExtentError
	assert.ErrorAs(t, err, &ue)
}

func TestSpaceChaining(t *testing.T) {
	a := &Partition{Name: "a", Start: 0, Size: 0x100, ReservedTail: true}
	b := &Partition{Name: "b", Start: 0x100, Size: 0x100, ReservedTail: true}
	require.NoError(t, Space{a, b}.Validate())

	c := &Partition{Name: "c", Start: 0x300, Size: 0x100, ReservedTail: true}
	var se *SizeError
	require.ErrorAs(t, Space{a, c}.Validate(), &se, "hole between partitions")

	s := Space{a, b}
	assert.Equal(t, b, s.Partition("b"))
	assert.Nil(t, s.Partition("z"))
}

func TestBank(t *testing.T) {
	elem := &Partition{
		Name: "q", Start: 0, Size: 0x40, ReservedTail: true,
		Fields: []Field{
			{Name: "base", Offset: 0, Width: 4, Extent: 2},
			{Name: "tail", Offset: 0x18, Width: 4},
		},
	}
	b := &Bank{Name: "qs", Base: 0x1000, ElemSize: 0x40, MaxCount: 64, Elem: elem}
	require.NoError(t, b.Validate())

	off, err := b.Offset(0)
	require.NoError(t, err)
	assert.Equal(t, uint(0x1000), off)
	off, err = b.Offset(63)
	require.NoError(t, err)
	assert.Equal(t, uint(0x1000+63*0x40), off)
	assert.Equal(t, uint(0x2000), b.End())

	var ie *IndexError
	_, err = b.Offset(64)
	require.ErrorAs(t, err, &ie)
	_, err = b.Offset(-1)
	require.ErrorAs(t, err, &ie)

	// Runtime count narrows indexing without moving reserved space.
	require.NoError(t, b.SetCount(8))
	assert.Equal(t, uint(8), b.Count())
	_, err = b.Offset(8)
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, uint(8), ie.Max)
	assert.Equal(t, uint(0x2000), b.End())

	require.ErrorAs(t, b.SetCount(65), &ie, "over datasheet maximum")

	// Clones get their own count.
	c := b.Clone()
	assert.Equal(t, uint(64), c.Count())

	bad := &Bank{Name: "bad", Base: 0, ElemSize: 0x80, MaxCount: 4, Elem: elem}
	var se *SizeError
	require.ErrorAs(t, bad.Validate(), &se, "element does not span stride")
}
