// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regmap

import "fmt"

// Layout errors are fatal at build/attach time: a wrong offset makes
// the driver address the wrong physical register, which is strictly
// worse than refusing to run.  Index and access errors are local and
// returned to the caller.

// SizeError: computed partition size differs from the documented one.
type SizeError struct {
	Partition string
	Want, Got uint
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("partition %s: computed size 0x%x != documented 0x%x", e.Partition, e.Got, e.Want)
}

// OverlapError: two fields claim overlapping byte ranges without an
// alias declaration.
type OverlapError struct {
	A, B string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("fields %s and %s overlap without alias declaration", e.A, e.B)
}

// OrderError: field offsets not declared in non-decreasing order.
type OrderError struct {
	Prev, Field string
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("field %s declared after %s but at a lower offset", e.Field, e.Prev)
}

// AlignError: field offset not a multiple of its width.
type AlignError struct {
	Field  string
	Offset uint
	Width  uint
}

func (e *AlignError) Error() string {
	return fmt.Sprintf("field %s: offset 0x%x not %d byte aligned", e.Field, e.Offset, e.Width)
}

// WidthError: field width outside {1,2,4,8}.
type WidthError struct {
	Field string
	Width uint
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("field %s: invalid width %d", e.Field, e.Width)
}

// DupError: field name declared twice in one partition.
type DupError struct {
	Name string
}

func (e *DupError) Error() string {
	return fmt.Sprintf("field %s declared twice", e.Name)
}

// AliasError: alias declaration names an unknown field or a field at
// a different offset.
type AliasError struct {
	Field, Target, Reason string
}

func (e *AliasError) Error() string {
	return fmt.Sprintf("field %s aliasing %s: %s", e.Field, e.Target, e.Reason)
}

// UnresolvedExtentError: field with a runtime-discovered extent was
// accessed before the extent became known.
type UnresolvedExtentError struct {
	Field string
}

func (e *UnresolvedExtentError) Error() string {
	return fmt.Sprintf("field %s: dynamic extent not yet resolved", e.Field)
}

// IndexError: index outside [0, Max).  No memory access is performed.
type IndexError struct {
	Requested int
	Max       uint
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d outside [0,%d)", e.Requested, e.Max)
}

// AccessError: operation outside the field's access kind, or a store
// through a read-only mapping.
type AccessError struct {
	Field string
	Op    string
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("field %s: %s not permitted", e.Field, e.Op)
}

// UnknownFieldError: name not declared in the partition.
type UnknownFieldError struct {
	Partition, Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("partition %s: no field %s", e.Partition, e.Name)
}
