// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Declarative register layouts for memory mapped devices.
//
// A Partition lists the named registers of one contiguous slice of a
// device address space exactly as the datasheet gives them: name,
// absolute byte offset, width, access kind, array extent.  Validate
// reproduces the datasheet arithmetic — ordering, alignment, implicit
// padding between fields, overlap detection, exact total size — and
// refuses the layout on any deviation.  A validated partition plus a
// mapped region yields a View, the guarded name-keyed accessor.
package regmap

import "fmt"

// Kind is the access capability of a register.  Reserved grants no
// capability ever; it exists to keep offset arithmetic honest.
type Kind int

const (
	ReadWrite Kind = iota // volatile: both directions, no caching
	ReadOnly
	WriteOnly
	ReadClear // load returns the counter and zeroes it
	Reserved
)

var kindStrings = [...]string{
	ReadWrite: "rw",
	ReadOnly:  "ro",
	WriteOnly: "wo",
	ReadClear: "rc",
	Reserved:  "rsvd",
}

func (k Kind) String() string {
	if int(k) < len(kindStrings) {
		return kindStrings[k]
	}
	return "invalid"
}

func (k Kind) CanLoad() bool  { return k == ReadWrite || k == ReadOnly || k == ReadClear }
func (k Kind) CanStore() bool { return k == ReadWrite || k == WriteOnly }

// Field is one hardware register or a homogeneous repeated group.
// Offset is the absolute device byte offset from the datasheet.
type Field struct {
	Name   string
	Offset uint
	Width  uint // bytes: 1, 2, 4 or 8
	Kind   Kind

	// Extent > 1 collapses an array of consecutive identical
	// registers into one declaration covering Extent*Width bytes.
	Extent uint

	// Dynamic marks an extent bounded by a runtime-discovered
	// capability.  Extent then reserves the datasheet maximum; the
	// working bound is set with ResolveExtent once known.
	Dynamic bool

	// AliasOf names an earlier field this one overlays: a documented
	// register synonym at the identical offset, not a transcription
	// error.  Aliases reserve no bytes of their own.
	AliasOf string
}

func (f *Field) extent() uint {
	if f.Extent == 0 {
		return 1
	}
	return f.Extent
}

// Bytes covered by the declaration.
func (f *Field) size() uint { return f.Width * f.extent() }
func (f *Field) end() uint  { return f.Offset + f.size() }

// Padding is a computed gap between declared fields.
type Padding struct {
	Offset, Size uint
}

// Partition is an ordered register declaration for [Start, Start+Size)
// of the device address space.
type Partition struct {
	Name   string
	Start  uint
	Size   uint
	Fields []Field

	// ReservedTail permits implicit padding from the last field to
	// the end of the partition (datasheet marks the tail reserved).
	// Without it a short layout fails the total size assertion
	// instead of being silently padded out.
	ReservedTail bool

	validated bool
	padding   []Padding
	byName    map[string]*Field
	resolved  map[string]uint
}

func (p *Partition) End() uint { return p.Start + p.Size }

func validWidth(w uint) bool { return w == 1 || w == 2 || w == 4 || w == 8 }

// Validate checks the declaration against the documented partition
// size.  It must pass before any field may be touched; failures are
// declaration bugs, never runtime conditions.
func (p *Partition) Validate() (err error) {
	if p.validated {
		return
	}
	p.byName = make(map[string]*Field, len(p.Fields))
	p.padding = nil

	cursor := p.Start
	var prev *Field
	for i := range p.Fields {
		f := &p.Fields[i]
		if !validWidth(f.Width) {
			return &WidthError{f.Name, f.Width}
		}
		if f.Offset%f.Width != 0 {
			return &AlignError{f.Name, f.Offset, f.Width}
		}
		if _, seen := p.byName[f.Name]; seen {
			return &DupError{f.Name}
		}
		if f.Offset < p.Start || f.end() > p.End() {
			return &SizeError{p.Name, p.Size, f.end() - p.Start}
		}
		p.byName[f.Name] = f

		if f.AliasOf != "" {
			a, ok := p.byName[f.AliasOf]
			switch {
			case !ok:
				return &AliasError{f.Name, f.AliasOf, "no such field"}
			case f.Offset != a.Offset:
				return &AliasError{f.Name, f.AliasOf, "offsets differ"}
			case f.end() > cursor:
				return &AliasError{f.Name, f.AliasOf, "extends past aliased range"}
			}
			// Aliases overlay already-accounted bytes.
			continue
		}

		if prev != nil && f.Offset < prev.Offset {
			return &OrderError{prev.Name, f.Name}
		}
		if f.Offset < cursor {
			return &OverlapError{prev.Name, f.Name}
		}
		if gap := f.Offset - cursor; gap > 0 {
			p.padding = append(p.padding, Padding{cursor, gap})
		}
		cursor = f.end()
		prev = f
	}

	if cursor < p.End() {
		if !p.ReservedTail {
			return &SizeError{p.Name, p.Size, cursor - p.Start}
		}
		p.padding = append(p.padding, Padding{cursor, p.End() - cursor})
		cursor = p.End()
	}

	// Total size assertion: declared coverage plus padding must
	// reproduce the documented size exactly.
	var sum uint
	for i := range p.Fields {
		if p.Fields[i].AliasOf == "" {
			sum += p.Fields[i].size()
		}
	}
	for _, pad := range p.padding {
		sum += pad.Size
	}
	if sum != p.Size {
		return &SizeError{p.Name, p.Size, sum}
	}

	p.validated = true
	return
}

// MustValidate panics on a bad layout; used at package init so a
// wrong declaration can never reach a device.
func (p *Partition) MustValidate() {
	if err := p.Validate(); err != nil {
		panic(err)
	}
}

// Padding returns the computed gaps.  Valid after Validate.
func (p *Partition) Padding() []Padding { return p.padding }

// Lookup finds a declared field by name.
func (p *Partition) Lookup(name string) (f *Field, err error) {
	var ok bool
	if f, ok = p.byName[name]; !ok {
		err = &UnknownFieldError{p.Name, name}
	}
	return
}

// FieldAt returns the field covering an absolute device offset, or
// nil for padding.  Aliases are skipped in favor of their targets.
func (p *Partition) FieldAt(offset uint) *Field {
	for i := range p.Fields {
		f := &p.Fields[i]
		if f.AliasOf == "" && f.Offset <= offset && offset < f.end() {
			return f
		}
	}
	return nil
}

// ResolveExtent sets the working bound of a dynamic-extent field once
// the capability is discovered.  The bound must fit the reserved
// declaration; a bound that does not fit is fatal to the caller
// because the layout beyond it is already committed.
func (p *Partition) ResolveExtent(name string, n uint) (err error) {
	f, err := p.Lookup(name)
	if err != nil {
		return
	}
	if !f.Dynamic {
		return fmt.Errorf("field %s: extent is not dynamic", name)
	}
	if n > f.extent() {
		return &SizeError{p.Name + "." + name, f.extent(), n}
	}
	if p.resolved == nil {
		p.resolved = make(map[string]uint)
	}
	p.resolved[name] = n
	return
}

// Clone returns a partition sharing the validated declaration but
// with its own dynamic-extent resolutions.  Layout tables are package
// level; each attached device resolves extents against its own clone.
func (p *Partition) Clone() *Partition {
	q := *p
	q.resolved = nil
	return &q
}

// extentOf returns the working extent: the resolved bound for dynamic
// fields, the declared extent otherwise.
func (p *Partition) extentOf(f *Field) (n uint, err error) {
	if !f.Dynamic {
		return f.extent(), nil
	}
	var ok bool
	if n, ok = p.resolved[f.Name]; !ok {
		err = &UnresolvedExtentError{f.Name}
	}
	return
}

// Space is the ordered concatenation of partitions covering a whole
// device address space.
type Space []*Partition

// Validate checks every partition and that consecutive partitions
// chain exactly: partition[i+1].Start == partition[i].End().
func (s Space) Validate() (err error) {
	for i, p := range s {
		if err = p.Validate(); err != nil {
			return
		}
		if i > 0 && p.Start != s[i-1].End() {
			return &SizeError{p.Name, s[i-1].End(), p.Start}
		}
	}
	return
}

func (s Space) MustValidate() {
	if err := s.Validate(); err != nil {
		panic(err)
	}
}

// Clone clones every partition; see Partition.Clone.
func (s Space) Clone() Space {
	t := make(Space, len(s))
	for i, p := range s {
		t[i] = p.Clone()
	}
	return t
}

// Partition returns the named partition, nil if absent.
func (s Space) Partition(name string) *Partition {
	for _, p := range s {
		if p.Name == name {
			return p
		}
	}
	return nil
}
