// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xge

import (
	"fmt"
	"sync"

	"github.com/platinasystems/log"
	"github.com/platinasystems/xge/hw"
	"github.com/platinasystems/xge/regmap"
)

// Config selects which partitions Attach maps and how.
type Config struct {
	// Partitions to map by name; nil maps the whole register file.
	Partitions []string

	// ReadOnly lists partitions mapped without store capability
	// (diagnostic attach to a live device).
	ReadOnly []string
}

// Dev is one attached controller: a set of mapped partition regions
// plus this device's resolution of dynamic extents and queue counts.
type Dev struct {
	id string
	m  hw.Mapper

	// Per device clones; resolving a VF count on one device must
	// not leak into another.
	space regmap.Space
	rxq0  *regmap.Bank
	rxq1  *regmap.Bank
	txq   *regmap.Bank

	// Parallel to space; nil entry means partition not attached.
	regions []*hw.Region

	views map[string]*regmap.View

	mu       sync.Mutex
	counts   []uint64 // counter accumulators, indexed like devCounters
	detached bool
}

// Writable partition ownership.  At most one Dev may hold store
// capability over a given device partition; concurrent read-only
// attaches are unrestricted.
var owners = struct {
	mu sync.Mutex
	m  map[string]*Dev
}{m: make(map[string]*Dev)}

func ownerKey(id, partition string) string { return id + "/" + partition }

func (c *Config) wants(name string) bool {
	if c == nil || len(c.Partitions) == 0 {
		return true
	}
	for _, n := range c.Partitions {
		if n == name {
			return true
		}
	}
	return false
}

func (c *Config) readOnly(name string) bool {
	if c == nil {
		return false
	}
	for _, n := range c.ReadOnly {
		if n == name {
			return true
		}
	}
	return false
}

// Attach maps the selected partitions of the device behind m.  id
// names the device instance (pci address); it keys the writable
// ownership registry.  Attach of an already writable-owned partition
// fails without mapping anything.
func Attach(id string, m hw.Mapper, cfg *Config) (d *Dev, err error) {
	dev := &Dev{
		id:      id,
		m:       m,
		space:   bar0.Clone(),
		rxq0:    rxDMA0Bank.Clone(),
		rxq1:    rxDMA1Bank.Clone(),
		txq:     txDMABank.Clone(),
		regions: make([]*hw.Region, len(bar0)),
		views:   make(map[string]*regmap.View),
	}

	var granted []string
	defer func() {
		if err != nil {
			dev.release(granted)
			dev.unmapAll()
		}
	}()

	owners.mu.Lock()
	for _, p := range dev.space {
		if !cfg.wants(p.Name) || cfg.readOnly(p.Name) {
			continue
		}
		k := ownerKey(id, p.Name)
		if o, taken := owners.m[k]; taken {
			owners.mu.Unlock()
			err = fmt.Errorf("%s: partition %s already attached writable by %s", id, p.Name, o.id)
			return
		}
		owners.m[k] = dev
		granted = append(granted, k)
	}
	owners.mu.Unlock()

	for i, p := range dev.space {
		if !cfg.wants(p.Name) {
			continue
		}
		var r *hw.Region
		r, err = hw.MapRegion(m, p.Name, p.Start, p.Size, !cfg.readOnly(p.Name))
		if err != nil {
			return
		}
		dev.regions[i] = r
	}

	log.Print("notice: ", id, " attached ", len(granted), " writable partitions")
	d = dev
	return
}

func (d *Dev) release(keys []string) {
	owners.mu.Lock()
	for _, k := range keys {
		if owners.m[k] == d {
			delete(owners.m, k)
		}
	}
	owners.mu.Unlock()
}

func (d *Dev) unmapAll() {
	for i, r := range d.regions {
		if r == nil {
			continue
		}
		r.Invalidate()
		d.regions[i] = nil
	}
}

// Detach releases ownership and invalidates every mapped region; any
// later access through this Dev panics rather than touching a stale
// mapping.
func (d *Dev) Detach() (err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.detached {
		return fmt.Errorf("%s: already detached", d.id)
	}
	d.detached = true

	var keys []string
	for i, p := range d.space {
		if d.regions[i] != nil && d.regions[i].Writable() {
			keys = append(keys, ownerKey(d.id, p.Name))
		}
	}
	d.release(keys)
	d.unmapAll()
	log.Print("notice: ", d.id, " detached")
	return
}

func (d *Dev) String() string { return d.id }

// region routes an absolute device offset to its mapped partition.
// Access to an unattached partition is a driver bug.
func (d *Dev) region(offset uint) *hw.Region {
	for i, p := range d.space {
		if p.Start <= offset && offset < p.End() {
			if r := d.regions[i]; r != nil {
				return r
			}
			panic(fmt.Errorf("%s: offset 0x%x: partition %s not attached", d.id, offset, p.Name))
		}
	}
	panic(fmt.Errorf("%s: offset 0x%x outside register file", d.id, offset))
}

// attachedAt reports whether the partition covering offset is mapped.
func (d *Dev) attachedAt(offset uint) bool {
	for i, p := range d.space {
		if p.Start <= offset && offset < p.End() {
			return d.regions[i] != nil
		}
	}
	return false
}

func (d *Dev) load32(offset uint) uint32     { return d.region(offset).LoadUint32(offset) }
func (d *Dev) store32(offset uint, v uint32) { d.region(offset).StoreUint32(offset, v) }

// get_regs returns the typed overlay.  The pointer is the reserved
// base mapping; cells are never dereferenced, their addresses encode
// device offsets.
func (d *Dev) get_regs() *regs { return (*regs)(hw.BasePointer) }

// rx_dma_regs returns queue q's rx register group.  Queues 0-63 live
// in the low bank, 64-127 in the high one.
func (d *Dev) rx_dma_regs(q int) (qr *rx_dma_regs, err error) {
	r := d.get_regs()
	if q < 64 {
		if _, err = d.rxq0.Offset(q); err != nil {
			return
		}
		qr = &r.rx_dma0[q]
	} else {
		if _, err = d.rxq1.Offset(q - 64); err != nil {
			err = &regmap.IndexError{Requested: q, Max: d.NumRxQueues()}
			return
		}
		qr = &r.rx_dma1[q-64]
	}
	return
}

func (d *Dev) tx_dma_regs(q int) (qr *tx_dma_regs, err error) {
	if _, err = d.txq.Offset(q); err != nil {
		return
	}
	qr = &d.get_regs().tx_dma[q]
	return
}

// RxQueueOffset resolves rx queue q's register group base, bounds
// checked against the working queue count.
func (d *Dev) RxQueueOffset(q int) (offset uint, err error) {
	if q < 64 {
		return d.rxq0.Offset(q)
	}
	if offset, err = d.rxq1.Offset(q - 64); err != nil {
		err = &regmap.IndexError{Requested: q, Max: d.NumRxQueues()}
	}
	return
}

// TxQueueOffset resolves tx queue q's register group base.
func (d *Dev) TxQueueOffset(q int) (uint, error) { return d.txq.Offset(q) }

// NumRxQueues is the working rx queue bound.
func (d *Dev) NumRxQueues() uint { return d.rxq0.Count() + d.rxq1.Count() }

// NumTxQueues is the working tx queue bound.
func (d *Dev) NumTxQueues() uint { return d.txq.Count() }

// SetNumQueues bounds queue indexing by the counts actually enabled.
// Space for the datasheet maxima (128 rx, 128 tx) stays reserved.
func (d *Dev) SetNumQueues(rx, tx uint) (err error) {
	if rx > 128 {
		return &regmap.IndexError{Requested: int(rx), Max: 128}
	}
	lo := rx
	if lo > 64 {
		lo = 64
	}
	if err = d.rxq0.SetCount(lo); err != nil {
		return
	}
	if err = d.rxq1.SetCount(rx - lo); err != nil {
		return
	}
	if err = d.txq.SetCount(tx); err != nil {
		return
	}
	log.Print("notice: ", d.id, " using ", rx, " rx / ", tx, " tx queues")
	return
}

// Per VF register files; extents resolve together once the VF count
// is discovered.
var vfExtentFields = []struct{ partition, field string }{
	{"tx_control", "pf_mailbox"},
	{"security", "pf_vm_vlan_insert"},
	{"extended", "pf_vm_tag_insert"},
}

// SetNumVFs resolves every VF-bounded dynamic extent.  Until called,
// name-keyed access to those fields fails with an unresolved extent
// error rather than guessing a bound.
func (d *Dev) SetNumVFs(n uint) (err error) {
	for _, x := range vfExtentFields {
		p := d.space.Partition(x.partition)
		if err = p.ResolveExtent(x.field, n); err != nil {
			return
		}
	}
	log.Print("notice: ", d.id, " using ", n, " virtual functions")
	return
}

// View returns the name-keyed guarded accessor for an attached
// partition.  Views share the device's extent resolutions.
func (d *Dev) View(partition string) (v *regmap.View, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if v = d.views[partition]; v != nil {
		return
	}
	for i, p := range d.space {
		if p.Name != partition {
			continue
		}
		if d.regions[i] == nil {
			return nil, fmt.Errorf("%s: partition %s not attached", d.id, partition)
		}
		if v, err = regmap.NewView(p, d.regions[i]); err == nil {
			d.views[partition] = v
		}
		return
	}
	return nil, fmt.Errorf("%s: no such partition %s", d.id, partition)
}
