// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platinasystems/xge/hw"
	"github.com/platinasystems/xge/regmap"
)

// newTestMap builds a memory backed BAR0 with clear-on-read behavior
// for every register the tables declare ReadClear, standing in for
// what real silicon does on the read cycle.
func newTestMap() *hw.MemMap {
	m := hw.NewMemMap(barSize)
	m.SetClearOnRead(func(offset uint) bool {
		for _, p := range bar0 {
			if p.Start <= offset && offset < p.End() {
				if f := p.FieldAt(offset); f != nil {
					return f.Kind == regmap.ReadClear
				}
				return false
			}
		}
		return false
	})
	return m
}

func allReadOnly() *Config {
	cfg := &Config{}
	for _, p := range bar0 {
		cfg.ReadOnly = append(cfg.ReadOnly, p.Name)
	}
	return cfg
}

func TestAttachOwnership(t *testing.T) {
	m := newTestMap()
	id := t.Name()

	d1, err := Attach(id, m, nil)
	require.NoError(t, err)

	_, err = Attach(id, m, nil)
	require.Error(t, err, "second writable attach of the same device")

	ro, err := Attach(id, m, allReadOnly())
	require.NoError(t, err, "read-only attaches are unrestricted")
	require.NoError(t, ro.Detach())

	other, err := Attach(id+"/other", m, nil)
	require.NoError(t, err, "different device identity")
	require.NoError(t, other.Detach())

	require.NoError(t, d1.Detach())
	d2, err := Attach(id, m, nil)
	require.NoError(t, err, "detach releases ownership")
	require.NoError(t, d2.Detach())
}

func TestPartialAttach(t *testing.T) {
	m := newTestMap()
	d, err := Attach(t.Name(), m, &Config{Partitions: []string{"stats", "interrupt"}})
	require.NoError(t, err)
	defer d.Detach()

	// Partition writable by someone else stays attachable here.
	other, err := Attach(t.Name(), m, &Config{Partitions: []string{"general"}})
	require.NoError(t, err, "disjoint partitions of one device")
	defer other.Detach()

	_, err = d.View("general")
	assert.Error(t, err, "unattached partition has no view")

	assert.Panics(t, func() { d.load32(0x0) }, "raw access outside attached partitions")

	v, err := d.View("interrupt")
	require.NoError(t, err)
	require.NoError(t, v.Store("control", 1<<4))
	assert.Equal(t, uint32(1<<4), m.Peek32(0x898))
}

func TestDetachInvalidates(t *testing.T) {
	m := newTestMap()
	d, err := Attach(t.Name(), m, nil)
	require.NoError(t, err)

	v, err := d.View("rx_control")
	require.NoError(t, err)
	require.NoError(t, v.Store("rx_enable", 1))

	require.NoError(t, d.Detach())
	assert.Error(t, d.Detach(), "double detach")

	assert.Panics(t, func() { v.Load("rx_enable") }, "view after detach")
	assert.Panics(t, func() {
		d.get_regs().rx_control.rx_enable.get(d)
	}, "typed access after detach")
}

func TestTypedOverlayAccess(t *testing.T) {
	m := newTestMap()
	d, err := Attach(t.Name(), m, nil)
	require.NoError(t, err)
	defer d.Detach()
	r := d.get_regs()

	r.rx_control.rx_enable.set(d, 1)
	assert.Equal(t, uint32(1), m.Peek32(0x3000))

	m.Poke32(0x8, 1<<19)
	assert.Equal(t, uint32(1<<19), r.general.status.get(d))

	r.interrupt.control.or(d, 1<<4)
	r.interrupt.control.or(d, 1<<5)
	assert.Equal(t, uint32(3<<4), m.Peek32(0x898))
	r.interrupt.control.andnot(d, 1<<4)
	assert.Equal(t, uint32(1<<5), m.Peek32(0x898))

	// Write-only cells reach memory at the declared offset.
	r.interrupt.status_write_1_to_set.set(d, 1<<16)
	assert.Equal(t, uint32(1<<16), m.Peek32(0x808))
}

func TestEthernetAddressEntry(t *testing.T) {
	m := newTestMap()
	d, err := Attach(t.Name(), m, nil)
	require.NoError(t, err)
	defer d.Detach()
	r := d.get_regs()

	e := ethernet_address_entry{
		valid:   true,
		address: [6]byte{0x02, 0x46, 0x8a, 0xce, 0x13, 0x57},
	}
	r.rx_filter.rx_ethernet_address0[3].set(d, &e)
	assert.Equal(t, uint32(0xce8a4602), m.Peek32(0x5400+3*8))
	assert.Equal(t, uint32(1<<31|0x5713), m.Peek32(0x5400+3*8+4))

	var got ethernet_address_entry
	r.rx_filter.rx_ethernet_address0[3].get(d, &got)
	assert.Equal(t, e, got)

	tag := ethernet_address_entry{valid: true, is_etag: true, etag: 0xbeef}
	r.filter_ram.rx_ethernet_address1[9].set(d, &tag)
	var got2 ethernet_address_entry
	r.filter_ram.rx_ethernet_address1[9].get(d, &got2)
	assert.Equal(t, tag, got2)
}

func TestQueueRegs(t *testing.T) {
	m := newTestMap()
	d, err := Attach(t.Name(), m, nil)
	require.NoError(t, err)
	defer d.Detach()

	// Datasheet maxima before SetNumQueues.
	assert.Equal(t, uint(128), d.NumRxQueues())
	assert.Equal(t, uint(128), d.NumTxQueues())

	qr, err := d.rx_dma_regs(70)
	require.NoError(t, err, "high rx queues live in the second bank")
	qr.tail_index.set(d, 9)
	assert.Equal(t, uint32(9), m.Peek32(0xd000+6*0x40+0x18))

	off, err := d.RxQueueOffset(70)
	require.NoError(t, err)
	assert.Equal(t, uint(0xd000+6*0x40), off)

	tr, err := d.tx_dma_regs(127)
	require.NoError(t, err)
	tr.descriptor_address.set(d, 0x1_2345_6780)
	assert.Equal(t, uint32(0x23456780), m.Peek32(0x6000+127*0x40))
	assert.Equal(t, uint32(1), m.Peek32(0x6000+127*0x40+4))
	assert.Equal(t, uint64(0x1_2345_6780), tr.descriptor_address.get(d))

	require.NoError(t, d.SetNumQueues(16, 8))
	assert.Equal(t, uint(16), d.NumRxQueues())
	assert.Equal(t, uint(8), d.NumTxQueues())

	var ie *regmap.IndexError
	_, err = d.rx_dma_regs(16)
	require.ErrorAs(t, err, &ie)
	_, err = d.RxQueueOffset(70)
	require.ErrorAs(t, err, &ie)
	_, err = d.tx_dma_regs(8)
	require.ErrorAs(t, err, &ie)
	_, err = d.TxQueueOffset(-1)
	require.ErrorAs(t, err, &ie)

	off, err = d.RxQueueOffset(15)
	require.NoError(t, err)
	assert.Equal(t, uint(0x1000+15*0x40), off)

	require.Error(t, d.SetNumQueues(129, 8), "over datasheet maximum")
}

func TestSetNumVFs(t *testing.T) {
	m := newTestMap()
	d, err := Attach(t.Name(), m, nil)
	require.NoError(t, err)
	defer d.Detach()

	v, err := d.View("tx_control")
	require.NoError(t, err)

	var ue *regmap.UnresolvedExtentError
	_, err = v.LoadIndex("pf_mailbox", 0)
	require.ErrorAs(t, err, &ue, "mailbox bound unknown before VF discovery")

	require.NoError(t, d.SetNumVFs(8))
	require.NoError(t, v.StoreIndex("pf_mailbox", 7, 0x11))
	assert.Equal(t, uint32(0x11), m.Peek32(0x4b00+7*4))

	var ie *regmap.IndexError
	_, err = v.LoadIndex("pf_mailbox", 8)
	require.ErrorAs(t, err, &ie, "beyond the discovered VF count")

	// All VF bounded extents resolve together.
	sv, err := d.View("security")
	require.NoError(t, err)
	require.NoError(t, sv.StoreIndex("pf_vm_vlan_insert", 7, 1))
	ev, err := d.View("extended")
	require.NoError(t, err)
	require.NoError(t, ev.StoreIndex("pf_vm_tag_insert", 7, 1))

	require.Error(t, d.SetNumVFs(65), "over the 64 VF reservation")

	// Another device keeps its own resolution.
	d2, err := Attach(t.Name()+"/other", m, allReadOnly())
	require.NoError(t, err)
	defer d2.Detach()
	v2, err := d2.View("tx_control")
	require.NoError(t, err)
	_, err = v2.LoadIndex("pf_mailbox", 0)
	require.ErrorAs(t, err, &ue)
}

func TestCounters(t *testing.T) {
	m := newTestMap()
	d, err := Attach(t.Name(), m, nil)
	require.NoError(t, err)
	defer d.Detach()

	m.Poke32(0x4000, 3) // rx_crc_errors
	d.PollCounters()
	got, err := d.Counter("rx_crc_errors")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), got)
	assert.Equal(t, uint32(0), m.Peek32(0x4000), "hardware counter cleared by poll")

	m.Poke32(0x4000, 5)
	d.PollCounters()
	got, _ = d.Counter("rx_crc_errors")
	assert.Equal(t, uint64(8), got, "polls accumulate")

	// 64 bit counters are a lo/hi register pair.
	m.Poke32(0x4090, 1)
	m.Poke32(0x4094, 2)
	d.PollCounters()
	got, err = d.Counter("tx_good_bytes")
	require.NoError(t, err)
	assert.Equal(t, uint64(2<<32|1), got)

	_, err = d.Counter("no_such_counter")
	assert.Error(t, err)

	names := CounterNames()
	assert.Contains(t, names, "rx_crc_errors")
	assert.Contains(t, names, "tx_queue31_bytes")

	sum := 0
	d.ForeachCounter(func(name string, v uint64) { sum++ })
	assert.Equal(t, len(names), sum)

	d.ClearCounters()
	got, _ = d.Counter("rx_crc_errors")
	assert.Equal(t, uint64(0), got)
}

func TestCountersPartialAttach(t *testing.T) {
	m := newTestMap()
	d, err := Attach(t.Name(), m, &Config{Partitions: []string{"stats"}})
	require.NoError(t, err)
	defer d.Detach()

	m.Poke32(0x4004, 2)
	assert.NotPanics(t, func() { d.PollCounters() }, "skips unattached partitions")
	got, err := d.Counter("rx_illegal_symbol_errors")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got)
	got, _ = d.Counter("rx_dma_good_packets")
	assert.Equal(t, uint64(0), got, "rx_control not attached, not polled")
}

func TestViewKindEnforcementOnRealLayout(t *testing.T) {
	m := newTestMap()
	d, err := Attach(t.Name(), m, nil)
	require.NoError(t, err)
	defer d.Detach()

	var ae *regmap.AccessError

	iv, err := d.View("interrupt")
	require.NoError(t, err)
	_, err = iv.Load("status_write_1_to_set")
	require.ErrorAs(t, err, &ae, "write-only register")

	mv, err := d.View("mac")
	require.NoError(t, err)
	require.ErrorAs(t, mv.Store("xge.link_status", 1), &ae, "read-only register")

	gv, err := d.View("general")
	require.NoError(t, err)
	_, err = gv.Load("core_spare")
	require.ErrorAs(t, err, &ae, "reserved register")
	require.ErrorAs(t, gv.Store("core_spare", 0), &ae)

	// Alias loads go through like the canonical name.
	rv, err := d.View("rx_control")
	require.NoError(t, err)
	require.NoError(t, rv.StoreIndex("flow_control_tx_timers", 1, 0x77))
	got, err := rv.LoadIndex("vf_redirection_table", 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x77), got)
}
