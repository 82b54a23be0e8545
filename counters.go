// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xge

import "fmt"

// Hardware statistics counters clear on read, so every read must be
// folded into a software accumulator; there is no way to peek.  64
// bit counters are two 32 bit registers read low word first.
type counter struct {
	offset   uint
	name     string
	is_64bit bool
}

var devCounters = []counter{
	{0x241c, "fcoe_rx_packets_dropped", false},

	{0x2f50, "rx_dma_good_packets", false},
	{0x2f54, "rx_dma_good_bytes", true},
	{0x2f5c, "rx_dma_duplicated_good_packets", false},
	{0x2f60, "rx_dma_duplicated_good_bytes", true},
	{0x2f68, "rx_dma_good_loopback_packets", false},
	{0x2f6c, "rx_dma_good_loopback_bytes", true},
	{0x2f74, "rx_dma_good_duplicated_loopback_packets", false},
	{0x2f78, "rx_dma_good_duplicated_loopback_bytes", true},

	{0x4000, "rx_crc_errors", false},
	{0x4004, "rx_illegal_symbol_errors", false},
	{0x4008, "rx_error_symbol_errors", false},
	{0x4010, "tx_undersize_drops", false},
	{0x4034, "rx_mac_local_faults", false},
	{0x4038, "rx_mac_remote_faults", false},
	{0x4040, "rx_length_errors", false},
	{0x405c, "rx_64_byte_packets", false},
	{0x4060, "rx_65_127_byte_packets", false},
	{0x4064, "rx_128_255_byte_packets", false},
	{0x4068, "rx_256_511_byte_packets", false},
	{0x406c, "rx_512_1023_byte_packets", false},
	{0x4070, "rx_gt_1023_byte_packets", false},
	{0x4074, "rx_post_filter_good_packets", false},
	{0x4078, "rx_broadcast_packets", false},
	{0x407c, "rx_multicast_packets", false},
	{0x4080, "tx_good_packets", false},
	{0x4088, "rx_post_filter_good_bytes", true},
	{0x4090, "tx_good_bytes", true},
	{0x40a4, "rx_undersize_packets", false},
	{0x40a8, "rx_fragments", false},
	{0x40ac, "rx_oversize_packets", false},
	{0x40b0, "rx_jabbers", false},
	{0x40b4, "rx_management_packets", false},
	{0x40b8, "rx_management_drops", false},
	{0x40c0, "rx_bytes", true},
	{0x40d0, "rx_packets", false},
	{0x40d4, "tx_packets", false},
	{0x40d8, "tx_64_byte_packets", false},
	{0x40dc, "tx_65_127_byte_packets", false},
	{0x40e0, "tx_128_255_byte_packets", false},
	{0x40e4, "tx_256_511_byte_packets", false},
	{0x40e8, "tx_512_1023_byte_packets", false},
	{0x40ec, "tx_gt_1023_byte_packets", false},
	{0x40f0, "tx_multicast_packets", false},
	{0x40f4, "tx_broadcast_packets", false},
	{0x4120, "rx_ip4_tcp_udp_checksum_errors", false},
	{0x41a4, "rx_xons", false},
	{0x41a8, "rx_xoffs", false},
	{0x41b0, "rx_pre_filter_good_packets", false},
	{0x41b4, "rx_pre_filter_good_bytes", true},

	{0xee50, "flow_director_usage_stats", false},
	{0xee54, "flow_director_failed_usage_stats", false},
	{0xee58, "flow_director_filters_match_stats", false},
	{0xee5c, "flow_director_filters_miss_stats", false},
}

func init() {
	for i := uint(0); i < 8; i++ {
		devCounters = append(devCounters,
			counter{0x3fa0 + 4*i, fmt.Sprintf("rx_missed_packets_buffer%d", i), false},
			counter{0x4140 + 4*i, fmt.Sprintf("rx_priority%d_xon", i), false},
			counter{0x4160 + 4*i, fmt.Sprintf("rx_priority%d_xoff", i), false})
	}
	for q := uint(0); q < 32; q++ {
		devCounters = append(devCounters,
			counter{0x8680 + 4*q, fmt.Sprintf("tx_queue%d_packets", q), false},
			counter{0x8700 + 8*q, fmt.Sprintf("tx_queue%d_bytes", q), true})
	}
}

// CounterNames lists the accumulated counters in table order.
func CounterNames() []string {
	names := make([]string, len(devCounters))
	for i := range devCounters {
		names[i] = devCounters[i].name
	}
	return names
}

func (c *counter) read(d *Dev) (v uint64) {
	v = uint64(d.load32(c.offset))
	if c.is_64bit {
		v |= uint64(d.load32(c.offset+4)) << 32
	}
	return
}

// PollCounters reads every hardware counter, zeroing them, and folds
// the values into the software accumulators.  Call often enough that
// 32 bit packet counters cannot wrap between polls.
func (d *Dev) PollCounters() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.counts == nil {
		d.counts = make([]uint64, len(devCounters))
	}
	for i := range devCounters {
		if d.attachedAt(devCounters[i].offset) {
			d.counts[i] += devCounters[i].read(d)
		}
	}
}

// ForeachCounter visits accumulated values in table order.
func (d *Dev) ForeachCounter(f func(name string, value uint64)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range devCounters {
		var v uint64
		if d.counts != nil {
			v = d.counts[i]
		}
		f(devCounters[i].name, v)
	}
}

// Counter returns one accumulated value by name.
func (d *Dev) Counter(name string) (v uint64, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range devCounters {
		if devCounters[i].name == name {
			if d.counts != nil {
				v = d.counts[i]
			}
			return
		}
	}
	err = fmt.Errorf("%s: no such counter %s", d.id, name)
	return
}

// ClearCounters discards hardware and accumulated counts.
func (d *Dev) ClearCounters() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range devCounters {
		if d.attachedAt(devCounters[i].offset) {
			devCounters[i].read(d)
		}
	}
	d.counts = nil
}
