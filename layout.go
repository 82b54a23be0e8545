// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xge

import (
	"github.com/platinasystems/xge/regmap"
)

// Declarative BAR0 layout.  Field names are the dotted paths of the
// overlay struct in regs.go; layout_test.go walks the struct with
// reflect and fails if the two renditions of the datasheet ever
// disagree.  Offsets are absolute, gaps between fields are reserved.

func reg32(k regmap.Kind, name string, offset, extent uint) regmap.Field {
	return regmap.Field{Name: name, Offset: offset, Width: 4, Kind: k, Extent: extent}
}

func rw(name string, offset uint) regmap.Field   { return reg32(regmap.ReadWrite, name, offset, 1) }
func ro(name string, offset uint) regmap.Field   { return reg32(regmap.ReadOnly, name, offset, 1) }
func wo(name string, offset uint) regmap.Field   { return reg32(regmap.WriteOnly, name, offset, 1) }
func rc(name string, offset uint) regmap.Field   { return reg32(regmap.ReadClear, name, offset, 1) }
func rsvd(name string, offset uint) regmap.Field { return reg32(regmap.Reserved, name, offset, 1) }

func rwN(name string, offset, n uint) regmap.Field { return reg32(regmap.ReadWrite, name, offset, n) }
func roN(name string, offset, n uint) regmap.Field { return reg32(regmap.ReadOnly, name, offset, n) }
func woN(name string, offset, n uint) regmap.Field { return reg32(regmap.WriteOnly, name, offset, n) }
func rcN(name string, offset, n uint) regmap.Field { return reg32(regmap.ReadClear, name, offset, n) }

// dyn marks an extent resolved at runtime (VF count).
func dyn(f regmap.Field) regmap.Field { f.Dynamic = true; return f }

// alias declares a documented same-offset register synonym.
func alias(of string, f regmap.Field) regmap.Field { f.AliasOf = of; return f }

var generalPartition = &regmap.Partition{
	Name: "general", Start: 0x0000, Size: 0x0800, ReservedTail: true,
	Fields: []regmap.Field{
		rw("control", 0x0),
		rw("control_alias", 0x4),
		ro("status", 0x8),
		ro("vf_link_status", 0x10),
		rw("extended_control", 0x18),
		rw("sdp_control", 0x20),
		rw("i2c_control", 0x28),
		rw("tcp_timer", 0x4c),
		rw("vf.interrupt_status_write_1_to_clear", 0x100),
		wo("vf.interrupt_status_write_1_to_set", 0x104),
		rw("vf.interrupt_enable_write_1_to_set", 0x108),
		wo("vf.interrupt_enable_write_1_to_clear", 0x10c),
		rw("vf.interrupt_status_auto_clear_enable", 0x114),
		rwN("vf.interrupt_vector_allocation", 0x120, 4),
		rw("vf.interrupt_vector_allocation_misc", 0x140),
		rw("vf.msi_x_pba_clear", 0x148),
		rwN("vf.rsc_enable", 0x180, 4),
		rwN("vf.mailbox_mem", 0x200, 16),
		rw("vf.mailbox_status", 0x2fc),
		rw("vf.replication_packet_split_receive_type", 0x300),
		rsvd("core_spare", 0x600),
		rwN("pf.vflr_events_clear_write_1_to_clear", 0x700, 2),
		rwN("pf.mailbox_interrupt_status_write_1_to_clear", 0x710, 4),
		rwN("pf.mailbox_interrupt_disable", 0x720, 2),
	},
}

var interruptPartition = &regmap.Partition{
	Name: "interrupt", Start: 0x0800, Size: 0x0800, ReservedTail: true,
	Fields: []regmap.Field{
		rw("status_write_1_to_clear", 0x800),
		wo("status_write_1_to_set", 0x808),
		rw("status_auto_clear_enable", 0x810),
		rwN("throttle0", 0x820, 24),
		rw("enable_write_1_to_set", 0x880),
		wo("enable_write_1_to_clear", 0x888),
		rw("enable_auto_clear", 0x890),
		rw("msi_to_eitr_select", 0x894),
		rw("control", 0x898),
		rwN("queue_mapping", 0x900, 64),
		rw("misc_mapping", 0xa00),
		rwN("status1_write_1_to_clear", 0xa90, 4),
		rwN("enable1_write_1_to_set", 0xaa0, 4),
		woN("enable1_write_1_to_clear", 0xab0, 4),
		rwN("status1_enable_auto_clear", 0xad0, 4),
	},
}

// One rx or tx DMA queue register group; offsets element relative.
var dmaCommonFields = []regmap.Field{
	rwN("descriptor_address", 0x00, 2),
	rw("n_descriptor_bytes", 0x08),
	rw("dca_control", 0x0c),
	ro("head_index", 0x10),
	rw("rx_split_control", 0x14),
	rw("tail_index", 0x18),
	rcN("vf_stats", 0x1c, 3),
	rw("control", 0x28),
	rw("rx_coallesce_control", 0x2c),
}

var rxDMAElem = &regmap.Partition{
	Name: "rx_dma_queue", Start: 0, Size: 0x40, ReservedTail: true,
	Fields: append(append([]regmap.Field{}, dmaCommonFields...),
		rcN("stats", 0x30, 3),
	),
}

var txDMAElem = &regmap.Partition{
	Name: "tx_dma_queue", Start: 0, Size: 0x40,
	Fields: append(append([]regmap.Field{}, dmaCommonFields...),
		rwN("head_index_write_back_address", 0x38, 2),
	),
}

// Queue banks.  The covering partitions below reserve the space in the
// address map; the banks do the per-queue stride arithmetic.
var (
	rxDMA0Bank = &regmap.Bank{Name: "rx_dma0", Base: 0x1000, ElemSize: 0x40, MaxCount: 64, Elem: rxDMAElem}
	txDMABank  = &regmap.Bank{Name: "tx_dma", Base: 0x6000, ElemSize: 0x40, MaxCount: 128, Elem: txDMAElem}
	rxDMA1Bank = &regmap.Bank{Name: "rx_dma1", Base: 0xd000, ElemSize: 0x40, MaxCount: 64, Elem: rxDMAElem}
)

var rxDMA0Partition = &regmap.Partition{
	Name: "rx_dma0", Start: 0x1000, Size: 0x1000, ReservedTail: true,
}

var rxControlPartition = &regmap.Partition{
	Name: "rx_control", Start: 0x2000, Size: 0x2000, ReservedTail: true,
	Fields: []regmap.Field{
		rwN("dcb_rx_packet_plane_t4_config", 0x2140, 8),
		roN("dcb_rx_packet_plane_t4_status", 0x2160, 8),
		rwN("rx_queue_stats_mapping", 0x2300, 32),
		rw("rx_queue_stats_control", 0x2380),
		rwN("fc_user_descriptor_ptr", 0x2410, 2),
		rw("fc_buffer_control", 0x2418),
		rc("fcoe_rx_packets_dropped", 0x241c),
		rw("fc_rx_dma", 0x2420),
		rw("dcb_packet_plane_control", 0x2430),
		rw("rx_dma_control", 0x2f00),
		rw("pf_queue_drop_enable", 0x2f04),
		rw("rx_dma_descriptor_cache_config", 0x2f20),
		rw("rx_dma_stats_control", 0x2f40),
		rc("rx_dma_good_packets", 0x2f50),
		rcN("rx_dma_good_bytes", 0x2f54, 2),
		rc("rx_dma_duplicated_good_packets", 0x2f5c),
		rcN("rx_dma_duplicated_good_bytes", 0x2f60, 2),
		rc("rx_dma_good_loopback_packets", 0x2f68),
		rcN("rx_dma_good_loopback_bytes", 0x2f6c, 2),
		rc("rx_dma_good_duplicated_loopback_packets", 0x2f74),
		rcN("rx_dma_good_duplicated_loopback_bytes", 0x2f78, 2),
		ro("pf_rx_last_malicious_vm", 0x2fa4),
		ro("pf_rx_last_vm_misbehavior_cause", 0x2fa8),
		rwN("pf_rx_wrong_queue_behavior", 0x2fb0, 4),
		rw("rx_enable", 0x3000),
		rw("flow_control_control", 0x3008),
		rw("rx_priority_to_traffic_class", 0x3020),
		rw("rx_coallesce_data_buffer_control", 0x3028),
		rwN("vf_rss_random_key", 0x3100, 10),
		ro("rx_packet_buffer_flush_detect", 0x3190),
		rwN("flow_control_tx_timers", 0x3200, 4),
		alias("flow_control_tx_timers", rwN("vf_redirection_table", 0x3200, 4)),
		rwN("flow_control_rx_threshold_lo", 0x3220, 8),
		rwN("flow_control_rx_threshold_hi", 0x3260, 8),
		rw("flow_control_refresh_threshold", 0x32a0),
		rwN("rx_packet_buffer_size", 0x3c00, 8),
		rw("flow_control_config", 0x3d00),
		rcN("rx_missed_packets", 0x3fa0, 8),
	},
}

var statsPartition = &regmap.Partition{
	Name: "stats", Start: 0x4000, Size: 0x0200, ReservedTail: true,
	Fields: []regmap.Field{
		rc("rx_crc_errors", 0x4000),
		rc("rx_illegal_symbol_errors", 0x4004),
		rc("rx_error_symbol_errors", 0x4008),
		rc("tx_undersize_drops", 0x4010),
		rc("rx_mac_local_faults", 0x4034),
		rc("rx_mac_remote_faults", 0x4038),
		rc("rx_length_errors", 0x4040),
		rc("rx_64_byte_packets", 0x405c),
		rc("rx_65_127_byte_packets", 0x4060),
		rc("rx_128_255_byte_packets", 0x4064),
		rc("rx_256_511_byte_packets", 0x4068),
		rc("rx_512_1023_byte_packets", 0x406c),
		rc("rx_gt_1023_byte_packets", 0x4070),
		rc("rx_post_filter_good_packets", 0x4074),
		rc("rx_broadcast_packets", 0x4078),
		rc("rx_multicast_packets", 0x407c),
		rc("tx_good_packets", 0x4080),
		rcN("rx_post_filter_good_bytes", 0x4088, 2),
		rcN("tx_good_bytes", 0x4090, 2),
		rc("rx_undersize_packets", 0x40a4),
		rc("rx_fragments", 0x40a8),
		rc("rx_oversize_packets", 0x40ac),
		rc("rx_jabbers", 0x40b0),
		rc("rx_management_packets", 0x40b4),
		rc("rx_management_drops", 0x40b8),
		rcN("rx_bytes", 0x40c0, 2),
		rc("rx_packets", 0x40d0),
		rc("tx_packets", 0x40d4),
		rc("tx_64_byte_packets", 0x40d8),
		rc("tx_65_127_byte_packets", 0x40dc),
		rc("tx_128_255_byte_packets", 0x40e0),
		rc("tx_256_511_byte_packets", 0x40e4),
		rc("tx_512_1023_byte_packets", 0x40e8),
		rc("tx_gt_1023_byte_packets", 0x40ec),
		rc("tx_multicast_packets", 0x40f0),
		rc("tx_broadcast_packets", 0x40f4),
		rc("rx_ip4_tcp_udp_checksum_errors", 0x4120),
		rcN("rx_priority_xon", 0x4140, 8),
		rcN("rx_priority_xoff", 0x4160, 8),
		rc("rx_xons", 0x41a4),
		rc("rx_xoffs", 0x41a8),
		rc("rx_pre_filter_good_packets", 0x41b0),
		rcN("rx_pre_filter_good_bytes", 0x41b4, 2),
	},
}

var macPartition = &regmap.Partition{
	Name: "mac", Start: 0x4200, Size: 0x0700, ReservedTail: true,
	Fields: []regmap.Field{
		rw("ge.pcs_config", 0x4200),
		rw("ge.link_control", 0x4208),
		ro("ge.link_status", 0x420c),
		rwN("ge.pcs_debug", 0x4210, 2),
		rw("ge.auto_negotiation", 0x4218),
		ro("ge.link_partner_ability", 0x421c),
		rw("ge.auto_negotiation_tx_next_page", 0x4220),
		ro("ge.auto_negotiation_link_partner_next_page", 0x4224),
		rw("xge.control", 0x4240),
		ro("xge.status", 0x4244),
		rw("xge.pause_and_pace_control", 0x4248),
		rw("xge.phy_command", 0x425c),
		rw("xge.phy_data", 0x4260),
		rw("xge.rx_max_frame_size", 0x4268),
		roN("xge.xgxs_status", 0x4288, 2),
		ro("xge.base_x_pcs_status", 0x4290),
		rw("xge.flow_control", 0x4294),
		rw("xge.serdes_control", 0x4298),
		rw("xge.fifo_control", 0x429c),
		rw("xge.auto_negotiation_control", 0x42a0),
		ro("xge.link_status", 0x42a4),
		rw("xge.auto_negotiation_control2", 0x42a8),
		roN("xge.link_partner_ability", 0x42b0, 2),
		rw("xge.manageability_control", 0x42d0),
		roN("xge.link_partner_next_page", 0x42d4, 2),
		rw("xge.kr_pcs_control", 0x42e0),
		ro("xge.kr_pcs_status", 0x42e4),
		roN("xge.fec_status", 0x42e8, 2),
		rw("xge.sgmii_control", 0x4314),
		rw("xge.priority_flow_control_type", 0x431c),
		ro("xge.link_status2", 0x4324),
		rw("xge.mac_control", 0x4330),
	},
}

var txControlPartition = &regmap.Partition{
	Name: "tx_control", Start: 0x4900, Size: 0x0700, ReservedTail: true,
	Fields: []regmap.Field{
		rw("tx_dcb_control", 0x4900),
		rw("tx_dcb_descriptor_plane_queue_select", 0x4904),
		rw("tx_dcb_descriptor_plane_t1_config", 0x4908),
		ro("tx_dcb_descriptor_plane_t1_status", 0x490c),
		rwN("tx_packet_buffer_thresholds", 0x4950, 8),
		rw("dcb_tx_rate_scheduler.mmw", 0x4980),
		rw("dcb_tx_rate_scheduler.config", 0x4984),
		ro("dcb_tx_rate_scheduler.status", 0x4988),
		rw("dcb_tx_rate_scheduler.rate_drift", 0x498c),
		rw("tx_dma_control", 0x4a80),
		rwN("tx_dma_tcp_flags_control", 0x4a88, 2),
		dyn(rwN("pf_mailbox", 0x4b00, 64)),
	},
}

var rxFilterPartition = &regmap.Partition{
	Name: "rx_filter", Start: 0x5000, Size: 0x1000, ReservedTail: true,
	Fields: []regmap.Field{
		rw("checksum_control", 0x5000),
		rw("rx_filter_control", 0x5008),
		rwN("management_vlan_tag", 0x5010, 8),
		rwN("management_udp_tcp_ports", 0x5030, 8),
		rw("extended_vlan_ether_type", 0x5078),
		rw("filter_control", 0x5080),
		rw("vlan_control", 0x5088),
		rw("multicast_control", 0x5090),
		rcN("pf_filter_packets", 0x50b0, 2),
		rw("fcoe_rx_control", 0x5100),
		rw("fc_flt_context", 0x5108),
		wo("fc_filter_control", 0x5110),
		rw("rx_message_type_lo", 0x5120),
		rwN("ethernet_type_queue_filter", 0x5128, 8),
		rwN("management_decision_filters1", 0x5160, 8),
		rwN("vf_vm_tx_switch_loopback_enable", 0x5180, 2),
		rw("rx_time_sync_control", 0x5188),
		rwN("management_ethernet_type_filters", 0x5190, 4),
		ro("rx_timestamp_attributes_lo", 0x51a0),
		ro("rx_timestamp_hi", 0x51a4),
		ro("rx_timestamp_attributes_hi", 0x51a8),
		rw("pf_virtual_control", 0x51b0),
		rw("fc_offset_parameter", 0x51d8),
		rwN("pf_vf_rx_enable", 0x51e0, 2),
		ro("rx_timestamp_lo", 0x51e8),
		rwN("multicast_enable", 0x5200, 128),
		rwN("rx_ethernet_address0", 0x5400, 32),
		rw("wake_up_control", 0x5800),
		rw("wake_up_filter_control", 0x5808),
		rw("multiple_rx_queue_command_82598", 0x5818),
		rw("management_control", 0x5820),
		rw("management_filter_control", 0x5824),
		rw("wake_up_ip4_address_valid", 0x5838),
		rwN("wake_up_ip4_address_table", 0x5840, 4),
		rw("management_control_to_host", 0x5850),
		rwN("wake_up_ip6_address_table", 0x5880, 4),
		rwN("management_decision_filters", 0x5890, 8),
		rwN("management_ip4_or_ip6_address_filters", 0x58b0, 16),
		ro("wake_up_packet_length", 0x5900),
		rwN("management_ethernet_address_filters", 0x5910, 8),
		roN("wake_up_packet_memory", 0x5a00, 32),
		rwN("redirection_table_82598", 0x5c00, 32),
		rwN("rss_random_keys_82598", 0x5c80, 10),
	},
}

var txDMAPartition = &regmap.Partition{
	Name: "tx_dma", Start: 0x6000, Size: 0x2000, ReservedTail: true,
}

var securityPartition = &regmap.Partition{
	Name: "security", Start: 0x8000, Size: 0x1000, ReservedTail: true,
	Fields: []regmap.Field{
		dyn(rwN("pf_vm_vlan_insert", 0x8000, 64)),
		rw("tx_dma_tcp_max_alloc_size_requests", 0x8100),
		ro("pf_tx_last_malicious_vm", 0x8104),
		rwN("vf_tx_enable", 0x8110, 2),
		rw("multiple_tx_queues_command", 0x8120),
		ro("pf_tx_last_vm_misbehavior_cause", 0x8124),
		rwN("pf_tx_wrong_queue_behavior", 0x8130, 4),
		rwN("pf_vf_anti_spoof", 0x8200, 8),
		rw("pf_dma_tx_switch_control", 0x8220),
		rwN("tx_strict_low_latency_queues", 0x82e0, 4),
		rwN("tx_queue_stats_mapping", 0x8600, 32),
		rcN("tx_queue_packet_counts", 0x8680, 32),
		rcN("tx_queue_byte_counts", 0x8700, 64),
		rw("tx_security.control", 0x8800),
		ro("tx_security.status", 0x8804),
		rw("tx_security.buffer_almost_full", 0x8808),
		rw("tx_security.buffer_min_ifg", 0x8810),
		rw("tx_ipsec.index", 0x8900),
		rw("tx_ipsec.salt", 0x8904),
		woN("tx_ipsec.key", 0x8908, 4),
		ro("tx_link_security.capabilities", 0x8a00),
		rw("tx_link_security.control", 0x8a04),
		rwN("tx_link_security.sci", 0x8a08, 2),
		rw("tx_link_security.sa", 0x8a10),
		rwN("tx_link_security.sa_pn", 0x8a14, 2),
		woN("tx_link_security.key", 0x8a1c, 8),
		roN("tx_link_security.stats", 0x8a3c, 5),
		rw("tx_timesync.control", 0x8c00),
		roN("tx_timesync.timestamp_value", 0x8c04, 2),
		rwN("tx_timesync.system_time", 0x8c0c, 2),
		rw("tx_timesync.increment_attributes", 0x8c14),
		rwN("tx_timesync.time_adjustment_offset", 0x8c18, 2),
		rw("tx_timesync.aux_control", 0x8c20),
		rwN("tx_timesync.target_time", 0x8c24, 4),
		roN("tx_timesync.aux_time_stamp", 0x8c3c, 4),
		rw("rx_security.control", 0x8d00),
		ro("rx_security.status", 0x8d04),
		rw("rx_ipsec.index", 0x8e00),
		rwN("rx_ipsec.ip_address", 0x8e04, 4),
		rw("rx_ipsec.spi", 0x8e14),
		rw("rx_ipsec.ip_index", 0x8e18),
		woN("rx_ipsec.key", 0x8e1c, 4),
		rw("rx_ipsec.salt", 0x8e2c),
		rw("rx_ipsec.mode", 0x8e30),
		ro("rx_link_security.capabilities", 0x8f00),
		rw("rx_link_security.control", 0x8f04),
		rwN("rx_link_security.sci", 0x8f08, 2),
		rwN("rx_link_security.sa", 0x8f10, 2),
		rwN("rx_link_security.sa_pn", 0x8f18, 2),
		woN("rx_link_security.key", 0x8f20, 8),
		roN("rx_link_security.stats", 0x8f40, 17),
	},
}

var filterRAMPartition = &regmap.Partition{
	Name: "filter_ram", Start: 0x9000, Size: 0x4000, ReservedTail: true,
	Fields: []regmap.Field{
		rwN("flexible_filters", 0x9000, 8*16*4),
		rwN("vlan_filter", 0xa000, 128),
		rwN("rx_ethernet_address1", 0xa200, 2*128),
		rwN("rx_ethernet_address_pool_select", 0xa600, 2*128),
		rw("tx_priority_to_traffic_class", 0xc800),
		rwN("tx_packet_buffer_size", 0xcc00, 8),
		rw("tx_manageability_tc_mapping", 0xcd10),
		rwN("dcb_tx_packet_plane_t2_config", 0xcd20, 8),
		roN("dcb_tx_packet_plane_t2_status", 0xcd40, 8),
		ro("tx_flow_control_status", 0xce00),
	},
}

var rxDMA1Partition = &regmap.Partition{
	Name: "rx_dma1", Start: 0xd000, Size: 0x1000, ReservedTail: true,
}

var classifyPartition = &regmap.Partition{
	Name: "classify", Start: 0xe000, Size: 0x2000, ReservedTail: true,
	Fields: []regmap.Field{
		rwN("ip4_filters.src_address", 0xe000, 128),
		rwN("ip4_filters.dst_address", 0xe200, 128),
		rwN("ip4_filters.tcp_udp_port", 0xe400, 128),
		rwN("ip4_filters.control", 0xe600, 128),
		rwN("ip4_filters.interrupt", 0xe800, 128),
		rwN("redirection_table", 0xeb00, 32),
		rwN("rss_random_key", 0xeb80, 10),
		rwN("ethernet_type_queue_select", 0xec00, 8),
		rw("syn_packet_queue_filter", 0xec30),
		rw("immediate_interrupt_rx_vlan_priority", 0xec60),
		rw("rss_queues_per_traffic_class", 0xec70),
		rw("lli_size_threshold", 0xec90),
		rw("fcoe_redirection.control", 0xed00),
		rwN("fcoe_redirection.table", 0xed10, 8),
		rw("flow_director.control", 0xee00),
		rwN("flow_director.data", 0xee0c, 8),
		rw("flow_director.command", 0xee2c),
		rwN("flow_director.ip4_masks", 0xee3c, 4),
		ro("flow_director.filter_length", 0xee4c),
		rc("flow_director.usage_stats", 0xee50),
		rc("flow_director.failed_usage_stats", 0xee54),
		rc("flow_director.filters_match_stats", 0xee58),
		rc("flow_director.filters_miss_stats", 0xee5c),
		rwN("flow_director.hash_keys", 0xee68, 2),
		rw("flow_director.ip6_mask", 0xee70),
		rw("flow_director.other_mask", 0xee74),
		rwN("pf.l2_control", 0xf000, 64),
		rwN("pf.vlan_pool_filter", 0xf100, 64),
		rwN("pf.vlan_pool_filter_bitmap", 0xf200, 2*64),
		rwN("pf.dst_ethernet_address", 0xf400, 2*64),
		rwN("pf.mirror_rule", 0xf600, 4),
		rwN("pf.mirror_rule_vlan", 0xf610, 8),
		rwN("pf.mirror_rule_pool", 0xf630, 8),
	},
}

var managementPartition = &regmap.Partition{
	Name: "management", Start: 0x10000, Size: 0x2000, ReservedTail: true,
	Fields: []regmap.Field{
		rw("eeprom_flash_control", 0x10010),
		rw("eeprom_read", 0x10014),
		rw("flash_access", 0x1001c),
		rw("flash_data", 0x10114),
		rw("flash_control", 0x10118),
		ro("flash_read_data", 0x1011c),
		rw("flash_opcode", 0x1013c),
		rw("software_semaphore", 0x10140),
		rw("firmware_semaphore", 0x10148),
		ro("function_active", 0x10150),
		rw("software_firmware_sync", 0x10160),
		rw("general_rx_control", 0x10200),
		rw("pcie.control", 0x11000),
		rw("pcie.counter_control", 0x11010),
		rw("pcie.counter_event", 0x11014),
		rcN("pcie.counters_clear_on_read", 0x11020, 4),
		rwN("pcie.counter_config", 0x11030, 4),
		rw("pcie.indirect_access.address", 0x11040),
		rw("pcie.indirect_access.data", 0x11044),
		rw("pcie.extended_control", 0x11050),
		ro("pcie.mirrored_revision_id", 0x11064),
		ro("pcie.dca_requester_id_information", 0x11070),
		rw("pcie.dca_control", 0x11074),
		ro("pcie.interrupt_status", 0x110b0),
		rw("pcie.interrupt_enable", 0x110b8),
		rwN("pcie.msi_x_pba_clear", 0x110c0, 8),
		rw("indirect_phy.control", 0x11144),
		rw("indirect_phy.data", 0x11148),
	},
}

var extendedPartition = &regmap.Partition{
	Name: "extended", Start: 0x12000, Size: 0xe000, ReservedTail: true,
	Fields: []regmap.Field{
		rwN("interrupt_throttle1", 0x12300, 128-24),
		rw("core_analog_config", 0x14f00),
		rw("core_common_config", 0x14f10),
		rw("link_sec_software_firmware_interface", 0x15f14),
		rw("sfp_i2c.command", 0x15f58),
		rw("sfp_i2c.params", 0x15f5c),
		dyn(rwN("pf_vm_tag_insert", 0x17000, 64)),
	},
}

// BAR0 register file size.
const barSize = 0x20000

// bar0 covers the whole register file; consecutive partitions chain
// with no holes to 0x20000.
var bar0 = regmap.Space{
	generalPartition,
	interruptPartition,
	rxDMA0Partition,
	rxControlPartition,
	statsPartition,
	macPartition,
	txControlPartition,
	rxFilterPartition,
	txDMAPartition,
	securityPartition,
	filterRAMPartition,
	rxDMA1Partition,
	classifyPartition,
	managementPartition,
	extendedPartition,
}

func init() {
	bar0.MustValidate()
	for _, b := range []*regmap.Bank{rxDMA0Bank, txDMABank, rxDMA1Bank} {
		if err := b.Validate(); err != nil {
			panic(err)
		}
	}
}

// Layout returns the canonical validated BAR0 description.  The
// returned space is shared; callers that resolve dynamic extents must
// Clone first (Attach does).
func Layout() regmap.Space { return bar0 }
