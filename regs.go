// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xge

// BAR0 register file, 0x20000 bytes, transcribed from the 82599
// datasheet register map and cross checked against the declarative
// tables in layout.go (see layout_test.go).  The struct is split along
// partition boundaries so each piece can be mapped and owned
// independently; pieces concatenate with no holes.
//
// Offsets in comments are absolute BAR0 byte offsets.

// [0x0000, 0x0800): device and VF/PF mailbox control.
type general_regs struct {
	/* [2] pcie master disable
	   [3] mac reset
	   [26] global device reset */
	control rw32 // 0x0

	// Hardware mirror of control at the next word.
	control_alias rw32 // 0x4

	/* [3:2] device id (0 or 1 for dual port chips)
	   [7] link is up
	   [17:10] num vfs
	   [18] io active
	   [19] pcie master enable status */
	status ro32 // 0x8
	_      [0x10 - 0xc]byte

	vf_link_status ro32 // 0x10
	_              [0x18 - 0x14]byte

	/* [14] pf reset done
	   [17] relaxed ordering disable
	   [26] extended vlan enable
	   [28] driver loaded */
	extended_control rw32 // 0x18
	_                [0x20 - 0x1c]byte

	/* software definable pins.
	   sdp_data [7:0]
	   sdp_is_output [15:8]
	   sdp_is_native [23:16]
	   sdp_function [31:24]. */
	sdp_control rw32 // 0x20
	_           [0x28 - 0x24]byte

	/* [0] i2c clock in
	   [1] i2c clock out
	   [2] i2c data in
	   [3] i2c data out */
	i2c_control rw32 // 0x28
	_           [0x4c - 0x2c]byte
	tcp_timer   rw32 // 0x4c

	_ [0x100 - 0x50]byte

	vf struct {
		interrupt_status_write_1_to_clear  rw32 // 0x100
		interrupt_status_write_1_to_set    wo32 // 0x104
		interrupt_enable_write_1_to_set    rw32 // 0x108
		interrupt_enable_write_1_to_clear  wo32 // 0x10c
		_                                  rsvd32
		interrupt_status_auto_clear_enable rw32 // 0x114
		_                                  [0x120 - 0x118]byte
		interrupt_vector_allocation        [4]rw32 // 0x120
		_                                  [0x140 - 0x130]byte
		interrupt_vector_allocation_misc   rw32 // 0x140
		_                                  rsvd32
		msi_x_pba_clear                    rw32 // 0x148
		_                                  [0x180 - 0x14c]byte
		rsc_enable                         [4]rw32 // 0x180
		_                                  [0x200 - 0x190]byte

		mailbox_mem [16]rw32 // 0x200
		_           [0x2fc - 0x240]byte

		// [0] request for pf ready write-only
		// [1] ack: pf message received write-only
		// [2] vfu buffer is taken by vf
		// [3] pfu buffer is taken by pf
		// [4] pf wrote message in mailbox
		// [5] pf ack'ed previous vf message
		// [6] pf reset shared resources read-only
		// [7] pf reset in progress clear on read
		mailbox_status rw32 // 0x2fc

		replication_packet_split_receive_type rw32 // 0x300
	}

	_ [0x600 - 0x304]byte

	// Spare register; no driver capability.
	core_spare rsvd32 // 0x600
	_          [0x700 - 0x604]byte

	pf struct {
		vflr_events_clear_write_1_to_clear [2]rw32 // 0x700
		_                                  [2]rsvd32

		// [31:16] ack
		// [15:0] request
		mailbox_interrupt_status_write_1_to_clear [4]rw32 // 0x710
		mailbox_interrupt_disable                 [2]rw32 // 0x720
		_                                         [0x800 - 0x728]byte
	}
}

// [0x0800, 0x1000): extended interrupt unit.
type interrupt_regs struct {
	// [15:0] rx/tx queue
	// [16] flow director
	// [17] rx missed packet
	// [18] pcie exception
	// [19] mailbox
	// [20] link state change
	// [22] manageability
	// [24] time sync
	// [27:25] gpi spd 012
	// [28] ecc error
	// [29] phy global interrupt
	// [30] tcp timer expired
	// [31] other cause
	status_write_1_to_clear  rw32 // 0x800
	_                        [0x808 - 0x804]byte
	status_write_1_to_set    wo32 // 0x808
	_                        [0x810 - 0x80c]byte
	status_auto_clear_enable rw32 // 0x810
	_                        [0x820 - 0x814]byte

	/* [11:3] minimum inter-interrupt interval
	   [15] low-latency interrupt moderation enable
	   [20:16] low-latency interrupt credit
	   [27:21] interval counter
	   [31] write disable for credit and counter (write only). */
	throttle0 [24]rw32 // 0x820; vectors 24-127 in extended.interrupt_throttle1

	// as above.
	enable_write_1_to_set   rw32 // 0x880
	_                       [0x888 - 0x884]byte
	enable_write_1_to_clear wo32 // 0x888
	_                       [0x890 - 0x88c]byte
	enable_auto_clear       rw32 // 0x890

	msi_to_eitr_select rw32 // 0x894

	/* [3:0] spd 0-3 interrupt detection enable
	   [4] msi-x enable
	   [5] other clear disable (makes other bits in status not clear on read)
	   etc. */
	control rw32 // 0x898
	_       [0x900 - 0x89c]byte

	// Defines interrupt mapping for 128 rx + 128 tx queues into 16
	// interrupts.  64 x 4 8 bit entries.
	queue_mapping [64]rw32 // 0x900

	/* tcp timer [7:0] and other interrupts [15:8] */
	misc_mapping rw32 // 0xa00
	_            [0xa90 - 0xa04]byte

	/* 64 interrupts determined by mappings. */
	status1_write_1_to_clear  [4]rw32 // 0xa90
	enable1_write_1_to_set    [4]rw32 // 0xaa0
	enable1_write_1_to_clear  [4]wo32 // 0xab0
	_                         [0xad0 - 0xac0]byte
	status1_enable_auto_clear [4]rw32 // 0xad0
	_                         [0x1000 - 0xae0]byte
}

// Registers common to one rx or tx DMA queue; 0x40 byte stride.
type dma_regs struct {
	// [31:7] 128 byte aligned.
	descriptor_address addr // 0x00

	n_descriptor_bytes rw32 // 0x08

	// [5] rx/tx descriptor dca enable
	// [9] rx/tx descriptor relaxed order
	// [11] rx/tx descriptor write back relaxed order
	// [13] rx/tx data write/read relaxed order
	// [31:24] apic id for cpu's cache.
	dca_control rw32 // 0x0c

	head_index ro32 // 0x10

	// [4:0] tail buffer size (in 1k byte units)
	// [13:8] head buffer size (in 64 byte units)
	// [27:25] descriptor type
	// [28] drop if no descriptors available.
	rx_split_control rw32 // 0x14

	tail_index rw32 // 0x18

	// [0] rx/tx packet count
	// [1]/[2] rx/tx byte count lo/hi
	vf_stats [3]rc32 // 0x1c

	// [7:0] rx/tx prefetch threshold
	// [15:8] rx/tx host threshold
	// [24:16] rx/tx write back threshold
	// [25] rx/tx enable
	// [26] tx descriptor writeback flush
	// [30] rx strip vlan enable
	control rw32 // 0x28

	rx_coallesce_control rw32 // 0x2c
}

type rx_dma_regs struct {
	dma_regs

	// Offset 0x30.  Only defined for queues 0-15.
	// [0] rx packet count
	// [1]/[2] rx byte count lo/hi
	stats [3]rc32

	_ rsvd32
}

type tx_dma_regs struct {
	dma_regs

	// Offset 0x30
	_ [2]rsvd32

	// [0] enables head write back.
	head_index_write_back_address addr // 0x38
}

// [0x2000, 0x4000): rx DMA control, flow control, packet buffers.
type rx_control_regs struct {
	_                             [0x2140 - 0x2000]byte
	dcb_rx_packet_plane_t4_config [8]rw32 // 0x2140
	dcb_rx_packet_plane_t4_status [8]ro32 // 0x2160
	_                             [0x2300 - 0x2180]byte

	/* i defines 4-bit stats mapping for 4 rx queues starting at 4*i + 0. */
	rx_queue_stats_mapping [32]rw32 // 0x2300
	// [5:0] queue select 1<<5 => all queues,
	rx_queue_stats_control rw32 // 0x2380

	_                       [0x2410 - 0x2384]byte
	fc_user_descriptor_ptr  [2]rw32 // 0x2410
	fc_buffer_control       rw32    // 0x2418
	fcoe_rx_packets_dropped rc32    // 0x241c
	fc_rx_dma               rw32    // 0x2420
	_                       [0x2430 - 0x2424]byte

	dcb_packet_plane_control rw32 // 0x2430
	_                        [0x2f00 - 0x2434]byte

	rx_dma_control                 rw32 // 0x2f00
	pf_queue_drop_enable           rw32 // 0x2f04
	_                              [0x2f20 - 0x2f08]byte
	rx_dma_descriptor_cache_config rw32 // 0x2f20
	_                              [0x2f40 - 0x2f24]byte
	rx_dma_stats_control           rw32 // 0x2f40
	_                              [0x2f50 - 0x2f44]byte

	rx_dma_good_packets                     rc32    // 0x2f50
	rx_dma_good_bytes                       [2]rc32 // 0x2f54 lo/hi
	rx_dma_duplicated_good_packets          rc32    // 0x2f5c
	rx_dma_duplicated_good_bytes            [2]rc32 // 0x2f60 lo/hi
	rx_dma_good_loopback_packets            rc32    // 0x2f68
	rx_dma_good_loopback_bytes              [2]rc32 // 0x2f6c lo/hi
	rx_dma_good_duplicated_loopback_packets rc32    // 0x2f74
	rx_dma_good_duplicated_loopback_bytes   [2]rc32 // 0x2f78 lo/hi

	_                               [0x2fa4 - 0x2f80]byte
	pf_rx_last_malicious_vm         ro32 // 0x2fa4
	pf_rx_last_vm_misbehavior_cause ro32 // 0x2fa8
	_                               [0x2fb0 - 0x2fac]byte

	pf_rx_wrong_queue_behavior [4]rw32 // 0x2fb0

	_ [0x3000 - 0x2fc0]byte

	/* 1 bit. */
	rx_enable rw32 // 0x3000
	_         [0x3008 - 0x3004]byte
	/* [15:0] ether type (little endian)
	   [31:16] opcode (big endian) */
	flow_control_control rw32 // 0x3008
	_                    [0x3020 - 0x300c]byte
	/* 3 bit traffic class for each of 8 priorities. */
	rx_priority_to_traffic_class     rw32 // 0x3020
	_                                [0x3028 - 0x3024]byte
	rx_coallesce_data_buffer_control rw32 // 0x3028
	_                                [0x3100 - 0x302c]byte

	vf_rss_random_key             [10]rw32 // 0x3100
	_                             [0x3190 - 0x3128]byte
	rx_packet_buffer_flush_detect ro32 // 0x3190
	_                             [0x3200 - 0x3194]byte

	// VF redirection table shares this range (documented synonym,
	// declared as an alias pair in the layout tables).
	flow_control_tx_timers         [4]rw32 // 0x3200
	_                              [0x3220 - 0x3210]byte
	flow_control_rx_threshold_lo   [8]rw32 // 0x3220
	_                              [0x3260 - 0x3240]byte
	flow_control_rx_threshold_hi   [8]rw32 // 0x3260
	_                              [0x32a0 - 0x3280]byte
	flow_control_refresh_threshold rw32 // 0x32a0
	_                              [0x3c00 - 0x32a4]byte

	/* For each of 8 traffic classes (units of bytes). */
	rx_packet_buffer_size [8]rw32 // 0x3c00
	_                     [0x3d00 - 0x3c20]byte
	flow_control_config   rw32 // 0x3d00
	_                     [0x3fa0 - 0x3d04]byte

	/* Per packet buffer; missed packet count. */
	rx_missed_packets [8]rc32 // 0x3fa0
	_                 [0x4000 - 0x3fc0]byte
}

// [0x4000, 0x4200): MAC statistics.  Counters clear on read; the
// counter table in counters.go always accumulates.
type stats_regs struct {
	rx_crc_errors            rc32 // 0x4000
	rx_illegal_symbol_errors rc32 // 0x4004
	rx_error_symbol_errors   rc32 // 0x4008
	_                        [0x4010 - 0x400c]byte
	tx_undersize_drops       rc32 // 0x4010 mac short packet discard
	_                        [0x4034 - 0x4014]byte
	rx_mac_local_faults      rc32 // 0x4034
	rx_mac_remote_faults     rc32 // 0x4038
	_                        rsvd32
	rx_length_errors         rc32 // 0x4040
	_                        [0x405c - 0x4044]byte

	rx_64_byte_packets          rc32 // 0x405c
	rx_65_127_byte_packets      rc32 // 0x4060
	rx_128_255_byte_packets     rc32 // 0x4064
	rx_256_511_byte_packets     rc32 // 0x4068
	rx_512_1023_byte_packets    rc32 // 0x406c
	rx_gt_1023_byte_packets     rc32 // 0x4070
	rx_post_filter_good_packets rc32 // 0x4074
	rx_broadcast_packets        rc32 // 0x4078
	rx_multicast_packets        rc32 // 0x407c
	tx_good_packets             rc32 // 0x4080
	_                           rsvd32
	rx_post_filter_good_bytes   [2]rc32 // 0x4088 lo/hi
	tx_good_bytes               [2]rc32 // 0x4090 lo/hi
	_                           [0x40a4 - 0x4098]byte

	rx_undersize_packets  rc32 // 0x40a4
	rx_fragments          rc32 // 0x40a8
	rx_oversize_packets   rc32 // 0x40ac
	rx_jabbers            rc32 // 0x40b0
	rx_management_packets rc32 // 0x40b4
	rx_management_drops   rc32 // 0x40b8
	_                     rsvd32
	rx_bytes              [2]rc32 // 0x40c0 lo/hi total octets received
	_                     [0x40d0 - 0x40c8]byte

	rx_packets               rc32 // 0x40d0 total packets received
	tx_packets               rc32 // 0x40d4 total packets transmitted
	tx_64_byte_packets       rc32 // 0x40d8
	tx_65_127_byte_packets   rc32 // 0x40dc
	tx_128_255_byte_packets  rc32 // 0x40e0
	tx_256_511_byte_packets  rc32 // 0x40e4
	tx_512_1023_byte_packets rc32 // 0x40e8
	tx_gt_1023_byte_packets  rc32 // 0x40ec
	tx_multicast_packets     rc32 // 0x40f0
	tx_broadcast_packets     rc32 // 0x40f4
	_                        [0x4120 - 0x40f8]byte

	rx_ip4_tcp_udp_checksum_errors rc32 // 0x4120
	_                              [0x4140 - 0x4124]byte

	/* Per traffic class pause frames. */
	rx_priority_xon  [8]rc32 // 0x4140
	rx_priority_xoff [8]rc32 // 0x4160
	_                [0x41a4 - 0x4180]byte

	rx_xons  rc32 // 0x41a4
	rx_xoffs rc32 // 0x41a8
	_        rsvd32

	rx_pre_filter_good_packets rc32    // 0x41b0
	rx_pre_filter_good_bytes   [2]rc32 // 0x41b4 lo/hi
	_                          [0x4200 - 0x41bc]byte
}

// [0x4200, 0x4900): 1G PCS and 10G MAC.
type mac_regs struct {
	ge struct {
		pcs_config                              rw32 // 0x4200
		_                                       [0x4208 - 0x4204]byte
		link_control                            rw32    // 0x4208
		link_status                             ro32    // 0x420c
		pcs_debug                               [2]rw32 // 0x4210
		auto_negotiation                        rw32    // 0x4218
		link_partner_ability                    ro32    // 0x421c
		auto_negotiation_tx_next_page           rw32    // 0x4220
		auto_negotiation_link_partner_next_page ro32    // 0x4224
		_                                       [0x4240 - 0x4228]byte
	}

	xge struct {
		/* [0] tx crc enable
		   [2] enable frames up to max frame size register [31:16]
		   [10] pad frames < 64 bytes if specified by user
		   [15] loopback enable */
		control rw32 // 0x4240

		/* [5] rx symbol error (all bits clear on read)
		   [8] rx local fault
		   [9] rx remote fault */
		status ro32 // 0x4244

		pause_and_pace_control rw32 // 0x4248
		_                      [0x425c - 0x424c]byte

		phy_command rw32 // 0x425c

		// write data [15:0]
		// read data [31:16]
		phy_data rw32 // 0x4260
		_        [0x4268 - 0x4264]byte

		/* [31:16] max frame size in bytes. */
		rx_max_frame_size rw32 // 0x4268
		_                 [0x4288 - 0x426c]byte

		xgxs_status [2]ro32 // 0x4288

		base_x_pcs_status ro32 // 0x4290

		/* [0] pass unrecognized flow control frames
		   [1] discard pause frames
		   [2] rx priority flow control enable (only in dcb mode)
		   [3] rx flow control enable. */
		flow_control rw32 // 0x4294

		/* [3:0] tx lanes change polarity
		   [7:4] rx lanes change polarity
		   [11:8] swizzle tx lanes
		   [15:12] swizzle rx lanes */
		serdes_control rw32 // 0x4298

		fifo_control rw32 // 0x429c

		// [0] force link up
		// [12] restart autoneg
		// [15:13] link mode
		// [16] kr support
		// [17] fec requested
		// [18] fec ability
		auto_negotiation_control rw32 // 0x42a0

		// [7] link status clear to read
		// [29:28] link speed
		// [30] link is up
		link_status ro32 // 0x42a4

		/* [17:16] pma/pmd for 10g serial
		   0 => kr, 2 => sfi
		   [18] disable dme pages */
		auto_negotiation_control2 rw32 // 0x42a8

		_                      [0x42b0 - 0x42ac]byte
		link_partner_ability   [2]ro32 // 0x42b0
		_                      [0x42d0 - 0x42b8]byte
		manageability_control  rw32    // 0x42d0
		link_partner_next_page [2]ro32 // 0x42d4
		_                      [0x42e0 - 0x42dc]byte
		kr_pcs_control         rw32    // 0x42e0
		kr_pcs_status          ro32    // 0x42e4
		fec_status             [2]ro32 // 0x42e8
		_                      [0x4314 - 0x42f0]byte
		sgmii_control          rw32 // 0x4314
		_                      [0x431c - 0x4318]byte

		/* Ether type used for priority flow control frames. */
		priority_flow_control_type rw32 // 0x431c
		_                          [0x4324 - 0x4320]byte

		link_status2 ro32 // 0x4324
		_            [2]rsvd32

		// [0] force link up
		// [1] enable mac rx to tx loopback
		mac_control rw32 // 0x4330
		_           [0x4900 - 0x4334]byte
	}
}

// [0x4900, 0x5000): tx DCB plane, tx DMA control, PF mailbox memory.
type tx_control_regs struct {
	tx_dcb_control                       rw32 // 0x4900
	tx_dcb_descriptor_plane_queue_select rw32 // 0x4904
	tx_dcb_descriptor_plane_t1_config    rw32 // 0x4908
	tx_dcb_descriptor_plane_t1_status    ro32 // 0x490c
	_                                    [0x4950 - 0x4910]byte

	/* For each TC in units of 1k bytes. */
	tx_packet_buffer_thresholds [8]rw32 // 0x4950
	_                           [0x4980 - 0x4970]byte

	dcb_tx_rate_scheduler struct {
		mmw        rw32 // 0x4980
		config     rw32 // 0x4984
		status     ro32 // 0x4988
		rate_drift rw32 // 0x498c
	}
	_                        [0x4a80 - 0x4990]byte
	tx_dma_control           rw32 // 0x4a80
	_                        [0x4a88 - 0x4a84]byte
	tx_dma_tcp_flags_control [2]rw32 // 0x4a88
	_                        [0x4b00 - 0x4a90]byte

	// [0] status/command from pf ready.  write only causes interrupt to vf.
	// [1] ack vf message received. write only.
	// [2] vfu buffer is taken by vf
	// [3] pfu buffer is taken by pf
	// [4] reset vfu
	// One register per VF; usable extent set by the discovered VF count.
	pf_mailbox [64]rw32 // 0x4b00

	_ [0x5000 - 0x4c00]byte
}

// [0x5000, 0x6000): rx filtering, wake up, manageability.
type rx_filter_regs struct {
	checksum_control         rw32 // 0x5000
	_                        [0x5008 - 0x5004]byte
	rx_filter_control        rw32 // 0x5008
	_                        [0x5010 - 0x500c]byte
	management_vlan_tag      [8]rw32 // 0x5010
	management_udp_tcp_ports [8]rw32 // 0x5030
	_                        [0x5078 - 0x5050]byte
	/* little endian. */
	extended_vlan_ether_type rw32 // 0x5078
	_                        [0x5080 - 0x507c]byte

	// [1] store/dma bad packets
	// [7] tag promiscuous enable
	// [8] accept all multicast
	// [9] accept all unicast
	// [10] accept all broadcast.
	filter_control rw32 // 0x5080
	_              [0x5088 - 0x5084]byte

	// [15:0] vlan ethernet type (0x8100) little endian
	// [28] cfi bit expected
	// [29] drop packets with unexpected cfi bit
	// [30] vlan filter enable.
	vlan_control rw32 // 0x5088
	_            [0x5090 - 0x508c]byte

	// [1:0] hi bit of ethernet address for 12 bit index into multicast table
	multicast_control rw32 // 0x5090
	_                 [0x50b0 - 0x5094]byte

	pf_filter_packets [2]rc32 // 0x50b0
	_                 [0x5100 - 0x50b8]byte

	fcoe_rx_control    rw32 // 0x5100
	_                  [0x5108 - 0x5104]byte
	fc_flt_context     rw32 // 0x5108
	_                  [0x5110 - 0x510c]byte
	fc_filter_control  wo32 // 0x5110
	_                  [0x5120 - 0x5114]byte
	rx_message_type_lo rw32 // 0x5120
	_                  [0x5128 - 0x5124]byte

	/* [15:0] ethernet type (little endian)
	   [18:16] match pri in vlan tag
	   [25:20] virtualization pool
	   [30] ieee 1588 timestamp enable
	   [31] filter enable.
	   (See classify.ethernet_type_queue_select.) */
	ethernet_type_queue_filter [8]rw32 // 0x5128
	_                          [0x5160 - 0x5148]byte

	/* [7:0] l2 ethernet type and
	   [15:8] l2 ethernet type or */
	management_decision_filters1    [8]rw32 // 0x5160
	vf_vm_tx_switch_loopback_enable [2]rw32 // 0x5180
	rx_time_sync_control            rw32    // 0x5188
	_                               [0x5190 - 0x518c]byte

	management_ethernet_type_filters [4]rw32 // 0x5190
	rx_timestamp_attributes_lo       ro32    // 0x51a0
	rx_timestamp_hi                  ro32    // 0x51a4
	rx_timestamp_attributes_hi       ro32    // 0x51a8
	_                                [0x51b0 - 0x51ac]byte

	// [0] virtualization mode enable
	// [12:7] default pool
	// [29] 0 => packet which does not match any pool is assigned to
	//      default pool, 1 => drop packet.
	// [30] replication enable
	pf_virtual_control rw32 // 0x51b0

	_                   [0x51d8 - 0x51b4]byte
	fc_offset_parameter rw32 // 0x51d8
	_                   [0x51e0 - 0x51dc]byte
	pf_vf_rx_enable     [2]rw32 // 0x51e0
	rx_timestamp_lo     ro32    // 0x51e8
	_                   [0x5200 - 0x51ec]byte

	/* 12 bit index from high bits of ethernet address as determined
	   by multicast_control register. */
	multicast_enable [128]rw32 // 0x5200

	// Hardware shadow of the first 16 entries of
	// filter_ram.rx_ethernet_address1 (distinct address, not an
	// alias pair).  Index 0 is read from eeprom after reset.
	rx_ethernet_address0 [16]ethernet_address_reg // 0x5400

	_                               [0x5800 - 0x5480]byte
	wake_up_control                 rw32 // 0x5800
	_                               [0x5808 - 0x5804]byte
	wake_up_filter_control          rw32 // 0x5808
	_                               [0x5818 - 0x580c]byte
	multiple_rx_queue_command_82598 rw32 // 0x5818
	_                               [0x5820 - 0x581c]byte
	management_control              rw32 // 0x5820
	management_filter_control       rw32 // 0x5824
	_                               [0x5838 - 0x5828]byte
	wake_up_ip4_address_valid       rw32 // 0x5838
	_                               [0x5840 - 0x583c]byte
	wake_up_ip4_address_table       [4]rw32 // 0x5840
	management_control_to_host      rw32    // 0x5850
	_                               [0x5880 - 0x5854]byte
	wake_up_ip6_address_table       [4]rw32 // 0x5880

	/* unicast_and broadcast_and vlan_and ip_address_and etc. */
	management_decision_filters [8]rw32 // 0x5890

	management_ip4_or_ip6_address_filters [4][4]rw32 // 0x58b0
	_                                     [0x5900 - 0x58f0]byte
	wake_up_packet_length                 ro32 // 0x5900
	_                                     [0x5910 - 0x5904]byte
	management_ethernet_address_filters   [4][2]rw32 // 0x5910
	_                                     [0x5a00 - 0x5930]byte
	wake_up_packet_memory                 [32]ro32 // 0x5a00
	_                                     [0x5c00 - 0x5a80]byte
	redirection_table_82598               [32]rw32 // 0x5c00
	rss_random_keys_82598                 [10]rw32 // 0x5c80
	_                                     [0x6000 - 0x5ca8]byte
}

// [0x8000, 0x9000): tx switch, queue stats, security, time sync.
type security_regs struct {
	// [15:0] vlan tag to insert if vlan action == 1
	// [31:30] vlan action: 0 => use descriptor command, 1 => always
	//         insert default vlan, 2 => never insert vlan
	// One register per VF pool; extent set by the discovered VF count.
	pf_vm_vlan_insert [64]rw32 // 0x8000

	tx_dma_tcp_max_alloc_size_requests rw32 // 0x8100
	pf_tx_last_malicious_vm            ro32 // 0x8104

	_            [0x8110 - 0x8108]byte
	vf_tx_enable [2]rw32 // 0x8110
	_            [0x8120 - 0x8118]byte

	/* [0] dcb mode enable
	   [1] virtualization mode enable
	   [3:2] number of tcs/qs per pool. */
	multiple_tx_queues_command      rw32 // 0x8120
	pf_tx_last_vm_misbehavior_cause ro32 // 0x8124
	_                               [0x8130 - 0x8128]byte
	pf_tx_wrong_queue_behavior      [4]rw32 // 0x8130
	_                               [0x8200 - 0x8140]byte
	pf_vf_anti_spoof                [8]rw32 // 0x8200
	pf_dma_tx_switch_control        rw32    // 0x8220
	_                               [0x82e0 - 0x8224]byte
	tx_strict_low_latency_queues    [4]rw32 // 0x82e0
	_                               [0x8600 - 0x82f0]byte

	tx_queue_stats_mapping [32]rw32    // 0x8600
	tx_queue_packet_counts [32]rc32    // 0x8680
	tx_queue_byte_counts   [32][2]rc32 // 0x8700 lo/hi

	tx_security struct {
		control            rw32 // 0x8800
		status             ro32 // 0x8804
		buffer_almost_full rw32 // 0x8808
		_                  [0x8810 - 0x880c]byte
		buffer_min_ifg     rw32 // 0x8810
		_                  [0x8900 - 0x8814]byte
	}

	tx_ipsec struct {
		index rw32 // 0x8900
		salt  rw32 // 0x8904
		key   [4]wo32 // 0x8908
		_     [0x8a00 - 0x8918]byte
	}

	tx_link_security struct {
		capabilities ro32 // 0x8a00
		control      rw32 // 0x8a04
		sci          [2]rw32 // 0x8a08 lo/hi
		sa           rw32    // 0x8a10
		sa_pn        [2]rw32 // 0x8a14
		key          [2][4]wo32 // 0x8a1c
		/* untagged packets, encrypted packets, protected packets,
		   encrypted bytes, protected bytes */
		stats [5]ro32 // 0x8a3c
		_     [0x8c00 - 0x8a50]byte
	}

	tx_timesync struct {
		control                rw32    // 0x8c00
		timestamp_value        [2]ro32 // 0x8c04 lo/hi
		system_time            [2]rw32 // 0x8c0c
		increment_attributes   rw32    // 0x8c14
		time_adjustment_offset [2]rw32 // 0x8c18
		aux_control            rw32    // 0x8c20
		target_time            [2][2]rw32 // 0x8c24
		_                      [0x8c3c - 0x8c34]byte
		aux_time_stamp         [2][2]ro32 // 0x8c3c
		_                      [0x8d00 - 0x8c4c]byte
	}

	rx_security struct {
		control rw32 // 0x8d00
		status  ro32 // 0x8d04
		_       [0x8e00 - 0x8d08]byte
	}

	rx_ipsec struct {
		index      rw32    // 0x8e00
		ip_address [4]rw32 // 0x8e04
		spi        rw32    // 0x8e14
		ip_index   rw32    // 0x8e18
		key        [4]wo32 // 0x8e1c
		salt       rw32    // 0x8e2c
		mode       rw32    // 0x8e30
		_          [0x8f00 - 0x8e34]byte
	}

	rx_link_security struct {
		capabilities ro32    // 0x8f00
		control      rw32    // 0x8f04
		sci          [2]rw32 // 0x8f08
		sa           [2]rw32 // 0x8f10
		sa_pn        [2]rw32 // 0x8f18
		key          [2][4]wo32 // 0x8f20
		/* see datasheet */
		stats [17]ro32 // 0x8f40
		_     [0x9000 - 0x8f84]byte
	}
}

// [0x9000, 0xd000): filter and address table ram.
type filter_ram_regs struct {
	/* 4 wake up, 2 management, 2 wake up. */
	flexible_filters [8][16][4]rw32 // 0x9000
	_                [0xa000 - 0x9800]byte

	/* 4096 bits. */
	vlan_filter [128]rw32 // 0xa000

	// [0] ethernet address [31:0] (least significant byte first on wire)
	// [1] [15:0] ethernet address [47:32]
	// [30] 0 => mac address, 1 => e-tag
	// [31] valid bit.
	// Index 0 is read from eeprom after reset.
	rx_ethernet_address1 [128]ethernet_address_reg // 0xa200

	/* Bitmap selecting 64 pools for each rx address. */
	rx_ethernet_address_pool_select [128][2]rw32 // 0xa600

	_                            [0xc800 - 0xaa00]byte
	tx_priority_to_traffic_class rw32 // 0xc800
	_                            [0xcc00 - 0xc804]byte

	/* In bytes units of 1k.  Total packet buffer is 160k. */
	tx_packet_buffer_size [8]rw32 // 0xcc00

	_                             [0xcd10 - 0xcc20]byte
	tx_manageability_tc_mapping   rw32 // 0xcd10
	_                             [0xcd20 - 0xcd14]byte
	dcb_tx_packet_plane_t2_config [8]rw32 // 0xcd20
	dcb_tx_packet_plane_t2_status [8]ro32 // 0xcd40
	_                             [0xce00 - 0xcd60]byte

	tx_flow_control_status ro32 // 0xce00
	_                      [0xd000 - 0xce04]byte
}

// [0xe000, 0x10000): 5 tuple filters, rss, flow director, per pool l2.
type classify_regs struct {
	ip4_filters struct {
		/* Bigendian ip4 src/dst address. */
		src_address [128]rw32 // 0xe000
		dst_address [128]rw32 // 0xe200

		/* TCP/UDP ports [15:0] src [31:16] dst bigendian. */
		tcp_udp_port [128]rw32 // 0xe400

		/* [1:0] protocol tcp, udp, sctp, other
		   [4:2] match priority (highest wins)
		   [13:8] pool
		   [31] enable. */
		control [128]rw32 // 0xe600

		/* [12] size bypass
		   [20] low-latency interrupt
		   [27:21] rx queue. */
		interrupt [128]rw32 // 0xe800
	}
	_ [0xeb00 - 0xea00]byte

	/* 4 bit rss output index indexed by 7 bit hash.
	   128 8 bit fields = 32 registers. */
	redirection_table [32]rw32 // 0xeb00

	rss_random_key [10]rw32 // 0xeb80
	_              [0xec00 - 0xeba8]byte

	/* [22:16] rx queue index
	   [29] low-latency interrupt on match
	   [31] enable */
	ethernet_type_queue_select           [8]rw32 // 0xec00
	_                                    [0xec30 - 0xec20]byte
	syn_packet_queue_filter              rw32 // 0xec30
	_                                    [0xec60 - 0xec34]byte
	immediate_interrupt_rx_vlan_priority rw32 // 0xec60
	_                                    [0xec70 - 0xec64]byte
	rss_queues_per_traffic_class         rw32 // 0xec70
	_                                    [0xec90 - 0xec74]byte
	lli_size_threshold                   rw32 // 0xec90
	_                                    [0xed00 - 0xec94]byte

	fcoe_redirection struct {
		control rw32 // 0xed00
		_       [0xed10 - 0xed04]byte
		table   [8]rw32 // 0xed10
		_       [0xee00 - 0xed30]byte
	}

	flow_director struct {
		/* [1:0] packet buffer allocation 0 => disabled, else 64k*2^(f-1)
		   [3] packet buffer initialization done
		   [14:8] drop queue
		   [27:24] max linked list length
		   [31:28] full threshold. */
		control rw32 // 0xee00
		_       [0xee0c - 0xee04]byte

		data [8]rw32 // 0xee0c

		/* [1:0] 0 => no action, 1 => add, 2 => remove, 3 => query.
		   [9] packet drop action
		   [12] collision
		   [22:16] rx queue
		   [29:24] pool. */
		command rw32 // 0xee2c

		_ [0xee3c - 0xee30]byte
		/* ip4 dst/src address, tcp ports, udp ports.
		   set bits mean bit is ignored. */
		ip4_masks           [4]rw32 // 0xee3c
		filter_length       ro32    // 0xee4c
		usage_stats         rc32    // 0xee50
		failed_usage_stats  rc32    // 0xee54
		filters_match_stats rc32    // 0xee58
		filters_miss_stats  rc32    // 0xee5c
		_                   [0xee68 - 0xee60]byte
		/* Lookup, signature. */
		hash_keys [2]rw32 // 0xee68
		/* [15:0] ip6 src address 1 bit per byte
		   [31:16] ip6 dst address. */
		ip6_mask rw32 // 0xee70
		/* [0] vlan id
		   [1] vlan priority
		   [2] pool
		   [3] ip protocol
		   [4] flex
		   [5] dst ip6. */
		other_mask rw32 // 0xee74
		_          [0xf000 - 0xee78]byte
	}

	pf struct {
		// [22] unicast promiscuous enable
		// [23] vlan promiscuous enable
		// [24] accept untagged packets
		// [27] broadcast accept
		// [28] multicast promiscuous
		l2_control [64]rw32 // 0xf000

		// [31] enable
		// [11:0] vlan id
		vlan_pool_filter [64]rw32 // 0xf100

		// Bitmap of 64 enabled pools for each matching vlan.
		vlan_pool_filter_bitmap [64][2]rw32 // 0xf200

		dst_ethernet_address [64]ethernet_address_reg // 0xf400

		mirror_rule      [4]rw32 // 0xf600
		mirror_rule_vlan [8]rw32 // 0xf610
		mirror_rule_pool [8]rw32 // 0xf630
		_                [0x10000 - 0xf650]byte
	}
}

// [0x10000, 0x12000): eeprom/flash, semaphores, pcie diagnostics.
type management_regs struct {
	_                    [0x10010 - 0x10000]byte
	eeprom_flash_control rw32 // 0x10010

	/* [0] start
	   [1] done
	   [15:2] address
	   [31:16] read data. */
	eeprom_read rw32 // 0x10014

	_               [0x1001c - 0x10018]byte
	flash_access    rw32 // 0x1001c
	_               [0x10114 - 0x10020]byte
	flash_data      rw32 // 0x10114
	flash_control   rw32 // 0x10118
	flash_read_data ro32 // 0x1011c
	_               [0x1013c - 0x10120]byte
	flash_opcode    rw32 // 0x1013c

	// [0] sw driver semaphore
	// [1] fw firmware semaphore
	// [31] register semaphore
	software_semaphore rw32 // 0x10140
	_                  [0x10148 - 0x10144]byte
	firmware_semaphore rw32 // 0x10148
	_                  [0x10150 - 0x1014c]byte

	// [1:0] bus fn 0 power state
	// [2] lan0 valid
	// [30] swap fn 0 and 1
	// [31] pm state changed
	function_active ro32 // 0x10150
	_               [0x10160 - 0x10154]byte

	// [0] sw eeprom
	// [1] sw phy index 0
	// [2] sw phy index 1
	// [3] sw mac csr
	// [4] sw flash
	// 5-9 as above but for firmware not software
	// [31] register semaphore.
	software_firmware_sync rw32 // 0x10160

	_                  [0x10200 - 0x10164]byte
	general_rx_control rw32 // 0x10200
	_                  [0x11000 - 0x10204]byte

	pcie struct {
		control rw32 // 0x11000
		_       [0x11010 - 0x11004]byte
		/* [3:0] enable counters
		   [7:4] leaky bucket counter mode
		   [29] reset
		   [30] stop
		   [31] start. */
		counter_control rw32 // 0x11010
		/* [7:0],[15:8],[23:16],[31:24] event for counters 0-3. */
		counter_event          rw32 // 0x11014
		_                      [0x11020 - 0x11018]byte
		counters_clear_on_read [4]rc32 // 0x11020
		counter_config         [4]rw32 // 0x11030
		indirect_access        struct {
			address rw32 // 0x11040
			data    rw32 // 0x11044
		}
		_                            [0x11050 - 0x11048]byte
		extended_control             rw32 // 0x11050
		_                            [0x11064 - 0x11054]byte
		mirrored_revision_id         ro32 // 0x11064
		_                            [0x11070 - 0x11068]byte
		dca_requester_id_information ro32 // 0x11070

		/* [0] global disable
		   [4:1] mode: 0 => legacy, 1 => dca 1.0. */
		dca_control rw32 // 0x11074
		_           [0x110b0 - 0x11078]byte

		/* [0] pci completion abort
		   [1] unsupported i/o address
		   [2] wrong byte enable
		   [3] pci timeout */
		interrupt_status ro32 // 0x110b0
		_                [0x110b8 - 0x110b4]byte
		interrupt_enable rw32 // 0x110b8
		_                [0x110c0 - 0x110bc]byte
		msi_x_pba_clear  [8]rw32 // 0x110c0
		_                [0x11144 - 0x110e0]byte
	}

	indirect_phy struct {
		// [15:0] address
		// [19:18] status (0 => success, 1 => unsuccessful, 3 => powered down)
		// [30:28] phy select (0 => internal kr phy)
		// [31] busy
		control rw32 // 0x11144

		// Read triggers read transaction; write triggers write transaction.
		data rw32 // 0x11148
	}

	_ [0x12000 - 0x1114c]byte
}

// [0x12000, 0x20000): high interrupt throttles, analog config, sfp i2c.
type extended_regs struct {
	_                   [0x12300 - 0x12000]byte
	interrupt_throttle1 [128 - 24]rw32 // 0x12300 vectors 24-127
	_                   [0x14f00 - 0x124a0]byte

	core_analog_config rw32 // 0x14f00
	_                  [0x14f10 - 0x14f04]byte
	core_common_config rw32 // 0x14f10
	_                  [0x15f14 - 0x14f14]byte

	link_sec_software_firmware_interface rw32 // 0x15f14
	_                                    [0x15f58 - 0x15f18]byte
	sfp_i2c                              struct {
		command rw32 // 0x15f58
		params  rw32 // 0x15f5c
	}

	_ [0x17000 - 0x15f60]byte

	// If pf_vm_vlan_insert tag action == 1, specifies e-tag here.
	// One register per VF pool; extent set by the discovered VF count.
	pf_vm_tag_insert [64]rw32 // 0x17000

	_ [0x20000 - 0x17100]byte
}

// Whole BAR0; partition structs concatenate exactly.
type regs struct {
	general    general_regs     // 0x0000
	interrupt  interrupt_regs   // 0x0800
	rx_dma0    [64]rx_dma_regs  // 0x1000
	rx_control rx_control_regs  // 0x2000
	stats      stats_regs       // 0x4000
	mac        mac_regs         // 0x4200
	tx_control tx_control_regs  // 0x4900
	rx_filter  rx_filter_regs   // 0x5000
	tx_dma     [128]tx_dma_regs // 0x6000
	security   security_regs    // 0x8000
	filter_ram filter_ram_regs  // 0x9000
	rx_dma1    [64]rx_dma_regs  // 0xd000
	classify   classify_regs    // 0xe000
	management management_regs  // 0x10000
	extended   extended_regs    // 0x12000
}

type ethernet_address_reg [2]rw32

type ethernet_address_entry struct {
	valid   bool
	is_etag bool
	address [6]byte
	etag    uint32
}

func (r *ethernet_address_reg) get(d *Dev, e *ethernet_address_entry) {
	var v [2]uint32
	v[0], v[1] = r[0].get(d), r[1].get(d)
	e.valid = v[1]&(1<<31) != 0
	e.is_etag = v[1]&(1<<30) != 0
	if e.is_etag {
		e.etag = v[0]
	} else {
		for i := range e.address {
			e.address[i] = byte(v[i/4] >> uint(8*(i%4)))
		}
	}
}

func (r *ethernet_address_reg) set(d *Dev, e *ethernet_address_entry) {
	var v [2]uint32
	if e.valid {
		v[1] |= 1 << 31
	}
	if e.is_etag {
		v[1] |= 1 << 30
		v[0] = e.etag
	} else {
		for i := range e.address {
			v[i/4] |= uint32(e.address[i]) << uint(8*(i%4))
		}
	}
	r[0].set(d, v[0])
	r[1].set(d, v[1])
}
