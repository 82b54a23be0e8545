// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xge

import (
	"unsafe"

	"github.com/platinasystems/xge/hw"
)

// Checks memory map register struct for typos (too much/too little
// padding).  Anchors are datasheet section starts.
func init() {
	r := (*regs)(hw.BasePointer)
	hw.CheckRegAddr("vf", r.general.vf.interrupt_status_write_1_to_clear.offset(), 0x100)
	hw.CheckRegAddr("pf", r.general.pf.vflr_events_clear_write_1_to_clear[0].offset(), 0x700)
	hw.CheckRegAddr("interrupt", r.interrupt.status_write_1_to_clear.offset(), 0x800)
	hw.CheckRegAddr("rx_dma0", r.rx_dma0[0].descriptor_address[0].offset(), 0x1000)
	hw.CheckRegAddr("rx_dma_control", r.rx_control.rx_dma_control.offset(), 0x2f00)
	hw.CheckRegAddr("rx_enable", r.rx_control.rx_enable.offset(), 0x3000)
	hw.CheckRegAddr("stats", r.stats.rx_crc_errors.offset(), 0x4000)
	hw.CheckRegAddr("ge_mac", r.mac.ge.pcs_config.offset(), 0x4200)
	hw.CheckRegAddr("xge_mac", r.mac.xge.control.offset(), 0x4240)
	hw.CheckRegAddr("pf_mailbox", r.tx_control.pf_mailbox[0].offset(), 0x4b00)
	hw.CheckRegAddr("checksum_control", r.rx_filter.checksum_control.offset(), 0x5000)
	hw.CheckRegAddr("pf_virtual_control", r.rx_filter.pf_virtual_control.offset(), 0x51b0)
	hw.CheckRegAddr("tx_dma", r.tx_dma[0].descriptor_address[0].offset(), 0x6000)
	hw.CheckRegAddr("pf_vm_vlan_insert", r.security.pf_vm_vlan_insert[0].offset(), 0x8000)
	hw.CheckRegAddr("tx_security", r.security.tx_security.control.offset(), 0x8800)
	hw.CheckRegAddr("rx_link_security", r.security.rx_link_security.capabilities.offset(), 0x8f00)
	hw.CheckRegAddr("flexible_filters", r.filter_ram.flexible_filters[0][0][0].offset(), 0x9000)
	hw.CheckRegAddr("vlan_filter", r.filter_ram.vlan_filter[0].offset(), 0xa000)
	hw.CheckRegAddr("rx_dma1", r.rx_dma1[0].descriptor_address[0].offset(), 0xd000)
	hw.CheckRegAddr("ethernet_type_queue_select", r.classify.ethernet_type_queue_select[0].offset(), 0xec00)
	hw.CheckRegAddr("fcoe_redirection", r.classify.fcoe_redirection.control.offset(), 0xed00)
	hw.CheckRegAddr("flow_director", r.classify.flow_director.control.offset(), 0xee00)
	hw.CheckRegAddr("classify_pf", r.classify.pf.l2_control[0].offset(), 0xf000)
	hw.CheckRegAddr("eeprom_flash_control", r.management.eeprom_flash_control.offset(), 0x10010)
	hw.CheckRegAddr("pcie", r.management.pcie.control.offset(), 0x11000)
	hw.CheckRegAddr("core_analog_config", r.extended.core_analog_config.offset(), 0x14f00)
	hw.CheckRegAddr("sfp_i2c", r.extended.sfp_i2c.command.offset(), 0x15f58)
	hw.CheckRegAddr("regs", uint(unsafe.Sizeof(*r)), barSize)
}
