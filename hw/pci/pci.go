// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Generic devices on PCI bus.
package pci

import (
	"fmt"
)

type VendorID uint16
type VendorDeviceID uint16

func (d VendorDeviceID) String() string { return fmt.Sprintf("0x%04x", uint16(d)) }

// Vendor/Device pair
type DeviceID struct {
	Vendor VendorID
	Device VendorDeviceID
}

type BusAddress struct {
	Domain        uint16
	Bus, Slot, Fn uint8
}

func (a BusAddress) String() string {
	return fmt.Sprintf("%04x:%02x:%02x.%01x", a.Domain, a.Bus, a.Slot, a.Fn)
}

// Resource is one BAR of a device.  It satisfies hw.Mapper: Map
// returns a window of the memory mapped BAR.
type Resource struct {
	Index      uint32 // index of BAR
	Base, Size uint64

	dev *Device
	mem []byte
}

func (r *Resource) String() string {
	return fmt.Sprintf("{%d: 0x%x-0x%x}", r.Index, r.Base, r.Base+r.Size-1)
}

type Device struct {
	Addr      BusAddress
	ID        DeviceID
	Resources []Resource
}

func (d *Device) String() string {
	return fmt.Sprintf("%s %04x:%s", &d.Addr, uint16(d.ID.Vendor), d.ID.Device)
}

func (d *Device) VendorID() VendorID       { return d.ID.Vendor }
func (d *Device) DeviceID() VendorDeviceID { return d.ID.Device }

// Resource returns BAR index bar; it errors on holes in the BAR list
// (io space or unimplemented BARs have zero size).
func (d *Device) Resource(bar uint) (r *Resource, err error) {
	for i := range d.Resources {
		if uint(d.Resources[i].Index) == bar {
			r = &d.Resources[i]
			if r.Size == 0 {
				r, err = nil, fmt.Errorf("%s: BAR%d not implemented", d, bar)
			}
			return
		}
	}
	err = fmt.Errorf("%s: no BAR%d", d, bar)
	return
}
