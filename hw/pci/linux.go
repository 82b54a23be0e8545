// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pci

// Linux PCI code

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"syscall"
)

var sysBusPciPath = "/sys/bus/pci/devices"

func (d *Device) SysfsPath(format string, args ...interface{}) (path string) {
	path = filepath.Join(sysBusPciPath, d.Addr.String(), fmt.Sprintf(format, args...))
	return
}

func (d *Device) sysfsOpenFile(format string, mode int, args ...interface{}) (f *os.File, err error) {
	return os.OpenFile(d.SysfsPath(format, args...), mode, 0)
}

func (d *Device) sysfsReadHexFile(name string) (v uint, err error) {
	f, err := d.sysfsOpenFile(name, os.O_RDONLY)
	if err != nil {
		return
	}
	defer f.Close()
	if n, err1 := fmt.Fscanf(f, "0x%x", &v); n != 1 {
		err = fmt.Errorf("%s: %s", d.SysfsPath(name), err1)
	}
	return
}

func (d *Device) configRw(offset, vʹ, nBytes uint, isWrite bool) (v uint, err error) {
	f, err := d.sysfsOpenFile("config", os.O_RDWR)
	if err != nil {
		return
	}
	defer f.Close()
	if _, err = f.Seek(int64(offset), 0); err != nil {
		return
	}
	var b [4]byte
	if isWrite {
		for i := range b {
			b[i] = byte((vʹ >> uint(8*i)) & 0xff)
		}
		_, err = f.Write(b[:nBytes])
		v = vʹ
	} else {
		if _, err = f.Read(b[:nBytes]); err == nil {
			for i := range b {
				v |= uint(b[i]) << (8 * uint(i))
			}
		}
	}
	return
}

func (d *Device) ReadConfigUint32(o uint) (uint32, error) {
	v, err := d.configRw(o, 0, 4, false)
	return uint32(v), err
}
func (d *Device) WriteConfigUint32(o uint, value uint32) (err error) {
	_, err = d.configRw(o, uint(value), 4, true)
	return
}
func (d *Device) ReadConfigUint16(o uint) (uint16, error) {
	v, err := d.configRw(o, 0, 2, false)
	return uint16(v), err
}
func (d *Device) WriteConfigUint16(o uint, value uint16) (err error) {
	_, err = d.configRw(o, uint(value), 2, true)
	return
}

// Map satisfies hw.Mapper.  The whole BAR is mapped once; windows are
// subslices of the one mapping.
func (r *Resource) Map(offset, size uint) (mem []byte, err error) {
	if r.mem == nil {
		var f *os.File
		f, err = r.dev.sysfsOpenFile("resource%d", os.O_RDWR, r.Index)
		if err != nil {
			return
		}
		defer f.Close()
		r.mem, err = syscall.Mmap(int(f.Fd()), 0, int(r.Size),
			syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
		if err != nil {
			err = fmt.Errorf("mmap resource%d: %s", r.Index, err)
			return
		}
	}
	if uint64(offset)+uint64(size) > r.Size {
		err = fmt.Errorf("resource%d: window [0x%x,0x%x) outside BAR size 0x%x",
			r.Index, offset, offset+size, r.Size)
		return
	}
	mem = r.mem[offset : offset+size]
	return
}

// Unmap satisfies hw.Mapper.  Windows alias the single BAR mapping,
// which stays until Close.
func (r *Resource) Unmap(mem []byte) error { return nil }

func (r *Resource) Close() (err error) {
	if r.mem != nil {
		err = syscall.Munmap(r.mem)
		r.mem = nil
	}
	return
}

// Loop through BARs to find resources.
func (d *Device) findResources() (err error) {
	f, err := d.sysfsOpenFile("resource", os.O_RDONLY)
	if err != nil {
		return
	}
	defer f.Close()

	var b []byte
	if b, err = ioutil.ReadAll(f); err != nil {
		return
	}
	return d.parseResources(b)
}

func (d *Device) parseResources(b []byte) (err error) {
	r := bytes.NewReader(b)
	i := 0
	for r.Len() > 0 {
		var (
			v [3]uint64
			n int
		)
		if n, err = fmt.Fscanf(r, "0x%x 0x%x 0x%x\n", &v[0], &v[1], &v[2]); n != 3 || err != nil {
			if n != 3 {
				err = fmt.Errorf("short read")
			}
			return
		}
		size := v[0]
		if v[0] != 0 {
			size = 1 + v[1] - v[0]
		}
		d.Resources = append(d.Resources, Resource{
			Index: uint32(i),
			Base:  v[0],
			Size:  size,
			dev:   d,
		})
		i++
	}
	return
}

// DiscoverDevices scans sysfs and returns every PCI device with its
// identity and BAR resources filled in.  Nothing is mapped yet.
func DiscoverDevices() (devs []*Device, err error) {
	fis, err := ioutil.ReadDir(sysBusPciPath)
	if perr, ok := err.(*os.PathError); ok && perr.Err == syscall.ENOENT {
		err = nil
		return
	}
	if err != nil {
		return
	}
	for _, fi := range fis {
		d := &Device{}
		n := fi.Name()
		if _, err = fmt.Sscanf(n, "%x:%x:%x.%x",
			&d.Addr.Domain, &d.Addr.Bus, &d.Addr.Slot, &d.Addr.Fn); err != nil {
			return
		}
		var v [2]uint
		if v[0], err = d.sysfsReadHexFile("vendor"); err != nil {
			return
		}
		if v[1], err = d.sysfsReadHexFile("device"); err != nil {
			return
		}
		d.ID.Vendor = VendorID(v[0])
		d.ID.Device = VendorDeviceID(v[1])
		if err = d.findResources(); err != nil {
			return
		}
		devs = append(devs, d)
	}
	return
}
