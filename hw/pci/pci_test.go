// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResources(t *testing.T) {
	// sysfs resource format: start end flags, one line per BAR.
	b := []byte("" +
		"0x00000000fbd80000 0x00000000fbd9ffff 0x000000000014220c\n" +
		"0x0000000000000000 0x0000000000000000 0x0000000000000000\n" +
		"0x000000000000e020 0x000000000000e03f 0x0000000000040101\n")
	d := &Device{}
	require.NoError(t, d.parseResources(b))
	require.Len(t, d.Resources, 3)

	r0, err := d.Resource(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xfbd80000), r0.Base)
	assert.Equal(t, uint64(0x20000), r0.Size, "BAR0 spans the whole register file")

	_, err = d.Resource(1)
	assert.Error(t, err, "unimplemented BAR")
	_, err = d.Resource(9)
	assert.Error(t, err)
}

func TestBusAddressString(t *testing.T) {
	a := BusAddress{Domain: 0, Bus: 5, Slot: 0, Fn: 1}
	assert.Equal(t, "0000:05:00.1", a.String())
}

func TestDeviceIDString(t *testing.T) {
	assert.Equal(t, "0x10fb", VendorDeviceID(0x10fb).String())
}
