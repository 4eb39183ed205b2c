// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package ga100

import (
	"testing"

	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/internal/test"
	"github.com/platinasystems/gpu/ops"
)

func TestTable(t *testing.T) {
	assert := test.Assert{TB: t}
	sim := hw.NewSim(map[uint32]uint32{
		0x000224fc: 3 << 20,
		0x00022800: 0x80000000,
		0x00022804: 0xc0400010,
		0x00022808: 0x00003000,
		0x00020460: 0x20002d80,
		0x00021344: 0xdeadbeef,
		0x00021c1c: 0xfe,
		0x00022430: 8,
	})
	tbl := New(sim)
	assert.Equal(tbl.Fill(), []ops.Capability(nil))
	assert.Nil(tbl.Check())

	supported, unsupported := tbl.Capabilities()
	assert.Equal(unsupported, []ops.Capability{ops.CapMMIOMMU})
	assert.Equal(len(supported), len(ops.Capabilities())-1)

	devs, err := tbl.Top.Devices()
	assert.Nil(err)
	assert.Equal(len(devs), 1)
	assert.Equal(devs[0].RunlistPriBase, uint32(0x3000))

	tbl.Runlist.Submit(0, 0x5000, ops.ApertureVidmem, 2)
	assert.Equal(sim.Read32(0x3080), uint32(0x5000))
	assert.Equal(sim.Read32(0x3088), uint32(2))
	assert.Equal(tbl.Runlist.CountMax(), uint32(16))

	assert.Equal(tbl.Therm.CurrentTemp(), int32(45500))
	assert.Equal(tbl.Fuse.PerDeviceIdentifier(), uint64(0xdeadbeef))
	assert.Equal(tbl.Gr.GPCMask(), uint32(1))
	assert.Equal(tbl.PrivRing.DecodeErrorCode(0xbadf5100).Cause,
		"priv level violation")
	assert.Equal(tbl.Bus.SetBAR0Window(0x200010), uint32(0x10))
}
