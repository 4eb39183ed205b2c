// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package ga10b

import (
	"testing"

	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/internal/test"
	"github.com/platinasystems/gpu/ops"
)

func deviceInfo(rows ...uint32) map[uint32]uint32 {
	m := map[uint32]uint32{
		topDeviceInfoCfg: uint32(len(rows)) << devInfoRowsShift,
	}
	for i, r := range rows {
		m[topDeviceInfo2+4*uint32(i)] = r
	}
	return m
}

var orin = deviceInfo(
	0,
	// gr
	0x80000000,
	0xc0400010,
	0x00002000,
	// lce
	0x93010015,
	0xc0104011,
	0x00002401,
	// not an engine
	0x05000000,
)

func TestDevices(t *testing.T) {
	assert := test.Assert{TB: t}
	devs, err := New(hw.NewSim(orin)).Top.Devices()
	assert.Nil(err)
	assert.Equal(devs, []ops.DeviceInfo{
		{
			EngineType:     ops.EngineGR,
			Reset:          0x10,
			PriBase:        0x400000,
			RunlistPriBase: 0x2000,
		},
		{
			EngineType:     ops.EngineLCE,
			Inst:           1,
			EngineID:       1,
			Runlist:        1,
			Reset:          0x11,
			FaultID:        0x15,
			PriBase:        0x104000,
			RunlistPriBase: 0x2400,
			RlEngineID:     1,
		},
	})
}

func TestDevicesMalformed(t *testing.T) {
	for name, m := range map[string]map[uint32]uint32{
		"unterminated": deviceInfo(0x80000000),
		"too long": deviceInfo(0x80000000, 0x80000000, 0x80000000,
			0x00000000),
		"too many rows": {topDeviceInfoCfg: 0x101 << devInfoRowsShift},
	} {
		_, err := New(hw.NewSim(m)).Top.Devices()
		test.Assert{TB: t}.Error(err, ops.ErrDeviceInfo)
		t.Log(name, err)
	}
}

func TestRunlist(t *testing.T) {
	assert := test.Assert{TB: t}
	sim := hw.NewSim(orin)
	rl := New(sim).Runlist

	rl.Submit(1, 0x1_0000_3000, ops.ApertureVidmem, 5)
	assert.Equal(sim.Read32(0x2480), uint32(0x3000))
	assert.Equal(sim.Read32(0x2484), uint32(1))
	assert.Equal(sim.Read32(0x2488), uint32(5))

	assert.False(rl.Pending(1))
	sim.Write32(0x248c, runlistSubmitPending)
	assert.True(rl.Pending(1))
	assert.False(rl.Pending(5))

	rl.WriteState(3, false)
	assert.Equal(sim.Read32(0x2094), uint32(1))
	assert.Equal(sim.Read32(0x2494), uint32(1))
	rl.WriteState(1, true)
	assert.Equal(sim.Read32(0x2094), uint32(0))
	assert.Equal(sim.Read32(0x2494), uint32(1))
}

type counting struct {
	hw.Regs
	reads int
}

func (c *counting) Read32(offset uint32) uint32 {
	c.reads++
	return c.Regs.Read32(offset)
}

func TestRunlistBounded(t *testing.T) {
	assert := test.Assert{TB: t}
	rows := make([]uint32, topDeviceInfoRows)
	copy(rows, []uint32{
		0x80000000,
		0xc0400010,
		0x00002000,
	})
	r := &counting{Regs: hw.NewSim(deviceInfo(rows...))}
	rl := New(r).Runlist

	r.reads = 0
	assert.False(rl.Pending(0))
	assert.Equal(r.reads, 1)

	r.reads = 0
	rl.Submit(0, 0x3000, ops.ApertureVidmem, 1)
	rl.WriteState(1, false)
	assert.Equal(r.reads, 0)
	assert.Equal(r.Read32(0x2088), uint32(1))
	assert.Equal(r.Read32(0x2094), uint32(1))
}

func TestDecodeErrorCode(t *testing.T) {
	var p PrivRing
	for _, x := range []struct {
		code         uint32
		group, cause string
		extra        uint32
	}{
		{0xbad00100, "host pri", "host pri timeout error", 0},
		{0xbad00f12, "host fecs", "host fecs error", 0x12},
		{0xbad0b000, "host fb", "fb ack timeout error", 0},
		{0xbad0b500, "unknown", "undefined", 0},
		{0xbadf1000, "fecs client", "client timeout", 0},
		{0xbadf1a00, "fecs client", "undefined", 0},
		{0xbadf1f00, "fecs client", "undefined", 0},
		{0xbadf2301, "fecs orphan", "target powergated", 1},
		{0xbadf3100, "fecs ring", "priv ring dead low power", 0},
		{0xbadf4100, "fecs trap", "target mask violation", 0},
		{0xbadf5300, "fecs client error", "local priv ring error", 0},
		{0xbadf6000, "fecs security", "lock from security sensor", 0},
		{0x00000000, "unknown", "undefined", 0},
	} {
		e := p.DecodeErrorCode(x.code)
		if e.Group != x.group || e.Cause != x.cause || e.Extra != x.extra {
			t.Errorf("0x%08x: %v extra 0x%x", x.code, e, e.Extra)
		}
	}
}

func TestTable(t *testing.T) {
	assert := test.Assert{TB: t}
	sim := hw.NewSim(map[uint32]uint32{
		fuseOptPDI0: 0x89abcdef,
		fuseOptPDI1: 0x01234567,
	})
	tbl := New(sim)
	assert.Equal(tbl.Fill(), []ops.Capability{ops.CapClk})
	assert.True(tbl.Supported(ops.CapFusePDI))
	assert.Equal(tbl.Fuse.PerDeviceIdentifier(), uint64(0x0123456789abcdef))
	assert.Equal(tbl.MM.IOMMUBit(), uint(36))
}
