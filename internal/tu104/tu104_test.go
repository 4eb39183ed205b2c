// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package tu104

import (
	"testing"

	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/internal/test"
	"github.com/platinasystems/gpu/ops"
)

func TestSubmit(t *testing.T) {
	assert := test.Assert{TB: t}
	sim := hw.NewSim(nil)
	rl := New(sim).Runlist

	rl.Submit(2, 0x3_8765_4000, ops.ApertureSysmemCoh, 12)
	assert.Equal(sim.Read32(fifoRunlistBaseLo+32), uint32(0x87654002))
	assert.Equal(sim.Read32(fifoRunlistBaseHi+32), uint32(3))
	assert.Equal(sim.Read32(fifoRunlistSubmit+32), uint32(12))

	rl.Submit(2, 0, ops.ApertureVidmem, 0)
	assert.Equal(sim.Writes(fifoRunlistBaseLo+32), uint(1))
	assert.Equal(sim.Read32(fifoRunlistSubmit+32), uint32(0))

	assert.False(rl.Pending(2))
	sim.Write32(fifoRunlistSubmitInfo+32, runlistSubmitPending)
	assert.True(rl.Pending(2))
	assert.False(rl.Pending(1))
	assert.Equal(rl.CountMax(), uint32(11))
	assert.Equal(rl.EntrySize(), uint32(16))
}

func TestTable(t *testing.T) {
	tbl := New(hw.NewSim(nil))
	if err := tbl.Check(); err != nil {
		t.Fatal(err)
	}
	if n := tbl.Litter.Litter(ops.NumFBPs); n != 8 {
		t.Error("fbps", n)
	}
	if !tbl.Supported(ops.CapBusBAR0Window) {
		t.Error("bar0 window")
	}
}
