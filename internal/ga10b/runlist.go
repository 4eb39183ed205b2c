// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package ga10b

import (
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/internal/gm20b"
	"github.com/platinasystems/gpu/internal/gv11b"
	"github.com/platinasystems/gpu/ops"
)

// Offsets from a runlist PRI base.
const (
	runlistSubmitBaseLo = 0x80
	runlistSubmitBaseHi = 0x84
	runlistSubmit       = 0x88
	runlistSubmitInfo   = 0x8c
	runlistSchedDisable = 0x94

	runlistPtrShift      = 12
	runlistPtrWidth      = 20
	runlistLengthWidth   = 16
	runlistSubmitPending = 1 << 15
	runlistSchedDisabled = 1
	runlistSchedEnabled  = 0
)

// Runlist addresses each runlist through the PRI base found in device
// info when the table is bound.
type Runlist struct {
	gv11b.Runlist
	bases map[uint32]uint32
}

func NewRunlist(r hw.Regs, top ops.Top) Runlist {
	return Runlist{
		Runlist: gv11b.Runlist{Runlist: gm20b.Runlist{Regs: r}},
		bases:   priBases(top),
	}
}

func (Runlist) CountMax() uint32 { return 6 }

// priBases maps runlist to PRI base; runlists with no engines are absent.
func priBases(top ops.Top) map[uint32]uint32 {
	m := make(map[uint32]uint32)
	devs, err := top.Devices()
	if err != nil {
		return m
	}
	for _, d := range devs {
		if _, found := m[d.Runlist]; !found && d.RunlistPriBase != 0 {
			m[d.Runlist] = d.RunlistPriBase
		}
	}
	return m
}

func (rl Runlist) priBase(runlist uint32) uint32 {
	return rl.bases[runlist]
}

func (rl Runlist) Submit(runlist uint32, base uint64, a ops.Aperture,
	count uint32) {
	pri := rl.priBase(runlist)
	if pri == 0 {
		return
	}
	if count != 0 {
		rl.Regs.Write32(pri+runlistSubmitBaseLo,
			(uint32(base>>runlistPtrShift)&hw.Mask(runlistPtrWidth))<<
				runlistPtrShift|gm20b.Target(a))
		rl.Regs.Write32(pri+runlistSubmitBaseHi, uint32(base>>32))
	}
	rl.Regs.Write32(pri+runlistSubmit, count&hw.Mask(runlistLengthWidth))
}

func (rl Runlist) Pending(runlist uint32) bool {
	pri := rl.priBase(runlist)
	if pri == 0 {
		return false
	}
	return rl.Regs.Read32(pri+runlistSubmitInfo)&runlistSubmitPending != 0
}

// WriteState enables or disables scheduling of each runlist in mask.
func (rl Runlist) WriteState(mask uint32, enable bool) {
	v := uint32(runlistSchedDisabled)
	if enable {
		v = runlistSchedEnabled
	}
	for runlist, pri := range rl.bases {
		if runlist < 32 && mask&hw.Bit(uint(runlist)) != 0 {
			rl.Regs.Write32(pri+runlistSchedDisable, v)
		}
	}
}
