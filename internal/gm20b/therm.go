// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package gm20b

import (
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/ops"
)

type Therm struct{ Regs hw.Regs }

// Tegra temperature comes from the SoC thermal driver.
func (Therm) CurrentTemp() int32 { return 0 }

func (Therm) ELCGEngines() uint32 { return thermGateCtrlEngines }

func (t Therm) SetELCGMode(engine uint32, mode ops.ELCGMode) {
	t.ModifyGateCtrl(engine, thermGateCtrlEngines, mode)
}

// ModifyGateCtrl sets the ELCG mode of one of n engine gate controls.
func (t Therm) ModifyGateCtrl(engine, n uint32, mode ops.ELCGMode) {
	if engine >= n {
		return
	}
	hw.Modify(t.Regs, thermGateCtrl+4*engine, 0, 2, uint32(mode))
}

func (Therm) MaxFPDivFactor() uint32           { return 0x1f }
func (Therm) GradSteppingPDivDuration() uint32 { return 32 }
