// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package gv11b implements the Volta Tegra leaves.
package gv11b

import (
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/internal/gm20b"
	"github.com/platinasystems/gpu/internal/gp10b"
	"github.com/platinasystems/gpu/ops"
)

var litter = gm20b.Litter{
	ops.NumGPCs:        1,
	ops.NumPESPerGPC:   3,
	ops.NumTPCPerGPC:   4,
	ops.NumFBPs:        1,
	ops.NumLTCLTSSets:  0x80,
	ops.GPCStride:      0x8000,
	ops.TPCInGPCStride: 0x800,
	ops.PPCInGPCStride: 0x200,
}

const fuseStatusOptPES = 0x00021c78

func New(r hw.Regs) ops.Table {
	top := Top{gm20b.Top{Regs: r, L: litter}}
	fuse := Fuse{gm20b.Fuse{Regs: r}}
	return ops.Table{
		MC:       gm20b.MC{Regs: r},
		Bus:      gm20b.Bus{Regs: r},
		Runlist:  Runlist{gm20b.Runlist{Regs: r}},
		MM:       gp10b.MM{MM: gm20b.MM{Regs: r}},
		Therm:    Therm{gm20b.Therm{Regs: r}},
		Top:      top,
		PrivRing: gp10b.PrivRing{PrivRing: gm20b.PrivRing{Regs: r}},
		Fuse:     fuse,
		Ptimer:   gm20b.Ptimer{Regs: r},
		Gr:       gm20b.Gr{Fuse: fuse, Top: top},
		Litter:   litter,
		Unsupported: []ops.Capability{
			ops.CapBusBAR0Window,
			ops.CapThermTemp,
			ops.CapFusePDI,
		},
	}
}

type Fuse struct{ gm20b.Fuse }

func (f Fuse) StatusOptPESGPC(gpc uint32) uint32 {
	return f.Regs.Read32(fuseStatusOptPES + 4*gpc)
}

type Top struct{ gm20b.Top }

func (t Top) NumLCE() uint32 { return t.NumCEs() }

type Therm struct{ gm20b.Therm }

const thermGateCtrlEngines = 16

func (Therm) ELCGEngines() uint32 { return thermGateCtrlEngines }

func (t Therm) SetELCGMode(engine uint32, mode ops.ELCGMode) {
	t.ModifyGateCtrl(engine, thermGateCtrlEngines, mode)
}

func (Therm) GradSteppingPDivDuration() uint32 { return 0xbf4a }
