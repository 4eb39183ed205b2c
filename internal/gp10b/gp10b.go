// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package gp10b implements the Pascal Tegra leaves on top of gm20b.
package gp10b

import (
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/internal/gm20b"
	"github.com/platinasystems/gpu/ops"
)

var litter = gm20b.Litter{
	ops.NumGPCs:        1,
	ops.NumPESPerGPC:   1,
	ops.NumTPCPerGPC:   2,
	ops.NumFBPs:        1,
	ops.NumLTCLTSSets:  0,
	ops.GPCStride:      0x8000,
	ops.TPCInGPCStride: 0x800,
	ops.PPCInGPCStride: 0x200,
}

// New leaves Clk empty; Tegra clocks are owned by the BPMP firmware.
func New(r hw.Regs) ops.Table {
	top := gm20b.Top{Regs: r, L: litter}
	fuse := gm20b.Fuse{Regs: r}
	return ops.Table{
		MC:       gm20b.MC{Regs: r},
		Bus:      gm20b.Bus{Regs: r},
		Runlist:  gm20b.Runlist{Regs: r},
		MM:       MM{gm20b.MM{Regs: r}},
		Therm:    gm20b.Therm{Regs: r},
		Top:      top,
		PrivRing: PrivRing{gm20b.PrivRing{Regs: r}},
		Fuse:     fuse,
		Ptimer:   gm20b.Ptimer{Regs: r},
		Gr:       gm20b.Gr{Fuse: fuse, Top: top},
		Litter:   litter,
		Unsupported: []ops.Capability{
			ops.CapBusBAR0Window,
			ops.CapThermTemp,
			ops.CapFusePES,
			ops.CapFusePDI,
			ops.CapTopLCE,
		},
	}
}

type MM struct{ gm20b.MM }

const (
	sz64K  = 64 << 10
	sz128K = 128 << 10
)

func (MM) DefaultBigPageSize() uint32    { return sz64K }
func (MM) AvailableBigPageSizes() uint32 { return sz64K | sz128K }

func (MM) DefaultVASizes() (aperture, user, kernel uint64) {
	return 1 << 49, 1 << 37, 1 << 32
}

func (MM) IOMMUBit() uint { return 36 }
