// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package ga10b implements the Ampere Tegra leaves. Its runlist, device
// info, priv ring and fuse leaves are also used by ga100.
package ga10b

import (
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/internal/gm20b"
	"github.com/platinasystems/gpu/internal/gp10b"
	"github.com/platinasystems/gpu/internal/gv11b"
	"github.com/platinasystems/gpu/ops"
)

var litter = gm20b.Litter{
	ops.NumGPCs:        2,
	ops.NumPESPerGPC:   3,
	ops.NumTPCPerGPC:   4,
	ops.NumFBPs:        2,
	ops.NumLTCLTSSets:  0x80,
	ops.GPCStride:      0x8000,
	ops.TPCInGPCStride: 0x800,
	ops.PPCInGPCStride: 0x200,
}

func New(r hw.Regs) ops.Table {
	top := NewTop(r, litter)
	fuse := Fuse{gv11b.Fuse{Fuse: gm20b.Fuse{Regs: r}}}
	return ops.Table{
		MC:       gm20b.MC{Regs: r},
		Bus:      gm20b.Bus{Regs: r},
		Runlist:  NewRunlist(r, top),
		MM:       gp10b.MM{MM: gm20b.MM{Regs: r}},
		Therm:    gv11b.Therm{Therm: gm20b.Therm{Regs: r}},
		Top:      top,
		PrivRing: PrivRing{gm20b.PrivRing{Regs: r}},
		Fuse:     fuse,
		Ptimer:   gm20b.Ptimer{Regs: r},
		Gr:       gm20b.Gr{Fuse: fuse, Top: top},
		Litter:   litter,
		Unsupported: []ops.Capability{
			ops.CapBusBAR0Window,
			ops.CapThermTemp,
		},
	}
}

const (
	fuseOptPDI0 = 0x00021344
	fuseOptPDI1 = 0x00021348
)

type Fuse struct{ gv11b.Fuse }

func (f Fuse) PerDeviceIdentifier() uint64 {
	lo := f.Regs.Read32(fuseOptPDI0)
	hi := f.Regs.Read32(fuseOptPDI1)
	return uint64(lo) | uint64(hi)<<32
}
