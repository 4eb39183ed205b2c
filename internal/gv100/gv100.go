// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package gv100 implements the Volta discrete leaves.
package gv100

import (
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/internal/gm20b"
	"github.com/platinasystems/gpu/internal/gp10b"
	"github.com/platinasystems/gpu/internal/gv11b"
	"github.com/platinasystems/gpu/ops"
)

var litter = gm20b.Litter{
	ops.NumGPCs:        6,
	ops.NumPESPerGPC:   3,
	ops.NumTPCPerGPC:   7,
	ops.NumFBPs:        16,
	ops.NumLTCLTSSets:  0x80,
	ops.GPCStride:      0x8000,
	ops.TPCInGPCStride: 0x800,
	ops.PPCInGPCStride: 0x200,
}

// Extend returns the gv100 table with litter l, shared by later
// discrete chips.
func Extend(r hw.Regs, l ops.Litter) ops.Table {
	top := gv11b.Top{Top: gm20b.Top{Regs: r, L: l}}
	fuse := gv11b.Fuse{Fuse: gm20b.Fuse{Regs: r}}
	return ops.Table{
		MC:       gm20b.MC{Regs: r},
		Bus:      Bus{gm20b.Bus{Regs: r}},
		Clk:      Clk{r},
		Runlist:  Runlist{gv11b.Runlist{Runlist: gm20b.Runlist{Regs: r}}},
		MM:       MM{gp10b.MM{MM: gm20b.MM{Regs: r}}},
		Therm:    Therm{gv11b.Therm{Therm: gm20b.Therm{Regs: r}}},
		Top:      top,
		PrivRing: gp10b.PrivRing{PrivRing: gm20b.PrivRing{Regs: r}},
		Fuse:     fuse,
		Ptimer:   gm20b.Ptimer{Regs: r},
		Gr:       gm20b.Gr{Fuse: fuse, Top: top},
		Litter:   l,
		Unsupported: []ops.Capability{
			ops.CapMMIOMMU,
			ops.CapFusePDI,
		},
	}
}

func New(r hw.Regs) ops.Table { return Extend(r, litter) }

type Bus struct{ gm20b.Bus }

const (
	busBar0Window          = 0x00001700
	bar0WindowBaseShift    = 16
	bar0WindowBaseWidth    = 24
	bar0WindowTargetShift  = 24
	bar0WindowSize         = 1 << 20
	bar0WindowTargetVidmem = 0
)

// SetBAR0Window aligns the PRAMIN window to the 1MiB block holding addr.
func (b Bus) SetBAR0Window(addr uint64) uint32 {
	base := uint32((addr&^(bar0WindowSize-1))>>bar0WindowBaseShift) &
		hw.Mask(bar0WindowBaseWidth)
	b.Regs.Write32(busBar0Window,
		base|bar0WindowTargetVidmem<<bar0WindowTargetShift)
	return uint32(addr & (bar0WindowSize - 1))
}

type MM struct{ gp10b.MM }

// IOMMUBit is zero; discrete memory is not translated by an SMMU.
func (MM) IOMMUBit() uint { return 0 }

type Runlist struct{ gv11b.Runlist }

func (Runlist) CountMax() uint32 { return 7 }

type Therm struct{ gv11b.Therm }

const (
	thermTSense           = 0x00020460
	tsenseStateShift      = 29
	tsenseStateValid      = 1
	tsenseFixedPointShift = 3
	tsenseFixedPointWidth = 14
	tsenseFractionBits    = 5
)

// CurrentTemp decodes the signed 9.5 fixed point sensor reading.
func (t Therm) CurrentTemp() int32 {
	r := t.Regs.Read32(thermTSense)
	if hw.Field(r, tsenseStateShift, 2) != tsenseStateValid {
		return 0
	}
	fp := hw.Field(r, tsenseFixedPointShift, tsenseFixedPointWidth)
	// sign extend
	v := int32(fp<<(32-tsenseFixedPointWidth)) >> (32 - tsenseFixedPointWidth)
	return v * 1000 / (1 << tsenseFractionBits)
}
