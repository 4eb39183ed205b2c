// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package gm20b implements the Maxwell Tegra leaves. Later chips embed
// these types and override what changed.
package gm20b

import (
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/ops"
)

// Litter maps per chip constants.
type Litter map[ops.LitterValue]uint32

func (l Litter) Litter(v ops.LitterValue) uint32 { return l[v] }

var litter = Litter{
	ops.NumGPCs:        1,
	ops.NumPESPerGPC:   1,
	ops.NumTPCPerGPC:   2,
	ops.NumFBPs:        1,
	ops.NumLTCLTSSets:  0,
	ops.GPCStride:      0x8000,
	ops.TPCInGPCStride: 0x800,
	ops.PPCInGPCStride: 0x200,
}

func New(r hw.Regs) ops.Table {
	top := Top{Regs: r, L: litter}
	fuse := Fuse{Regs: r}
	return ops.Table{
		MC:       MC{r},
		Bus:      Bus{r},
		Clk:      Clk{r},
		Runlist:  Runlist{r},
		MM:       MM{r},
		Therm:    Therm{r},
		Top:      top,
		PrivRing: PrivRing{r},
		Fuse:     fuse,
		Ptimer:   Ptimer{r},
		Gr:       Gr{Fuse: fuse, Top: top},
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

type MC struct{ Regs hw.Regs }

func (mc MC) ChipDetails() (arch, impl, rev uint32) {
	boot0 := mc.Regs.Read32(mcBoot0)
	arch = hw.Field(boot0, 24, 5) << 4
	impl = hw.Field(boot0, 20, 4)
	rev = hw.Field(boot0, 0, 8)
	return
}

func (mc MC) EnableUnits(mask uint32, enable bool) {
	if enable {
		hw.Or(mc.Regs, mcEnable, mask)
	} else {
		hw.AndNot(mc.Regs, mcEnable, mask)
	}
}

func (mc MC) IntrStallPending() uint32 { return mc.Regs.Read32(mcIntr0) }

type Bus struct{ Regs hw.Regs }

const (
	busIntrPriSquash    = 1 << 1
	busIntrPriFECSErr   = 1 << 2
	busIntrPriTimeout   = 1 << 3
	busBlockModeVirt    = 1 << 31
	busBlockTargetShift = 28
	busBlockPtrShift    = 12
	busBlockPtrWidth    = 28
)

func (b Bus) InitHW() {
	b.Regs.Write32(busIntrEn0,
		busIntrPriSquash|busIntrPriFECSErr|busIntrPriTimeout)
}

// BlockValue encodes an instance block for the BAR bind registers.
func BlockValue(inst uint64, a ops.Aperture) uint32 {
	ptr := uint32(inst>>busBlockPtrShift) & hw.Mask(busBlockPtrWidth)
	return ptr | Target(a)<<busBlockTargetShift | busBlockModeVirt
}

func (b Bus) BAR1Bind(inst uint64, a ops.Aperture) {
	b.Regs.Write32(busBar1Block, BlockValue(inst, a))
}

func (b Bus) BAR2Bind(inst uint64, a ops.Aperture) {
	b.Regs.Write32(busBar2Block, BlockValue(inst, a))
}

// BindPending is true while either BAR bind is pending or outstanding.
func (b Bus) BindPending() bool {
	return b.Regs.Read32(busBindStatus)&hw.Mask(4) != 0
}

func (Bus) SetBAR0Window(addr uint64) uint32 { return 0 }

// Target returns the 2 bit memory target field for an aperture.
func Target(a ops.Aperture) uint32 {
	switch a {
	case ops.ApertureSysmemCoh:
		return 2
	case ops.ApertureSysmemNonCoh:
		return 3
	}
	return 0
}

type MM struct{ Regs hw.Regs }

const (
	sz64K  = 64 << 10
	sz128K = 128 << 10
)

func (MM) DefaultBigPageSize() uint32    { return sz128K }
func (MM) AvailableBigPageSizes() uint32 { return sz64K | sz128K }

func (MM) DefaultVASizes() (aperture, user, kernel uint64) {
	return 1 << 38, 1 << 37, 1 << 32
}

func (MM) IOMMUBit() uint { return 34 }

func (mm MM) FBFlush()      { mm.Regs.Write32(flushFBFlush, flushPending) }
func (mm MM) L2FlushDirty() { mm.Regs.Write32(flushL2FlushDirty, flushPending) }
func (mm MM) L2Invalidate() {
	mm.Regs.Write32(flushL2SystemInvalidate, flushPending)
}

func (mm MM) FlushPending() bool {
	for _, o := range []uint32{
		flushFBFlush,
		flushL2SystemInvalidate,
		flushL2FlushDirty,
	} {
		if mm.Regs.Read32(o)&flushPendingOrOutstanding != 0 {
			return true
		}
	}
	return false
}

type Ptimer struct{ Regs hw.Regs }

const ptimerReadSamples = 3

// Read returns the 64 bit nanosecond timer. The high word is sampled on
// both sides of the low word so a carry between reads is detected.
func (p Ptimer) Read() uint64 {
	var lo uint32
	hi := p.Regs.Read32(ptimerTime1)
	for i := 0; i < ptimerReadSamples; i++ {
		lo = p.Regs.Read32(ptimerTime0)
		hi2 := p.Regs.Read32(ptimerTime1)
		if hi2 == hi {
			break
		}
		hi = hi2
	}
	return uint64(hi)<<32 | uint64(lo)
}

func (Ptimer) RegOffsets() (lo, hi uint32) { return ptimerTime0, ptimerTime1 }

// Gr floorsweeping masks derived from fuses.
type Gr struct {
	Fuse ops.Fuse
	Top  ops.Top
}

func (gr Gr) GPCMask() uint32 {
	return hw.EnabledMask(gr.Fuse.StatusOptGPC(), gr.Top.MaxGPCCount())
}

func (gr Gr) GPCTPCMask(gpc uint32) uint32 {
	return hw.EnabledMask(gr.Fuse.StatusOptTPCGPC(gpc), gr.Top.MaxTPCPerGPC())
}

func (gr Gr) PESMask(gpc uint32) uint32 {
	return hw.EnabledMask(gr.Fuse.StatusOptPESGPC(gpc), gr.Top.MaxPESPerGPC())
}
