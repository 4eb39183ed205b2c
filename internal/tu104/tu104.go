// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package tu104 implements the Turing leaves: gv100 with per runlist
// submit registers.
package tu104

import (
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/internal/gm20b"
	"github.com/platinasystems/gpu/internal/gv100"
	"github.com/platinasystems/gpu/internal/gv11b"
	"github.com/platinasystems/gpu/ops"
)

var litter = gm20b.Litter{
	ops.NumGPCs:        6,
	ops.NumPESPerGPC:   3,
	ops.NumTPCPerGPC:   4,
	ops.NumFBPs:        8,
	ops.NumLTCLTSSets:  0x80,
	ops.GPCStride:      0x8000,
	ops.TPCInGPCStride: 0x800,
	ops.PPCInGPCStride: 0x200,
}

func Extend(r hw.Regs, l ops.Litter) ops.Table {
	t := gv100.Extend(r, l)
	t.Runlist = Runlist{gv11b.Runlist{Runlist: gm20b.Runlist{Regs: r}}}
	return t
}

func New(r hw.Regs) ops.Table { return Extend(r, litter) }

type Runlist struct{ gv11b.Runlist }

const (
	fifoRunlistBaseLo     = 0x00002b00
	fifoRunlistBaseHi     = 0x00002b04
	fifoRunlistSubmit     = 0x00002b08
	fifoRunlistSubmitInfo = 0x00002b0c
	fifoRunlistStride     = 16

	runlistPtrShift      = 12
	runlistPtrWidth      = 20
	runlistLengthWidth   = 16
	runlistSubmitPending = 1 << 15
)

func (Runlist) CountMax() uint32 { return 11 }

func (rl Runlist) Submit(runlist uint32, base uint64, a ops.Aperture,
	count uint32) {
	o := runlist * fifoRunlistStride
	if count != 0 {
		rl.Regs.Write32(fifoRunlistBaseLo+o,
			(uint32(base>>runlistPtrShift)&hw.Mask(runlistPtrWidth))<<
				runlistPtrShift|gm20b.Target(a))
		rl.Regs.Write32(fifoRunlistBaseHi+o, uint32(base>>32))
	}
	rl.Regs.Write32(fifoRunlistSubmit+o, count&hw.Mask(runlistLengthWidth))
}

func (rl Runlist) Pending(runlist uint32) bool {
	return rl.Regs.Read32(fifoRunlistSubmitInfo+runlist*fifoRunlistStride)&
		runlistSubmitPending != 0
}
