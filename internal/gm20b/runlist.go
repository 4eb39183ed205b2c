// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package gm20b

import (
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/ops"
)

const (
	TimesliceTimeoutMax = 0xff
	TimesliceScaleMax   = 0xf
	LengthMax           = 0xffff
)

// EncodeTimeslice halves the timeout until it fits the 8 bit field,
// counting the halvings in scale. Overflowing the scale clamps both.
func EncodeTimeslice(timeout uint32) (uint32, uint32) {
	scale := uint32(0)
	for timeout > TimesliceTimeoutMax {
		timeout >>= 1
		scale++
	}
	if scale > TimesliceScaleMax {
		return TimesliceTimeoutMax, TimesliceScaleMax
	}
	return timeout, scale
}

// Runlist uses 8 byte entries and the global submit registers.
type Runlist struct{ Regs hw.Regs }

const (
	rlEntryIDWidth      = 12
	rlEntryTypeTSG      = 1 << 13
	rlEntryScaleShift   = 14
	rlEntryTimeoutShift = 18
	rlEntryTSGLenShift  = 26
	rlEntryTSGLenWidth  = 6

	runlistEngineShift = 20
	runlistPending     = 1 << 20
	runlistTargetShift = 28
	runlistPtrShift    = 12
	runlistPtrWidth    = 28
)

func (Runlist) CountMax() uint32          { return 2 }
func (Runlist) EntrySize() uint32         { return 8 }
func (Runlist) LengthMax() uint32         { return LengthMax }
func (Runlist) MaxChannelsPerTSG() uint32 { return 128 }

func (Runlist) MaxTimeslice() uint32 {
	return TimesliceTimeoutMax << TimesliceScaleMax
}

func (Runlist) TSGEntry(tsgid, timesliceUs, length uint32) []uint32 {
	timeout, scale := EncodeTimeslice(timesliceUs)
	return []uint32{
		tsgid&hw.Mask(rlEntryIDWidth) |
			rlEntryTypeTSG |
			scale<<rlEntryScaleShift |
			timeout<<rlEntryTimeoutShift |
			(length&hw.Mask(rlEntryTSGLenWidth))<<rlEntryTSGLenShift,
		0,
	}
}

func (Runlist) ChannelEntry(ch ops.Channel) []uint32 {
	return []uint32{ch.ID & hw.Mask(rlEntryIDWidth), 0}
}

func (rl Runlist) Submit(runlist uint32, base uint64, a ops.Aperture,
	count uint32) {
	if count != 0 {
		rl.Regs.Write32(fifoRunlistBase,
			uint32(base>>runlistPtrShift)&hw.Mask(runlistPtrWidth)|
				Target(a)<<runlistTargetShift)
	}
	rl.Regs.Write32(fifoRunlist,
		runlist<<runlistEngineShift|count&hw.Mask(16))
}

func (rl Runlist) Pending(runlist uint32) bool {
	return rl.Regs.Read32(fifoEngRunlist+8*runlist)&runlistPending != 0
}

func (rl Runlist) WriteState(mask uint32, enable bool) {
	if enable {
		hw.AndNot(rl.Regs, fifoSchedDisable, mask)
	} else {
		hw.Or(rl.Regs, fifoSchedDisable, mask)
	}
}
