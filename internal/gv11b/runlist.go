// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package gv11b

import (
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/internal/gm20b"
	"github.com/platinasystems/gpu/ops"
)

// Runlist keeps the gm20b submit registers with 16 byte entries.
type Runlist struct{ gm20b.Runlist }

const (
	rlEntryTypeTSG      = 1 << 0
	rlEntryRunqueueSel  = 1 << 1
	rlEntryUserdTarget  = 2
	rlEntryInstTarget   = 4
	rlEntryScaleShift   = 16
	rlEntryTimeoutShift = 24
	rlEntryTSGLenWidth  = 8
	rlEntryIDWidth      = 12
	rlEntryUserdShift   = 8
	rlEntryInstShift    = 12
)

func (Runlist) EntrySize() uint32         { return 16 }
func (Runlist) MaxChannelsPerTSG() uint32 { return 64 }

func (Runlist) TSGEntry(tsgid, timesliceUs, length uint32) []uint32 {
	return TSGEntry(tsgid, timesliceUs, length)
}

func (Runlist) ChannelEntry(ch ops.Channel) []uint32 {
	return ChannelEntry(ch)
}

// TSGEntry encodes a 16 byte TSG header entry.
func TSGEntry(tsgid, timesliceUs, length uint32) []uint32 {
	timeout, scale := gm20b.EncodeTimeslice(timesliceUs)
	return []uint32{
		rlEntryTypeTSG |
			scale<<rlEntryScaleShift |
			timeout<<rlEntryTimeoutShift,
		length & hw.Mask(rlEntryTSGLenWidth),
		tsgid & hw.Mask(rlEntryIDWidth),
		0,
	}
}

// ChannelEntry encodes a 16 byte channel entry with USERD and instance
// block pointers.
func ChannelEntry(ch ops.Channel) []uint32 {
	w0 := uint32(ch.UserdAddr) &^ hw.Mask(rlEntryUserdShift)
	w0 |= gm20b.Target(ch.UserdAperture) << rlEntryUserdTarget
	w0 |= gm20b.Target(ch.InstAperture) << rlEntryInstTarget
	if ch.RunqueueSel != 0 {
		w0 |= rlEntryRunqueueSel
	}
	return []uint32{
		w0,
		uint32(ch.UserdAddr >> 32),
		uint32(ch.InstAddr)&^hw.Mask(rlEntryInstShift) |
			ch.ID&hw.Mask(rlEntryIDWidth),
		uint32(ch.InstAddr >> 32),
	}
}
