// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package gm20b

import (
	"fmt"

	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/ops"
)

type Top struct {
	Regs hw.Regs
	L    ops.Litter
}

const topValueWidth = 5

func (t Top) value(o uint32) uint32 {
	return hw.Field(t.Regs.Read32(o), 0, topValueWidth)
}

func (t Top) MaxGPCCount() uint32  { return t.value(topNumGPCs) }
func (t Top) MaxTPCPerGPC() uint32 { return t.value(topTPCPerGPC) }
func (t Top) MaxFBPsCount() uint32 { return t.value(topNumFBPs) }
func (t Top) MaxLTCPerFBP() uint32 { return t.value(topLTCPerFBP) }
func (t Top) MaxLTSPerLTC() uint32 { return t.value(topSlicesPerLTC) }
func (t Top) NumLTCs() uint32      { return t.value(topNumLTCs) }
func (Top) NumLCE() uint32         { return 0 }

func (t Top) MaxPESPerGPC() uint32 { return t.L.Litter(ops.NumPESPerGPC) }

// NumCEs reads the copy engine count, used by chips that report LCEs.
func (t Top) NumCEs() uint32 { return t.value(topNumCEs) }

// Device info entries are chained; each link carries one kind of field.
const (
	devInfoChain = 1 << 31

	devInfoNotValid   = 0
	devInfoData       = 1
	devInfoEnum       = 2
	devInfoEngineType = 3
)

func (t Top) Devices() ([]ops.DeviceInfo, error) {
	var (
		devs     []ops.DeviceInfo
		d        ops.DeviceInfo
		open     bool
		haveType bool
	)
	for i := uint32(0); i < topDeviceInfoSize; i++ {
		r := t.Regs.Read32(topDeviceInfo + 4*i)
		switch hw.Field(r, 0, 2) {
		case devInfoNotValid:
			if open {
				return nil, fmt.Errorf("entry %d: invalid link: %w",
					i, ops.ErrDeviceInfo)
			}
			continue
		case devInfoData:
			d.PriBase = hw.Field(r, 12, 12) << 12
			d.Inst = hw.Field(r, 26, 4)
			if r&hw.Bit(2) != 0 {
				d.FaultID = hw.Field(r, 3, 11)
			}
		case devInfoEnum:
			if r&hw.Bit(5) != 0 {
				d.EngineID = hw.Field(r, 26, 4)
			}
			if r&hw.Bit(4) != 0 {
				d.Runlist = hw.Field(r, 21, 4)
			}
			if r&hw.Bit(3) != 0 {
				d.Intr = hw.Field(r, 15, 5)
			}
			if r&hw.Bit(2) != 0 {
				d.Reset = hw.Field(r, 9, 5)
			}
		case devInfoEngineType:
			d.EngineType = hw.Field(r, 2, 29)
			haveType = true
		}
		if r&devInfoChain != 0 {
			open = true
			continue
		}
		if haveType {
			devs = append(devs, d)
		}
		d = ops.DeviceInfo{}
		open, haveType = false, false
	}
	if open {
		return nil, fmt.Errorf("unterminated chain: %w", ops.ErrDeviceInfo)
	}
	return devs, nil
}
