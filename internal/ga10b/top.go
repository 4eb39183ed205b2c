// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package ga10b

import (
	"fmt"

	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/internal/gm20b"
	"github.com/platinasystems/gpu/internal/gv11b"
	"github.com/platinasystems/gpu/ops"
)

const (
	topDeviceInfoCfg  = 0x000224fc
	topDeviceInfo2    = 0x00022800
	topDeviceInfoRows = 256

	devInfoChain     = 1 << 31
	devInfoIsEngine  = 1 << 30
	devInfoRowsMax   = 3
	devInfoRowsShift = 20
	devInfoRowsWidth = 12
)

// Top parses device_info2: each device is up to three chained rows.
type Top struct{ gv11b.Top }

func NewTop(r hw.Regs, l ops.Litter) Top {
	return Top{gv11b.Top{Top: gm20b.Top{Regs: r, L: l}}}
}

func (t Top) rows() (uint32, error) {
	n := hw.Field(t.Regs.Read32(topDeviceInfoCfg), devInfoRowsShift,
		devInfoRowsWidth)
	if n > topDeviceInfoRows {
		return 0, fmt.Errorf("%d rows: %w", n, ops.ErrDeviceInfo)
	}
	return n, nil
}

// Devices returns engines only. Runlists are numbered in order of their
// first PRI base.
func (t Top) Devices() ([]ops.DeviceInfo, error) {
	n, err := t.rows()
	if err != nil {
		return nil, err
	}
	var (
		devs     []ops.DeviceInfo
		d        ops.DeviceInfo
		row      int
		isEngine bool
		runlists = make(map[uint32]uint32)
	)
	for i := uint32(0); i < n; i++ {
		r := t.Regs.Read32(topDeviceInfo2 + 4*i)
		if row == 0 && r == 0 {
			continue
		}
		if row >= devInfoRowsMax {
			return nil, fmt.Errorf("row %d: chain too long: %w", i,
				ops.ErrDeviceInfo)
		}
		switch row {
		case 0:
			d.FaultID = hw.Field(r, 0, 11)
			d.Inst = hw.Field(r, 16, 4)
			d.EngineType = hw.Field(r, 24, 7)
		case 1:
			d.Reset = hw.Field(r, 0, 8)
			d.PriBase = hw.Field(r, 8, 22) << 8
			isEngine = r&devInfoIsEngine != 0
		case 2:
			d.RlEngineID = hw.Field(r, 0, 2)
			d.RunlistPriBase = hw.Field(r, 10, 16) << 10
		}
		row++
		if r&devInfoChain != 0 {
			continue
		}
		if isEngine {
			id, found := runlists[d.RunlistPriBase]
			if !found {
				id = uint32(len(runlists))
				runlists[d.RunlistPriBase] = id
			}
			d.Runlist = id
			d.EngineID = uint32(len(devs))
			devs = append(devs, d)
		}
		d, row, isEngine = ops.DeviceInfo{}, 0, false
	}
	if row != 0 {
		return nil, fmt.Errorf("unterminated chain: %w", ops.ErrDeviceInfo)
	}
	return devs, nil
}
