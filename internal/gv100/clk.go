// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package gv100

import (
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/ops"
)

const RefClkHz = 27000000

// Frequency counters count clock edges over a window of reference
// clocks programmed in the config register.
var counters = map[ops.ClkDomain]struct{ cfg, cnt uint32 }{
	ops.ClkGPC: {0x00134124, 0x00134128},
	ops.ClkSys: {0x00136140, 0x00136144},
}

const (
	cntrWindowWidth = 14
	cntrCountWidth  = 20
)

type Clk struct{ Regs hw.Regs }

func (Clk) Domains() []ops.ClkDomain {
	return []ops.ClkDomain{ops.ClkGPC, ops.ClkSys}
}

func (c Clk) Rate(d ops.ClkDomain) uint64 {
	cntr, found := counters[d]
	if !found {
		return 0
	}
	window := uint64(hw.Field(c.Regs.Read32(cntr.cfg), 0, cntrWindowWidth))
	if window == 0 {
		return 0
	}
	count := uint64(hw.Field(c.Regs.Read32(cntr.cnt), 0, cntrCountWidth))
	return count * RefClkHz / window
}
