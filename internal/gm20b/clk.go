// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package gm20b

import (
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/ops"
)

const RefClkHz = 38400000

// GPCPLL post divider by PL field.
var plToDiv = []uint64{1, 2, 3, 4, 5, 6, 8, 10, 12, 16, 12, 16, 20, 24, 32}

func PLToDiv(pl uint32) uint64 {
	if int(pl) < len(plToDiv) {
		return plToDiv[pl]
	}
	return 1
}

type Clk struct{ Regs hw.Regs }

func (Clk) Domains() []ops.ClkDomain { return []ops.ClkDomain{ops.ClkGPC} }

// Rate decodes the GPCPLL coefficients. The PLL output is gpc2clk, twice
// the gpcclk rate.
func (c Clk) Rate(d ops.ClkDomain) uint64 {
	if d != ops.ClkGPC {
		return 0
	}
	if c.Regs.Read32(trimSysGPCPLLCfg)&1 == 0 {
		return 0
	}
	coeff := c.Regs.Read32(trimSysGPCPLLCoeff)
	m := uint64(hw.Field(coeff, 0, 8))
	n := uint64(hw.Field(coeff, 8, 8))
	pl := hw.Field(coeff, 16, 6)
	if m == 0 {
		return 0
	}
	return RefClkHz * n / (m * PLToDiv(pl)) / 2
}
