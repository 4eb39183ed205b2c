// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package gm20b

import (
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/ops"
)

type PrivRing struct{ Regs hw.Regs }

const (
	priRingCmdEnumerateAndStart = 0x4
	priRingDropOnRingNotStarted = 0x2
	priRingEnumWidth            = 5
	priMasterTimeout            = 0x800
	priSysMasterTimeoutIndex    = 0x15
	priGPCMasterTimeoutIndex    = 0xa
)

func (p PrivRing) Enable() {
	p.Regs.Write32(priRingmasterCommand, priRingCmdEnumerateAndStart)
	p.Regs.Write32(priRingstationSysDecodeCfg, priRingDropOnRingNotStarted)
	// flush
	p.Regs.Read32(priRingstationSysDecodeCfg)
}

func (p PrivRing) enum(o uint32) uint32 {
	return hw.Field(p.Regs.Read32(o), 0, priRingEnumWidth)
}

func (p PrivRing) GPCCount() uint32 { return p.enum(priRingmasterEnumGPC) }
func (p PrivRing) FBPCount() uint32 { return p.enum(priRingmasterEnumFBP) }
func (p PrivRing) EnumLTC() uint32  { return p.enum(priRingmasterEnumLTC) }

// DecodeErrorCode only reports the raw code; decode tables start with gp10b.
func (PrivRing) DecodeErrorCode(code uint32) ops.PriError {
	return ops.PriError{Code: code}
}

func (p PrivRing) SetTimeoutSettings() {
	p.Regs.Write32(priRingstationSysMasterCfg+4*priSysMasterTimeoutIndex,
		priMasterTimeout)
	p.Regs.Write32(priRingstationGPCMasterCfg+4*priGPCMasterTimeoutIndex,
		priMasterTimeout)
}
