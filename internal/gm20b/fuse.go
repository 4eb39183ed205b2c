// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package gm20b

import "github.com/platinasystems/gpu/hw"

// Fuse reads floorsweeping and security fuses; a set status bit is a
// disabled unit.
type Fuse struct{ Regs hw.Regs }

func (f Fuse) StatusOptGPC() uint32 { return f.Regs.Read32(fuseStatusOptGPC) }

func (f Fuse) StatusOptTPCGPC(gpc uint32) uint32 {
	return f.Regs.Read32(fuseStatusOptTPC + 4*gpc)
}

func (f Fuse) CtrlOptTPCGPC(gpc, v uint32) {
	f.Regs.Write32(fuseCtrlOptTPCGPC+4*gpc, v)
}

func (Fuse) StatusOptPESGPC(gpc uint32) uint32 { return 0 }

func (f Fuse) StatusOptFBIO() uint32 { return f.Regs.Read32(fuseStatusOptFBIO) }
func (f Fuse) StatusOptFBP() uint32  { return f.Regs.Read32(fuseStatusOptFBP) }

func (f Fuse) StatusOptL2FBP(fbp uint32) uint32 {
	return f.Regs.Read32(fuseStatusOptL2FBP + 4*fbp)
}

func (f Fuse) OptSecDebugEn() bool {
	return f.Regs.Read32(fuseOptSecDebugEn)&1 != 0
}

func (f Fuse) OptPrivSecEn() bool {
	return f.Regs.Read32(fuseOptPrivSecEn)&1 != 0
}

func (Fuse) PerDeviceIdentifier() uint64 { return 0 }
