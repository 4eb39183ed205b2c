// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package ga100 implements the Ampere discrete leaves: tu104 with the
// ga10b runlist, device info, priv ring and fuse.
package ga100

import (
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/internal/ga10b"
	"github.com/platinasystems/gpu/internal/gm20b"
	"github.com/platinasystems/gpu/internal/gv11b"
	"github.com/platinasystems/gpu/internal/tu104"
	"github.com/platinasystems/gpu/ops"
)

var litter = gm20b.Litter{
	ops.NumGPCs:        8,
	ops.NumPESPerGPC:   3,
	ops.NumTPCPerGPC:   8,
	ops.NumFBPs:        12,
	ops.NumLTCLTSSets:  0x80,
	ops.GPCStride:      0x8000,
	ops.TPCInGPCStride: 0x800,
	ops.PPCInGPCStride: 0x200,
}

func New(r hw.Regs) ops.Table {
	t := tu104.Extend(r, litter)
	top := ga10b.NewTop(r, litter)
	fuse := ga10b.Fuse{Fuse: gv11b.Fuse{Fuse: gm20b.Fuse{Regs: r}}}
	t.Top = top
	t.Runlist = Runlist{ga10b.NewRunlist(r, top)}
	t.PrivRing = ga10b.PrivRing{PrivRing: gm20b.PrivRing{Regs: r}}
	t.Fuse = fuse
	t.Gr = gm20b.Gr{Fuse: fuse, Top: top}
	t.Unsupported = []ops.Capability{ops.CapMMIOMMU}
	return t
}

type Runlist struct{ ga10b.Runlist }

func (Runlist) CountMax() uint32 { return 16 }
