// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package gp10b

import (
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/internal/gm20b"
	"github.com/platinasystems/gpu/ops"
)

type PrivRing struct{ gm20b.PrivRing }

const (
	badfMask       = 0xffff0000
	badfCode       = 0xbadf0000
	badfGroupShift = 12
	badfIndexShift = 8
)

type errorGroup struct {
	name   string
	causes []string
}

// Indexed by bits [15:12]; each cause list ends with "undefined".
var errorGroups = map[uint32]errorGroup{
	1: {"client", []string{
		"client timeout",
		"decode error",
		"client in reset",
		"client floorswept",
		"client stuck ack",
		"client expected ack",
		"fence error",
		"subid error",
		"byte access unsupported",
		"undefined",
	}},
	2: {"orphan", []string{
		"orphan gpc/fbp",
		"undefined",
	}},
	3: {"ring", []string{
		"priv ring dead",
		"undefined",
	}},
	5: {"priv level", []string{
		"client error",
		"priv level violation",
		"indirect priv level violation",
		"local local ring error",
		"falcon mem priv level violation",
		"pri route error",
		"undefined",
	}},
}

func (PrivRing) DecodeErrorCode(code uint32) ops.PriError {
	e := ops.PriError{Code: code}
	if code&badfMask != badfCode {
		e.Group, e.Cause = "unknown", "unknown error"
		return e
	}
	g, found := errorGroups[hw.Field(code, badfGroupShift, 4)]
	if !found {
		e.Group, e.Cause = "unknown", "undefined"
		return e
	}
	i := int(hw.Field(code, badfIndexShift, 4))
	if i >= len(g.causes) {
		i = len(g.causes) - 1
	}
	e.Group, e.Cause = g.name, g.causes[i]
	e.Extra = hw.Field(code, 0, 8)
	return e
}
