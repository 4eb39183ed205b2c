// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package ga10b

import (
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/internal/gm20b"
	"github.com/platinasystems/gpu/ops"
)

// PrivRing decodes error codes where bits [31:8] select the error and
// bits [7:0] carry extra information.
type PrivRing struct{ gm20b.PrivRing }

const (
	priErrorCodeShift  = 8
	priErrorCodeWidth  = 24
	priErrorExtraWidth = 8

	hostPriTimeout      = 0xbad001
	hostFECSErr         = 0xbad00f
	hostFBAckTimeout    = 0xbad0b0
	fecsPriTimeout      = 0xbadf10
	fecsPriOrphan       = 0xbadf20
	fecsDeadRing        = 0xbadf30
	fecsTrap            = 0xbadf40
	fecsPriClientErr    = 0xbadf50
	fecsPriLockSecurity = 0xbadf60
)

type errorRange struct {
	code  uint32
	exact bool
	group string
	// last cause is for codes past the end
	causes []string
}

// Searched in order; ranges match any code at or above their start.
var errorRanges = []errorRange{
	{fecsPriLockSecurity, false, "fecs security", []string{
		"lock from security sensor",
		"undefined",
	}},
	{fecsPriClientErr, false, "fecs client error", []string{
		"client error",
		"priv level violation",
		"indirect priv level violation",
		"local priv ring error",
		"falcon mem priv level violation",
		"route error",
		"custom error",
		"source enable violation",
		"unknown",
		"indirect source enable violation",
		"undefined",
	}},
	{fecsTrap, false, "fecs trap", []string{
		"trap",
		"target mask violation",
		"undefined",
	}},
	{fecsDeadRing, false, "fecs ring", []string{
		"priv ring dead",
		"priv ring dead low power",
		"undefined",
	}},
	{fecsPriOrphan, false, "fecs orphan", []string{
		"orphan(gpc/fbp)",
		"power ok timeout",
		"orphan(gpc/fbp) powergated",
		"target powergated",
		"orphan gcgpc",
		"decode gcgpc",
		"local priv decode error",
		"priv poisoned",
		"trans type",
		"undefined",
	}},
	{fecsPriTimeout, false, "fecs client", []string{
		"client timeout",
		"decode error (range not found)",
		"client in reset",
		"client floorswept",
		"client stuck ack",
		"client expected ack",
		"fence error",
		"subid error",
		"rdata wait violation",
		"write byte enable error",
		"undefined",
	}},
	{hostFBAckTimeout, true, "host fb", []string{
		"fb ack timeout error",
		"undefined",
	}},
	{hostFECSErr, true, "host fecs", []string{
		"host fecs error",
		"undefined",
	}},
	{hostPriTimeout, true, "host pri", []string{
		"host pri timeout error",
		"host pri decode error",
		"undefined",
	}},
}

func (PrivRing) DecodeErrorCode(code uint32) ops.PriError {
	e := ops.PriError{
		Code:  code,
		Group: "unknown",
		Cause: "undefined",
		Extra: hw.Field(code, 0, priErrorExtraWidth),
	}
	c := hw.Field(code, priErrorCodeShift, priErrorCodeWidth)
	for _, r := range errorRanges {
		if c < r.code || (r.exact && c != r.code) {
			continue
		}
		i := int(c - r.code)
		if i >= len(r.causes) {
			i = len(r.causes) - 1
		}
		e.Group, e.Cause = r.group, r.causes[i]
		break
	}
	return e
}
