// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package hal binds a detected chip to its operation table.
//
//	dev, err := hal.New(bar0)
//	if err != nil {
//		return err
//	}
//	temp := dev.Ops.Therm.CurrentTemp()
//
// Bind fills every category a chip lacks with a neutral stub so callers
// never test for nil; use Ops.Supported to tell a stub from a zero reading.
package hal

import (
	"errors"
	"fmt"
	"sort"

	"github.com/platinasystems/gpu/chip"
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/internal/ga100"
	"github.com/platinasystems/gpu/internal/ga10b"
	"github.com/platinasystems/gpu/internal/gm20b"
	"github.com/platinasystems/gpu/internal/gp10b"
	"github.com/platinasystems/gpu/internal/gv100"
	"github.com/platinasystems/gpu/internal/gv11b"
	"github.com/platinasystems/gpu/internal/tu104"
	"github.com/platinasystems/gpu/ops"
	"github.com/platinasystems/log"
)

var ErrUnsupportedVariant = errors.New("unsupported variant")

// Constructor returns a possibly partial table for one chip.
type Constructor func(r hw.Regs) ops.Table

var registry = map[chip.ID]Constructor{
	chip.GM20B:   gm20b.New,
	chip.GM20B_B: gm20b.New,
	chip.GP10B:   gp10b.New,
	chip.GV11B:   gv11b.New,
	chip.GV100:   gv100.New,
	chip.TU104:   tu104.New,
	chip.GA100:   ga100.New,
	chip.GA10B:   ga10b.New,
}

// Registered lists chips with an operation table.
func Registered() []chip.ID {
	ids := make([]chip.ID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Bind returns the complete table for v or ErrUnsupportedVariant.
func Bind(v chip.Variant, r hw.Regs) (ops.Table, error) {
	newTable, found := registry[v.ID()]
	if !found {
		return ops.Table{}, fmt.Errorf("%s: %w", v.Name(),
			ErrUnsupportedVariant)
	}
	t := newTable(r)
	for _, c := range t.Fill() {
		log.Print("debug", v.Name(), ": ", c, " stubbed")
	}
	if err := t.Check(); err != nil {
		return ops.Table{}, fmt.Errorf("%s: %w", v.Name(), err)
	}
	return t, nil
}
