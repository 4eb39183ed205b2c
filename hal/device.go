// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package hal

import (
	"errors"
	"fmt"

	"github.com/platinasystems/gpu/chip"
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/ops"
	"github.com/platinasystems/log"
	uuid "github.com/satori/go.uuid"
)

var ErrBound = errors.New("already bound")

type State int

const (
	Uninitialized State = iota
	Bound
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Bound:
		return "bound"
	}
	return fmt.Sprintf("state %d", int(s))
}

// Device is single owner. Ops is read only once bound and may be used
// from any goroutine.
type Device struct {
	Regs    hw.Regs
	Variant chip.Variant
	Ops     ops.Table

	state State
}

// New detects and binds the chip behind r.
func New(r hw.Regs) (*Device, error) {
	d := &Device{Regs: r}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Device) Init() error {
	if d.state == Bound {
		return fmt.Errorf("%s: %w", d.Variant, ErrBound)
	}
	v, err := chip.Read(d.Regs)
	if err != nil {
		return err
	}
	t, err := Bind(v, d.Regs)
	if err != nil {
		return err
	}
	d.Variant, d.Ops, d.state = v, t, Bound
	log.Print("info", v, " bound")
	return nil
}

func (d *Device) State() State { return d.state }

func (d *Device) String() string {
	if d.state != Bound {
		return d.state.String()
	}
	return d.Variant.String()
}

// UUID is stable per die; it is Nil on chips without a per device
// identifier fuse.
func (d *Device) UUID() uuid.UUID {
	if d.state != Bound || !d.Ops.Supported(ops.CapFusePDI) {
		return uuid.Nil
	}
	pdi := d.Ops.Fuse.PerDeviceIdentifier()
	return uuid.NewV5(uuid.NamespaceOID,
		fmt.Sprintf("%s.%016x", d.Variant.Name(), pdi))
}
