// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package target opens the register file named by the -pci or -sim
// command parameters.
package target

import (
	"errors"
	"fmt"

	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/hw/pci"
)

var ErrNoDevice = errors.New("no NVIDIA display device")

// Open returns the simulated register file if sim is set; else the BAR0
// aperture of the PCI function at addr; else that of the first NVIDIA
// display function. The returned close func is never nil.
func Open(addr, sim string) (hw.Regs, func() error, error) {
	nop := func() error { return nil }
	if len(sim) > 0 {
		if len(addr) > 0 {
			return nil, nop, fmt.Errorf("-pci and -sim are exclusive")
		}
		s, err := hw.LoadSim(sim)
		if err != nil {
			return nil, nop, err
		}
		return s, nop, nil
	}
	var d pci.Device
	if len(addr) > 0 {
		a, err := pci.ParseAddr(addr)
		if err != nil {
			return nil, nop, err
		}
		d.Addr = a
	} else {
		devs, err := pci.Find()
		if err != nil {
			return nil, nop, err
		}
		if len(devs) == 0 {
			return nil, nop, ErrNoDevice
		}
		d = devs[0]
	}
	m, err := d.Open()
	if err != nil {
		return nil, nop, err
	}
	return m, m.Close, nil
}
