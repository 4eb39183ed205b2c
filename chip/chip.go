// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package chip decodes the GPU identification register.
package chip

import (
	"errors"
	"fmt"
	"sort"

	"github.com/platinasystems/gpu/hw"
)

var ErrUnknownChip = errors.New("unknown chip")

// mc_boot_0
const (
	Boot0 = 0x00000000

	boot0ArchShift    = 24
	boot0ArchWidth    = 5
	boot0ImplShift    = 20
	boot0ImplWidth    = 4
	boot0MajorShift   = 4
	boot0MinorShift   = 0
	boot0RevisionBits = 4

	archShift = 4
)

type Arch uint32

const (
	ArchGK100 Arch = 0x0e0
	ArchGM200 Arch = 0x120
	ArchGP100 Arch = 0x130
	ArchGV100 Arch = 0x140
	ArchGV110 Arch = 0x150
	ArchTU100 Arch = 0x160
	ArchGA100 Arch = 0x170
)

// ID is architecture plus implementation, e.g. 0x15b.
type ID uint32

const (
	GK20A   ID = 0x0ea
	GM20B   ID = 0x12b
	GM20B_B ID = 0x12e
	GP106   ID = 0x136
	GP10B   ID = 0x13b
	GV100   ID = 0x140
	GV11B   ID = 0x15b
	TU102   ID = 0x162
	TU104   ID = 0x164
	TU106   ID = 0x166
	GA100   ID = 0x170
	GA10B   ID = 0x17b
)

type info struct {
	name string
	igpu bool
}

var known = map[ID]info{
	GK20A:   {"gk20a", true},
	GM20B:   {"gm20b", true},
	GM20B_B: {"gm20b_b", true},
	GP106:   {"gp106", false},
	GP10B:   {"gp10b", true},
	GV100:   {"gv100", false},
	GV11B:   {"gv11b", true},
	TU102:   {"tu102", false},
	TU104:   {"tu104", false},
	TU106:   {"tu106", false},
	GA100:   {"ga100", false},
	GA10B:   {"ga10b", true},
}

func (id ID) Arch() Arch   { return Arch(id) &^ Arch(hw.Mask(archShift)) }
func (id ID) Impl() uint32 { return uint32(id) & hw.Mask(archShift) }

func (id ID) String() string {
	if i, found := known[id]; found {
		return i.name
	}
	return fmt.Sprintf("unknown 0x%03x", uint32(id))
}

// Variant identifies the silicon the HAL binds to.
type Variant struct {
	Arch Arch
	Impl uint32
	// Major and minor revision, e.g. 0xa1.
	Rev uint32
}

func (v Variant) ID() ID { return ID(uint32(v.Arch) | v.Impl) }

func (v Variant) Name() string { return v.ID().String() }

// IsIntegrated reports whether this is a Tegra SoC GPU rather than a
// discrete PCI device.
func (v Variant) IsIntegrated() bool { return known[v.ID()].igpu }

func (v Variant) String() string {
	return fmt.Sprintf("%s rev %x.%x", v.Name(), v.Rev>>boot0RevisionBits,
		v.Rev&hw.Mask(boot0RevisionBits))
}

// Decode splits a raw mc_boot_0 value without checking it against known chips.
func Decode(boot0 uint32) Variant {
	return Variant{
		Arch: Arch(hw.Field(boot0, boot0ArchShift, boot0ArchWidth) << archShift),
		Impl: hw.Field(boot0, boot0ImplShift, boot0ImplWidth),
		Rev: hw.Field(boot0, boot0MajorShift, boot0RevisionBits)<<boot0RevisionBits |
			hw.Field(boot0, boot0MinorShift, boot0RevisionBits),
	}
}

// Detect maps a mc_boot_0 value to a known chip.
func Detect(boot0 uint32) (Variant, error) {
	v := Decode(boot0)
	if _, found := known[v.ID()]; !found {
		return Variant{}, fmt.Errorf("boot0 0x%08x: %w", boot0, ErrUnknownChip)
	}
	return v, nil
}

// Read detects the chip behind r.
func Read(r hw.Regs) (Variant, error) {
	return Detect(r.Read32(Boot0))
}

// Boot0Value encodes a variant as mc_boot_0; used to seed simulated devices.
func (v Variant) Boot0Value() uint32 {
	return (uint32(v.Arch)>>archShift)<<boot0ArchShift |
		v.Impl<<boot0ImplShift |
		(v.Rev>>boot0RevisionBits)<<boot0MajorShift |
		(v.Rev & hw.Mask(boot0RevisionBits))
}

// Known returns every chip the detector recognizes.
func Known() []ID {
	ids := make([]ID, 0, len(known))
	for id := range known {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Variant returns a zero revision variant of id.
func (id ID) Variant() Variant {
	return Variant{Arch: id.Arch(), Impl: id.Impl()}
}
