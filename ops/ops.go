// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package ops defines the per chip operation table.
//
// A Table is filled once when a device is bound and is read only after
// that. Every slot holds either a chip implementation or one of the No*
// stubs below; callers never test for nil.
package ops

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedCapability = errors.New("unsupported capability")
	ErrDeviceInfo            = errors.New("malformed device info")
	ErrNilSlot               = errors.New("nil operation")
)

type MC interface {
	ChipDetails() (arch, impl, rev uint32)
	EnableUnits(mask uint32, enable bool)
	IntrStallPending() uint32
}

type Bus interface {
	InitHW()
	BAR1Bind(inst uint64, a Aperture)
	BAR2Bind(inst uint64, a Aperture)
	BindPending() bool
	// SetBAR0Window points the PRAMIN window at addr and returns the
	// offset of addr inside the window.
	SetBAR0Window(addr uint64) uint32
}

type Clk interface {
	Domains() []ClkDomain
	// Rate in Hz.
	Rate(d ClkDomain) uint64
}

type Runlist interface {
	CountMax() uint32
	EntrySize() uint32
	LengthMax() uint32
	MaxTimeslice() uint32
	MaxChannelsPerTSG() uint32
	TSGEntry(tsgid, timesliceUs, length uint32) []uint32
	ChannelEntry(ch Channel) []uint32
	Submit(runlist uint32, base uint64, a Aperture, count uint32)
	Pending(runlist uint32) bool
	WriteState(mask uint32, enable bool)
}

type MM interface {
	DefaultBigPageSize() uint32
	AvailableBigPageSizes() uint32
	DefaultVASizes() (aperture, user, kernel uint64)
	IOMMUBit() uint
	FBFlush()
	L2FlushDirty()
	L2Invalidate()
	FlushPending() bool
}

type Therm interface {
	// CurrentTemp in milli degrees Celsius.
	CurrentTemp() int32
	SetELCGMode(engine uint32, mode ELCGMode)
	// ELCGEngines is the number of engine gate controls; SetELCGMode
	// ignores engines at or above it.
	ELCGEngines() uint32
	MaxFPDivFactor() uint32
	GradSteppingPDivDuration() uint32
}

type Top interface {
	MaxGPCCount() uint32
	MaxTPCPerGPC() uint32
	MaxFBPsCount() uint32
	MaxLTCPerFBP() uint32
	MaxLTSPerLTC() uint32
	NumLTCs() uint32
	NumLCE() uint32
	MaxPESPerGPC() uint32
	Devices() ([]DeviceInfo, error)
}

type PrivRing interface {
	Enable()
	GPCCount() uint32
	FBPCount() uint32
	EnumLTC() uint32
	DecodeErrorCode(code uint32) PriError
	SetTimeoutSettings()
}

type Fuse interface {
	StatusOptGPC() uint32
	StatusOptTPCGPC(gpc uint32) uint32
	CtrlOptTPCGPC(gpc, v uint32)
	StatusOptPESGPC(gpc uint32) uint32
	StatusOptFBIO() uint32
	StatusOptFBP() uint32
	StatusOptL2FBP(fbp uint32) uint32
	OptSecDebugEn() bool
	OptPrivSecEn() bool
	PerDeviceIdentifier() uint64
}

type Ptimer interface {
	Read() uint64
	RegOffsets() (lo, hi uint32)
}

// Gr floorsweeping masks; a set bit is an enabled unit.
type Gr interface {
	GPCMask() uint32
	GPCTPCMask(gpc uint32) uint32
	PESMask(gpc uint32) uint32
}

type Litter interface {
	Litter(v LitterValue) uint32
}

type Table struct {
	MC       MC
	Bus      Bus
	Clk      Clk
	Runlist  Runlist
	MM       MM
	Therm    Therm
	Top      Top
	PrivRing PrivRing
	Fuse     Fuse
	Ptimer   Ptimer
	Gr       Gr
	Litter   Litter

	// Unsupported lists categories and functions answered by stubs.
	Unsupported []Capability
}

type slot struct {
	c Capability
	i interface{}
}

func (t *Table) slots() []slot {
	return []slot{
		{CapMC, t.MC},
		{CapBus, t.Bus},
		{CapClk, t.Clk},
		{CapRunlist, t.Runlist},
		{CapMM, t.MM},
		{CapTherm, t.Therm},
		{CapTop, t.Top},
		{CapPrivRing, t.PrivRing},
		{CapFuse, t.Fuse},
		{CapPtimer, t.Ptimer},
		{CapGr, t.Gr},
		{CapLitter, t.Litter},
	}
}

// Check returns ErrNilSlot naming the first empty category.
func (t *Table) Check() error {
	for _, s := range t.slots() {
		if s.i == nil {
			return fmt.Errorf("%s: %w", s.c, ErrNilSlot)
		}
	}
	return nil
}

// Fill replaces each nil category with its stub, marks it unsupported
// and returns the stubbed categories.
func (t *Table) Fill() []Capability {
	var stubbed []Capability
	fill := func(c Capability, empty bool, set func()) {
		if empty {
			set()
			stubbed = append(stubbed, c)
			t.unsupport(c)
		}
	}
	fill(CapMC, t.MC == nil, func() { t.MC = NoMC{} })
	fill(CapBus, t.Bus == nil, func() { t.Bus = NoBus{} })
	fill(CapClk, t.Clk == nil, func() { t.Clk = NoClk{} })
	fill(CapRunlist, t.Runlist == nil, func() { t.Runlist = NoRunlist{} })
	fill(CapMM, t.MM == nil, func() { t.MM = NoMM{} })
	fill(CapTherm, t.Therm == nil, func() { t.Therm = NoTherm{} })
	fill(CapTop, t.Top == nil, func() { t.Top = NoTop{} })
	fill(CapPrivRing, t.PrivRing == nil, func() { t.PrivRing = NoPrivRing{} })
	fill(CapFuse, t.Fuse == nil, func() { t.Fuse = NoFuse{} })
	fill(CapPtimer, t.Ptimer == nil, func() { t.Ptimer = NoPtimer{} })
	fill(CapGr, t.Gr == nil, func() { t.Gr = NoGr{} })
	fill(CapLitter, t.Litter == nil, func() { t.Litter = NoLitter{} })
	return stubbed
}

func (t *Table) unsupport(c Capability) {
	for _, x := range t.Unsupported {
		if x == c {
			return
		}
	}
	t.Unsupported = append(t.Unsupported, c)
}

// Supported is false if c, or the category containing c, is unsupported.
func (t *Table) Supported(c Capability) bool {
	cat := c.Category()
	for _, x := range t.Unsupported {
		if x == c || x == cat {
			return false
		}
	}
	return true
}

func (t *Table) Require(c Capability) error {
	if !t.Supported(c) {
		return fmt.Errorf("%s: %w", c, ErrUnsupportedCapability)
	}
	return nil
}

// Capabilities returns every known capability split by support.
func (t *Table) Capabilities() (supported, unsupported []Capability) {
	for _, c := range Capabilities() {
		if t.Supported(c) {
			supported = append(supported, c)
		} else {
			unsupported = append(unsupported, c)
		}
	}
	return
}

type Capability string

const (
	CapMC       Capability = "mc"
	CapBus      Capability = "bus"
	CapClk      Capability = "clk"
	CapRunlist  Capability = "runlist"
	CapMM       Capability = "mm"
	CapTherm    Capability = "therm"
	CapTop      Capability = "top"
	CapPrivRing Capability = "priv_ring"
	CapFuse     Capability = "fuse"
	CapPtimer   Capability = "ptimer"
	CapGr       Capability = "gr"
	CapLitter   Capability = "litter"

	CapBusBAR0Window Capability = "bus.bar0_window"
	CapThermTemp     Capability = "therm.temp"
	CapClkGPC        Capability = "clk.gpc"
	CapMMIOMMU       Capability = "mm.iommu"
	CapFusePES       Capability = "fuse.pes"
	CapFusePDI       Capability = "fuse.pdi"
	CapTopLCE        Capability = "top.lce"
)

// Capabilities lists categories first then functions.
func Capabilities() []Capability {
	return []Capability{
		CapMC, CapBus, CapClk, CapRunlist, CapMM, CapTherm, CapTop,
		CapPrivRing, CapFuse, CapPtimer, CapGr, CapLitter,
		CapBusBAR0Window, CapThermTemp, CapClkGPC, CapMMIOMMU,
		CapFusePES, CapFusePDI, CapTopLCE,
	}
}

func (c Capability) Category() Capability {
	if i := strings.IndexByte(string(c), '.'); i > 0 {
		return c[:i]
	}
	return c
}

func (c Capability) String() string { return string(c) }
