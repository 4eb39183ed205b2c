// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package ops

import "fmt"

// Aperture selects the memory an address refers to.
type Aperture int

const (
	ApertureInvalid Aperture = iota
	ApertureVidmem
	ApertureSysmemCoh
	ApertureSysmemNonCoh
)

var apertureNames = []string{
	ApertureInvalid:      "invalid",
	ApertureVidmem:       "vidmem",
	ApertureSysmemCoh:    "sysmem coherent",
	ApertureSysmemNonCoh: "sysmem non-coherent",
}

func (a Aperture) String() string {
	if int(a) < len(apertureNames) {
		return apertureNames[a]
	}
	return fmt.Sprintf("aperture %d", int(a))
}

type ClkDomain int

const (
	ClkGPC ClkDomain = iota
	ClkSys
	ClkXbar
	ClkMem
)

var clkDomainNames = []string{
	ClkGPC:  "gpcclk",
	ClkSys:  "sysclk",
	ClkXbar: "xbarclk",
	ClkMem:  "mclk",
}

func (d ClkDomain) String() string {
	if int(d) < len(clkDomainNames) {
		return clkDomainNames[d]
	}
	return fmt.Sprintf("clk %d", int(d))
}

// ELCGMode is the engine level clock gating mode.
type ELCGMode uint32

const (
	ELCGRun ELCGMode = iota
	ELCGAuto
	ELCGStop
)

var elcgModeNames = []string{
	ELCGRun:  "run",
	ELCGAuto: "auto",
	ELCGStop: "stop",
}

func (m ELCGMode) String() string {
	if int(m) < len(elcgModeNames) {
		return elcgModeNames[m]
	}
	return fmt.Sprintf("elcg %d", uint32(m))
}

func ParseELCGMode(s string) (ELCGMode, error) {
	for i, name := range elcgModeNames {
		if s == name {
			return ELCGMode(i), nil
		}
	}
	return 0, fmt.Errorf("%s: invalid elcg mode", s)
}

// Channel is the subset of channel state a runlist entry encodes.
type Channel struct {
	ID            uint32
	RunqueueSel   uint32
	UserdAddr     uint64
	UserdAperture Aperture
	InstAddr      uint64
	InstAperture  Aperture
}

// Engine types found in device info.
const (
	EngineGR    = 0
	EngineCopy0 = 1
	EngineCopy1 = 2
	EngineCopy2 = 3
	EngineLCE   = 19
)

// DeviceInfo is one decoded top level device info entry.
type DeviceInfo struct {
	EngineType     uint32 `yaml:"engine_type"`
	Inst           uint32 `yaml:"inst"`
	EngineID       uint32 `yaml:"engine_id"`
	Runlist        uint32 `yaml:"runlist"`
	Intr           uint32 `yaml:"intr"`
	Reset          uint32 `yaml:"reset"`
	FaultID        uint32 `yaml:"fault_id,omitempty"`
	PriBase        uint32 `yaml:"pri_base,omitempty"`
	RunlistPriBase uint32 `yaml:"runlist_pri_base,omitempty"`
	RlEngineID     uint32 `yaml:"rleng_id,omitempty"`
}

func (d DeviceInfo) String() string {
	return fmt.Sprintf("engine type %d inst %d runlist %d", d.EngineType,
		d.Inst, d.Runlist)
}

// PriError is a decoded priv ring error code.
type PriError struct {
	Code  uint32
	Group string
	Cause string
	Extra uint32
}

func (e PriError) String() string {
	if e.Group == "" {
		return fmt.Sprintf("0x%08x", e.Code)
	}
	return fmt.Sprintf("0x%08x %s: %s", e.Code, e.Group, e.Cause)
}

// LitterValue names a per chip constant.
type LitterValue int

const (
	NumGPCs LitterValue = iota
	NumPESPerGPC
	NumTPCPerGPC
	NumFBPs
	NumLTCLTSSets
	GPCStride
	TPCInGPCStride
	PPCInGPCStride
)

var litterNames = []string{
	NumGPCs:        "NUM_GPCS",
	NumPESPerGPC:   "NUM_PES_PER_GPC",
	NumTPCPerGPC:   "NUM_TPC_PER_GPC",
	NumFBPs:        "NUM_FBPS",
	NumLTCLTSSets:  "NUM_LTC_LTS_SETS",
	GPCStride:      "GPC_STRIDE",
	TPCInGPCStride: "TPC_IN_GPC_STRIDE",
	PPCInGPCStride: "PPC_IN_GPC_STRIDE",
}

func (v LitterValue) String() string {
	if v >= 0 && int(v) < len(litterNames) {
		return litterNames[v]
	}
	return fmt.Sprintf("litter %d", int(v))
}

// LitterValues lists every named litter value.
func LitterValues() []LitterValue {
	l := make([]LitterValue, len(litterNames))
	for i := range l {
		l[i] = LitterValue(i)
	}
	return l
}
