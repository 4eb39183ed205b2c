// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package ops

// Stubs answer every call with a neutral value.

type NoMC struct{}

func (NoMC) ChipDetails() (arch, impl, rev uint32) { return }
func (NoMC) EnableUnits(uint32, bool)              {}
func (NoMC) IntrStallPending() uint32              { return 0 }

type NoBus struct{}

func (NoBus) InitHW()                          {}
func (NoBus) BAR1Bind(uint64, Aperture)        {}
func (NoBus) BAR2Bind(uint64, Aperture)        {}
func (NoBus) BindPending() bool                { return false }
func (NoBus) SetBAR0Window(addr uint64) uint32 { return 0 }

type NoClk struct{}

func (NoClk) Domains() []ClkDomain  { return nil }
func (NoClk) Rate(ClkDomain) uint64 { return 0 }

type NoRunlist struct{}

func (NoRunlist) CountMax() uint32                         { return 0 }
func (NoRunlist) EntrySize() uint32                        { return 0 }
func (NoRunlist) LengthMax() uint32                        { return 0 }
func (NoRunlist) MaxTimeslice() uint32                     { return 0 }
func (NoRunlist) MaxChannelsPerTSG() uint32                { return 0 }
func (NoRunlist) TSGEntry(uint32, uint32, uint32) []uint32 { return nil }
func (NoRunlist) ChannelEntry(Channel) []uint32            { return nil }
func (NoRunlist) Submit(uint32, uint64, Aperture, uint32)  {}
func (NoRunlist) Pending(uint32) bool                      { return false }
func (NoRunlist) WriteState(uint32, bool)                  {}

type NoMM struct{}

func (NoMM) DefaultBigPageSize() uint32                      { return 0 }
func (NoMM) AvailableBigPageSizes() uint32                   { return 0 }
func (NoMM) DefaultVASizes() (aperture, user, kernel uint64) { return }
func (NoMM) IOMMUBit() uint                                  { return 0 }
func (NoMM) FBFlush()                                        {}
func (NoMM) L2FlushDirty()                                   {}
func (NoMM) L2Invalidate()                                   {}
func (NoMM) FlushPending() bool                              { return false }

type NoTherm struct{}

func (NoTherm) CurrentTemp() int32               { return 0 }
func (NoTherm) SetELCGMode(uint32, ELCGMode)     {}
func (NoTherm) ELCGEngines() uint32              { return 0 }
func (NoTherm) MaxFPDivFactor() uint32           { return 0 }
func (NoTherm) GradSteppingPDivDuration() uint32 { return 0 }

type NoTop struct{}

func (NoTop) MaxGPCCount() uint32            { return 0 }
func (NoTop) MaxTPCPerGPC() uint32           { return 0 }
func (NoTop) MaxFBPsCount() uint32           { return 0 }
func (NoTop) MaxLTCPerFBP() uint32           { return 0 }
func (NoTop) MaxLTSPerLTC() uint32           { return 0 }
func (NoTop) NumLTCs() uint32                { return 0 }
func (NoTop) NumLCE() uint32                 { return 0 }
func (NoTop) MaxPESPerGPC() uint32           { return 0 }
func (NoTop) Devices() ([]DeviceInfo, error) { return nil, nil }

type NoPrivRing struct{}

func (NoPrivRing) Enable()             {}
func (NoPrivRing) GPCCount() uint32    { return 0 }
func (NoPrivRing) FBPCount() uint32    { return 0 }
func (NoPrivRing) EnumLTC() uint32     { return 0 }
func (NoPrivRing) SetTimeoutSettings() {}
func (NoPrivRing) DecodeErrorCode(code uint32) PriError {
	return PriError{Code: code}
}

type NoFuse struct{}

func (NoFuse) StatusOptGPC() uint32          { return 0 }
func (NoFuse) StatusOptTPCGPC(uint32) uint32 { return 0 }
func (NoFuse) CtrlOptTPCGPC(uint32, uint32)  {}
func (NoFuse) StatusOptPESGPC(uint32) uint32 { return 0 }
func (NoFuse) StatusOptFBIO() uint32         { return 0 }
func (NoFuse) StatusOptFBP() uint32          { return 0 }
func (NoFuse) StatusOptL2FBP(uint32) uint32  { return 0 }
func (NoFuse) OptSecDebugEn() bool           { return false }
func (NoFuse) OptPrivSecEn() bool            { return false }
func (NoFuse) PerDeviceIdentifier() uint64   { return 0 }

type NoPtimer struct{}

func (NoPtimer) Read() uint64                { return 0 }
func (NoPtimer) RegOffsets() (lo, hi uint32) { return }

type NoGr struct{}

func (NoGr) GPCMask() uint32          { return 0 }
func (NoGr) GPCTPCMask(uint32) uint32 { return 0 }
func (NoGr) PESMask(uint32) uint32    { return 0 }

type NoLitter struct{}

func (NoLitter) Litter(LitterValue) uint32 { return 0 }
