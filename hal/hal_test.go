// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package hal

import (
	"sync"
	"testing"

	"github.com/platinasystems/gpu/chip"
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/internal/gm20b"
	"github.com/platinasystems/gpu/internal/test"
	"github.com/platinasystems/gpu/ops"
	uuid "github.com/satori/go.uuid"
)

// Nonzero values behind every function level capability so a stub can't
// pass by accident.
func seeded(id chip.ID) *hw.Sim {
	v := id.Variant()
	v.Rev = 0xa1
	return hw.NewSim(map[uint32]uint32{
		chip.Boot0: v.Boot0Value(),
		0x00020460: 0x20002d80, // tsense 45.5C
		0x00137000: 1,          // gpcpll enabled
		0x00137004: 1 | 52<<8 | 1<<16,
		0x00134124: 1000, // gpc clock counter
		0x00134128: 50000,
		0x00021c78: 0xa, // pes fuse
		0x00021344: 0x89abcdef,
		0x00021348: 0x01234567,
		0x00022444: 2, // copy engines
		0x00022430: 2, // gpcs
	})
}

// neutral reports whether the leaves behind a capability act as stubs.
var neutral = map[ops.Capability]func(t *ops.Table) bool{
	ops.CapBusBAR0Window: func(t *ops.Table) bool {
		return t.Bus.SetBAR0Window(0x123456) == 0
	},
	ops.CapThermTemp: func(t *ops.Table) bool {
		return t.Therm.CurrentTemp() == 0
	},
	ops.CapClk: func(t *ops.Table) bool {
		return len(t.Clk.Domains()) == 0 && t.Clk.Rate(ops.ClkGPC) == 0
	},
	ops.CapClkGPC: func(t *ops.Table) bool {
		return t.Clk.Rate(ops.ClkGPC) == 0
	},
	ops.CapMMIOMMU: func(t *ops.Table) bool {
		return t.MM.IOMMUBit() == 0
	},
	ops.CapFusePES: func(t *ops.Table) bool {
		return t.Fuse.StatusOptPESGPC(0) == 0
	},
	ops.CapFusePDI: func(t *ops.Table) bool {
		return t.Fuse.PerDeviceIdentifier() == 0
	},
	ops.CapTopLCE: func(t *ops.Table) bool {
		return t.Top.NumLCE() == 0
	},
}

func TestRegistered(t *testing.T) {
	var tests test.Tests
	for _, id := range Registered() {
		id := id
		tests = append(tests, &test.Suite{
			Name: id.String(),
			Tests: test.Tests{
				&test.Unit{Name: "bind", Func: func(t *testing.T) {
					assert := test.Assert{TB: t}
					tbl, err := Bind(id.Variant(), seeded(id))
					assert.Nil(err)
					assert.Nil(tbl.Check())
					assert.Equal(len(tbl.Fill()), 0)
				}},
				&test.Unit{Name: "supported", Func: func(t *testing.T) {
					tbl, err := Bind(id.Variant(), seeded(id))
					test.Assert{TB: t}.Nil(err)
					for c, isNeutral := range neutral {
						if tbl.Supported(c) == isNeutral(&tbl) {
							t.Errorf("%s: supported %v",
								c, tbl.Supported(c))
						}
					}
				}},
			},
		})
	}
	tests.Test(t)
}

func TestUnsupportedVariant(t *testing.T) {
	assert := test.Assert{TB: t}
	for _, id := range []chip.ID{chip.GK20A, chip.GP106, chip.TU102,
		chip.TU106} {
		_, err := Bind(id.Variant(), hw.NewSim(nil))
		assert.Error(err, ErrUnsupportedVariant)
	}
	_, err := Bind(chip.Decode(0xffffffff), hw.NewSim(nil))
	assert.Error(err, ErrUnsupportedVariant)
	for _, id := range Registered() {
		if _, found := registry[id]; !found {
			t.Error(id)
		}
	}
}

func TestDevice(t *testing.T) {
	assert := test.Assert{TB: t}
	d, err := New(seeded(chip.GV11B))
	assert.Nil(err)
	assert.Equal(d.State(), Bound)
	assert.Equal(d.String(), "gv11b rev a.1")
	assert.Error(d.Init(), ErrBound)
	assert.Equal(d.Variant.ID(), chip.GV11B)

	_, err = New(hw.NewSim(map[uint32]uint32{chip.Boot0: 0xffffffff}))
	assert.Error(err, chip.ErrUnknownChip)
	_, err = New(hw.NewSim(map[uint32]uint32{chip.Boot0: 0x0ea000a1}))
	assert.Error(err, ErrUnsupportedVariant)

	var unbound Device
	assert.Equal(unbound.State(), Uninitialized)
	assert.Equal(unbound.UUID(), uuid.Nil)
}

func TestUUID(t *testing.T) {
	assert := test.Assert{TB: t}
	a, err := New(seeded(chip.GA10B))
	assert.Nil(err)
	b, err := New(seeded(chip.GA10B))
	assert.Nil(err)
	assert.True(a.UUID() != uuid.Nil)
	assert.True(uuid.Equal(a.UUID(), b.UUID()))
	assert.Equal(a.UUID().Version(), byte(uuid.V5))

	b.Regs.Write32(0x00021344, 0)
	assert.False(uuid.Equal(a.UUID(), b.UUID()))

	c, err := New(seeded(chip.GV11B))
	assert.Nil(err)
	assert.True(uuid.Equal(c.UUID(), uuid.Nil))
}

type fourPES struct{ ops.NoTop }

func (fourPES) MaxPESPerGPC() uint32 { return 4 }

// A 0b1010 PES fuse over four PES leaves PES 0 and 2 enabled.
func TestPESMask(t *testing.T) {
	d, err := New(seeded(chip.GV11B))
	if err != nil {
		t.Fatal(err)
	}
	gr := gm20b.Gr{Fuse: d.Ops.Fuse, Top: fourPES{}}
	for i := 0; i < 2; i++ {
		if m := gr.PESMask(0); m != 0x5 {
			t.Errorf("pes mask 0x%x", m)
		}
	}
	if m := d.Ops.Gr.PESMask(0); m != 0x5 {
		t.Errorf("gv11b pes mask 0x%x", m)
	}
}

func TestConcurrentLeaves(t *testing.T) {
	d, err := New(seeded(chip.GV100))
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				if temp := d.Ops.Therm.CurrentTemp(); temp != 45500 {
					t.Error("temp", temp)
					return
				}
				d.Ops.Fuse.CtrlOptTPCGPC(uint32(i%4), uint32(j))
				d.Ops.Therm.SetELCGMode(uint32(i), ops.ELCGAuto)
				d.Ops.Gr.GPCMask()
				d.Ops.Ptimer.Read()
				d.Ops.Runlist.Pending(uint32(i % 4))
			}
		}(i)
	}
	wg.Wait()
}
