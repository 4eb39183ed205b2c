// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package gpuinfo

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/platinasystems/gpu/chip"
	"github.com/platinasystems/gpu/hal"
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/internal/test"
	"github.com/platinasystems/gpu/ops"
	"gopkg.in/yaml.v2"
)

const gv100 = `
0x00000000: 0x140000a1
0x00020460: 0x20002d80
0x00022430: 0x2
0x00021c1c: 0x2
`

func bound(t *testing.T, dump string) *hal.Device {
	s, err := hw.ParseSim([]byte(dump))
	if err != nil {
		t.Fatal(err)
	}
	d, err := hal.New(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestReport(t *testing.T) {
	assert := test.Assert{TB: t}
	rep := New(bound(t, gv100))

	assert.Equal(rep.Chip, "gv100 rev a.1")
	assert.False(rep.Integrated)
	assert.Equal(rep.UUID, "")
	assert.Equal(rep.Unsupported, []ops.Capability{
		ops.CapMMIOMMU,
		ops.CapFusePDI,
	})
	assert.Equal(rep.GPCMask, uint32(0x1))
	assert.Equal(len(rep.GPCs), 2)
	assert.True(rep.TempMilliC != nil)
	assert.Equal(*rep.TempMilliC, int32(45500))
	assert.Equal(rep.Litter["NUM_GPCS"], uint32(6))

	buf := new(bytes.Buffer)
	_, err := rep.WriteTo(buf)
	assert.Nil(err)
	assert.Match(buf.String(), `(?m)^chip:\s+gv100 rev a\.1$`)
	assert.Match(buf.String(), `(?m)^boot0:\s+0x140000a1$`)
	assert.Match(buf.String(), `(?m)^temp\.millic:\s+45500$`)
	assert.Match(buf.String(), `(?m)^unsupported:\s+mm\.iommu fuse\.pdi$`)
}

func TestReportYaml(t *testing.T) {
	assert := test.Assert{TB: t}
	rep := New(bound(t, gv100))
	buf := new(bytes.Buffer)
	assert.Nil(rep.WriteYaml(buf))

	var back Report
	assert.Nil(yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(back.Chip, rep.Chip)
	assert.Equal(back.Boot0, uint32(0x140000a1))
	assert.Equal(back.Supported, rep.Supported)
}

func TestMainErrors(t *testing.T) {
	assert := test.Assert{TB: t}
	fn := filepath.Join(t.TempDir(), "bad.yaml")
	assert.Nil(ioutil.WriteFile(fn, []byte("0x0: 0xffffffff\n"), 0644))

	assert.Error(Command{}.Main("extra"), "[extra]: unexpected")
	assert.Error(Command{}.Main("-sim", fn), chip.ErrUnknownChip)
}
