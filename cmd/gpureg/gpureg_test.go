// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package gpureg

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/internal/test"
)

func TestAccess(t *testing.T) {
	assert := test.Assert{TB: t}
	sim := hw.NewSim(map[uint32]uint32{0: 0x15b000a1})
	buf := new(bytes.Buffer)

	assert.Nil(Access(buf, sim, false, "0", ""))
	assert.Equal(buf.String(), "0: 15b000a1\n")

	assert.Nil(Access(buf, sim, true, "0x9400", "0xdeadbeef"))
	assert.Equal(sim.Read32(0x9400), uint32(0xdeadbeef))
	assert.Equal(sim.Writes(0x9400), uint(1))

	buf.Reset()
	assert.Nil(Access(buf, sim, false, "0x9400", ""))
	assert.Equal(buf.String(), "9400: deadbeef\n")
}

func TestAccessErrors(t *testing.T) {
	assert := test.Assert{TB: t}
	sim := hw.NewSim(nil)
	buf := new(bytes.Buffer)
	assert.Error(Access(buf, sim, false, "0x102", ""), "0x102: unaligned")
	assert.Error(Access(buf, sim, false, "boot0", ""),
		regexp.MustCompile(`^boot0: .*invalid syntax`))
	assert.Error(Access(buf, sim, true, "0x100", "0x1_0000_0000"),
		regexp.MustCompile(`^0x1_0000_0000: .*out of range`))
	assert.Error(Command{}.Main(), "OFFSET: missing")
}

func TestAccessResource(t *testing.T) {
	assert := test.Assert{TB: t}
	fn := filepath.Join(t.TempDir(), "resource0")
	assert.Nil(ioutil.WriteFile(fn, make([]byte, 4096), 0600))
	m, err := hw.OpenResource(fn)
	assert.Nil(err)
	defer m.Close()
	buf := new(bytes.Buffer)

	assert.Error(Access(buf, m, false, "0x100000", ""), hw.ErrRange)
	assert.Error(Access(buf, m, true, "0x1000", "1"), hw.ErrRange)

	assert.Nil(Access(buf, m, true, "0xffc", "0x15b000a1"))
	assert.Nil(Access(buf, m, false, "0xffc", ""))
	assert.Equal(buf.String(), "ffc: 15b000a1\n")
}
