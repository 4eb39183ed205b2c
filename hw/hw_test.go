// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package hw

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnabledMask(t *testing.T) {
	for _, x := range []struct {
		disable, n, want uint32
	}{
		{0xa, 4, 0x5},
		{0x0, 4, 0xf},
		{0xf, 4, 0x0},
		{0xfffffff0, 4, 0xf},
		{0x1, 1, 0x0},
		{0x0, 32, 0xffffffff},
		{0x0, 0, 0x0},
	} {
		got := EnabledMask(x.disable, x.n)
		if got != x.want {
			t.Errorf("EnabledMask(%#x, %d) = %#x, want %#x",
				x.disable, x.n, got, x.want)
		}
		if again := EnabledMask(x.disable, x.n); again != got {
			t.Errorf("EnabledMask(%#x, %d) not idempotent", x.disable, x.n)
		}
	}
}

func TestField(t *testing.T) {
	const boot0 = 0x15b000a1
	if got := Field(boot0, 24, 5); got != 0x15 {
		t.Errorf("architecture %#x", got)
	}
	if got := Field(boot0, 20, 4); got != 0xb {
		t.Errorf("implementation %#x", got)
	}
	if got := SetField(0xffffffff, 8, 4, 0x3); got != 0xfffff3ff {
		t.Errorf("SetField %#x", got)
	}
	if got := SetField(0, 30, 4, 0xf); got != 0xc0000000 {
		t.Errorf("SetField truncation %#x", got)
	}
}

func TestModify(t *testing.T) {
	s := NewSim(map[uint32]uint32{0x20200: 0xffff0003})
	Modify(s, 0x20200, 0, 2, 1)
	if got := s.Read32(0x20200); got != 0xffff0001 {
		t.Errorf("Modify %#x", got)
	}
	Or(s, 0x20200, 0x10)
	AndNot(s, 0x20200, 0xffff0000)
	if got := s.Read32(0x20200); got != 0x11 {
		t.Errorf("Or/AndNot %#x", got)
	}
	if got := s.Writes(0x20200); got != 3 {
		t.Errorf("writes %d", got)
	}
}

func TestSimDump(t *testing.T) {
	src := []byte(`
0x00000000: 0x15b000a1
0x00021c1c: 0xfffffffe
0x00000200: 0
`)
	s, err := ParseSim(src)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Read32(0x21c1c); got != 0xfffffffe {
		t.Errorf("read %#x", got)
	}
	want := "0x00000000: 0x15b000a1\n" +
		"0x00000200: 0x00000000\n" +
		"0x00021c1c: 0xfffffffe\n"
	if diff := cmp.Diff(want, string(s.Dump())); diff != "" {
		t.Error(diff)
	}
	if _, err = ParseSim([]byte("not: [a register")); err == nil {
		t.Error("expected parse error")
	}
}

func TestSimConcurrent(t *testing.T) {
	s := NewSim(nil)
	var wg sync.WaitGroup
	for i := uint32(0); i < 8; i++ {
		wg.Add(1)
		go func(o uint32) {
			defer wg.Done()
			for j := uint32(0); j < 100; j++ {
				s.Write32(o*4, j)
				s.Read32(o * 4)
			}
		}(i)
	}
	wg.Wait()
	for i := uint32(0); i < 8; i++ {
		if got := s.Read32(i * 4); got != 99 {
			t.Errorf("offset %#x = %d", i*4, got)
		}
	}
}
