// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

//go:build linux
// +build linux

package hw

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Mmio is a Regs backed by a memory mapped PCI resource.
type Mmio struct {
	Name string
	mem  []byte
}

// OpenResource maps an entire sysfs resource file read/write.
func OpenResource(fn string) (*Mmio, error) {
	f, err := os.OpenFile(fn, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	mem, err := unix.Mmap(int(f.Fd()), 0, int(fi.Size()),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %v", fn, err)
	}
	return &Mmio{Name: fn, mem: mem}, nil
}

func (m *Mmio) Close() error {
	if m.mem == nil {
		return nil
	}
	err := unix.Munmap(m.mem)
	m.mem = nil
	if err != nil {
		return fmt.Errorf("munmap %s: %v", m.Name, err)
	}
	return nil
}

func (m *Mmio) Len() int { return len(m.mem) }

func (m *Mmio) addr(offset uint32) *uint32 {
	if offset&3 != 0 || int(offset)+4 > len(m.mem) {
		panic(fmt.Errorf("%s: 0x%08x: %w", m.Name, offset, ErrRange))
	}
	return (*uint32)(unsafe.Pointer(&m.mem[offset]))
}

func (m *Mmio) Read32(offset uint32) uint32 {
	return atomic.LoadUint32(m.addr(offset))
}

func (m *Mmio) Write32(offset uint32, value uint32) {
	atomic.StoreUint32(m.addr(offset), value)
}
