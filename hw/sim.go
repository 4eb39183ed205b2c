// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package hw

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"sort"
	"sync"

	"gopkg.in/yaml.v2"
)

// Sim is a register file held in memory. Unset offsets read as zero.
type Sim struct {
	mutex sync.RWMutex
	regs  map[uint32]uint32
	nw    map[uint32]uint
}

func NewSim(init map[uint32]uint32) *Sim {
	s := &Sim{
		regs: make(map[uint32]uint32, len(init)),
		nw:   make(map[uint32]uint),
	}
	for k, v := range init {
		s.regs[k] = v
	}
	return s
}

// LoadSim reads a YAML register dump of "offset: value" pairs, e.g.
//
//	0x00000000: 0x15b000a1
//	0x00021c1c: 0x0
func LoadSim(fn string) (*Sim, error) {
	b, err := ioutil.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	return ParseSim(b)
}

func ParseSim(b []byte) (*Sim, error) {
	var m map[uint32]uint32
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("register dump: %v", err)
	}
	return NewSim(m), nil
}

func (s *Sim) Read32(offset uint32) uint32 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.regs[offset]
}

func (s *Sim) Write32(offset uint32, value uint32) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.regs[offset] = value
	s.nw[offset]++
}

// Writes returns the number of writes seen at offset.
func (s *Sim) Writes(offset uint32) uint {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.nw[offset]
}

// Dump returns the register file in LoadSim format sorted by offset.
func (s *Sim) Dump() []byte {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	offsets := make([]uint32, 0, len(s.regs))
	for k := range s.regs {
		offsets = append(offsets, k)
	}
	sort.Slice(offsets, func(i, j int) bool { return offsets[i] < offsets[j] })
	buf := new(bytes.Buffer)
	for _, o := range offsets {
		fmt.Fprintf(buf, "0x%08x: 0x%08x\n", o, s.regs[o])
	}
	return buf.Bytes()
}
