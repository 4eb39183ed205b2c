// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package hw provides 32 bit register access to a GPU's BAR0 aperture.
package hw

import "errors"

var ErrRange = errors.New("register offset out of range")

// Regs is the device handle every HAL leaf operates through.
// Implementations must allow concurrent access to different offsets.
type Regs interface {
	Read32(offset uint32) uint32
	Write32(offset uint32, value uint32)
}

// Field extracts width bits of v starting at shift.
func Field(v uint32, shift, width uint) uint32 {
	return (v >> shift) & Mask(width)
}

// SetField returns v with width bits at shift replaced by x.
func SetField(v uint32, shift, width uint, x uint32) uint32 {
	m := Mask(width) << shift
	return (v &^ m) | ((x << shift) & m)
}

// Mask returns n low order ones.
func Mask(n uint) uint32 {
	if n >= 32 {
		return ^uint32(0)
	}
	return (1 << n) - 1
}

// Bit returns the single bit mask for bit i.
func Bit(i uint) uint32 { return 1 << i }

// EnabledMask inverts a fuse disable field and keeps the n implemented units,
// e.g. EnabledMask(0b1010, 4) == 0b0101.
func EnabledMask(disable uint32, n uint32) uint32 {
	return ^disable & Mask(uint(n))
}

// Or sets bits in the register at offset and returns the written value.
func Or(r Regs, offset, v uint32) (x uint32) {
	x = r.Read32(offset) | v
	r.Write32(offset, x)
	return
}

// AndNot clears bits in the register at offset and returns the written value.
func AndNot(r Regs, offset, v uint32) (x uint32) {
	x = r.Read32(offset) &^ v
	r.Write32(offset, x)
	return
}

// Modify replaces width bits at shift of the register at offset.
func Modify(r Regs, offset uint32, shift, width uint, x uint32) uint32 {
	v := SetField(r.Read32(offset), shift, width, x)
	r.Write32(offset, v)
	return v
}
