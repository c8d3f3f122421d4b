// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "encoding/binary"

// U512Size is the size of a Uint512 in bytes.
const U512Size = 64

// Uint512 is a 512-bit unsigned integer, used as the double-width
// intermediate for 256-bit multiplication and for reducing 64-byte hash
// outputs.  All arguments and receivers are allowed to alias.
type Uint512 struct {
	limbs [8]uint64
}

// NewUint512 returns a new zero Uint512.
func NewUint512() *Uint512 {
	return &Uint512{}
}

// Set sets `z = a` and returns `z`.
func (z *Uint512) Set(a *Uint512) *Uint512 {
	copy(z.limbs[:], a.limbs[:])
	return z
}

// SetUint256 sets `z = a` (zero-extended) and returns `z`.
func (z *Uint512) SetUint256(a *Uint256) *Uint512 {
	copy(z.limbs[:4], a.limbs[:])
	for i := 4; i < 8; i++ {
		z.limbs[i] = 0
	}

	return z
}

// SetLEBytes sets `z = src`, where `src` is the 64-byte little-endian
// encoding of `z`, and returns `z`.
func (z *Uint512) SetLEBytes(src *[U512Size]byte) *Uint512 {
	for i := range z.limbs {
		z.limbs[i] = binary.LittleEndian.Uint64(src[i*8:])
	}

	return z
}

// MulWide sets `z = a * b` (256 x 256 -> 512 bits) and returns `z`.
func (z *Uint512) MulWide(a, b *Uint256) *Uint512 {
	var out [8]uint64
	mulInto(out[:], a.limbs[:], b.limbs[:])
	z.limbs = out

	return z
}

// AddUint256 sets `z = a + b` and returns `z`.  The carry out of the
// 512th bit is discarded; callers must ensure the sum fits.
func (z *Uint512) AddUint256(a *Uint512, b *Uint256) *Uint512 {
	var wide [8]uint64
	copy(wide[:4], b.limbs[:])
	addInto(z.limbs[:], a.limbs[:], wide[:])

	return z
}
