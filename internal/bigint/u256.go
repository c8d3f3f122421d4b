// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

// Package bigint implements the fixed-width unsigned integers backing
// the RSA and Ed25519 arithmetic, as little-endian vectors of 64-bit
// limbs with hand-written add/sub/multiply-wide/divide primitives.
package bigint

import (
	"encoding/binary"

	"gitlab.com/sable/cryptkit/internal/helpers"
)

// U256Size is the size of a Uint256 in bytes.
const U256Size = 32

// Uint256 is a 256-bit unsigned integer.  All arguments and receivers
// are allowed to alias.  The zero value is a valid zero.
type Uint256 struct {
	limbs [4]uint64
}

// NewUint256 returns a new zero Uint256.
func NewUint256() *Uint256 {
	return &Uint256{}
}

// NewUint256FromSaturated creates a new Uint256 from the raw saturated
// representation, most-significant limb first.
func NewUint256FromSaturated(l3, l2, l1, l0 uint64) *Uint256 {
	return &Uint256{limbs: [4]uint64{l0, l1, l2, l3}}
}

// NewUint256FromUint64 creates a new Uint256 from a uint64.
func NewUint256FromUint64(v uint64) *Uint256 {
	return &Uint256{limbs: [4]uint64{v, 0, 0, 0}}
}

// Set sets `z = a` and returns `z`.
func (z *Uint256) Set(a *Uint256) *Uint256 {
	copy(z.limbs[:], a.limbs[:])
	return z
}

// SetUint64 sets `z = v` and returns `z`.
func (z *Uint256) SetUint64(v uint64) *Uint256 {
	z.limbs = [4]uint64{v, 0, 0, 0}
	return z
}

// SetLEBytes sets `z = src`, where `src` is the 32-byte little-endian
// encoding of `z`, and returns `z`.
func (z *Uint256) SetLEBytes(src *[U256Size]byte) *Uint256 {
	for i := range z.limbs {
		z.limbs[i] = binary.LittleEndian.Uint64(src[i*8:])
	}

	return z
}

// LEBytes returns the 32-byte little-endian encoding of `z`.
func (z *Uint256) LEBytes() []byte {
	dst := make([]byte, U256Size)
	for i, l := range z.limbs {
		binary.LittleEndian.PutUint64(dst[i*8:], l)
	}

	return dst
}

// Equal returns 1 iff `z == a`, 0 otherwise.
func (z *Uint256) Equal(a *Uint256) uint64 {
	return helpers.LimbsAreEqual(z.limbs[:], a.limbs[:])
}

// IsZero returns 1 iff `z == 0`, 0 otherwise.
func (z *Uint256) IsZero() uint64 {
	var v uint64
	for _, l := range z.limbs {
		v |= l
	}

	return helpers.Uint64IsZero(v)
}

// IsOdd returns 1 iff `z % 2 == 1`, 0 otherwise.
func (z *Uint256) IsOdd() uint64 {
	return z.limbs[0] & 1
}

// Cmp returns -1, 0, or 1 depending on whether `z` is less than, equal
// to, or greater than `a`.
func (z *Uint256) Cmp(a *Uint256) int {
	return cmpLimbs(z.limbs[:], a.limbs[:])
}

// Bit returns bit `i` of `z`.
func (z *Uint256) Bit(i uint) uint64 {
	return bit(z.limbs[:], i)
}

// BitLen returns the length of `z` in bits.
func (z *Uint256) BitLen() uint {
	return bitLen(z.limbs[:])
}

// AddMod sets `z = (a + b) mod m` and returns `z`.  Assumes `a, b < m`.
func (z *Uint256) AddMod(a, b, m *Uint256) *Uint256 {
	var out [4]uint64
	modAddInto(out[:], a.limbs[:], b.limbs[:], m.limbs[:])
	z.limbs = out

	return z
}

// SubMod sets `z = (a + m - b) mod m` and returns `z`.  Assumes
// `a, b < m`.
func (z *Uint256) SubMod(a, b, m *Uint256) *Uint256 {
	var out [4]uint64
	modSubInto(out[:], a.limbs[:], b.limbs[:], m.limbs[:])
	z.limbs = out

	return z
}

// MulMod sets `z = (a * b) mod m` and returns `z`, via a 512-bit
// intermediate.
func (z *Uint256) MulMod(a, b, m *Uint256) *Uint256 {
	var out [4]uint64
	modMulInto(out[:], a.limbs[:], b.limbs[:], m.limbs[:])
	z.limbs = out

	return z
}

// ExpMod sets `z = base^exp mod m` and returns `z`.
func (z *Uint256) ExpMod(base, exp, m *Uint256) *Uint256 {
	var out [4]uint64
	modExpInto(out[:], base.limbs[:], exp.limbs[:], m.limbs[:])
	z.limbs = out

	return z
}

// InvModPrime sets `z = x^-1 mod m` for prime `m` via Fermat's little
// theorem, and returns `z`.  The caller is responsible for the
// primality of `m`.
func (z *Uint256) InvModPrime(x, m *Uint256) *Uint256 {
	var e [4]uint64
	two := [4]uint64{2, 0, 0, 0}
	subInto(e[:], m.limbs[:], two[:])

	var out [4]uint64
	modExpInto(out[:], x.limbs[:], e[:], m.limbs[:])
	z.limbs = out

	return z
}

// ModWide sets `z = w mod m` and returns `z`.
func (z *Uint256) ModWide(w *Uint512, m *Uint256) *Uint256 {
	var out [4]uint64
	remInto(out[:], w.limbs[:], m.limbs[:])
	z.limbs = out

	return z
}
