// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import (
	"encoding/binary"

	"gitlab.com/sable/cryptkit/internal/helpers"
)

// U2048Size is the size of a Uint2048 in bytes.
const U2048Size = 256

const numLimbs2048 = 32

// Uint2048 is a 2048-bit unsigned integer, sized for the RSA modulus
// and key components.  All arguments and receivers are allowed to
// alias.  The zero value is a valid zero.
type Uint2048 struct {
	limbs [numLimbs2048]uint64
}

// NewUint2048 returns a new zero Uint2048.
func NewUint2048() *Uint2048 {
	return &Uint2048{}
}

// NewUint2048FromUint64 creates a new Uint2048 from a uint64.
func NewUint2048FromUint64(v uint64) *Uint2048 {
	var z Uint2048
	z.limbs[0] = v
	return &z
}

// Set sets `z = a` and returns `z`.
func (z *Uint2048) Set(a *Uint2048) *Uint2048 {
	copy(z.limbs[:], a.limbs[:])
	return z
}

// SetUint64 sets `z = v` and returns `z`.
func (z *Uint2048) SetUint64(v uint64) *Uint2048 {
	for i := range z.limbs {
		z.limbs[i] = 0
	}
	z.limbs[0] = v

	return z
}

// SetLEBytes sets `z = src`, where `src` is the 256-byte little-endian
// encoding of `z`, and returns `z`.
func (z *Uint2048) SetLEBytes(src *[U2048Size]byte) *Uint2048 {
	for i := range z.limbs {
		z.limbs[i] = binary.LittleEndian.Uint64(src[i*8:])
	}

	return z
}

// LEBytes returns the 256-byte little-endian encoding of `z`.
func (z *Uint2048) LEBytes() []byte {
	dst := make([]byte, U2048Size)
	for i, l := range z.limbs {
		binary.LittleEndian.PutUint64(dst[i*8:], l)
	}

	return dst
}

// Equal returns 1 iff `z == a`, 0 otherwise.
func (z *Uint2048) Equal(a *Uint2048) uint64 {
	return helpers.LimbsAreEqual(z.limbs[:], a.limbs[:])
}

// IsZero returns 1 iff `z == 0`, 0 otherwise.
func (z *Uint2048) IsZero() uint64 {
	var v uint64
	for _, l := range z.limbs {
		v |= l
	}

	return helpers.Uint64IsZero(v)
}

// IsOdd returns 1 iff `z % 2 == 1`, 0 otherwise.
func (z *Uint2048) IsOdd() uint64 {
	return z.limbs[0] & 1
}

// Cmp returns -1, 0, or 1 depending on whether `z` is less than, equal
// to, or greater than `a`.
func (z *Uint2048) Cmp(a *Uint2048) int {
	return cmpLimbs(z.limbs[:], a.limbs[:])
}

// Bit returns bit `i` of `z`.
func (z *Uint2048) Bit(i uint) uint64 {
	return bit(z.limbs[:], i)
}

// SetBit sets bit `i` of `z` to one and returns `z`.
func (z *Uint2048) SetBit(i uint) *Uint2048 {
	z.limbs[i/64] |= 1 << (i % 64)
	return z
}

// BitLen returns the length of `z` in bits.
func (z *Uint2048) BitLen() uint {
	return bitLen(z.limbs[:])
}

// Add sets `z = a + b` and returns `z`.  The carry out of the 2048th
// bit is discarded; callers must ensure the sum fits.
func (z *Uint2048) Add(a, b *Uint2048) *Uint2048 {
	addInto(z.limbs[:], a.limbs[:], b.limbs[:])
	return z
}

// Sub sets `z = a - b` and returns `z`.  Callers must ensure `a >= b`.
func (z *Uint2048) Sub(a, b *Uint2048) *Uint2048 {
	subInto(z.limbs[:], a.limbs[:], b.limbs[:])
	return z
}

// SubUint64 sets `z = a - v` and returns `z`.  Callers must ensure
// `a >= v`.
func (z *Uint2048) SubUint64(a *Uint2048, v uint64) *Uint2048 {
	var b [numLimbs2048]uint64
	b[0] = v
	subInto(z.limbs[:], a.limbs[:], b[:])

	return z
}

// Mul sets `z = a * b` and returns `z`, keeping the low 2048 bits.
// Callers must ensure the product fits.
func (z *Uint2048) Mul(a, b *Uint2048) *Uint2048 {
	var wide [2 * numLimbs2048]uint64
	mulInto(wide[:], a.limbs[:], b.limbs[:])
	copy(z.limbs[:], wide[:numLimbs2048])

	return z
}

// Rsh1 sets `z = a >> 1` and returns `z`.
func (z *Uint2048) Rsh1(a *Uint2048) *Uint2048 {
	shrN(z.limbs[:], a.limbs[:], 1)
	return z
}

// Mod sets `z = a mod m` and returns `z`.  `m` must be non-zero.
func (z *Uint2048) Mod(a, m *Uint2048) *Uint2048 {
	var out [numLimbs2048]uint64
	remInto(out[:], a.limbs[:], m.limbs[:])
	z.limbs = out

	return z
}

// ModUint64 returns `z mod v` for a non-zero v.
func (z *Uint2048) ModUint64(v uint64) uint64 {
	return modWord(z.limbs[:], v)
}

// AddMod sets `z = (a + b) mod m` and returns `z`.  Assumes `a, b < m`.
func (z *Uint2048) AddMod(a, b, m *Uint2048) *Uint2048 {
	var out [numLimbs2048]uint64
	modAddInto(out[:], a.limbs[:], b.limbs[:], m.limbs[:])
	z.limbs = out

	return z
}

// SubMod sets `z = (a + m - b) mod m` and returns `z`.  Assumes
// `a, b < m`.
func (z *Uint2048) SubMod(a, b, m *Uint2048) *Uint2048 {
	var out [numLimbs2048]uint64
	modSubInto(out[:], a.limbs[:], b.limbs[:], m.limbs[:])
	z.limbs = out

	return z
}

// MulMod sets `z = (a * b) mod m` and returns `z`, via a 4096-bit
// intermediate followed by long division.
func (z *Uint2048) MulMod(a, b, m *Uint2048) *Uint2048 {
	var out [numLimbs2048]uint64
	modMulInto(out[:], a.limbs[:], b.limbs[:], m.limbs[:])
	z.limbs = out

	return z
}

// ExpMod sets `z = base^exp mod m` and returns `z`, with a
// left-to-right square-and-multiply scan of exp.
func (z *Uint2048) ExpMod(base, exp, m *Uint2048) *Uint2048 {
	var out [numLimbs2048]uint64
	modExpInto(out[:], base.limbs[:], exp.limbs[:], m.limbs[:])
	z.limbs = out

	return z
}

// InvMod sets `z = x^-1 mod m` via the extended Euclidean algorithm
// and returns `z, true`.  If `gcd(x, m) != 1` no inverse exists, and
// InvMod returns `nil, false` with the receiver unchanged.  `x` must be
// non-zero and less than `m`.
func (z *Uint2048) InvMod(x, m *Uint2048) (*Uint2048, bool) {
	var (
		r0 = m.limbs
		r1 = x.limbs

		t0, t1 [numLimbs2048]uint64

		q, r, qt, tn [numLimbs2048]uint64
	)
	t1[0] = 1

	for !isZero(r1[:]) {
		divRem(q[:], r[:], r0[:], r1[:])
		r0, r1 = r1, r

		// tNext = (t0 - q*t1) mod m
		modMulInto(qt[:], q[:], t1[:], m.limbs[:])
		modSubInto(tn[:], t0[:], qt[:], m.limbs[:])
		t0, t1 = t1, tn
	}

	one := [numLimbs2048]uint64{1}
	if cmpLimbs(r0[:], one[:]) != 0 {
		return nil, false
	}
	z.limbs = t0

	return z, true
}
