// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

// Package field25519 implements arithmetic modulo q = 2^255 - 19.
package field25519

import (
	"encoding/hex"
	"errors"

	"gitlab.com/sable/cryptkit/internal/bigint"
	"gitlab.com/sable/cryptkit/internal/disalloweq"
)

// ElementSize is the size of a field element in bytes.
const ElementSize = 32

var (
	// q = 2^255 - 19
	q = bigint.NewUint256FromSaturated(
		0x7fffffffffffffff,
		0xffffffffffffffff,
		0xffffffffffffffff,
		0xffffffffffffffed,
	)

	// qMinus2 = q - 2, the Fermat inversion exponent.
	qMinus2 = bigint.NewUint256FromSaturated(
		0x7fffffffffffffff,
		0xffffffffffffffff,
		0xffffffffffffffff,
		0xffffffffffffffeb,
	)

	// sqrtExp = (q + 3) / 8, the candidate square root exponent.
	sqrtExp = bigint.NewUint256FromSaturated(
		0x0fffffffffffffff,
		0xffffffffffffffff,
		0xffffffffffffffff,
		0xfffffffffffffffe,
	)
)

// Element is a field element.  All arguments and receivers are allowed
// to alias.  The zero value is a valid zero element.
type Element struct {
	_ disalloweq.DisallowEqual
	v bigint.Uint256
}

// Zero sets `fe = 0` and returns `fe`.
func (fe *Element) Zero() *Element {
	fe.v.SetUint64(0)
	return fe
}

// One sets `fe = 1` and returns `fe`.
func (fe *Element) One() *Element {
	fe.v.SetUint64(1)
	return fe
}

// Add sets `fe = a + b` and returns `fe`.
func (fe *Element) Add(a, b *Element) *Element {
	fe.v.AddMod(&a.v, &b.v, q)
	return fe
}

// Subtract sets `fe = a - b` and returns `fe`.
func (fe *Element) Subtract(a, b *Element) *Element {
	fe.v.SubMod(&a.v, &b.v, q)
	return fe
}

// Negate sets `fe = -a` and returns `fe`.
func (fe *Element) Negate(a *Element) *Element {
	var zero Element
	return fe.Subtract(&zero, a)
}

// Multiply sets `fe = a * b` and returns `fe`.
func (fe *Element) Multiply(a, b *Element) *Element {
	fe.v.MulMod(&a.v, &b.v, q)
	return fe
}

// Square sets `fe = a * a` and returns `fe`.
func (fe *Element) Square(a *Element) *Element {
	fe.v.MulMod(&a.v, &a.v, q)
	return fe
}

// Pow sets `fe = a^exp` and returns `fe`.
func (fe *Element) Pow(a *Element, exp *bigint.Uint256) *Element {
	fe.v.ExpMod(&a.v, exp, q)
	return fe
}

// Invert sets `fe = a^-1` via Fermat's little theorem and returns `fe`.
// The inverse of zero is zero.
func (fe *Element) Invert(a *Element) *Element {
	return fe.Pow(a, qMinus2)
}

// SqrtCandidate sets `fe = a^((q+3)/8)` and returns `fe`.  The result
// is a square root of `a` or of `-a` when one exists; callers must
// check which, and fix up with the precomputed `I` as required.
func (fe *Element) SqrtCandidate(a *Element) *Element {
	return fe.Pow(a, sqrtExp)
}

// Set sets `fe = a` and returns `fe`.
func (fe *Element) Set(a *Element) *Element {
	fe.v.Set(&a.v)
	return fe
}

// SetCanonicalBytes sets `fe = src`, where `src` is a 32-byte
// little-endian encoding of `fe`, and returns `fe`.  If `src` is not a
// canonical encoding (the value is not less than q), SetCanonicalBytes
// returns nil and an error, and the receiver is unchanged.
func (fe *Element) SetCanonicalBytes(src *[ElementSize]byte) (*Element, error) {
	var t bigint.Uint256
	t.SetLEBytes(src)
	if t.Cmp(q) >= 0 {
		return nil, errors.New("field25519: value out of range")
	}
	fe.v.Set(&t)

	return fe, nil
}

// Bytes returns the canonical little-endian encoding of `fe`.
func (fe *Element) Bytes() []byte {
	return fe.v.LEBytes()
}

// Equal returns 1 iff `fe == a`, 0 otherwise.
func (fe *Element) Equal(a *Element) uint64 {
	return fe.v.Equal(&a.v)
}

// IsZero returns 1 iff `fe == 0`, 0 otherwise.
func (fe *Element) IsZero() uint64 {
	return fe.v.IsZero()
}

// IsOdd returns 1 iff `fe % 2 == 1`, 0 otherwise.
func (fe *Element) IsOdd() uint64 {
	return fe.v.IsOdd()
}

// String returns the little-endian hex representation of `fe`.
func (fe *Element) String() string {
	return hex.EncodeToString(fe.Bytes())
}

// NewElement returns a new zero Element.
func NewElement() *Element {
	return &Element{}
}

// NewElementFrom creates a new Element from another.
func NewElementFrom(other *Element) *Element {
	return NewElement().Set(other)
}

// NewElementFromSaturated creates a new Element from the raw saturated
// representation, most-significant limb first.  The value must be in
// canonical range; this is only for pre-computed constants.
func NewElementFromSaturated(l3, l2, l1, l0 uint64) *Element {
	var fe Element
	fe.v.Set(bigint.NewUint256FromSaturated(l3, l2, l1, l0))
	if fe.v.Cmp(q) >= 0 {
		panic("field25519: saturated limbs out of range")
	}

	return &fe
}
