// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

package ed25519

import (
	"errors"

	"gitlab.com/sable/cryptkit/internal/bigint"
	"gitlab.com/sable/cryptkit/internal/disalloweq"
)

// ScalarSize is the size of a scalar in bytes.
const ScalarSize = 32

// ell = 2^252 + 27742317777372353535851937790883648493, the prime order
// of the basepoint subgroup.
var ell = bigint.NewUint256FromSaturated(
	0x1000000000000000,
	0x0000000000000000,
	0x14def9dea2f79cd6,
	0x5812631a5cf5d3ed,
)

// Scalar is an integer modulo ell.  All arguments and receivers are
// allowed to alias.  The zero value is a valid zero element.
type Scalar struct {
	_ disalloweq.DisallowEqual
	v bigint.Uint256
}

// Zero sets `s = 0` and returns `s`.
func (s *Scalar) Zero() *Scalar {
	s.v.SetUint64(0)
	return s
}

// Set sets `s = a` and returns `s`.
func (s *Scalar) Set(a *Scalar) *Scalar {
	s.v.Set(&a.v)
	return s
}

// SetCanonicalBytes sets `s = src`, where `src` is a 32-byte
// little-endian encoding of `s`, and returns `s`.  If the value is not
// less than ell, SetCanonicalBytes returns nil and an error, and the
// receiver is unchanged.
func (s *Scalar) SetCanonicalBytes(src *[ScalarSize]byte) (*Scalar, error) {
	var t bigint.Uint256
	t.SetLEBytes(src)
	if t.Cmp(ell) >= 0 {
		return nil, errors.New("ed25519: scalar value out of range")
	}
	s.v.Set(&t)

	return s, nil
}

// SetWideBytes sets `s = src mod ell`, where `src` is a 64-byte
// little-endian value (typically a SHA-512 digest), and returns `s`.
func (s *Scalar) SetWideBytes(src *[2 * ScalarSize]byte) *Scalar {
	var w bigint.Uint512
	w.SetLEBytes(src)
	s.v.ModWide(&w, ell)

	return s
}

// Bytes returns the canonical little-endian encoding of `s`.
func (s *Scalar) Bytes() []byte {
	return s.v.LEBytes()
}

// MulAdd sets `s = (k*a + r) mod ell` and returns `s`.  `a` is a raw
// 256-bit integer rather than a Scalar, since the clamped secret scalar
// is never reduced.
func (s *Scalar) MulAdd(k *Scalar, a *bigint.Uint256, r *Scalar) *Scalar {
	w := bigint.NewUint512().MulWide(&k.v, a)
	w.AddUint256(w, &r.v)
	s.v.ModWide(w, ell)

	return s
}

// Equal returns 1 iff `s == a`, 0 otherwise.
func (s *Scalar) Equal(a *Scalar) uint64 {
	return s.v.Equal(&a.v)
}

// IsZero returns 1 iff `s == 0`, 0 otherwise.
func (s *Scalar) IsZero() uint64 {
	return s.v.IsZero()
}

// Wipe zeroizes the scalar.
func (s *Scalar) Wipe() {
	s.v.SetUint64(0)
}

// NewScalar returns a new zero Scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}
