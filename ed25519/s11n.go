// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

package ed25519

import (
	field "gitlab.com/sable/cryptkit/internal/field25519"
)

// EncodedPointSize is the size of an encoded point in bytes: 255 bits
// of y in little-endian, with the parity of x in the top bit of the
// final byte.
const EncodedPointSize = 32

// Bytes returns the 32-byte encoding of `v`.
func (v *Point) Bytes() []byte {
	assertPointsValid(v)

	dst := v.y.Bytes()
	if v.x.IsOdd() != 0 {
		dst[EncodedPointSize-1] |= 0x80
	}

	return dst
}

// SetBytes sets `v = src`, where `src` is a valid 32-byte encoding of a
// curve point.  If `src` does not decode to a point on the curve,
// SetBytes returns nil and ErrInvalidPoint, and the receiver is
// unchanged.
func (v *Point) SetBytes(src *[EncodedPointSize]byte) (*Point, error) {
	yBytes := *src
	sign := uint64(yBytes[EncodedPointSize-1] >> 7)
	yBytes[EncodedPointSize-1] &= 0x7f

	y, err := field.NewElement().SetCanonicalBytes(&yBytes)
	if err != nil {
		return nil, ErrInvalidPoint
	}

	x, ok := xRecover(y, sign)
	if !ok {
		return nil, ErrInvalidPoint
	}

	v.x.Set(x)
	v.y.Set(y)
	v.isValid = true

	return v, nil
}

// NewPointFromBytes creates a new Point from the 32-byte encoding.
func NewPointFromBytes(src *[EncodedPointSize]byte) (*Point, error) {
	p, err := newRcvr().SetBytes(src)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// xRecover solves the curve equation for x given y, returning the root
// with the requested parity, or false when (x, y) is not on the curve.
func xRecover(y *field.Element, sign uint64) (*field.Element, bool) {
	// xx = (y^2 - 1) / (d*y^2 + 1)
	var yy, num, den, xx, x, check field.Element
	one := field.NewElement().One()

	yy.Square(y)
	num.Subtract(&yy, one)
	den.Multiply(feD, &yy)
	den.Add(&den, one)
	xx.Multiply(&num, den.Invert(&den))

	// The candidate root is xx^((q+3)/8); if its square is -xx rather
	// than xx, multiply by I = sqrt(-1).
	x.SqrtCandidate(&xx)
	if check.Square(&x).Equal(&xx) == 0 {
		x.Multiply(&x, feI)
	}

	if x.IsOdd() != sign {
		x.Negate(&x)
	}
	if x.IsOdd() != sign {
		// x = 0 has no odd root.
		return nil, false
	}

	// Reject anything that is not on the curve:
	// -x^2 + y^2 - 1 - d*x^2*y^2 = 0.
	var lhs, t field.Element
	lhs.Square(&x)
	lhs.Negate(&lhs)
	lhs.Add(&lhs, &yy)
	lhs.Subtract(&lhs, one)
	t.Square(&x)
	t.Multiply(&t, &yy)
	t.Multiply(feD, &t)
	lhs.Subtract(&lhs, &t)
	if lhs.IsZero() == 0 {
		return nil, false
	}

	return &x, true
}
