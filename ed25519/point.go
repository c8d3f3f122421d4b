// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

// Package ed25519 implements the Ed25519 signature scheme over the
// twisted Edwards curve -x^2 + y^2 = 1 + d*x^2*y^2 in affine
// coordinates.
package ed25519

import (
	"gitlab.com/sable/cryptkit/internal/bigint"
	"gitlab.com/sable/cryptkit/internal/disalloweq"
	field "gitlab.com/sable/cryptkit/internal/field25519"
)

var (
	// feD is the curve constant d = -121665 * 121666^-1 mod q.
	feD = field.NewElementFromSaturated(
		0x52036cee2b6ffe73,
		0x8cc740797779e898,
		0x00700a4d4141d8ab,
		0x75eb4dca135978a3,
	)

	// feI = 2^((q-1)/4), the square root of -1 used to fix up failed
	// root candidates during decompression.
	feI = field.NewElementFromSaturated(
		0x2b8324804fc1df0b,
		0x2b4d00993dfbd7a7,
		0x2f431806ad2fe478,
		0xc4ee1b274a0ea0b0,
	)

	// gX is the x-coordinate of the basepoint.
	gX = field.NewElementFromSaturated(
		0x216936d3cd6e53fe,
		0xc0a4e231fdd6dc5c,
		0x692cc7609525a7b2,
		0xc9562d608f25d51a,
	)

	// gY is the y-coordinate of the basepoint.
	gY = field.NewElementFromSaturated(
		0x6666666666666666,
		0x6666666666666666,
		0x6666666666666666,
		0x6666666666666658,
	)
)

// Point represents a point on the curve.  All arguments and receivers
// are allowed to alias.  The zero value is NOT valid, and may only be
// used as a receiver.
type Point struct {
	_ disalloweq.DisallowEqual

	x, y field.Element

	isValid bool
}

// Identity sets `v = (0, 1)`, the neutral element, and returns `v`.
func (v *Point) Identity() *Point {
	v.x.Zero()
	v.y.One()

	v.isValid = true
	return v
}

// Generator sets `v = B`, and returns `v`.
func (v *Point) Generator() *Point {
	v.x.Set(gX)
	v.y.Set(gY)

	v.isValid = true
	return v
}

// Add sets `v = p + q` with the unified Edwards addition formula, and
// returns `v`.
func (v *Point) Add(p, q *Point) *Point {
	assertPointsValid(p, q)

	// x3 = (x1*y2 + x2*y1) / (1 + d*x1*x2*y1*y2)
	// y3 = (y1*y2 + x1*x2) / (1 - d*x1*x2*y1*y2)

	var x1y2, x2y1, y1y2, x1x2, t, one, den, x3, y3 field.Element
	x1y2.Multiply(&p.x, &q.y)
	x2y1.Multiply(&q.x, &p.y)
	y1y2.Multiply(&p.y, &q.y)
	x1x2.Multiply(&p.x, &q.x)

	t.Multiply(&x1x2, &y1y2)
	t.Multiply(feD, &t)
	one.One()

	den.Add(&one, &t)
	x3.Add(&x1y2, &x2y1)
	x3.Multiply(&x3, den.Invert(&den))

	den.Subtract(&one, &t)
	y3.Add(&y1y2, &x1x2)
	y3.Multiply(&y3, den.Invert(&den))

	v.x.Set(&x3)
	v.y.Set(&y3)
	v.isValid = p.isValid && q.isValid

	return v
}

// Double sets `v = p + p`, and returns `v`.
func (v *Point) Double(p *Point) *Point {
	return v.Add(p, p)
}

// Negate sets `v = -p`, and returns `v`.
func (v *Point) Negate(p *Point) *Point {
	assertPointsValid(p)

	v.x.Negate(&p.x)
	v.y.Set(&p.y)
	v.isValid = p.isValid

	return v
}

// ScalarMult sets `v = [e]p` by binary double-and-add over the 256-bit
// integer `e`, starting from the identity, and returns `v`.  The
// execution time varies with `e`.
func (v *Point) ScalarMult(e *bigint.Uint256, p *Point) *Point {
	assertPointsValid(p)

	r := NewIdentityPoint()
	t := NewPointFrom(p)
	for i := e.BitLen(); i > 0; i-- {
		r.Double(r)
		if e.Bit(i-1) != 0 {
			r.Add(r, t)
		}
	}

	v.x.Set(&r.x)
	v.y.Set(&r.y)
	v.isValid = p.isValid

	return v
}

// ScalarBaseMult sets `v = [e]B`, and returns `v`.
func (v *Point) ScalarBaseMult(e *bigint.Uint256) *Point {
	return v.ScalarMult(e, NewGeneratorPoint())
}

// Set sets `v = p`, and returns `v`.
func (v *Point) Set(p *Point) *Point {
	assertPointsValid(p)

	v.x.Set(&p.x)
	v.y.Set(&p.y)
	v.isValid = p.isValid

	return v
}

// Equal returns 1 iff `v == p`, 0 otherwise.
func (v *Point) Equal(p *Point) uint64 {
	assertPointsValid(v, p)

	return v.x.Equal(&p.x) & v.y.Equal(&p.y)
}

// IsIdentity returns 1 iff `v` is the neutral element, 0 otherwise.
func (v *Point) IsIdentity() uint64 {
	assertPointsValid(v)

	var one field.Element
	one.One()

	return v.x.IsZero() & v.y.Equal(&one)
}

// NewIdentityPoint returns a new Point set to the neutral element.
func NewIdentityPoint() *Point {
	return newRcvr().Identity()
}

// NewGeneratorPoint returns a new Point set to the canonical basepoint.
func NewGeneratorPoint() *Point {
	return newRcvr().Generator()
}

// NewPointFrom creates a new Point from another.
func NewPointFrom(p *Point) *Point {
	assertPointsValid(p)

	return newRcvr().Set(p)
}

// assertPointsValid ensures that the points have been initialized.
func assertPointsValid(points ...*Point) {
	for _, p := range points {
		if !p.isValid {
			panic("ed25519: use of uninitialized Point")
		}
	}
}

func newRcvr() *Point {
	// This is explicitly for nicely creating receivers.
	return &Point{}
}
