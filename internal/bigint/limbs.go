// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "math/bits"

// Low level primitives over little-endian uint64 limb vectors.  Unless
// noted otherwise the slices must have equal length, and the destination
// may alias either source.

func addInto(dst, a, b []uint64) uint64 {
	var carry uint64
	for i := range a {
		dst[i], carry = bits.Add64(a[i], b[i], carry)
	}

	return carry
}

func subInto(dst, a, b []uint64) uint64 {
	var borrow uint64
	for i := range a {
		dst[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}

	return borrow
}

func cmpLimbs(a, b []uint64) int {
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}

	return 0
}

func isZero(a []uint64) bool {
	var v uint64
	for i := range a {
		v |= a[i]
	}

	return v == 0
}

func bit(a []uint64, i uint) uint64 {
	if i >= uint(len(a))*64 {
		return 0
	}

	return (a[i/64] >> (i % 64)) & 1
}

func bitLen(a []uint64) uint {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0 {
			return uint(i*64 + bits.Len64(a[i]))
		}
	}

	return 0
}

// mulInto sets `dst = a * b` via the schoolbook method.  dst must have
// `len(a) + len(b)` limbs and must not alias a or b.
func mulInto(dst, a, b []uint64) {
	for i := range dst {
		dst[i] = 0
	}

	for i := range a {
		var carry uint64
		for j := range b {
			hi, lo := bits.Mul64(a[i], b[j])
			lo, c1 := bits.Add64(lo, dst[i+j], 0)
			lo, c2 := bits.Add64(lo, carry, 0)
			dst[i+j] = lo
			carry = hi + c1 + c2
		}
		dst[i+len(b)] = carry
	}
}

// shlN sets `dst = src << s` for `s < 64`.  dst must have one limb more
// than src.
func shlN(dst, src []uint64, s uint) {
	n := len(src)
	dst[n] = src[n-1] >> (64 - s) // shifts >= 64 give 0, so s == 0 is fine
	for i := n - 1; i > 0; i-- {
		dst[i] = src[i]<<s | src[i-1]>>(64-s)
	}
	dst[0] = src[0] << s
}

// shrN sets `dst = src >> s` for `s < 64`.  dst and src have equal
// length and may alias.
func shrN(dst, src []uint64, s uint) {
	n := len(src)
	for i := 0; i < n-1; i++ {
		dst[i] = src[i]>>s | src[i+1]<<(64-s)
	}
	dst[n-1] = src[n-1] >> s
}

func trim(a []uint64) []uint64 {
	n := len(a)
	for n > 0 && a[n-1] == 0 {
		n--
	}

	return a[:n]
}

// divRem computes `u = quo*v + rem` with `0 <= rem < v`, the classical
// normalized long division (Knuth, TAOCP vol. 2, Algorithm D).  quo may
// be nil when only the remainder is wanted; quo and rem are cleared
// first and must not alias u or v.  v must be non-zero.
func divRem(quo, rem, u, v []uint64) {
	if quo != nil {
		for i := range quo {
			quo[i] = 0
		}
	}
	for i := range rem {
		rem[i] = 0
	}

	vt := trim(v)
	ut := trim(u)
	n := len(vt)
	m := len(ut)
	if n == 0 {
		panic("bigint: division by zero")
	}
	if m < n {
		copy(rem, ut)
		return
	}

	if n == 1 {
		var r uint64
		for i := m - 1; i >= 0; i-- {
			var q uint64
			q, r = bits.Div64(r, ut[i], vt[0])
			if quo != nil {
				quo[i] = q
			}
		}
		rem[0] = r
		return
	}

	s := uint(bits.LeadingZeros64(vt[n-1]))
	vn := make([]uint64, n+1)
	shlN(vn, vt, s)
	vn = vn[:n] // the top limb of a shifted-in-place divisor is always zero
	un := make([]uint64, m+1)
	shlN(un, ut, s)

	for j := m - n; j >= 0; j-- {
		// Estimate the quotient digit from the top two dividend limbs.
		var qhat, rhat uint64
		overflowed := false
		if un[j+n] == vn[n-1] {
			qhat = ^uint64(0)
			rhat = un[j+n-1] + vn[n-1]
			overflowed = rhat < vn[n-1]
		} else {
			qhat, rhat = bits.Div64(un[j+n], un[j+n-1], vn[n-1])
		}
		for !overflowed {
			hi, lo := bits.Mul64(qhat, vn[n-2])
			if hi < rhat || (hi == rhat && lo <= un[j+n-2]) {
				break
			}
			qhat--
			prev := rhat
			rhat += vn[n-1]
			overflowed = rhat < prev
		}

		// Multiply and subtract.
		var borrow, mulCarry uint64
		for i := 0; i < n; i++ {
			hi, lo := bits.Mul64(qhat, vn[i])
			lo, c := bits.Add64(lo, mulCarry, 0)
			mulCarry = hi + c
			un[j+i], borrow = bits.Sub64(un[j+i], lo, borrow)
		}
		un[j+n], borrow = bits.Sub64(un[j+n], mulCarry, borrow)

		// The estimate was one too large; add the divisor back.
		if borrow != 0 {
			qhat--
			var carry uint64
			for i := 0; i < n; i++ {
				un[j+i], carry = bits.Add64(un[j+i], vn[i], carry)
			}
			un[j+n] += carry
		}

		if quo != nil {
			quo[j] = qhat
		}
	}

	shrN(rem[:n], un[:n], s)
}

// remInto sets `dst = u mod m`.  dst must not alias u or m.
func remInto(dst, u, m []uint64) {
	divRem(nil, dst, u, m)
}

// modWord returns `a mod w` for a non-zero single word w.
func modWord(a []uint64, w uint64) uint64 {
	var r uint64
	for i := len(a) - 1; i >= 0; i-- {
		_, r = bits.Div64(r, a[i], w)
	}

	return r
}

// modAddInto sets `dst = (a + b) mod m`, assuming `a, b < m`, using a
// same-width intermediate plus its carry-out bit.
func modAddInto(dst, a, b, m []uint64) {
	t := make([]uint64, len(a))
	carry := addInto(t, a, b)
	if carry != 0 || cmpLimbs(t, m) >= 0 {
		subInto(dst, t, m)
	} else {
		copy(dst, t)
	}
}

// modSubInto sets `dst = (a + m - b) mod m`, assuming `a, b < m`.
func modSubInto(dst, a, b, m []uint64) {
	t := make([]uint64, len(a))
	borrow := subInto(t, a, b)
	if borrow != 0 {
		addInto(dst, t, m)
	} else {
		copy(dst, t)
	}
}

// modMulInto sets `dst = (a * b) mod m` via a double-width intermediate
// followed by long division.  dst must not alias a, b, or m.
func modMulInto(dst, a, b, m []uint64) {
	wide := make([]uint64, len(a)+len(b))
	mulInto(wide, a, b)
	remInto(dst, wide, m)
}

// modExpInto sets `dst = base^exp mod m` with a left-to-right
// square-and-multiply scan of exp.  dst must not alias any input.
func modExpInto(dst, base, exp, m []uint64) {
	w := len(m)

	// m == 1 has no unit; everything reduces to zero.
	one := make([]uint64, w)
	one[0] = 1
	if cmpLimbs(m, one) == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}

	b := make([]uint64, w)
	remInto(b, base, m)

	acc := make([]uint64, w)
	acc[0] = 1
	t := make([]uint64, w)
	for i := bitLen(exp); i > 0; i-- {
		modMulInto(t, acc, acc, m)
		if bit(exp, i-1) != 0 {
			modMulInto(acc, t, b, m)
		} else {
			copy(acc, t)
		}
	}

	copy(dst, acc)
}
