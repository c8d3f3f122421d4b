// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

// Package helpers implements small utility routines shared across the
// module.
package helpers

import (
	"encoding/hex"
	"math/bits"
)

// Uint64IsZero returns 1 iff `v == 0`, 0 otherwise, in constant time.
func Uint64IsZero(v uint64) uint64 {
	return (^(v | -v)) >> 63
}

// Uint64IsNonzero returns 1 iff `v != 0`, 0 otherwise, in constant time.
func Uint64IsNonzero(v uint64) uint64 {
	return (v | -v) >> 63
}

// Uint64Select returns `a` iff `ctrl == 0`, `b` otherwise, in constant
// time.  ctrl MUST be 0 or 1.
func Uint64Select(a, b, ctrl uint64) uint64 {
	mask := -ctrl
	return a ^ (mask & (a ^ b))
}

// Uint64Equal returns 1 iff `a == b`, 0 otherwise, in constant time.
func Uint64Equal(a, b uint64) uint64 {
	return Uint64IsZero(a ^ b)
}

// LimbsAreEqual returns 1 iff `a == b`, 0 otherwise, in constant time.
func LimbsAreEqual(a, b []uint64) uint64 {
	var diff uint64
	for i := range a {
		diff |= a[i] ^ b[i]
	}

	return Uint64IsZero(diff)
}

// Uint64Sub64 is a trivial wrapper around bits.Sub64, that exists to
// make borrow chains read uniformly.
func Uint64Sub64(a, b, borrow uint64) (uint64, uint64) {
	return bits.Sub64(a, b, borrow)
}

// MustBytesFromHex returns the byte representation of the hex encoded
// string, or panics.
func MustBytesFromHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("helpers: invalid hex: " + err.Error())
	}

	return b
}
