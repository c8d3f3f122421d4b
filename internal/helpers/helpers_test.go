// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

package helpers

import (
	"math"
	"testing"
)

func TestUint64IsZero(t *testing.T) {
	for _, v := range []uint64{
		0,
		1,
		math.MaxUint64,
	} {
		var expected uint64
		if v == 0 {
			expected = 1
		}
		if res := Uint64IsZero(v); res != expected {
			t.Errorf("Uint64IsZero(%d) = %d; want %d", v, res, expected)
		}
	}
}

func TestUint64IsNonzero(t *testing.T) {
	for _, v := range []uint64{
		0,
		1,
		math.MaxUint64,
	} {
		var expected uint64
		if v != 0 {
			expected = 1
		}
		if res := Uint64IsNonzero(v); res != expected {
			t.Errorf("Uint64IsNonzero(%d) = %d; want %d", v, res, expected)
		}
	}
}

func TestUint64Select(t *testing.T) {
	if v := Uint64Select(3, 5, 0); v != 3 {
		t.Errorf("Uint64Select(3, 5, 0) = %d; want 3", v)
	}
	if v := Uint64Select(3, 5, 1); v != 5 {
		t.Errorf("Uint64Select(3, 5, 1) = %d; want 5", v)
	}
}

func TestLimbsAreEqual(t *testing.T) {
	a := []uint64{1, 2, 3, 4}
	b := []uint64{1, 2, 3, 4}
	c := []uint64{1, 2, 3, 5}
	if LimbsAreEqual(a, b) != 1 {
		t.Error("LimbsAreEqual(a, b) != 1")
	}
	if LimbsAreEqual(a, c) != 0 {
		t.Error("LimbsAreEqual(a, c) != 0")
	}
}
