// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

package field25519

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/sable/cryptkit/internal/bigint"
)

func TestSqrtCandidateFixup(t *testing.T) {
	// I = 2^((q-1)/4) satisfies I^2 = -1 mod q, since q = 5 mod 8 makes
	// 2 a non-residue.
	i := NewElement().Pow(NewElementFromSaturated(0, 0, 0, 2), bigint.NewUint256FromSaturated(
		0x1fffffffffffffff,
		0xffffffffffffffff,
		0xffffffffffffffff,
		0xfffffffffffffffb,
	)) // (q - 1) / 4

	minusOne := NewElement().Negate(NewElement().One())
	require.EqualValues(t, 1, NewElement().Square(i).Equal(minusOne), "I^2 == -1")
}

func TestInvert(t *testing.T) {
	x := NewElementFromSaturated(0, 0, 0, 121666)
	xInv := NewElement().Invert(x)
	require.EqualValues(t, 1, NewElement().Multiply(x, xInv).Equal(NewElement().One()), "x * x^-1 == 1")

	require.EqualValues(t, 1, NewElement().Invert(NewElement()).IsZero(), "0^-1 == 0")
}

func TestCanonicalBytes(t *testing.T) {
	var qBytes [ElementSize]byte
	copy(qBytes[:], NewElement().Zero().Bytes())
	qBytes[0] = 0xed
	for i := 1; i < 31; i++ {
		qBytes[i] = 0xff
	}
	qBytes[31] = 0x7f

	fe, err := NewElement().SetCanonicalBytes(&qBytes)
	require.Error(t, err, "SetCanonicalBytes(q)")
	require.Nil(t, fe, "SetCanonicalBytes(q)")

	qBytes[0] = 0xec // q - 1
	fe, err = NewElement().SetCanonicalBytes(&qBytes)
	require.NoError(t, err, "SetCanonicalBytes(q - 1)")
	require.Equal(t, qBytes[:], fe.Bytes(), "round trip")
}
