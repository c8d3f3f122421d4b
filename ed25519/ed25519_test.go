// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

package ed25519

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/sable/cryptkit/entropy"
	"gitlab.com/sable/cryptkit/internal/bigint"
	"gitlab.com/sable/cryptkit/internal/helpers"
)

// RFC 8032, section 7.1.
var rfc8032Vectors = []struct {
	seed string
	pk   string
	msg  string
	sig  string
}{
	{
		"9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60",
		"d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
		"",
		"e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e06522490155" +
			"5fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b",
	},
	{
		"4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb",
		"3d4017c3e843895a92b70aa74d1b7ebc9c982ccf2ec4968cc0cd55f12af4660c",
		"72",
		"92a009a9f0d4cab8720e820b5f642540a2b27b5416503f8fb3762223ebdb69da" +
			"085ac1e43e15996e458f3613d0f11d8c387b2eaeb4302aeeb00d291612bb0c00",
	},
	{
		"c5aa8df43f9f837bedb7442f31dcb7b166d38535076f094b85ce3a2e0b4458f7",
		"fc51cd8e6218a1a38da47ed00230f0580816ed13ba3303ac5deb911548908025",
		"af82",
		"6291d657deec24024827e69c3abe01a30ce548a284743a445e3680d7db5ac3ac" +
			"18ff9b538d16f290ae67f760984dc6594a7c15e9716ed28dc027beceea1ec40a",
	},
}

func TestRFC8032Vectors(t *testing.T) {
	for i, v := range rfc8032Vectors {
		k, err := NewPrivateKeyFromSeed(helpers.MustBytesFromHex(v.seed))
		require.NoError(t, err, "[%d]: NewPrivateKeyFromSeed", i)
		require.Equal(t, v.pk, hex.EncodeToString(k.PublicKey().Bytes()), "[%d]: derived public key", i)

		msg := helpers.MustBytesFromHex(v.msg)
		sig := k.Sign(msg)
		require.Equal(t, v.sig, hex.EncodeToString(sig), "[%d]: signature", i)

		require.NoError(t, k.PublicKey().Verify(msg, sig), "[%d]: Verify", i)

		pk, err := NewPublicKey(helpers.MustBytesFromHex(v.pk))
		require.NoError(t, err, "[%d]: NewPublicKey", i)
		require.NoError(t, pk.Verify(msg, sig), "[%d]: Verify(parsed pk)", i)
	}
}

func TestTamperResistance(t *testing.T) {
	v := rfc8032Vectors[2]
	k, err := NewPrivateKeyFromSeed(helpers.MustBytesFromHex(v.seed))
	require.NoError(t, err, "NewPrivateKeyFromSeed")

	msg := helpers.MustBytesFromHex(v.msg)
	sig := k.Sign(msg)
	pk := k.PublicKey()

	t.Run("Signature", func(t *testing.T) {
		for _, i := range []int{0, 9, 250, 255, 256, 300, 509, 511} {
			bad := bytes.Clone(sig)
			bad[i/8] ^= 1 << (i % 8)
			require.ErrorIs(t, pk.Verify(msg, bad), ErrInvalidSignature, "bit %d", i)
		}
	})
	t.Run("Message", func(t *testing.T) {
		for _, i := range []int{0, 3, 8, 15} {
			bad := bytes.Clone(msg)
			bad[i/8] ^= 1 << (i % 8)
			require.ErrorIs(t, pk.Verify(bad, sig), ErrInvalidSignature, "bit %d", i)
		}
	})
	t.Run("PublicKey", func(t *testing.T) {
		for _, i := range []int{0, 42, 128, 254, 255} {
			bad := bytes.Clone(helpers.MustBytesFromHex(v.pk))
			bad[i/8] ^= 1 << (i % 8)
			badPk, err := NewPublicKey(bad)
			if err != nil {
				// Flipping a bit may push the encoding off the curve
				// entirely, which is just as much of a rejection.
				require.ErrorIs(t, err, ErrInvalidPoint, "bit %d", i)
				continue
			}
			require.ErrorIs(t, badPk.Verify(msg, sig), ErrInvalidSignature, "bit %d", i)
		}
	})
}

func TestVerifyRejectsMalformed(t *testing.T) {
	v := rfc8032Vectors[0]
	k, err := NewPrivateKeyFromSeed(helpers.MustBytesFromHex(v.seed))
	require.NoError(t, err, "NewPrivateKeyFromSeed")
	pk := k.PublicKey()
	sig := k.Sign(nil)

	t.Run("Truncated", func(t *testing.T) {
		require.ErrorIs(t, pk.Verify(nil, sig[:63]), ErrInvalidSignature, "short signature")
		require.ErrorIs(t, pk.Verify(nil, nil), ErrInvalidSignature, "empty signature")
	})
	t.Run("NonCanonicalS", func(t *testing.T) {
		// S = ell is a non-canonical encoding of zero; the S < ell
		// precondition requires rejection.
		bad := bytes.Clone(sig)
		copy(bad[32:], helpers.MustBytesFromHex(
			"edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010"))
		require.ErrorIs(t, pk.Verify(nil, bad), ErrInvalidSignature, "S == ell")
	})
	t.Run("BadPublicKey", func(t *testing.T) {
		_, err := NewPublicKey(make([]byte, 16))
		require.ErrorIs(t, err, ErrInvalidKey, "wrong length")

		// y = q is a non-canonical field element.
		bad := helpers.MustBytesFromHex("edffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f")
		_, err = NewPublicKey(bad)
		require.ErrorIs(t, err, ErrInvalidPoint, "y >= q")
	})
}

func TestGenerateKey(t *testing.T) {
	rng := entropy.NewSeeded(bytes.Repeat([]byte{0xa5}, 32))

	k, err := GenerateKey(rng)
	require.NoError(t, err, "GenerateKey")

	msg := []byte("The tunneling gopher digs at night.")
	sig := k.Sign(msg)
	require.NoError(t, k.PublicKey().Verify(msg, sig), "round trip")

	k2, err := GenerateKey(rng)
	require.NoError(t, err, "GenerateKey (again)")
	require.False(t, k.Equal(k2), "distinct keys from the stream")
	require.ErrorIs(t, k2.PublicKey().Verify(msg, sig), ErrInvalidSignature, "cross-key verify")

	seed := k.Seed()
	k3, err := NewPrivateKeyFromSeed(seed)
	require.NoError(t, err, "NewPrivateKeyFromSeed")
	require.True(t, k.Equal(k3), "seed round trip")
	require.True(t, k.PublicKey().Equal(k3.PublicKey()), "public key round trip")

	k3.Wipe()
	require.Equal(t, make([]byte, SeedSize), k3.Seed(), "Wipe clears the seed")
}

func TestPointArithmetic(t *testing.T) {
	b := NewGeneratorPoint()

	t.Run("IdentityLaws", func(t *testing.T) {
		id := NewIdentityPoint()
		require.EqualValues(t, 1, id.IsIdentity(), "IsIdentity")
		require.EqualValues(t, 1, NewIdentityPoint().Add(b, id).Equal(b), "B + 0 == B")

		negB := NewIdentityPoint().Negate(b)
		require.EqualValues(t, 1, NewIdentityPoint().Add(b, negB).IsIdentity(), "B + (-B) == 0")
	})

	t.Run("DoubleVsAdd", func(t *testing.T) {
		require.EqualValues(t, 1, NewIdentityPoint().Double(b).Equal(NewIdentityPoint().Add(b, b)), "2B")
	})

	t.Run("ScalarMultSmall", func(t *testing.T) {
		// [3]B == B + B + B
		three := NewIdentityPoint().Add(b, NewIdentityPoint().Add(b, b))
		got := NewIdentityPoint().ScalarMult(bigint.NewUint256FromUint64(3), b)
		require.EqualValues(t, 1, got.Equal(three), "[3]B")

		require.EqualValues(t, 1, NewIdentityPoint().ScalarMult(bigint.NewUint256(), b).IsIdentity(), "[0]B")
	})

	t.Run("OrderAnnihilates", func(t *testing.T) {
		got := NewIdentityPoint().ScalarMult(ell, b)
		require.EqualValues(t, 1, got.IsIdentity(), "[ell]B == 0")
	})

	t.Run("EncodeDecode", func(t *testing.T) {
		enc := b.Bytes()
		back, err := NewPointFromBytes((*[EncodedPointSize]byte)(enc))
		require.NoError(t, err, "decode basepoint")
		require.EqualValues(t, 1, back.Equal(b), "round trip")
	})
}
