// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

package rsa

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/sable/cryptkit/entropy"
	"gitlab.com/sable/cryptkit/internal/bigint"
)

var (
	testKeyOnce sync.Once
	testPub     *PublicKey
	testPriv    *PrivateKey
	testKeyErr  error
)

// testKeyPair generates the shared 2048-bit test key pair from the
// seeded 0xA5 entropy stream, once.
func testKeyPair(t *testing.T) (*PublicKey, *PrivateKey) {
	testKeyOnce.Do(func() {
		rng := entropy.NewSeeded(bytes.Repeat([]byte{0xa5}, 32))
		testPub, testPriv, testKeyErr = GenerateKeyPair(context.Background(), rng)
	})
	require.NoError(t, testKeyErr, "GenerateKeyPair")

	return testPub, testPriv
}

func TestGenerateKeyPair(t *testing.T) {
	pub, priv := testKeyPair(t)

	require.EqualValues(t, 1, pub.n.IsOdd(), "n is odd")
	require.GreaterOrEqual(t, pub.n.BitLen(), uint(KeyBits-1), "n is full-width")
	require.EqualValues(t, 1, pub.e.Equal(bigint.NewUint2048FromUint64(65537)), "e == 65537")

	require.EqualValues(t, 1, bigint.NewUint2048().Mul(&priv.p, &priv.q).Equal(&pub.n), "p*q == n")
	require.EqualValues(t, 0, priv.p.Equal(&priv.q), "p != q")

	// e*d == 1 mod phi.
	pm1 := bigint.NewUint2048().SubUint64(&priv.p, 1)
	qm1 := bigint.NewUint2048().SubUint64(&priv.q, 1)
	phi := bigint.NewUint2048().Mul(pm1, qm1)
	ed := bigint.NewUint2048().MulMod(&pub.e, &priv.d, phi)
	require.EqualValues(t, 1, ed.Equal(bigint.NewUint2048FromUint64(1)), "e*d == 1 mod phi")

	// Fermat witness for each factor: 2^(p-1) == 1 mod p.
	two := bigint.NewUint2048FromUint64(2)
	require.EqualValues(t, 1,
		bigint.NewUint2048().ExpMod(two, pm1, &priv.p).Equal(bigint.NewUint2048FromUint64(1)),
		"2^(p-1) == 1 mod p")
	require.EqualValues(t, 1,
		bigint.NewUint2048().ExpMod(two, qm1, &priv.q).Equal(bigint.NewUint2048FromUint64(1)),
		"2^(q-1) == 1 mod q")
}

func TestGenerateKeyPairCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := GenerateKeyPair(ctx, entropy.NewSeeded([]byte("unused")))
	require.ErrorIs(t, err, context.Canceled, "cancelled generation")
}

func TestRawBlockRoundTrip(t *testing.T) {
	pub, priv := testKeyPair(t)

	for i := 0; i < 4; i++ {
		var raw [KeyBytes]byte
		_, err := rand.Read(raw[:])
		require.NoError(t, err, "rand.Read")

		// Reduce below the modulus to satisfy the precondition.
		m := bigint.NewUint2048().SetLEBytes(&raw)
		m.Mod(m, &pub.n)
		block := m.LEBytes()

		ct, err := pub.EncryptBlock(block)
		require.NoError(t, err, "[%d]: EncryptBlock", i)
		require.Len(t, ct, KeyBytes, "[%d]: ciphertext block size", i)

		pt, err := priv.DecryptBlock(ct)
		require.NoError(t, err, "[%d]: DecryptBlock", i)
		require.Equal(t, block, pt, "[%d]: round trip", i)
	}

	t.Run("OutOfRange", func(t *testing.T) {
		block := pub.n.LEBytes()
		_, err := pub.EncryptBlock(block)
		require.Error(t, err, "EncryptBlock(n)")

		_, err = pub.EncryptBlock(block[:KeyBytes-1])
		require.Error(t, err, "EncryptBlock(short block)")
	})
}

func TestOAEP(t *testing.T) {
	pub, priv := testKeyPair(t)
	rng := entropy.System()

	t.Run("Hello", func(t *testing.T) {
		ct, err := pub.EncryptOAEP(rng, []byte("hello"), nil)
		require.NoError(t, err, "EncryptOAEP")
		require.Len(t, ct, KeyBytes, "ciphertext block size")

		pt, err := priv.DecryptOAEP(ct, nil)
		require.NoError(t, err, "DecryptOAEP")
		require.Equal(t, []byte("hello"), pt, "round trip")
	})

	t.Run("MessageSizes", func(t *testing.T) {
		for _, size := range []int{0, 1, 31, 32, 33, MaxMessageSize} {
			msg := make([]byte, size)
			_, err := rand.Read(msg)
			require.NoError(t, err, "rand.Read")

			ct, err := pub.EncryptOAEP(rng, msg, nil)
			require.NoError(t, err, "size %d: EncryptOAEP", size)

			pt, err := priv.DecryptOAEP(ct, nil)
			require.NoError(t, err, "size %d: DecryptOAEP", size)
			require.Equal(t, msg, pt, "size %d: round trip", size)
		}
	})

	t.Run("MessageTooLong", func(t *testing.T) {
		msg := make([]byte, MaxMessageSize+1)
		_, err := pub.EncryptOAEP(rng, msg, nil)
		require.ErrorIs(t, err, ErrMessageTooLong, "oversized message")
	})

	t.Run("Label", func(t *testing.T) {
		ct, err := pub.EncryptOAEP(rng, []byte("hello"), []byte("context-a"))
		require.NoError(t, err, "EncryptOAEP")

		pt, err := priv.DecryptOAEP(ct, []byte("context-a"))
		require.NoError(t, err, "DecryptOAEP(same label)")
		require.Equal(t, []byte("hello"), pt, "round trip")

		_, err = priv.DecryptOAEP(ct, []byte("context-b"))
		require.ErrorIs(t, err, ErrDecryption, "DecryptOAEP(wrong label)")

		_, err = priv.DecryptOAEP(ct, nil)
		require.ErrorIs(t, err, ErrDecryption, "DecryptOAEP(missing label)")
	})

	t.Run("Tamper", func(t *testing.T) {
		ct, err := pub.EncryptOAEP(rng, []byte("hello"), nil)
		require.NoError(t, err, "EncryptOAEP")

		for _, bit := range []int{0, 7, 1024, KeyBytes*8 - 9} {
			bad := bytes.Clone(ct)
			bad[bit/8] ^= 1 << (bit % 8)
			_, err = priv.DecryptOAEP(bad, nil)
			require.ErrorIs(t, err, ErrDecryption, "bit %d", bit)
		}

		_, err = priv.DecryptOAEP(ct[:KeyBytes-1], nil)
		require.ErrorIs(t, err, ErrDecryption, "truncated ciphertext")
	})
}

func TestKeySerialization(t *testing.T) {
	pub, priv := testKeyPair(t)

	t.Run("PublicBlob", func(t *testing.T) {
		blob := pub.Bytes()
		require.Len(t, blob, PublicKeyBlobSize, "blob size")

		back, err := ParsePublicKey(blob)
		require.NoError(t, err, "ParsePublicKey")
		require.True(t, pub.Equal(back), "round trip")

		_, err = ParsePublicKey(blob[:PublicKeyBlobSize-1])
		require.ErrorIs(t, err, ErrInvalidKey, "short blob")

		zero := make([]byte, PublicKeyBlobSize)
		_, err = ParsePublicKey(zero)
		require.ErrorIs(t, err, ErrInvalidKey, "zero modulus")
	})

	t.Run("PrivateBlob", func(t *testing.T) {
		blob := priv.Bytes()
		require.Len(t, blob, PrivateKeyBlobSize, "blob size")

		back, err := ParsePrivateKey(blob)
		require.NoError(t, err, "ParsePrivateKey")
		require.True(t, priv.Equal(back), "round trip")
		require.EqualValues(t, 1, back.n.Equal(&pub.n), "modulus recomputed")

		_, err = ParsePrivateKey(blob[:16])
		require.ErrorIs(t, err, ErrInvalidKey, "short blob")
	})

	t.Run("Envelope", func(t *testing.T) {
		data, err := MarshalKeyPair(pub, priv)
		require.NoError(t, err, "MarshalKeyPair")

		pub2, priv2, err := ParseKeyPair(data)
		require.NoError(t, err, "ParseKeyPair")
		require.True(t, pub.Equal(pub2), "public round trip")
		require.True(t, priv.Equal(priv2), "private round trip")

		_, _, err = ParseKeyPair([]byte(`{"public": "AAAA", "private": ""}`))
		require.ErrorIs(t, err, ErrInvalidKey, "wrong decoded length")

		_, _, err = ParseKeyPair([]byte(`{`))
		require.Error(t, err, "malformed JSON")

		_, _, err = ParseKeyPair([]byte(`{"public": "!!", "private": "!!"}`))
		require.Error(t, err, "malformed base64")
	})

	t.Run("Wipe", func(t *testing.T) {
		blob := priv.Bytes()
		scratch, err := ParsePrivateKey(blob)
		require.NoError(t, err, "ParsePrivateKey")

		scratch.Wipe()
		require.EqualValues(t, 1, scratch.p.IsZero(), "p cleared")
		require.EqualValues(t, 1, scratch.q.IsZero(), "q cleared")
		require.EqualValues(t, 1, scratch.d.IsZero(), "d cleared")
	})
}

func TestMGF1(t *testing.T) {
	seed := []byte("mask generation seed")

	// A longer mask must extend a shorter one.
	long := mgf1SHA256(seed, 100)
	short := mgf1SHA256(seed, 10)
	require.Equal(t, long[:10], short, "prefix consistency")

	// Counter construction: the first block is SHA256(seed || be32(0)).
	want := sha256.Sum256(append(bytes.Clone(seed), 0, 0, 0, 0))
	require.Equal(t, want[:], long[:32], "first block")
}
