// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

package ed25519

import (
	"crypto/subtle"
	"errors"

	"gitlab.com/sable/cryptkit/entropy"
	"gitlab.com/sable/cryptkit/internal/bigint"
	"gitlab.com/sable/cryptkit/internal/disalloweq"
	"gitlab.com/sable/cryptkit/sha2"
)

const (
	// SeedSize is the size of a private key seed in bytes.
	SeedSize = 32

	// PublicKeySize is the size of an encoded public key in bytes.
	PublicKeySize = 32

	// SignatureSize is the size of a signature in bytes.
	SignatureSize = 64
)

var (
	// ErrInvalidPoint is the error returned when a point encoding does
	// not decode to a point on the curve.
	ErrInvalidPoint = errors.New("ed25519: invalid point encoding")

	// ErrInvalidSignature is the error returned when signature
	// verification fails, for any reason.
	ErrInvalidSignature = errors.New("ed25519: invalid signature")

	// ErrInvalidKey is the error returned when a serialized key has the
	// wrong length.
	ErrInvalidKey = errors.New("ed25519: malformed key")
)

// PrivateKey is an Ed25519 private key.
type PrivateKey struct {
	_ disalloweq.DisallowEqual

	seed      [SeedSize]byte
	publicKey *PublicKey
}

// Seed returns a copy of the 32-byte seed underlying `k`.
func (k *PrivateKey) Seed() []byte {
	seed := make([]byte, SeedSize)
	copy(seed, k.seed[:])

	return seed
}

// PublicKey returns the public key corresponding to `k`.
func (k *PrivateKey) PublicKey() *PublicKey {
	return k.publicKey
}

// Equal returns whether `x` represents the same private key as `k`.
// This check is performed in constant time as long as the key types
// match.
func (k *PrivateKey) Equal(x *PrivateKey) bool {
	return subtle.ConstantTimeCompare(k.seed[:], x.seed[:]) == 1
}

// Wipe zeroizes the seed.  The key must not be used afterwards.
func (k *PrivateKey) Wipe() {
	k.seed = [SeedSize]byte{}
}

// Sign signs `msg` with the PrivateKey `k` and returns the 64-byte
// signature `R || S`.
func (k *PrivateKey) Sign(msg []byte) []byte {
	a, prefix := k.expand()
	defer a.SetUint64(0)
	defer func() {
		for i := range prefix {
			prefix[i] = 0
		}
	}()

	// r = H(h1 || M) mod ell
	r := hashToScalar(prefix[:], msg)
	defer r.Wipe()

	rB := NewIdentityPoint().ScalarBaseMult(&r.v)
	rBytes := rB.Bytes()

	// k = H(R || A || M) mod ell, S = (r + k*a) mod ell
	kh := hashToScalar(rBytes, k.publicKey.b[:], msg)
	s := NewScalar().MulAdd(kh, a, r)

	sig := make([]byte, 0, SignatureSize)
	sig = append(sig, rBytes...)
	sig = append(sig, s.Bytes()...)

	return sig
}

// expand derives the clamped secret scalar and the 32-byte signing
// prefix from the seed.
func (k *PrivateKey) expand() (*bigint.Uint256, [32]byte) {
	d := sha2.NewSha512()
	_ = d.Update(k.seed[:])
	h, _ := d.Finalize()
	d.Wipe()

	clamp(h[:32])
	a := bigint.NewUint256().SetLEBytes((*[32]byte)(h[:32]))

	var prefix [32]byte
	copy(prefix[:], h[32:])
	for i := range h {
		h[i] = 0
	}

	return a, prefix
}

// clamp adjusts the low 32 bytes of the expanded seed in place: clear
// bits 0, 1, 2 and 255, set bit 254.
func clamp(b []byte) {
	b[0] &= 0xf8
	b[31] &= 0x7f
	b[31] |= 0x40
}

// PublicKey is an Ed25519 public key.
type PublicKey struct {
	_ disalloweq.DisallowEqual

	point *Point
	b     [PublicKeySize]byte
}

// Bytes returns a copy of the 32-byte encoding of the public key.
func (k *PublicKey) Bytes() []byte {
	dst := make([]byte, PublicKeySize)
	copy(dst, k.b[:])

	return dst
}

// Point returns a copy of the point underlying `k`.
func (k *PublicKey) Point() *Point {
	return NewPointFrom(k.point)
}

// Equal returns whether `x` represents the same public key as `k`.
func (k *PublicKey) Equal(x *PublicKey) bool {
	return subtle.ConstantTimeCompare(k.b[:], x.b[:]) == 1
}

// Verify verifies the signature `sig` over `msg` with the PublicKey
// `k`.  All failures, including malformed signatures, are reported as
// ErrInvalidSignature.
func (k *PublicKey) Verify(msg, sig []byte) error {
	if len(sig) != SignatureSize {
		return ErrInvalidSignature
	}

	R, err := NewPointFromBytes((*[EncodedPointSize]byte)(sig[:32]))
	if err != nil {
		return ErrInvalidSignature
	}
	s, err := NewScalar().SetCanonicalBytes((*[ScalarSize]byte)(sig[32:]))
	if err != nil {
		return ErrInvalidSignature
	}

	// Accept iff [S]B == R + [k]A.
	kh := hashToScalar(sig[:32], k.b[:], msg)
	sB := NewIdentityPoint().ScalarBaseMult(&s.v)
	rhs := NewIdentityPoint().ScalarMult(&kh.v, k.point)
	rhs.Add(R, rhs)

	if sB.Equal(rhs) != 1 {
		return ErrInvalidSignature
	}

	return nil
}

// GenerateKey generates a new PrivateKey, drawing the seed from `rng`.
func GenerateKey(rng entropy.Source) (*PrivateKey, error) {
	var seed [SeedSize]byte
	if err := rng.Fill(seed[:]); err != nil {
		return nil, err
	}

	k := newPrivateKeyFromSeed(&seed)
	for i := range seed {
		seed[i] = 0
	}

	return k, nil
}

// NewPrivateKeyFromSeed checks that `seed` is the right length and
// returns the PrivateKey it derives.
func NewPrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, ErrInvalidKey
	}

	return newPrivateKeyFromSeed((*[SeedSize]byte)(seed)), nil
}

func newPrivateKeyFromSeed(seed *[SeedSize]byte) *PrivateKey {
	k := &PrivateKey{}
	copy(k.seed[:], seed[:])

	a, prefix := k.expand()
	A := NewIdentityPoint().ScalarBaseMult(a)
	a.SetUint64(0)
	for i := range prefix {
		prefix[i] = 0
	}

	k.publicKey = &PublicKey{point: A}
	copy(k.publicKey.b[:], A.Bytes())

	return k
}

// NewPublicKey checks that `key` decodes to a point on the curve and
// returns a PublicKey.
func NewPublicKey(key []byte) (*PublicKey, error) {
	if len(key) != PublicKeySize {
		return nil, ErrInvalidKey
	}

	pt, err := NewPointFromBytes((*[EncodedPointSize]byte)(key))
	if err != nil {
		return nil, err
	}

	k := &PublicKey{point: pt}
	copy(k.b[:], key)

	return k, nil
}

// hashToScalar reduces the SHA-512 digest of the concatenated parts
// modulo ell.
func hashToScalar(parts ...[]byte) *Scalar {
	d := sha2.NewSha512()
	for _, p := range parts {
		_ = d.Update(p)
	}
	h, _ := d.Finalize()
	d.Wipe()

	s := NewScalar().SetWideBytes((*[64]byte)(h))
	for i := range h {
		h[i] = 0
	}

	return s
}
