// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

// Package rsa implements 2048-bit RSA: key generation, the raw block
// transform, and RSAES-OAEP with SHA-256 and MGF1.  All blocks and key
// components on the wire are fixed-size little-endian byte strings.
package rsa

import (
	"errors"

	"gitlab.com/sable/cryptkit/internal/bigint"
	"gitlab.com/sable/cryptkit/internal/disalloweq"
)

const (
	// KeyBits is the modulus size in bits.
	KeyBits = 2048

	// KeyBytes is the modulus (and block) size in bytes.
	KeyBytes = KeyBits / 8

	// PublicKeyBlobSize is the size of a serialized public key: n || e.
	PublicKeyBlobSize = 2 * KeyBytes

	// PrivateKeyBlobSize is the size of a serialized private key:
	// p || q || d.
	PrivateKeyBlobSize = 3 * KeyBytes
)

var (
	// ErrMessageTooLong is the error returned when an OAEP plaintext
	// exceeds the key's capacity.
	ErrMessageTooLong = errors.New("rsa: message too long")

	// ErrDecryption is the error returned when OAEP decryption fails.
	// It is deliberately a single opaque value.
	ErrDecryption = errors.New("rsa: decryption error")

	// ErrInvalidKey is the error returned when a serialized key is
	// malformed.
	ErrInvalidKey = errors.New("rsa: malformed key")

	errInvalidBlock = errors.New("rsa: invalid block")
)

// PublicKey is an RSA public key.
type PublicKey struct {
	_ disalloweq.DisallowEqual

	n, e bigint.Uint2048
}

// Equal returns whether `x` represents the same public key as `k`.
func (k *PublicKey) Equal(x *PublicKey) bool {
	return k.n.Equal(&x.n)&k.e.Equal(&x.e) == 1
}

// EncryptBlock applies the public-key transform `m^e mod n` to a
// KeyBytes little-endian block.  The block value must be less than the
// modulus.
func (k *PublicKey) EncryptBlock(src []byte) ([]byte, error) {
	m, err := k.blockToInt(src)
	if err != nil {
		return nil, err
	}

	return bigint.NewUint2048().ExpMod(m, &k.e, &k.n).LEBytes(), nil
}

// PrivateKey is an RSA private key.  The modulus is carried alongside
// the factors so that the private transform is self-contained.
type PrivateKey struct {
	_ disalloweq.DisallowEqual

	p, q, d, n bigint.Uint2048
}

// Equal returns whether `x` represents the same private key as `k`.
func (k *PrivateKey) Equal(x *PrivateKey) bool {
	return k.p.Equal(&x.p)&k.q.Equal(&x.q)&k.d.Equal(&x.d) == 1
}

// Wipe zeroizes the private key.  The key must not be used afterwards.
func (k *PrivateKey) Wipe() {
	k.p.SetUint64(0)
	k.q.SetUint64(0)
	k.d.SetUint64(0)
	k.n.SetUint64(0)
}

// DecryptBlock applies the private-key transform `c^d mod n` to a
// KeyBytes little-endian block.  The block value must be less than the
// modulus.
func (k *PrivateKey) DecryptBlock(src []byte) ([]byte, error) {
	c, err := blockToInt(src, &k.n)
	if err != nil {
		return nil, err
	}

	return bigint.NewUint2048().ExpMod(c, &k.d, &k.n).LEBytes(), nil
}

func (k *PublicKey) blockToInt(src []byte) (*bigint.Uint2048, error) {
	return blockToInt(src, &k.n)
}

func blockToInt(src []byte, n *bigint.Uint2048) (*bigint.Uint2048, error) {
	if len(src) != KeyBytes {
		return nil, errInvalidBlock
	}

	m := bigint.NewUint2048().SetLEBytes((*[KeyBytes]byte)(src))
	if m.Cmp(n) >= 0 {
		return nil, errInvalidBlock
	}

	return m, nil
}
