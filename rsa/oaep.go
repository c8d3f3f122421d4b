// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

package rsa

import (
	"crypto/subtle"

	"gitlab.com/sable/cryptkit/entropy"
	"gitlab.com/sable/cryptkit/sha2"
)

const hLen = sha2.Size256

// MaxMessageSize is the largest OAEP plaintext a 2048-bit key can
// carry.
const MaxMessageSize = KeyBytes - 2*hLen - 2

// EncryptOAEP encrypts `msg` to `k` with RSAES-OAEP (SHA-256,
// MGF1-SHA-256), binding the optional `label` into the padding.  The
// seed is drawn from `rng`.  The returned ciphertext is a KeyBytes
// little-endian block.
func (k *PublicKey) EncryptOAEP(rng entropy.Source, msg, label []byte) ([]byte, error) {
	if len(msg) > MaxMessageSize {
		return nil, ErrMessageTooLong
	}

	lHash := sha2.Sum256(label)

	// DB = lHash || PS || 0x01 || M
	db := make([]byte, KeyBytes-hLen-1)
	copy(db, lHash[:])
	db[len(db)-len(msg)-1] = 0x01
	copy(db[len(db)-len(msg):], msg)

	var seed [hLen]byte
	if err := rng.Fill(seed[:]); err != nil {
		return nil, err
	}

	dbMask := mgf1SHA256(seed[:], len(db))
	for i := range db {
		db[i] ^= dbMask[i]
	}
	seedMask := mgf1SHA256(db, hLen)
	for i := range seed {
		seed[i] ^= seedMask[i]
	}

	// EM = 0x00 || maskedSeed || maskedDB, most-significant-first; the
	// zero byte caps the block integer below the modulus.
	em := make([]byte, KeyBytes)
	copy(em[1:], seed[:])
	copy(em[1+hLen:], db)

	return k.EncryptBlock(reverseBlock(em))
}

// DecryptOAEP decrypts an OAEP ciphertext block with `k`.  The label
// must match the one bound at encryption.  Every failure mode returns
// the same ErrDecryption, and the full transform is computed before any
// of the checks are combined.
func (k *PrivateKey) DecryptOAEP(ct, label []byte) ([]byte, error) {
	em, err := k.DecryptBlock(ct)
	if err != nil {
		return nil, ErrDecryption
	}
	em = reverseBlock(em)

	lHash := sha2.Sum256(label)

	firstByteOK := subtle.ConstantTimeByteEq(em[0], 0x00)

	maskedSeed := em[1 : 1+hLen]
	maskedDB := em[1+hLen:]

	seedMask := mgf1SHA256(maskedDB, hLen)
	seed := make([]byte, hLen)
	for i := range seed {
		seed[i] = maskedSeed[i] ^ seedMask[i]
	}
	dbMask := mgf1SHA256(seed, len(maskedDB))
	db := make([]byte, len(maskedDB))
	for i := range db {
		db[i] = maskedDB[i] ^ dbMask[i]
	}

	lHashOK := subtle.ConstantTimeCompare(db[:hLen], lHash[:])

	// Scan for the 0x01 delimiter without branching on the data.
	var (
		lookingForIndex = 1
		index           int
		invalid         int
	)
	rest := db[hLen:]
	for i := range rest {
		equals0 := subtle.ConstantTimeByteEq(rest[i], 0x00)
		equals1 := subtle.ConstantTimeByteEq(rest[i], 0x01)
		index = subtle.ConstantTimeSelect(lookingForIndex&equals1, i, index)
		lookingForIndex = subtle.ConstantTimeSelect(equals1, 0, lookingForIndex)
		invalid = subtle.ConstantTimeSelect(lookingForIndex&^equals0, 1, invalid)
	}

	if firstByteOK&lHashOK&^invalid&^lookingForIndex != 1 {
		return nil, ErrDecryption
	}

	out := make([]byte, len(rest)-index-1)
	copy(out, rest[index+1:])

	return out, nil
}

// reverseBlock flips a block between the little-endian wire layout and
// the most-significant-first EM layout.
func reverseBlock(src []byte) []byte {
	dst := make([]byte, len(src))
	for i, b := range src {
		dst[len(src)-1-i] = b
	}

	return dst
}
