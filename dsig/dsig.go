// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

// Package dsig implements the SHA-256 + raw RSA composite signature
// scheme: the message digest is placed in the low 32 bytes of a
// zero-padded modulus-width block, and the block is run through the
// private-key transform.
//
// The scheme is neither RSASSA-PSS nor RSASSA-PKCS1-v1_5; it exists for
// interoperability with existing detached signatures.  New applications
// should prefer Ed25519, or OAEP-wrapped encryption for
// confidentiality.
package dsig

import (
	"crypto/subtle"
	"errors"

	"gitlab.com/sable/cryptkit/rsa"
	"gitlab.com/sable/cryptkit/sha2"
)

// SignatureSize is the size of a signature in bytes.
const SignatureSize = rsa.KeyBytes

// ErrInvalidSignature is the error returned when verification fails,
// for any reason.
var ErrInvalidSignature = errors.New("dsig: invalid signature")

// Sign signs `msg` with the private key and returns the detached
// KeyBytes signature block.
func Sign(priv *rsa.PrivateKey, msg []byte) ([]byte, error) {
	return priv.DecryptBlock(digestBlock(msg))
}

// Verify verifies the detached signature `sig` over `msg` with the
// public key.  All failures are reported as ErrInvalidSignature.
func Verify(pub *rsa.PublicKey, msg, sig []byte) error {
	recovered, err := pub.EncryptBlock(sig)
	if err != nil {
		return ErrInvalidSignature
	}

	if subtle.ConstantTimeCompare(recovered, digestBlock(msg)) != 1 {
		return ErrInvalidSignature
	}

	return nil
}

// digestBlock builds the modulus-width block whose low 32 bytes are
// SHA256(msg) and whose remaining bytes are zero.
func digestBlock(msg []byte) []byte {
	block := make([]byte, rsa.KeyBytes)
	digest := sha2.Sum256(msg)
	copy(block, digest[:])

	return block
}
