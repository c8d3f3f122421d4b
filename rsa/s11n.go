// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

package rsa

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"gitlab.com/sable/cryptkit/internal/bigint"
)

// Bytes returns the 512-byte encoding of the public key: n || e, each
// a 256-byte little-endian block.
func (k *PublicKey) Bytes() []byte {
	dst := make([]byte, 0, PublicKeyBlobSize)
	dst = append(dst, k.n.LEBytes()...)
	dst = append(dst, k.e.LEBytes()...)

	return dst
}

// ParsePublicKey checks that `b` is a valid 512-byte public key blob
// and returns the PublicKey.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	if len(b) != PublicKeyBlobSize {
		return nil, ErrInvalidKey
	}

	k := &PublicKey{}
	k.n.SetLEBytes((*[KeyBytes]byte)(b[:KeyBytes]))
	k.e.SetLEBytes((*[KeyBytes]byte)(b[KeyBytes:]))
	if k.n.IsZero() == 1 || k.e.IsZero() == 1 {
		return nil, ErrInvalidKey
	}

	return k, nil
}

// Bytes returns the 768-byte encoding of the private key: p || q || d,
// each a 256-byte little-endian block.
func (k *PrivateKey) Bytes() []byte {
	dst := make([]byte, 0, PrivateKeyBlobSize)
	dst = append(dst, k.p.LEBytes()...)
	dst = append(dst, k.q.LEBytes()...)
	dst = append(dst, k.d.LEBytes()...)

	return dst
}

// ParsePrivateKey checks that `b` is a valid 768-byte private key blob
// and returns the PrivateKey, with the modulus recomputed from the
// factors.
func ParsePrivateKey(b []byte) (*PrivateKey, error) {
	if len(b) != PrivateKeyBlobSize {
		return nil, ErrInvalidKey
	}

	k := &PrivateKey{}
	k.p.SetLEBytes((*[KeyBytes]byte)(b[:KeyBytes]))
	k.q.SetLEBytes((*[KeyBytes]byte)(b[KeyBytes : 2*KeyBytes]))
	k.d.SetLEBytes((*[KeyBytes]byte)(b[2*KeyBytes:]))
	if k.p.IsZero() == 1 || k.q.IsZero() == 1 || k.d.IsZero() == 1 {
		return nil, ErrInvalidKey
	}
	k.n.Set(bigint.NewUint2048().Mul(&k.p, &k.q))

	return k, nil
}

// envelope is the on-disk JSON key-pair file.
type envelope struct {
	Public  string `json:"public"`
	Private string `json:"private"`
}

// MarshalKeyPair packs a key pair into the JSON envelope: standard
// base64 of the 512-byte public blob and the 768-byte private blob.
func MarshalKeyPair(pub *PublicKey, priv *PrivateKey) ([]byte, error) {
	env := envelope{
		Public:  base64.StdEncoding.EncodeToString(pub.Bytes()),
		Private: base64.StdEncoding.EncodeToString(priv.Bytes()),
	}

	return json.Marshal(&env)
}

// ParseKeyPair unpacks a JSON envelope.  Values whose decoded length
// does not match the blob sizes exactly are rejected.
func ParseKeyPair(data []byte) (*PublicKey, *PrivateKey, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, nil, fmt.Errorf("rsa: malformed envelope: %w", err)
	}

	pubBlob, err := base64.StdEncoding.DecodeString(env.Public)
	if err != nil {
		return nil, nil, fmt.Errorf("rsa: malformed envelope: %w", err)
	}
	privBlob, err := base64.StdEncoding.DecodeString(env.Private)
	if err != nil {
		return nil, nil, fmt.Errorf("rsa: malformed envelope: %w", err)
	}

	pub, err := ParsePublicKey(pubBlob)
	if err != nil {
		return nil, nil, err
	}
	priv, err := ParsePrivateKey(privBlob)
	if err != nil {
		return nil, nil, err
	}

	return pub, priv, nil
}
