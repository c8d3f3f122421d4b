// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

// Package entropy defines the entropy source consumed by key generation
// and padding.  The cryptographic core never opens /dev/urandom or any
// other named source; callers construct a Source at the edge and inject
// it.
package entropy

import (
	csrand "crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/sha3"
)

const hardenEntropyBytes = 32

// ErrSource is the error returned when an entropy source fails to
// produce output.
var ErrSource = errors.New("entropy: source failure")

// Source yields uniformly random bytes.
type Source interface {
	// Fill fills `buf` with random bytes, or fails.
	Fill(buf []byte) error
}

type readerSource struct {
	r io.Reader
}

func (s *readerSource) Fill(buf []byte) error {
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return errors.Join(ErrSource, err)
	}

	return nil
}

// FromReader returns a Source drawing from `r`.
func FromReader(r io.Reader) Source {
	return &readerSource{r: r}
}

// System returns a Source backed by the operating system RNG.  This is
// intended for the edges of the system (the CLI collaborators); library
// code takes a Source argument instead.
func System() Source {
	return FromReader(csrand.Reader)
}

// NewSeeded returns a deterministic Source expanding `seed` through
// cSHAKE256.  It exists so that tests can exercise key generation with
// reproducible keys; it must never be used in production.
func NewSeeded(seed []byte) Source {
	xof := sha3.NewCShake256(nil, []byte("cryptkit/entropy: seeded source"))
	_, _ = xof.Write(seed)

	return FromReader(xof)
}

// Harden returns a Source that mixes 256 bits drawn from `src` with the
// optional secret inputs through a domain-separated cSHAKE256 instance.
// Consumers that draw long streams (the RSA prime search) use this so
// that even a biased or low-rate caller RNG yields a uniform candidate
// stream.
//
// See:
// - https://eprint.iacr.org/2020/615.pdf
// - https://eprint.iacr.org/2019/1155.pdf
func Harden(src Source, domain string, secrets ...[]byte) (Source, error) {
	var tmp [hardenEntropyBytes]byte
	if err := src.Fill(tmp[:]); err != nil {
		return nil, err
	}

	xof := sha3.NewCShake256(nil, []byte("cryptkit/entropy: "+domain))
	for _, s := range secrets {
		_, _ = xof.Write(s)
	}
	_, _ = xof.Write(tmp[:])

	return FromReader(xof), nil
}
