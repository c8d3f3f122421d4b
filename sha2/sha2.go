// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

// Package sha2 implements the SHA-256 and SHA-512 hash algorithms as
// explicit streaming states.  Unlike the runtime library's hash.Hash,
// the states here are terminal: finalizing produces the digest exactly
// once, and any further use is reported as misuse rather than silently
// rehashing.
package sha2

import "errors"

const (
	// Size256 is the size of a SHA-256 digest in bytes.
	Size256 = 32

	// Size512 is the size of a SHA-512 digest in bytes.
	Size512 = 64

	// BlockSize256 is the SHA-256 block size in bytes.
	BlockSize256 = 64

	// BlockSize512 is the SHA-512 block size in bytes.
	BlockSize512 = 128
)

// ErrStateMisuse is the error returned when a hash state is updated or
// finalized after it has already been finalized.
var ErrStateMisuse = errors.New("sha2: use of finalized hash state")
