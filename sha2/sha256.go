// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

package sha2

import (
	"encoding/binary"
	"math/bits"
)

var k256 = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Sha256 is a streaming SHA-256 hasher.  It is not safe for concurrent
// use.  The zero value is not valid; use NewSha256.
type Sha256 struct {
	state [8]uint32
	block [BlockSize256]byte
	nx    int
	n     uint64
	done  bool
}

// NewSha256 returns a new SHA-256 hasher in the fresh state.
func NewSha256() *Sha256 {
	var d Sha256
	d.Reset()
	return &d
}

// Reset returns the hasher to the fresh state, discarding any buffered
// input.
func (d *Sha256) Reset() {
	d.state = [8]uint32{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	}
	d.block = [BlockSize256]byte{}
	d.nx = 0
	d.n = 0
	d.done = false
}

// Update absorbs `p` into the hash state.  It may be called any number
// of times with inputs of any size; the concatenation of all inputs is
// what gets hashed.  Updating a finalized state returns ErrStateMisuse.
func (d *Sha256) Update(p []byte) error {
	if d.done {
		return ErrStateMisuse
	}
	d.absorb(p)

	return nil
}

func (d *Sha256) absorb(p []byte) {
	d.n += uint64(len(p))
	if d.nx > 0 {
		n := copy(d.block[d.nx:], p)
		d.nx += n
		p = p[n:]
		if d.nx == BlockSize256 {
			compress256(&d.state, d.block[:])
			d.nx = 0
		}
	}
	for len(p) >= BlockSize256 {
		compress256(&d.state, p[:BlockSize256])
		p = p[BlockSize256:]
	}
	d.nx += copy(d.block[d.nx:], p)
}

// Finalize appends the padding and length, produces the 32-byte digest,
// and moves the state to finalized.  A second Finalize returns
// ErrStateMisuse.
func (d *Sha256) Finalize() ([]byte, error) {
	if d.done {
		return nil, ErrStateMisuse
	}
	d.done = true

	var pad [BlockSize256 + 8]byte
	pad[0] = 0x80
	padLen := 56 - (d.n+1)%BlockSize256
	if int64(padLen) < 0 {
		padLen += BlockSize256
	}
	binary.BigEndian.PutUint64(pad[1+padLen:], d.n<<3)
	d.absorb(pad[:1+padLen+8])

	dst := make([]byte, Size256)
	for i, s := range d.state {
		binary.BigEndian.PutUint32(dst[i*4:], s)
	}

	return dst, nil
}

// Wipe zeroizes the hash state.  The state is left finalized.
func (d *Sha256) Wipe() {
	d.state = [8]uint32{}
	d.block = [BlockSize256]byte{}
	d.nx = 0
	d.n = 0
	d.done = true
}

// Sum256 returns the SHA-256 digest of `data`.
func Sum256(data []byte) [Size256]byte {
	d := NewSha256()
	_ = d.Update(data)
	digest, _ := d.Finalize()

	var sum [Size256]byte
	copy(sum[:], digest)
	return sum
}

func compress256(state *[8]uint32, p []byte) {
	var m [64]uint32
	for i := 0; i < 16; i++ {
		m[i] = binary.BigEndian.Uint32(p[i*4:])
	}
	for i := 16; i < 64; i++ {
		s0 := bits.RotateLeft32(m[i-15], -7) ^ bits.RotateLeft32(m[i-15], -18) ^ (m[i-15] >> 3)
		s1 := bits.RotateLeft32(m[i-2], -17) ^ bits.RotateLeft32(m[i-2], -19) ^ (m[i-2] >> 10)
		m[i] = s1 + m[i-7] + s0 + m[i-16]
	}

	a, b, c, dd, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]
	for i := 0; i < 64; i++ {
		sigma1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
		ch := (e & f) ^ (^e & g)
		t1 := h + sigma1 + ch + k256[i] + m[i]
		sigma0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := sigma0 + maj

		h, g, f, e = g, f, e, dd+t1
		dd, c, b, a = c, b, a, t1+t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += dd
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}
