// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

package sha2

import (
	"encoding/binary"
	"math/bits"
)

var k512 = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

// Sha512 is a streaming SHA-512 hasher.  It is not safe for concurrent
// use.  The zero value is not valid; use NewSha512.
type Sha512 struct {
	state [8]uint64
	block [BlockSize512]byte
	nx    int
	n     uint64
	done  bool
}

// NewSha512 returns a new SHA-512 hasher in the fresh state.
func NewSha512() *Sha512 {
	var d Sha512
	d.Reset()
	return &d
}

// Reset returns the hasher to the fresh state, discarding any buffered
// input.
func (d *Sha512) Reset() {
	d.state = [8]uint64{
		0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
		0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
	}
	d.block = [BlockSize512]byte{}
	d.nx = 0
	d.n = 0
	d.done = false
}

// Update absorbs `p` into the hash state.  Updating a finalized state
// returns ErrStateMisuse.
func (d *Sha512) Update(p []byte) error {
	if d.done {
		return ErrStateMisuse
	}
	d.absorb(p)

	return nil
}

func (d *Sha512) absorb(p []byte) {
	d.n += uint64(len(p))
	if d.nx > 0 {
		n := copy(d.block[d.nx:], p)
		d.nx += n
		p = p[n:]
		if d.nx == BlockSize512 {
			compress512(&d.state, d.block[:])
			d.nx = 0
		}
	}
	for len(p) >= BlockSize512 {
		compress512(&d.state, p[:BlockSize512])
		p = p[BlockSize512:]
	}
	d.nx += copy(d.block[d.nx:], p)
}

// Finalize appends the padding and the 128-bit length, produces the
// 64-byte digest, and moves the state to finalized.  A second Finalize
// returns ErrStateMisuse.
func (d *Sha512) Finalize() ([]byte, error) {
	if d.done {
		return nil, ErrStateMisuse
	}
	d.done = true

	var pad [BlockSize512 + 16]byte
	pad[0] = 0x80
	padLen := 112 - (d.n+1)%BlockSize512
	if int64(padLen) < 0 {
		padLen += BlockSize512
	}
	binary.BigEndian.PutUint64(pad[1+padLen:], d.n>>61)
	binary.BigEndian.PutUint64(pad[1+padLen+8:], d.n<<3)
	d.absorb(pad[:1+padLen+16])

	dst := make([]byte, Size512)
	for i, s := range d.state {
		binary.BigEndian.PutUint64(dst[i*8:], s)
	}

	return dst, nil
}

// Wipe zeroizes the hash state.  The state is left finalized.
func (d *Sha512) Wipe() {
	d.state = [8]uint64{}
	d.block = [BlockSize512]byte{}
	d.nx = 0
	d.n = 0
	d.done = true
}

// Sum512 returns the SHA-512 digest of `data`.
func Sum512(data []byte) [Size512]byte {
	d := NewSha512()
	_ = d.Update(data)
	digest, _ := d.Finalize()

	var sum [Size512]byte
	copy(sum[:], digest)
	return sum
}

func compress512(state *[8]uint64, p []byte) {
	var m [80]uint64
	for i := 0; i < 16; i++ {
		m[i] = binary.BigEndian.Uint64(p[i*8:])
	}
	for i := 16; i < 80; i++ {
		s0 := bits.RotateLeft64(m[i-15], -1) ^ bits.RotateLeft64(m[i-15], -8) ^ (m[i-15] >> 7)
		s1 := bits.RotateLeft64(m[i-2], -19) ^ bits.RotateLeft64(m[i-2], -61) ^ (m[i-2] >> 6)
		m[i] = s1 + m[i-7] + s0 + m[i-16]
	}

	a, b, c, dd, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]
	for i := 0; i < 80; i++ {
		sigma1 := bits.RotateLeft64(e, -14) ^ bits.RotateLeft64(e, -18) ^ bits.RotateLeft64(e, -41)
		ch := (e & f) ^ (^e & g)
		t1 := h + sigma1 + ch + k512[i] + m[i]
		sigma0 := bits.RotateLeft64(a, -28) ^ bits.RotateLeft64(a, -34) ^ bits.RotateLeft64(a, -39)
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
