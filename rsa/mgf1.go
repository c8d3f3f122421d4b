// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

package rsa

import (
	"encoding/binary"

	"gitlab.com/sable/cryptkit/sha2"
)

// mgf1SHA256 produces outLen mask bytes by concatenating
// SHA256(seed || be32(counter)) for counter = 0, 1, 2, ...
func mgf1SHA256(seed []byte, outLen int) []byte {
	out := make([]byte, 0, outLen+sha2.Size256)
	var ctr [4]byte
	for counter := uint32(0); len(out) < outLen; counter++ {
		binary.BigEndian.PutUint32(ctr[:], counter)

		d := sha2.NewSha256()
		_ = d.Update(seed)
		_ = d.Update(ctr[:])
		digest, _ := d.Finalize()

		out = append(out, digest...)
	}

	return out[:outLen]
}
