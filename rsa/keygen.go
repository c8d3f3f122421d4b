// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

package rsa

import (
	"context"

	"gitlab.com/sable/cryptkit/entropy"
	"gitlab.com/sable/cryptkit/internal/bigint"
)

const (
	primeBits  = KeyBits / 2
	primeBytes = primeBits / 8

	// Witness rounds for the Miller-Rabin test.
	millerRabinRounds = 40

	publicExponent = 65537
)

// smallPrimes is the trial division table, every odd prime below 1000.
// Candidates are always odd, so 2 is omitted.
var smallPrimes = []uint64{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67,
	71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139,
	149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223,
	227, 229, 233, 239, 241, 251, 257, 263, 269, 271, 277, 281, 283, 293,
	307, 311, 313, 317, 331, 337, 347, 349, 353, 359, 367, 373, 379, 383,
	389, 397, 401, 409, 419, 421, 431, 433, 439, 443, 449, 457, 461, 463,
	467, 479, 487, 491, 499, 503, 509, 521, 523, 541, 547, 557, 563, 569,
	571, 577, 587, 593, 599, 601, 607, 613, 617, 619, 631, 641, 643, 647,
	653, 659, 661, 673, 677, 683, 691, 701, 709, 719, 727, 733, 739, 743,
	751, 757, 761, 769, 773, 787, 797, 809, 811, 821, 823, 827, 829, 839,
	853, 857, 859, 863, 877, 881, 883, 887, 907, 911, 919, 929, 937, 941,
	947, 953, 967, 971, 977, 983, 991, 997,
}

// GenerateKeyPair generates a new 2048-bit key pair, drawing all
// randomness from `rng`.  The context is checked between prime
// candidates, so the unbounded search can be cancelled.
func GenerateKeyPair(ctx context.Context, rng entropy.Source) (*PublicKey, *PrivateKey, error) {
	// Expand the caller RNG so the candidate stream stays uniform even
	// for low-rate sources.
	hardened, err := entropy.Harden(rng, "rsa-keygen")
	if err != nil {
		return nil, nil, err
	}

	e := bigint.NewUint2048FromUint64(publicExponent)
	for {
		p, err := randomPrime(ctx, hardened)
		if err != nil {
			return nil, nil, err
		}
		q, err := randomPrime(ctx, hardened)
		if err != nil {
			return nil, nil, err
		}
		if p.Equal(q) == 1 {
			continue
		}

		n := bigint.NewUint2048().Mul(p, q)

		// phi = (p - 1) * (q - 1)
		pm1 := bigint.NewUint2048().SubUint64(p, 1)
		qm1 := bigint.NewUint2048().SubUint64(q, 1)
		phi := bigint.NewUint2048().Mul(pm1, qm1)

		d, ok := bigint.NewUint2048().InvMod(e, phi)
		phi.SetUint64(0)
		pm1.SetUint64(0)
		qm1.SetUint64(0)
		if !ok {
			// gcd(e, phi) != 1; with e = 65537 and random primes this
			// is vanishingly rare.
			continue
		}

		pub := &PublicKey{}
		pub.n.Set(n)
		pub.e.Set(e)

		priv := &PrivateKey{}
		priv.p.Set(p)
		priv.q.Set(q)
		priv.d.Set(d)
		priv.n.Set(n)

		p.SetUint64(0)
		q.SetUint64(0)
		d.SetUint64(0)

		return pub, priv, nil
	}
}

// randomPrime draws candidates of primeBits bits from `rng`, with the
// top and bottom bits forced, until one passes the primality test.
func randomPrime(ctx context.Context, rng entropy.Source) (*bigint.Uint2048, error) {
	var buf [bigint.U2048Size]byte
	defer func() {
		for i := range buf {
			buf[i] = 0
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := rng.Fill(buf[:primeBytes]); err != nil {
			return nil, err
		}

		cand := bigint.NewUint2048().SetLEBytes(&buf)
		cand.SetBit(0)
		cand.SetBit(primeBits - 1)

		ok, err := isProbablyPrime(cand, rng)
		if err != nil {
			return nil, err
		}
		if ok {
			return cand, nil
		}
		cand.SetUint64(0)
	}
}

// isProbablyPrime runs trial division by the small prime table followed
// by millerRabinRounds Miller-Rabin witness rounds with bases drawn
// from `rng`.
func isProbablyPrime(n *bigint.Uint2048, rng entropy.Source) (bool, error) {
	for _, sp := range smallPrimes {
		if n.ModUint64(sp) == 0 {
			return false, nil
		}
	}

	// n - 1 = 2^s * d with d odd.
	nm1 := bigint.NewUint2048().SubUint64(n, 1)
	nm3 := bigint.NewUint2048().SubUint64(n, 3)
	d := bigint.NewUint2048().Set(nm1)
	s := 0
	for d.IsOdd() == 0 {
		d.Rsh1(d)
		s++
	}

	var buf [bigint.U2048Size]byte
	two := bigint.NewUint2048FromUint64(2)
	x := bigint.NewUint2048()
	a := bigint.NewUint2048()
	one := bigint.NewUint2048FromUint64(1)

	for round := 0; round < millerRabinRounds; round++ {
		// a in [2, n-2]
		if err := rng.Fill(buf[:]); err != nil {
			return false, err
		}
		a.SetLEBytes(&buf)
		a.Mod(a, nm3)
		a.Add(a, two)

		x.ExpMod(a, d, n)
		if x.Equal(one) == 1 || x.Equal(nm1) == 1 {
			continue
		}

		witness := true
		for i := 1; i < s; i++ {
			x.MulMod(x, x, n)
			if x.Equal(nm1) == 1 {
				witness = false
				break
			}
		}
		if witness {
			return false, nil
		}
	}

	return true, nil
}
