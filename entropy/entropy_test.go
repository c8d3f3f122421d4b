// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

package entropy

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeededDeterminism(t *testing.T) {
	seed := bytes.Repeat([]byte{0xa5}, 32)

	a, b := NewSeeded(seed), NewSeeded(seed)
	bufA, bufB := make([]byte, 1024), make([]byte, 1024)
	require.NoError(t, a.Fill(bufA), "Fill(a)")
	require.NoError(t, b.Fill(bufB), "Fill(b)")
	require.Equal(t, bufA, bufB, "same seed, same stream")

	c := NewSeeded(bytes.Repeat([]byte{0x5a}, 32))
	bufC := make([]byte, 1024)
	require.NoError(t, c.Fill(bufC), "Fill(c)")
	require.NotEqual(t, bufA, bufC, "different seed, different stream")
}

func TestHarden(t *testing.T) {
	seed := bytes.Repeat([]byte{0xa5}, 32)

	a, err := Harden(NewSeeded(seed), "test")
	require.NoError(t, err, "Harden")
	b, err := Harden(NewSeeded(seed), "test")
	require.NoError(t, err, "Harden")

	bufA, bufB := make([]byte, 256), make([]byte, 256)
	require.NoError(t, a.Fill(bufA), "Fill(a)")
	require.NoError(t, b.Fill(bufB), "Fill(b)")
	require.Equal(t, bufA, bufB, "hardening a deterministic source is deterministic")

	c, err := Harden(NewSeeded(seed), "other-domain")
	require.NoError(t, err, "Harden")
	bufC := make([]byte, 256)
	require.NoError(t, c.Fill(bufC), "Fill(c)")
	require.NotEqual(t, bufA, bufC, "domain separation")

	d, err := Harden(NewSeeded(seed), "test", []byte("secret"))
	require.NoError(t, err, "Harden")
	bufD := make([]byte, 256)
	require.NoError(t, d.Fill(bufD), "Fill(d)")
	require.NotEqual(t, bufA, bufD, "secret input separation")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken")
}

func TestSourceFailure(t *testing.T) {
	src := FromReader(failingReader{})
	err := src.Fill(make([]byte, 16))
	require.ErrorIs(t, err, ErrSource, "Fill from a broken reader")

	_, err = Harden(src, "test")
	require.ErrorIs(t, err, ErrSource, "Harden from a broken reader")
}
