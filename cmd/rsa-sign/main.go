// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

// rsa-sign produces a detached SHA-256 + RSA signature over its input.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"gitlab.com/sable/cryptkit/dsig"
	"gitlab.com/sable/cryptkit/rsa"
)

func main() {
	app := &cli.App{
		Name:  "rsa-sign",
		Usage: "sign a file with a detached signature",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "p",
				Usage:    "public key envelope `FILE`",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "q",
				Usage:    "private key envelope `FILE`",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "i",
				Usage: "input `FILE`, - for stdin",
				Value: "-",
			},
			&cli.StringFlag{
				Name:  "o",
				Usage: "output signature `FILE`, - for stdout",
				Value: "-",
			},
		},
		Action: sign,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func sign(c *cli.Context) error {
	if _, err := loadPublicKey(c.String("p")); err != nil {
		return err
	}
	priv, err := loadPrivateKey(c.String("q"))
	if err != nil {
		return err
	}
	defer priv.Wipe()

	msg, err := readInput(c.String("i"))
	if err != nil {
		return err
	}

	sig, err := dsig.Sign(priv, msg)
	if err != nil {
		return fmt.Errorf("signing failed: %w", err)
	}

	out := c.String("o")
	if out == "-" {
		_, err = os.Stdout.Write(sig)
		return err
	}

	return os.WriteFile(out, sig, 0o644)
}

func loadPublicKey(path string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pub, _, err := rsa.ParseKeyPair(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pub, nil
}

func loadPrivateKey(path string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	_, priv, err := rsa.ParseKeyPair(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return priv, nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}
