// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

// rsa-verify checks a detached SHA-256 + RSA signature, printing
// exactly "valid" or "invalid".
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"gitlab.com/sable/cryptkit/dsig"
	"gitlab.com/sable/cryptkit/rsa"
)

func main() {
	app := &cli.App{
		Name:  "rsa-verify",
		Usage: "verify a detached signature",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "p",
				Usage:    "public key envelope `FILE`",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "s",
				Usage:    "detached signature `FILE`",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "i",
				Usage: "input `FILE`, - for stdin",
				Value: "-",
			},
		},
		Action: verify,
	}

	if err := app.Run(os.Args); err != nil {
		if !errors.Is(err, dsig.ErrInvalidSignature) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func verify(c *cli.Context) error {
	data, err := os.ReadFile(c.String("p"))
	if err != nil {
		return err
	}
	pub, _, err := rsa.ParseKeyPair(data)
	if err != nil {
		return fmt.Errorf("%s: %w", c.String("p"), err)
	}

	sig, err := os.ReadFile(c.String("s"))
	if err != nil {
		return err
	}

	msg, err := readInput(c.String("i"))
	if err != nil {
		return err
	}

	if err := dsig.Verify(pub, msg, sig); err != nil {
		fmt.Println("invalid")
		return err
	}
	fmt.Println("valid")

	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}
