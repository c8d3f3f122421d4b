// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

// rsa-keygen generates a 2048-bit RSA key pair and writes the JSON
// envelope.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"gitlab.com/sable/cryptkit/entropy"
	"gitlab.com/sable/cryptkit/rsa"
)

func main() {
	app := &cli.App{
		Name:  "rsa-keygen",
		Usage: "generate an RSA key pair",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "o",
				Usage: "output `FILE` for the key pair envelope, - for stdout",
				Value: "-",
			},
		},
		Action: keygen,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func keygen(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pub, priv, err := rsa.GenerateKeyPair(ctx, entropy.System())
	if err != nil {
		return fmt.Errorf("key generation failed: %w", err)
	}
	defer priv.Wipe()

	data, err := rsa.MarshalKeyPair(pub, priv)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	out := c.String("o")
	if out == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}

	return os.WriteFile(out, data, 0o600)
}
