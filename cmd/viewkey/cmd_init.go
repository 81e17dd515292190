package main

import (
	"encoding/base64"
	"os"

	"github.com/alecthomas/kong"
	"github.com/codahale/viewkey"
)

type initCmd struct {
	Config string `arg:"" type:"path" help:"The output path for the host configuration."`

	Hasher string `default:"sha256" help:"The credential hasher to use (sha256 or argon2id)."`
}

func (cmd *initCmd) Run(_ *kong.Context) error {
	// Generate a new seed.
	seed, err := viewkey.NewSeed()
	if err != nil {
		return err
	}

	c := config{
		Seed:   base64.StdEncoding.EncodeToString(seed),
		Hasher: hasherConfig{Algorithm: cmd.Hasher},
	}

	// Argon2id needs a salt of its own.
	if cmd.Hasher == hasherArgon2id {
		salt, err := viewkey.NewSeed()
		if err != nil {
			return err
		}

		c.Hasher.Salt = base64.StdEncoding.EncodeToString(salt[:16])
		c.Hasher.Time = viewkey.DefaultArgon2idParams.Time
		c.Hasher.Memory = viewkey.DefaultArgon2idParams.Memory
		c.Hasher.Parallelism = viewkey.DefaultArgon2idParams.Parallelism
	}

	// Make sure the configuration is usable before writing it.
	if _, err := c.hasher(); err != nil {
		return err
	}

	b, err := c.marshal()
	if err != nil {
		return err
	}

	// Write out the configuration. It contains the seed, so keep it private.
	return os.WriteFile(cmd.Config, b, 0600)
}
