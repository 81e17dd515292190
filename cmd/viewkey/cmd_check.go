package main

import (
	"errors"

	"github.com/alecthomas/kong"
	"github.com/codahale/viewkey"
)

var errMismatch = errors.New("viewing key does not match credential")

type checkCmd struct {
	Config     string `arg:"" type:"existingfile" help:"The path to the host configuration."`
	Token      string `arg:"" help:"The viewing key."`
	Credential string `arg:"" help:"The hashed credential, base58-encoded."`
}

func (cmd *checkCmd) Run(_ *kong.Context) error {
	c, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}

	v, err := c.verifier()
	if err != nil {
		return err
	}

	// Decode the stored credential.
	var credential viewkey.Credential
	if err := credential.UnmarshalText([]byte(cmd.Credential)); err != nil {
		return err
	}

	// Check the viewing key. Malformed keys and mismatches are reported the same way.
	if !v.Verify(viewkey.Token(cmd.Token), credential.Bytes()) {
		return errMismatch
	}

	return nil
}
