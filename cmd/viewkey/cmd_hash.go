package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/codahale/viewkey"
)

type hashCmd struct {
	Config string `arg:"" type:"existingfile" help:"The path to the host configuration."`
	Token  string `arg:"" help:"The viewing key."`
	Output string `arg:"" type:"path" default:"-" help:"The output path for the credential."`
}

func (cmd *hashCmd) Run(_ *kong.Context) error {
	c, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}

	v, err := c.verifier()
	if err != nil {
		return err
	}

	// Parse the viewing key.
	var token viewkey.Token
	if err := token.UnmarshalText([]byte(cmd.Token)); err != nil {
		return err
	}

	// Open the output.
	dst, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	// Hash the viewing key and write the credential and its ID to the output.
	credential := v.Hash(token)
	_, err = fmt.Fprintf(dst, "%s %s\n", credential, credential.ID())

	return err
}
