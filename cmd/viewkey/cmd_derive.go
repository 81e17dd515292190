package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"github.com/codahale/viewkey"
)

type deriveCmd struct {
	Config string `arg:"" type:"existingfile" help:"The path to the host configuration."`
	Output string `arg:"" type:"path" default:"-" help:"The output path for the viewing key."`

	Height     uint64 `help:"The current block height."`
	Time       string `default:"now" help:"The current block time, in seconds. Use now for the current time."`
	Sender     string `help:"The caller's address, hex-encoded."`
	Entropy    bool   `help:"Prompt for additional entropy."`
	Credential bool   `help:"Also print the hashed credential and its ID."`
}

func (cmd *deriveCmd) Run(_ *kong.Context) error {
	// Load the host configuration.
	c, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}

	seed, err := c.seed()
	if err != nil {
		return err
	}

	// Decode the caller's address.
	sender, err := hex.DecodeString(cmd.Sender)
	if err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}

	blockTime, err := parseBlockTime(cmd.Time, time.Now())
	if err != nil {
		return err
	}

	env := viewkey.Env{Height: cmd.Height, Time: blockTime, Sender: sender}

	// Prompt for the caller's entropy, if requested.
	var entropy []byte
	if cmd.Entropy {
		entropy, err = askEntropy("Enter entropy: ")
		if err != nil {
			return err
		}
	}

	// Open the output.
	dst, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	// Derive the viewing key and write it to the output.
	token := viewkey.NewToken(seed, env, entropy)
	if _, err := fmt.Fprintln(dst, token); err != nil {
		return err
	}

	if !cmd.Credential {
		return nil
	}

	v, err := c.verifier()
	if err != nil {
		return err
	}

	credential := v.Hash(token)
	_, err = fmt.Fprintf(dst, "%s %s\n", credential, credential.ID())

	return err
}

// parseBlockTime parses a block time in seconds, or "now".
func parseBlockTime(s string, now time.Time) (uint64, error) {
	if s == "now" {
		return uint64(now.Unix()), nil
	}

	t, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid time: %w", err)
	}

	return t, nil
}
