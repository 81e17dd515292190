package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/term"
)

type cli struct {
	Init   initCmd   `cmd:"" help:"Generate a new seed and write a host configuration."`
	Derive deriveCmd `cmd:"" help:"Derive a new viewing key."`
	Hash   hashCmd   `cmd:"" help:"Print the hashed credential for a viewing key."`
	Check  checkCmd  `cmd:"" help:"Check a viewing key against a hashed credential."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func askEntropy(prompt string) ([]byte, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	return term.ReadPassword(int(os.Stdin.Fd()))
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return os.Stdout, nil
	}

	return os.Create(path)
}
