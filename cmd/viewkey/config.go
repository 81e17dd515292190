package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/codahale/viewkey"
	"gopkg.in/yaml.v3"
)

const (
	hasherSHA256   = "sha256"
	hasherArgon2id = "argon2id"
)

var (
	errEmptySeed     = errors.New("config: empty seed")
	errEmptySalt     = errors.New("config: argon2id requires a salt")
	errUnknownHasher = errors.New("config: unknown hasher")
)

// config is the host configuration: the seed viewing keys are derived from, and the hasher used
// to turn them into credentials.
type config struct {
	Seed   string       `yaml:"seed"`
	Hasher hasherConfig `yaml:"hasher"`
}

type hasherConfig struct {
	Algorithm   string `yaml:"algorithm"`
	Salt        string `yaml:"salt,omitempty"`
	Time        uint32 `yaml:"time,omitempty"`
	Memory      uint32 `yaml:"memory,omitempty"`
	Parallelism uint8  `yaml:"parallelism,omitempty"`
}

func loadConfig(path string) (*config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return parseConfig(b)
}

func parseConfig(b []byte) (*config, error) {
	var c config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &c, nil
}

func (c *config) marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *config) seed() ([]byte, error) {
	seed, err := base64.StdEncoding.DecodeString(c.Seed)
	if err != nil {
		return nil, fmt.Errorf("config: invalid seed: %w", err)
	}

	if len(seed) == 0 {
		return nil, errEmptySeed
	}

	return seed, nil
}

func (c *config) hasher() (viewkey.Hasher, error) {
	switch c.Hasher.Algorithm {
	case "", hasherSHA256:
		return viewkey.DefaultHasher, nil
	case hasherArgon2id:
		salt, err := base64.StdEncoding.DecodeString(c.Hasher.Salt)
		if err != nil {
			return nil, fmt.Errorf("config: invalid salt: %w", err)
		}

		if len(salt) == 0 {
			return nil, errEmptySalt
		}

		params := viewkey.DefaultArgon2idParams
		if c.Hasher.Time != 0 {
			params.Time = c.Hasher.Time
		}

		if c.Hasher.Memory != 0 {
			params.Memory = c.Hasher.Memory
		}

		if c.Hasher.Parallelism != 0 {
			params.Parallelism = c.Hasher.Parallelism
		}

		return &viewkey.Argon2idHasher{Salt: salt, Params: params}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownHasher, c.Hasher.Algorithm)
	}
}

func (c *config) verifier() (*viewkey.Verifier, error) {
	h, err := c.hasher()
	if err != nil {
		return nil, err
	}

	return &viewkey.Verifier{Hasher: h}, nil
}
