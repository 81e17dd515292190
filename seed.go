package viewkey

import "github.com/codahale/viewkey/internal/rng"

// SeedSize is the size of a seed generated by NewSeed.
const SeedSize = 32

// NewSeed returns a new random seed for deriving viewing keys. Hosts should generate one seed,
// keep it secret, and pass it to every call to NewToken.
func NewSeed() ([]byte, error) {
	seed := make([]byte, SeedSize)
	if _, err := rng.Read(seed); err != nil {
		return nil, err
	}

	return seed, nil
}
