// Package rng provides the underlying STROBE protocol for viewkey's seed RNG.
//
// At startup, a STROBE protocol is initialized:
//
//     INIT('viewkey.rng', level=256)
//
// When a block of random data is required, a block B of equivalent size is read from the host
// machine's RNG, and the following operations performed:
//
//     AD(LE_U32(LEN(B)), meta=true)
//     KEY(B)
//     PRF(LEN(B)) -> B
//     RATCHET(32)
//
// This insulates host seeds somewhat against compromised RNGs, but at the end of the day this is
// still a deterministic process.
package rng

import (
	"crypto/rand"
	"io"
	"sync"

	"github.com/codahale/viewkey/internal"
	"github.com/sammyne/strobe"
)

// Read is a helper function that calls Reader.Read using io.ReadFull. On return, n == len(b) if and
// only if err == nil.
func Read(b []byte) (int, error) {
	return io.ReadFull(Reader, b)
}

//nolint:gochecknoglobals // need a singleton
// Reader is a global, shared instance of a cryptographically secure random number generator.
var Reader io.Reader = &reader{rng: internal.Protocol("viewkey.rng")}

type reader struct {
	m   sync.Mutex
	rng *strobe.Strobe
}

func (r *reader) Read(p []byte) (n int, err error) {
	r.m.Lock()
	defer r.m.Unlock()

	// Include length of PRF request as associated data.
	internal.AbsorbLength(r.rng, len(p))

	// Read a new block of data from the underlying RNG.
	if _, err := rand.Read(p); err != nil {
		return 0, err
	}

	// Re-key the protocol with the block.
	internal.Must(r.rng.KEY(p, false))

	// Return the results of the PRF.
	internal.Must(r.rng.PRF(p, false))

	// Ratchet the state of the RNG to prevent rollback.
	internal.Must(r.rng.RATCHET(internal.RatchetSize))

	return len(p), nil
}
