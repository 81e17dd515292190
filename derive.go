package viewkey

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"

	"github.com/codahale/viewkey/internal/prng"
)

// Env is the chain state a viewing key is derived from.
type Env struct {
	Height uint64 // Height is the current block height.
	Time   uint64 // Time is the current block time.
	Sender []byte // Sender is the raw address of the caller.
}

// NewToken derives a new viewing key from the host's seed, the chain state, and the caller's
// entropy, which may be empty. The same inputs always produce the same viewing key.
//
// The seed must not be empty; its quality is the host's responsibility.
func NewToken(seed []byte, env Env, entropy []byte) Token {
	if len(seed) == 0 {
		panic("viewkey: empty seed")
	}

	// Seed a generator with the chain state, the caller's address, and the caller's entropy.
	g := prng.New(seed, entropyBuffer(env, entropy))

	// Draw 256 bits and serialize them little-endian.
	draw := prng.Serialize(g.Words())

	// Hash the draw so the key reveals nothing about the generator's state.
	payload := sha256.Sum256(draw[:])

	return Token(Prefix + base64.StdEncoding.EncodeToString(payload[:]))
}

// entropyBuffer returns BE_U64(height) || BE_U64(time) || sender || entropy.
func entropyBuffer(env Env, entropy []byte) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, 8+8+len(env.Sender)+len(entropy)))
	_ = binary.Write(buf, binary.BigEndian, env.Height)
	_ = binary.Write(buf, binary.BigEndian, env.Time)
	_, _ = buf.Write(env.Sender)
	_, _ = buf.Write(entropy)

	return buf.Bytes()
}

var _ [PayloadSize]byte = [sha256.Size]byte{}
