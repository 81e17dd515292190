// Package prng provides the deterministic generator used to derive viewing keys.
//
// A generator is ChaCha20 (20 rounds) keyed with SHA-256(seed || entropy), using an all-zero nonce
// and a block counter starting at zero. Its output is the raw keystream. 32-bit words are read
// from the keystream in little-endian order, so a draw of N words serialized little-endian is
// exactly the next 4N bytes of keystream.
package prng

import (
	"crypto/sha256"
	"encoding/binary"
	"io"

	"github.com/codahale/viewkey/internal"
	"golang.org/x/crypto/chacha20"
)

const (
	WordCount = 8             // WordCount is the number of 32-bit words in a single draw.
	DrawSize  = WordCount * 4 // DrawSize is the size of a serialized draw in bytes.
)

// Generator is a deterministic pseudo-random generator. It is not safe for concurrent use.
type Generator struct {
	c *chacha20.Cipher
}

// New returns a Generator keyed with the SHA-256 digest of the seed followed by the entropy.
func New(seed, entropy []byte) *Generator {
	h := sha256.New()
	_, _ = h.Write(seed)
	_, _ = h.Write(entropy)

	return newGenerator(h.Sum(nil))
}

func newGenerator(key []byte) *Generator {
	c, err := chacha20.NewUnauthenticatedCipher(key, make([]byte, chacha20.NonceSize))
	internal.Must(err)

	return &Generator{c: c}
}

// Read fills p with the next len(p) bytes of keystream. It never returns an error.
func (g *Generator) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}

	g.c.XORKeyStream(p, p)

	return len(p), nil
}

// Uint32 returns the next 32-bit word.
func (g *Generator) Uint32() uint32 {
	var b [4]byte

	_, _ = g.Read(b[:])

	return binary.LittleEndian.Uint32(b[:])
}

// Words returns the next 256 bits of output as eight 32-bit words.
func (g *Generator) Words() [WordCount]uint32 {
	var w [WordCount]uint32

	for i := range w {
		w[i] = g.Uint32()
	}

	return w
}

// Serialize encodes the words as little-endian bytes.
func Serialize(w [WordCount]uint32) [DrawSize]byte {
	var b [DrawSize]byte

	for i, v := range w {
		binary.LittleEndian.PutUint32(b[i*4:], v)
	}

	return b
}

var _ io.Reader = &Generator{}
