// Package viewkey implements viewing keys: bearer tokens which gate read access to confidential
// contract state.
//
// A viewing key is derived from a host-held seed, the current chain state, the caller's address,
// and caller-supplied entropy. The caller keeps the key; the host stores only its hashed
// credential. When the key is later presented, it is hashed again and compared to the stored
// credential in constant time.
package viewkey

import (
	"encoding"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	Prefix      = "api_key_" // Prefix is the literal prefix of every viewing key.
	PayloadSize = 32         // PayloadSize is the size of a viewing key's payload in bytes.

	// Length is the length of a well-formed viewing key in bytes.
	Length = len(Prefix) + 44
)

var (
	// ErrMalformedToken is returned when a viewing key cannot be parsed.
	ErrMalformedToken = errors.New("malformed viewing key")

	// ErrMalformedCredential is returned when a hashed credential cannot be parsed.
	ErrMalformedCredential = errors.New("malformed credential")
)

// Token is a viewing key. Its printable form and its stored form are the same string.
type Token string

// IsValid returns true if the viewing key has the required length. This is a cheap pre-filter, not
// a proof of authenticity, and it is not constant-time: the length of a key is not secret.
func (t Token) IsValid() bool {
	return len(t) == Length
}

// Bytes returns the raw bytes of the viewing key.
func (t Token) Bytes() []byte {
	return []byte(t)
}

// String returns the viewing key.
func (t Token) String() string {
	return string(t)
}

// MarshalText returns the viewing key as text.
func (t Token) MarshalText() ([]byte, error) {
	return t.Bytes(), nil
}

// UnmarshalText parses a viewing key. Unlike IsValid, it requires the prefix and a payload which
// decodes to exactly PayloadSize bytes.
func (t *Token) UnmarshalText(text []byte) error {
	s := string(text)

	if len(s) != Length || !strings.HasPrefix(s, Prefix) {
		return ErrMalformedToken
	}

	payload, err := base64.StdEncoding.DecodeString(s[len(Prefix):])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	if len(payload) != PayloadSize {
		return ErrMalformedToken
	}

	*t = Token(s)

	return nil
}

var (
	_ encoding.TextMarshaler   = Token("")
	_ encoding.TextUnmarshaler = (*Token)(nil)
	_ fmt.Stringer             = Token("")
)
