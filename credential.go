package viewkey

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding"
	"fmt"

	"github.com/codahale/viewkey/internal/credid"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/argon2"
)

// CredentialSize is the size of a hashed credential in bytes.
const CredentialSize = credid.CredentialSize

// Credential is the hashed form of a viewing key. It is the only form of a viewing key a host
// should persist.
//
// It can be marshalled and unmarshalled as a base58 string.
type Credential [CredentialSize]byte

// Equal returns true if b is equal to the credential. The comparison takes time dependent only on
// the length of b.
func (c Credential) Equal(b []byte) bool {
	return subtle.ConstantTimeCompare(c[:], b) == 1
}

// Bytes returns the credential as a byte slice.
func (c Credential) Bytes() []byte {
	return c[:]
}

// ID returns a short identifier for the credential which is safe to log or index.
func (c Credential) ID() string {
	id := credid.ID((*[credid.CredentialSize]byte)(&c))

	return base58.Encode(id[:])
}

// MarshalText encodes the credential into base58 text and returns the result.
func (c Credential) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(c[:])), nil
}

// UnmarshalText decodes the results of MarshalText and updates the receiver to contain the decoded
// credential.
func (c *Credential) UnmarshalText(text []byte) error {
	b, err := base58.Decode(string(text))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedCredential, err)
	}

	if len(b) != CredentialSize {
		return ErrMalformedCredential
	}

	copy(c[:], b)

	return nil
}

// String returns the credential as base58 text.
func (c Credential) String() string {
	text, err := c.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(text)
}

var (
	_ encoding.TextMarshaler   = Credential{}
	_ encoding.TextUnmarshaler = &Credential{}
	_ fmt.Stringer             = Credential{}
)

// A Hasher maps viewing keys to hashed credentials. Implementations must be deterministic.
type Hasher interface {
	Hash(token []byte) Credential
}

//nolint:gochecknoglobals // stateless
// DefaultHasher hashes viewing keys with SHA-256, truncated to CredentialSize bytes.
var DefaultHasher Hasher = sha256Hasher{}

type sha256Hasher struct{}

func (sha256Hasher) Hash(token []byte) Credential {
	var c Credential

	digest := sha256.Sum256(token)
	copy(c[:], digest[:CredentialSize])

	return c
}

// Argon2idParams contains the parameters of the Argon2id password hashing algorithm.
type Argon2idParams struct {
	Time, Memory uint32 // The time and memory Argon2id parameters.
	Parallelism  uint8  // The parallelism Argon2id parameter.
}

//nolint:gochecknoglobals // reusable constant
// DefaultArgon2idParams are the second recommended option of RFC 9106, section 4.
var DefaultArgon2idParams = Argon2idParams{
	Time:        3,
	Memory:      64 * 1024, // 64MiB
	Parallelism: 4,
}

// Argon2idHasher hashes viewing keys with Argon2id and a fixed, host-chosen salt. Zero-valued
// parameters are replaced with those of DefaultArgon2idParams.
type Argon2idHasher struct {
	Salt   []byte
	Params Argon2idParams
}

// Hash returns the Argon2id hash of the viewing key.
func (h *Argon2idHasher) Hash(token []byte) Credential {
	var c Credential

	p := h.params()
	copy(c[:], argon2.IDKey(token, h.Salt, p.Time, p.Memory, p.Parallelism, CredentialSize))

	return c
}

func (h *Argon2idHasher) params() Argon2idParams {
	p := h.Params

	if p.Time == 0 {
		p.Time = DefaultArgon2idParams.Time
	}

	if p.Memory == 0 {
		p.Memory = DefaultArgon2idParams.Memory
	}

	if p.Parallelism == 0 {
		p.Parallelism = DefaultArgon2idParams.Parallelism
	}

	return p
}

var (
	_ Hasher = sha256Hasher{}
	_ Hasher = &Argon2idHasher{}
)

// Hashed returns the hashed credential for the viewing key using DefaultHasher.
func (t Token) Hashed() Credential {
	return t.HashedWith(DefaultHasher)
}

// HashedWith returns the hashed credential for the viewing key using the given Hasher.
func (t Token) HashedWith(h Hasher) Credential {
	return h.Hash(t.Bytes())
}

// Check returns true if the viewing key's DefaultHasher credential is equal to the stored
// credential. The viewing key is always hashed, and the comparison is constant-time.
func (t Token) Check(stored []byte) bool {
	return t.CheckWith(DefaultHasher, stored)
}

// CheckWith returns true if the viewing key's credential, using the given Hasher, is equal to the
// stored credential.
func (t Token) CheckWith(h Hasher, stored []byte) bool {
	return t.HashedWith(h).Equal(stored)
}
