package viewkey

// Verifier checks presented viewing keys against stored credentials. The zero value uses
// DefaultHasher.
type Verifier struct {
	Hasher Hasher
}

// Verify returns true if the viewing key is well-formed and matches the stored credential.
// Viewing keys of the wrong length are rejected without being hashed.
func (v *Verifier) Verify(t Token, stored []byte) bool {
	if !t.IsValid() {
		return false
	}

	return t.CheckWith(v.hasher(), stored)
}

// Hash returns the stored form of the viewing key.
func (v *Verifier) Hash(t Token) Credential {
	return t.HashedWith(v.hasher())
}

func (v *Verifier) hasher() Hasher {
	if v.Hasher == nil {
		return DefaultHasher
	}

	return v.Hasher
}
