package credid

import (
	"testing"

	"github.com/codahale/gubbins/assert"
)

func credential(s string) *[CredentialSize]byte {
	var c [CredentialSize]byte

	copy(c[:], s)

	return &c
}

func TestID(t *testing.T) {
	t.Parallel()

	c := credential("ayellowsubmarineayellows")

	assert.Equal(t, "deterministic", ID(c), ID(c))
	assert.Equal(t, "argument", *credential("ayellowsubmarineayellows"), *c)
}

func TestID_Distinct(t *testing.T) {
	t.Parallel()

	a := ID(credential("ayellowsubmarineayellows"))
	b := ID(credential("ayellowsubmarineayellowz"))

	if a == b {
		t.Fatal("distinct credentials produced the same ID")
	}
}

func BenchmarkID(b *testing.B) {
	c := credential("ayellowsubmarineayellows")

	for i := 0; i < b.N; i++ {
		_ = ID(c)
	}
}
