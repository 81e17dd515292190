package viewkey

import (
	"bytes"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestNewSeed(t *testing.T) {
	t.Parallel()

	a, err := NewSeed()
	if err != nil {
		t.Fatal(err)
	}

	b, err := NewSeed()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "size", SeedSize, len(a))

	if bytes.Equal(a, b) {
		t.Fatal("two seeds were equal")
	}
}
