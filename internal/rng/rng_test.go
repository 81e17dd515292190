package rng

import (
	"bytes"
	"io"
	"testing"
)

func TestReader_Read(t *testing.T) {
	t.Parallel()

	// Generate 10MiB and see if anything explodes.
	if _, err := io.CopyN(io.Discard, Reader, 1024*1024*10); err != nil {
		t.Fatal(err)
	}
}

func TestRead_Distinct(t *testing.T) {
	t.Parallel()

	a, b := make([]byte, 32), make([]byte, 32)

	if _, err := Read(a); err != nil {
		t.Fatal(err)
	}

	if _, err := Read(b); err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(a, b) {
		t.Fatal("two reads returned the same block")
	}
}

func BenchmarkRead(b *testing.B) {
	buf := make([]byte, 32)

	for i := 0; i < b.N; i++ {
		_, _ = Read(buf)
	}
}
