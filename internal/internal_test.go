package internal

import (
	"bytes"
	"errors"
	"testing"
)

func TestAbsorbLength(t *testing.T) {
	t.Parallel()

	prf := func(n int) []byte {
		s := Protocol("viewkey.test")
		AbsorbLength(s, n)

		out := make([]byte, 16)
		Must(s.PRF(out, false))

		return out
	}

	if !bytes.Equal(prf(8), prf(8)) {
		t.Fatal("same length produced different output")
	}

	if bytes.Equal(prf(8), prf(9)) {
		t.Fatal("length was not absorbed")
	}
}

func TestMust(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("Must did not panic")
		}
	}()

	Must(errors.New("oops"))
}
