// Package internal contains the STROBE plumbing shared by viewkey's randomness and identifier
// protocols.
//
// The subpackages of internal contain the generators and STROBE protocols viewkey uses.
package internal

import (
	"encoding/binary"

	"github.com/sammyne/strobe"
)

// RatchetSize is the number of bytes of STROBE state reset by each ratchet. For Strobe-256/b, 32
// bytes is sufficient.
const RatchetSize = int(strobe.Bit256) / 8

// Protocol returns a new Strobe-256 protocol with the given name.
func Protocol(name string) *strobe.Strobe {
	s, err := strobe.New(name, strobe.Bit256)
	Must(err)

	return s
}

// AbsorbLength absorbs n as a little-endian 32-bit meta-AD frame, binding the size of the next
// operation into the protocol's state.
func AbsorbLength(s *strobe.Strobe, n int) {
	var b [4]byte

	binary.LittleEndian.PutUint32(b[:], uint32(n))
	Must(s.AD(b[:], &strobe.Options{Meta: true}))
}

// Must panics if the given error is not nil. STROBE operations only fail when misused.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
