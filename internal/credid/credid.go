// Package credid derives short identifiers for hashed credentials, so hosts can log or index a
// credential without storing or revealing it.
//
// Given a hashed credential C, an ID is derived with the following STROBE protocol:
//
//     INIT('viewkey.credid', level=256)
//     AD(LE_U32(LEN(C)), meta=true)
//     KEY(C)
//     AD(LE_U32(IDSize), meta=true)
//     PRF(IDSize)
package credid

import "github.com/codahale/viewkey/internal"

const (
	CredentialSize = 24 // CredentialSize is the size of a hashed credential in bytes.
	IDSize         = 8  // IDSize is the size of a credential ID in bytes.
)

// ID returns the identifier for the given hashed credential.
func ID(credential *[CredentialSize]byte) [IDSize]byte {
	var id [IDSize]byte

	p := internal.Protocol("viewkey.credid")

	// KEY overwrites its argument, so key the protocol with a copy.
	k := *credential

	internal.AbsorbLength(p, len(k))
	internal.Must(p.KEY(k[:], false))

	internal.AbsorbLength(p, IDSize)
	internal.Must(p.PRF(id[:], false))

	return id
}
