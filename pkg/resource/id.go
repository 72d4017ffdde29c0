// Package resource implements ResourceId, a content-addressed
// identifier for any byte blob a tile's art references: a texture
// image, a mesh, or any other asset loaded by an external provider.
package resource

import (
	"crypto/sha512"
	"fmt"
)

// CurrentFormat is the ResourceId struct version this package
// produces and accepts when parsing.
const CurrentFormat uint8 = 1

// HashSize is the width of the content hash in bytes (SHA-512/256).
const HashSize = 32

// ID is a content-addressed identifier: a declared length plus a
// 32-byte hash of the referenced bytes. Equal ignores Version
// deliberately, so that a future version bump of the ID encoding does
// not break equality on the underlying content address. The == operator
// and map keys compare the whole struct, Version included.
type ID struct {
	Version uint8
	Length  uint64
	Hash    [HashSize]byte
}

// New builds an ID from an already-known length and hash, without
// hashing any buffer. Useful when the hash was computed elsewhere
// (e.g. streamed) and only the descriptor needs constructing.
func New(length uint64, hash [HashSize]byte) ID {
	return ID{Version: CurrentFormat, Length: length, Hash: hash}
}

// FromBytes computes the SHA-512/256 hash of buf and returns the ID
// describing it.
func FromBytes(buf []byte) ID {
	return ID{
		Version: CurrentFormat,
		Length:  uint64(len(buf)),
		Hash:    sha512.Sum512_256(buf),
	}
}

// VerifyError describes why Verify rejected a buffer.
type VerifyError struct {
	Kind       VerifyErrorKind
	WantLength uint64
	GotLength  uint64
}

// VerifyErrorKind enumerates the ways Verify can fail.
type VerifyErrorKind int

const (
	HashesDontMatch VerifyErrorKind = iota
	WrongLength
)

func (e *VerifyError) Error() string {
	switch e.Kind {
	case WrongLength:
		return fmt.Sprintf("resource: expected a length of %d bytes but got %d", e.WantLength, e.GotLength)
	default:
		return "resource: hash does not match resource ID"
	}
}

// Verify checks that buf matches the ID's declared length and hash.
func (id ID) Verify(buf []byte) error {
	if uint64(len(buf)) != id.Length {
		return &VerifyError{Kind: WrongLength, WantLength: id.Length, GotLength: uint64(len(buf))}
	}
	if sha512.Sum512_256(buf) != id.Hash {
		return &VerifyError{Kind: HashesDontMatch}
	}
	return nil
}

// Equal compares two IDs ignoring Version, per the spec's deliberate
// version-independent equality rule.
func (id ID) Equal(other ID) bool {
	return id.Length == other.Length && id.Hash == other.Hash
}

func (id ID) String() string {
	return encodeCanonical(id)
}
