package resource

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// separator is the single ASCII character dividing the three fields of
// a canonical ResourceId string. The spec fixes this at underscore
// (the Rust original this was ported from used a colon; the build
// constant here is the one that matters for this module).
const separator = "_"

// ParseErrorKind enumerates why Parse rejected a string. Names mirror
// the spec's required failure-mode list exactly.
type ParseErrorKind int

const (
	NoSeparator ParseErrorKind = iota
	TooManySeparators
	VersionNotNumber
	SizeNotNumber
	UnrecognizedVersion
	BufferWrongSize
	Base64Parse
)

// ParseError reports why a string failed to parse as a ResourceId.
type ParseError struct {
	Kind    ParseErrorKind
	Input   string
	Version uint8 // populated for UnrecognizedVersion
	Got     int   // populated for BufferWrongSize
	Cause   error // populated for Base64Parse
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case NoSeparator:
		return fmt.Sprintf("resource: %q contains no %q separator", e.Input, separator)
	case TooManySeparators:
		return fmt.Sprintf("resource: %q does not split into exactly 3 fields on %q", e.Input, separator)
	case VersionNotNumber:
		return fmt.Sprintf("resource: %q: version field is not an integer", e.Input)
	case SizeNotNumber:
		return fmt.Sprintf("resource: %q: length field is not an integer", e.Input)
	case UnrecognizedVersion:
		return fmt.Sprintf("resource: %q: unrecognized resource ID version %d", e.Input, e.Version)
	case BufferWrongSize:
		return fmt.Sprintf("resource: %q: decoded hash is %d bytes, expected %d", e.Input, e.Got, HashSize)
	default:
		return fmt.Sprintf("resource: %q: base64 decode failed: %v", e.Input, e.Cause)
	}
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Parse parses a canonical ResourceId string of the form
// "<version>_<length>_<url-safe base64 of 32-byte hash>". Parsing is
// strict: whitespace in the version or length field fails numeric
// parsing, whitespace in the base64 field (line breaks included, which
// the base64 decoder alone would skip) fails as Base64Parse, and fewer
// than two separators fails before numeric parsing is attempted. The
// base64 field itself
// may contain any number of further "_" bytes; only the first two
// separators are field delimiters.
func Parse(s string) (ID, error) {
	if !strings.Contains(s, separator) {
		return ID{}, &ParseError{Kind: NoSeparator, Input: s}
	}
	// SplitN, not Split: the base64 field is url-safe base64, whose
	// alphabet includes "_" itself, so a plain Split would shatter a
	// perfectly valid hash field on every separator-shaped byte inside
	// it. Only the first two separators delimit fields; whatever's left
	// after them is the whole base64 field, underscores and all.
	fields := strings.SplitN(s, separator, 3)
	if len(fields) != 3 {
		return ID{}, &ParseError{Kind: TooManySeparators, Input: s}
	}

	version64, err := strconv.ParseUint(fields[0], 10, 8)
	if err != nil {
		return ID{}, &ParseError{Kind: VersionNotNumber, Input: s}
	}
	version := uint8(version64)
	if version != CurrentFormat {
		return ID{}, &ParseError{Kind: UnrecognizedVersion, Input: s, Version: version}
	}

	length, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return ID{}, &ParseError{Kind: SizeNotNumber, Input: s}
	}

	// The decoder silently skips '\r' and '\n', so reject them here.
	if i := strings.IndexAny(fields[2], "\r\n"); i >= 0 {
		return ID{}, &ParseError{Kind: Base64Parse, Input: s, Cause: base64.CorruptInputError(i)}
	}
	decoded, err := base64.URLEncoding.Strict().DecodeString(fields[2])
	if err != nil {
		return ID{}, &ParseError{Kind: Base64Parse, Input: s, Cause: err}
	}
	if len(decoded) != HashSize {
		return ID{}, &ParseError{Kind: BufferWrongSize, Input: s, Got: len(decoded)}
	}

	var hash [HashSize]byte
	copy(hash[:], decoded)
	return ID{Version: version, Length: length, Hash: hash}, nil
}

func encodeCanonical(id ID) string {
	return fmt.Sprintf("%d%s%d%s%s", id.Version, separator, id.Length, separator,
		base64.URLEncoding.Strict().EncodeToString(id.Hash[:]))
}
