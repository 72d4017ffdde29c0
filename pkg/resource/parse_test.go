package resource

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	buf := make([]byte, 2048)
	rand.New(rand.NewSource(2)).Read(buf)
	id := FromBytes(buf)

	str := id.String()
	parsed, err := Parse(str)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseNoSeparator(t *testing.T) {
	_, err := Parse("1 2048 abc")
	require.Error(t, err)
	assert.Equal(t, NoSeparator, err.(*ParseError).Kind)
}

func TestParseTooManySeparators(t *testing.T) {
	_, err := Parse("1_2048")
	require.Error(t, err)
	assert.Equal(t, TooManySeparators, err.(*ParseError).Kind)
}

// TestParseRoundTripHashContainingSeparator covers a hash whose
// base64 encoding itself contains the "_" field separator: Hash[0] =
// 0xFF forces the encoding's leading 6 bits to 63, which is '_' in
// the url-safe alphabet. Parse must not shatter this field on that
// byte.
func TestParseRoundTripHashContainingSeparator(t *testing.T) {
	var hash [HashSize]byte
	hash[0] = 0xFF
	id := ID{Version: CurrentFormat, Length: 2048, Hash: hash}

	str := id.String()
	require.True(t, strings.HasPrefix(str, "1_2048__"), "expected base64 field to start with _, got %q", str)

	parsed, err := Parse(str)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseVersionNotNumber(t *testing.T) {
	_, err := Parse("x_2048_abc")
	require.Error(t, err)
	assert.Equal(t, VersionNotNumber, err.(*ParseError).Kind)
}

func TestParseUnrecognizedVersion(t *testing.T) {
	id := FromBytes([]byte("payload"))
	str := id.String()
	bumped := strings.Replace(str, "1_", "9_", 1)
	_, err := Parse(bumped)
	require.Error(t, err)
	assert.Equal(t, UnrecognizedVersion, err.(*ParseError).Kind)
}

func TestParseBufferWrongSize(t *testing.T) {
	_, err := Parse("1_10_YQ==")
	require.Error(t, err)
	assert.Equal(t, BufferWrongSize, err.(*ParseError).Kind)
}

func TestParseSizeNotNumber(t *testing.T) {
	id := FromBytes([]byte("payload"))
	parts := strings.SplitN(id.String(), separator, 3)
	bad := parts[0] + separator + "notanumber" + separator + parts[2]
	_, err := Parse(bad)
	require.Error(t, err)
	assert.Equal(t, SizeNotNumber, err.(*ParseError).Kind)
}
