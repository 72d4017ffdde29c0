package resource

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBytesVerify(t *testing.T) {
	buf := make([]byte, 1024)
	rand.New(rand.NewSource(1)).Read(buf)

	id := FromBytes(buf)
	require.Equal(t, uint64(len(buf)), id.Length)
	require.Equal(t, CurrentFormat, id.Version)
	require.NoError(t, id.Verify(buf))

	other := make([]byte, len(buf))
	copy(other, buf)
	other[0] ^= 0xFF
	err := id.Verify(other)
	require.Error(t, err)
	ve, ok := err.(*VerifyError)
	require.True(t, ok)
	assert.Equal(t, HashesDontMatch, ve.Kind)
}

func TestVerifyWrongLength(t *testing.T) {
	id := FromBytes([]byte("hello world"))
	err := id.Verify([]byte("hello"))
	require.Error(t, err)
	ve := err.(*VerifyError)
	assert.Equal(t, WrongLength, ve.Kind)
}

func TestEqualityIgnoresVersion(t *testing.T) {
	buf := []byte("some content")
	a := FromBytes(buf)
	b := a
	b.Version = a.Version + 1
	assert.True(t, a.Equal(b), "ResourceId equality must ignore Version")
	assert.NotEqual(t, a, b, "struct equality still differs on Version")
}

func TestDistinctBuffersDistinctHash(t *testing.T) {
	a := FromBytes(bytes.Repeat([]byte{1}, 64))
	b := FromBytes(bytes.Repeat([]byte{2}, 64))
	assert.False(t, a.Equal(b))
}
