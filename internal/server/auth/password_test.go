package auth

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastParams = HashParams{Time: 1, MemoryKiB: 1024, Threads: 1, SaltLen: 16, KeyLen: 32}

func newHasher(t *testing.T) *PasswordHasher {
	t.Helper()
	h, err := NewPasswordHasher(fastParams)
	require.NoError(t, err)
	return h
}

func TestHashAndVerify(t *testing.T) {
	h := newHasher(t)

	encoded, err := h.Hash([]byte("auth-secret"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=1024,t=1,p=1$"))

	ok, err := h.Verify([]byte("auth-secret"), encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify([]byte("auth-secreT"), encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHash_UniqueSalt(t *testing.T) {
	h := newHasher(t)

	a, err := h.Hash([]byte("same"))
	require.NoError(t, err)
	b, err := h.Hash([]byte("same"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerify_Malformed(t *testing.T) {
	h := newHasher(t)

	for _, enc := range []string{
		"",
		"plain",
		"$argon2i$v=19$m=1024,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=1024,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=1024,t=0,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=1024,t=1,p=1$!!!$aGFzaA",
		"$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$",
	} {
		_, err := h.Verify([]byte("x"), enc)
		assert.ErrorIs(t, err, ErrMalformedHash, enc)
	}
}

func TestNeedsRehash(t *testing.T) {
	h := newHasher(t)
	encoded, err := h.Hash([]byte("pw"))
	require.NoError(t, err)
	assert.False(t, h.NeedsRehash(encoded))

	stronger, err := NewPasswordHasher(HashParams{Time: 2, MemoryKiB: 1024, Threads: 1, SaltLen: 16, KeyLen: 32})
	require.NoError(t, err)
	assert.True(t, stronger.NeedsRehash(encoded))
	assert.True(t, h.NeedsRehash("garbage"))

	// a hash from the stronger hasher still verifies under the weaker one
	enc2, err := stronger.Hash([]byte("pw"))
	require.NoError(t, err)
	ok, err := h.Verify([]byte("pw"), enc2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyDummy_DoesNotPanic(t *testing.T) {
	h := newHasher(t)
	h.VerifyDummy([]byte("whatever"))
	assert.NotEmpty(t, h.dummy)
}

func TestHashParams_Validate(t *testing.T) {
	assert.NoError(t, DefaultHashParams.Validate())
	assert.Error(t, HashParams{Time: 0, MemoryKiB: 1024, Threads: 1, SaltLen: 16, KeyLen: 32}.Validate())
	assert.Error(t, HashParams{Time: 1, MemoryKiB: 1024, Threads: 0, SaltLen: 16, KeyLen: 32}.Validate())
	assert.Error(t, HashParams{Time: 1, MemoryKiB: 1024, Threads: 1, SaltLen: 8, KeyLen: 32}.Validate())

	_, err := NewPasswordHasher(HashParams{})
	assert.Error(t, err)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestHash_RandFailure(t *testing.T) {
	h := newHasher(t)

	orig := randReader
	randReader = failingReader{}
	defer func() { randReader = orig }()

	_, err := h.Hash([]byte("pw"))
	require.Error(t, err)

	_, err = NewPasswordHasher(fastParams)
	require.Error(t, err)

	randReader = bytes.NewReader(nil)
	_, err = h.Hash([]byte("pw"))
	require.Error(t, err)
}
