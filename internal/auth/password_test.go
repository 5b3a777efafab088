package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("supersecret")
	require.NoError(t, err)
	second, err := hasher.Hash("supersecret")
	require.NoError(t, err)

	require.NotEqual(t, first, second, "two hashes of the same password must differ")
}

func TestBcryptHasher_Verify(t *testing.T) {
	hasher := NewBcryptHasher()

	digest, err := hasher.Hash("supersecret")
	require.NoError(t, err)

	require.NoError(t, hasher.Verify("supersecret", digest))

	err = hasher.Verify("wrongpassword", digest)
	require.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestBcryptHasher_VerifyCorruptDigest(t *testing.T) {
	hasher := NewBcryptHasher()

	err := hasher.Verify("supersecret", "not-a-bcrypt-digest")
	require.ErrorIs(t, err, ErrCorruptCredential)
}
