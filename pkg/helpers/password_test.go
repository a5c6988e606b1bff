package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := BcryptHasher{}

	hash, err := h.Hash(context.Background(), "secret")
	require.NoError(t, err)
	require.NotEqual(t, "secret", hash)

	ok, err := h.Compare(context.Background(), "secret", hash)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBcryptHasherMismatchIsNotAnError(t *testing.T) {
	h := BcryptHasher{}

	hash, err := h.Hash(context.Background(), "secret")
	require.NoError(t, err)

	ok, err := h.Compare(context.Background(), "wrong", hash)
	require.NoError(t, err)
	require.False(t, ok)
}
