package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, VerifyPassword("password123", hash))
	assert.False(t, VerifyPassword("password124", hash))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	// A broken stored hash must read as a plain mismatch
	assert.False(t, VerifyPassword("password123", "not-a-bcrypt-hash"))
	assert.False(t, VerifyPassword("password123", ""))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("password123")
	require.NoError(t, err)
	second, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
