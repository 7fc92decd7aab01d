package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_LengthAndEncoding(t *testing.T) {
	token, err := GenerateToken()
	require.NoError(t, err)

	assert.Len(t, token, tokenByteLength*2)
	_, err = hex.DecodeString(token)
	assert.NoError(t, err, "token should be valid hex")
}

func TestGenerateToken_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := GenerateToken()
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "generated a duplicate token")
		seen[token] = struct{}{}
	}
}

func TestHashToken_Deterministic(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	assert.Equal(t, a, b)
}

func TestHashToken_DiffersFromPlaintext(t *testing.T) {
	token, err := GenerateToken()
	require.NoError(t, err)

	hash := HashToken(token)
	assert.NotEqual(t, token, hash)
	assert.Len(t, hash, 64) // sha256 hex digest
}
