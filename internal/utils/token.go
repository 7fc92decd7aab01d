package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// tokenByteLength is the number of random bytes backing a bearer token.
// 32 bytes give 64 hex characters on the wire.
const tokenByteLength = 32

// GenerateToken produces a cryptographically random opaque bearer token.
//
// The returned value is the plaintext handed to the client exactly once;
// only its hash (see HashToken) is ever persisted.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating token bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// HashToken returns the hex-encoded SHA-256 digest of a plaintext bearer
// token. The digest is what gets stored and looked up, so a database dump
// never exposes usable tokens.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
