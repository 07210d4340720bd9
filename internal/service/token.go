package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const tokenSize = 32

// GenerateToken returns a fresh opaque session token: 256 random bits,
// hex encoded.
func GenerateToken() (string, error) {
	b := make([]byte, tokenSize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenGenerationFailed, err)
	}
	return hex.EncodeToString(b), nil
}

// HashToken returns the storage key of token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
