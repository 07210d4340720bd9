// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/MKhiriev/go-store-locator/internal/config"
	"github.com/MKhiriev/go-store-locator/internal/utils"
	"golang.org/x/crypto/argon2"
)

const saltSize = 16

// PasswordHasher turns a plaintext password into a digest bound to the
// server secret and a per-account salt.
type PasswordHasher interface {
	// Algorithm is the name stored next to every digest the hasher produces.
	Algorithm() string
	// Hash is deterministic for a given (plaintext, secret, salt).
	Hash(plaintext, salt string) string
	// Verify never errors: mismatches and malformed digests yield false.
	Verify(plaintext, salt, digest string) bool
}

// NewPasswordHasher returns the hasher for algorithm keyed with secret.
func NewPasswordHasher(algorithm, secret string) (PasswordHasher, error) {
	switch algorithm {
	case config.AlgorithmHMACSHA256:
		return &hmacHasher{secret: secret}, nil
	case config.AlgorithmArgon2id:
		return newArgon2Hasher(secret), nil
	}
	return nil, fmt.Errorf("%w: unknown password algorithm %q", ErrMisconfiguration, algorithm)
}

// newPasswordHashers returns every supported hasher keyed by algorithm so
// digests written under a previous setting still verify.
func newPasswordHashers(secret string) map[string]PasswordHasher {
	return map[string]PasswordHasher{
		config.AlgorithmHMACSHA256: &hmacHasher{secret: secret},
		config.AlgorithmArgon2id:   newArgon2Hasher(secret),
	}
}

// GenerateSalt returns 16 random bytes, hex encoded.
func GenerateSalt() (string, error) {
	b := make([]byte, saltSize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// hmacHasher computes hex(HMAC-SHA256(secret, salt || plaintext)).
type hmacHasher struct {
	secret string
}

func (h *hmacHasher) Algorithm() string {
	return config.AlgorithmHMACSHA256
}

func (h *hmacHasher) Hash(plaintext, salt string) string {
	return utils.HashString(salt+plaintext, h.secret)
}

func (h *hmacHasher) Verify(plaintext, salt, digest string) bool {
	return constantTimeEqual(h.Hash(plaintext, salt), digest)
}

// argon2Hasher derives the digest with argon2id. The server secret is
// appended to the salt as a pepper.
type argon2Hasher struct {
	secret  string
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

func newArgon2Hasher(secret string) *argon2Hasher {
	return &argon2Hasher{
		secret:  secret,
		time:    1,
		memory:  64 * 1024,
		threads: 4,
		keyLen:  32,
	}
}

func (h *argon2Hasher) Algorithm() string {
	return config.AlgorithmArgon2id
}

func (h *argon2Hasher) Hash(plaintext, salt string) string {
	key := argon2.IDKey([]byte(plaintext), []byte(salt+h.secret), h.time, h.memory, h.threads, h.keyLen)
	return hex.EncodeToString(key)
}

func (h *argon2Hasher) Verify(plaintext, salt, digest string) bool {
	return constantTimeEqual(h.Hash(plaintext, salt), digest)
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
