package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over data keyed with hashKey
// and returns it hex encoded (64 characters).
//
// A new HMAC instance is created on each call, so the function is safe for
// concurrent use.
//
// Example usage:
//
//	digest := utils.HashString(salt+password, secret)
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
