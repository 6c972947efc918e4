package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the deterministic SHA-256 hex digest of password.
// Deterministic by contract: the same input always yields the same digest,
// and verification is a plain digest comparison. There is no per-user salt
// in this scheme.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPasswordHash reports whether password hashes to digest.
func CheckPasswordHash(password, digest string) bool {
	return HashPassword(password) == digest
}
