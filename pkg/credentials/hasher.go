package credentials

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// GenerateSalt creates a random hex string carrying size bytes of entropy
// from a cryptographically secure source. The returned string is 2*size
// characters long.
func GenerateSalt(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateHash returns the hex-encoded SHA-256 digest of password
// concatenated with salt. The digest is deterministic so stored hashes can
// be verified by recomputing and comparing.
func GenerateHash(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}
