package util

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Stored credential format: pbkdf2_sha256$<base64 salt>$<base64 derived key>.
// The format is shared with existing rows, so algorithm, iteration count and
// key size must not change without a credential migration.
const (
	passwordAlgorithm  = "pbkdf2_sha256"
	passwordIterations = 200000
	passwordSaltSize   = 16
	passwordKeySize    = 32
)

// HashPassword derives a salted credential string from a plain text password
func HashPassword(password string) (string, error) {
	salt := make([]byte, passwordSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, passwordIterations, passwordKeySize, sha256.New)

	return fmt.Sprintf(
		"%s$%s$%s",
		passwordAlgorithm,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword checks a plain text password against a stored credential.
// Malformed credentials and wrong passwords are both reported as false.
func VerifyPassword(stored, password string) bool {
	parts := strings.SplitN(stored, "$", 3)
	if len(parts) != 3 {
		return false
	}
	if parts[0] != passwordAlgorithm {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}
	expected, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return false
	}

	key := pbkdf2.Key([]byte(password), salt, passwordIterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(key, expected) == 1
}
