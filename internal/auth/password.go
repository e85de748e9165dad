// Package auth implements password hashing and verification.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Digest parameters. The digest is self-describing, so these can change
	// without invalidating stored credentials.
	defaultIterations = 600000
	saltLength        = 16
	keyLength         = 32

	methodPrefix = "pbkdf2:sha256"
)

// HashPassword derives a salted PBKDF2-SHA256 digest for the given plaintext.
// The result has the form "pbkdf2:sha256:<iterations>$<salt>$<hash>" with salt
// and hash hex encoded. Hashing the same plaintext twice yields different
// digests.
func HashPassword(plaintext string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(plaintext), salt, defaultIterations, keyLength, sha256.New)
	return fmt.Sprintf("%s:%d$%s$%s",
		methodPrefix,
		defaultIterations,
		hex.EncodeToString(salt),
		hex.EncodeToString(key),
	), nil
}

// CheckPassword reports whether plaintext matches the stored digest. The
// comparison is constant time. A malformed digest verifies as false; it never
// panics or leaks an error into the caller's control flow.
func CheckPassword(plaintext, digest string) bool {
	iterations, salt, want, ok := parseDigest(digest)
	if !ok {
		return false
	}

	got := pbkdf2.Key([]byte(plaintext), salt, iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// parseDigest splits a "pbkdf2:sha256:<iterations>$<salt>$<hash>" digest into
// its parts. ok is false for anything that does not match that shape.
func parseDigest(digest string) (iterations int, salt, hash []byte, ok bool) {
	parts := strings.Split(digest, "$")
	if len(parts) != 3 {
		return 0, nil, nil, false
	}

	method := parts[0]
	if !strings.HasPrefix(method, methodPrefix+":") {
		return 0, nil, nil, false
	}
	iterations, err := strconv.Atoi(strings.TrimPrefix(method, methodPrefix+":"))
	if err != nil || iterations <= 0 {
		return 0, nil, nil, false
	}

	salt, err = hex.DecodeString(parts[1])
	if err != nil || len(salt) == 0 {
		return 0, nil, nil, false
	}
	hash, err = hex.DecodeString(parts[2])
	if err != nil || len(hash) == 0 {
		return 0, nil, nil, false
	}

	return iterations, salt, hash, true
}
