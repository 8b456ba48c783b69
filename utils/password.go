package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt. The salt is
// embedded in the resulting string.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword verifies plain against a stored bcrypt hash. A stored
// value that is not a bcrypt hash (e.g. a plaintext row predating the
// hash migration) fails verification instead of erroring out.
func CheckPassword(plain, stored string) bool {
	if !IsBcryptHash(stored) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// IsBcryptHash reports whether stored looks like a bcrypt hash
// ($2a$, $2b$ or $2y$ prefix).
func IsBcryptHash(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}
