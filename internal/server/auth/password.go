package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt hash from the plaintext password.
// Empty passwords are rejected; non-empty enforcement beyond that is the
// caller's concern.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// A malformed hash yields false, never an error, so callers cannot be used
// as an oracle.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
