// Package auth implements the credential primitives of the server:
// bcrypt password hashing, signed session tokens, and the session cookie.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed work factor for password hashing.
const bcryptCost = 10

// HashPassword derives a salted bcrypt digest from the plaintext.
// The plaintext must never be stored or logged.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPassword reports whether password matches the stored digest.
// bcrypt's comparison does not leak prefix-match timing.
func CheckPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
