package utils

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

const specialChars = "!@#$%^&*"

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash compares plaintext against a stored hash.
// Returns false on malformed hash instead of erroring.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordPolicy enforces the account password policy:
// minimum 8 characters, at least one special character and one digit.
func ValidatePasswordPolicy(password string) bool {
	if len(password) < 8 {
		return false
	}
	if !strings.ContainsAny(password, specialChars) {
		return false
	}
	for _, r := range password {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
