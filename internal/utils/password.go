package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is a fixed configuration constant, never request-controlled.
const passwordHashCost = bcrypt.DefaultCost

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash in
// constant time.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
