package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt embeds a per-password random salt in the encoded hash and
// compares in constant time, so stored hashes are never comparable
// across accounts.
const hashCost = bcrypt.DefaultCost

// HashPassword hashes a password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks whether a password matches the stored hash.
// A mismatch returns (false, nil); only malformed hashes error.
func VerifyPassword(password, encodedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
