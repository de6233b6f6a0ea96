package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor applied to every password hash.
// bcrypt.DefaultCost is 10 rounds; raising it only affects newly created
// hashes, existing ones keep the cost recorded in their encoded form.
const passwordHashCost = bcrypt.DefaultCost

// HashPassword derives a salted bcrypt hash from the given plaintext password.
//
// bcrypt generates a fresh random salt on every call, so hashing the same
// password twice yields two different outputs that both verify against the
// original plaintext.
//
// Parameters:
//
//	password - plaintext password to hash
//
// Returns:
//
//	string - the encoded bcrypt hash (algorithm, cost, salt, and digest)
//	error  - non-nil if the password exceeds bcrypt's length limit or
//	         hashing fails
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret")
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the given
// bcrypt hash. The underlying comparison is constant-time.
//
// Parameters:
//
//	password - plaintext candidate supplied by the caller
//	hash     - encoded bcrypt hash previously produced by HashPassword
//
// Returns:
//
//	bool - true iff password is the plaintext the hash was derived from
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
