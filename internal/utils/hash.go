package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the cost factor applied when the configuration does
// not specify one. Ten rounds keeps a single hash in the tens of
// milliseconds on current hardware, which is the brute-force resistance the
// registration contract requires.
const DefaultBcryptCost = 10

// HashPassword derives a salted bcrypt hash from a plain-text password.
//
// When cost is below bcrypt.MinCost the DefaultBcryptCost is used, so a
// zero-value config still produces an adequately expensive hash.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = DefaultBcryptCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword compares a plain-text password against a stored bcrypt hash.
// The comparison runs in constant time with respect to the hash contents.
//
// Returns true only when the password matches.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
