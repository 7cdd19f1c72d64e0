package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordHashCost is the bcrypt work factor used when none is configured.
const DefaultPasswordHashCost = 12

// HashPassword derives a bcrypt digest of plain using the given cost.
//
// A fresh random salt is generated on every call, so hashing the same
// plaintext twice yields two different digests. Both verify against the
// plaintext with [CheckPassword].
//
// Example usage:
//
//	digest, err := utils.HashPassword("longenough", utils.DefaultPasswordHashCost)
func HashPassword(plain string, cost int) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether plain matches the bcrypt digest.
//
// The comparison is constant-time. A mismatch is reported as (false, nil);
// an error is returned only when digest is not a valid bcrypt hash.
func CheckPassword(plain, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error comparing password with digest: %w", err)
	}
}

// ValidPasswordHashCost reports whether cost is accepted by bcrypt.
func ValidPasswordHashCost(cost int) bool {
	return cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost
}
