package bcrypt

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is deliberately above the library default to resist brute
// force while keeping login latency bounded.
const DefaultCost = 12

func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// ComparePassword reports a mismatch and a malformed stored hash the same
// way: as a verification failure, never a panic.
func ComparePassword(hashedPassword, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return fmt.Errorf("password comparison failed: %w", err)
	}
	return nil
}
