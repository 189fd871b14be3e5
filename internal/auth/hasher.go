package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher provides one-way credential hashing and verification.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether digest was produced from plaintext. A malformed
	// digest is treated as non-matching, never as an error.
	Verify(plaintext, digest string) bool
}

type bcryptHasher struct {
	cost int
}

// NewPasswordHasher returns a bcrypt-backed PasswordHasher. The cost is
// clamped to bcrypt's supported range.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

func (h *bcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
