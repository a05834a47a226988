// Package auth holds the two security leaves of the API: one-way password
// hashing and signed token issuance. Both are constructed with their
// parameters injected so tests can substitute cheap costs and short TTLs.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	apperrors "fintrack/internal/errors"
)

// HashCost is the bcrypt work factor used for stored passwords.
const HashCost = 10

// Hasher hashes and verifies passwords with bcrypt.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the standard work factor.
func NewHasher() *Hasher {
	return &Hasher{cost: HashCost}
}

// NewHasherWithCost creates a Hasher with a custom work factor. Tests use
// bcrypt.MinCost to stay fast.
func NewHasherWithCost(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// Hash returns the salted bcrypt hash of plaintext. An empty plaintext is
// rejected rather than hashed, so a missing password can never end up
// stored as a valid-looking hash.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "password is required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash.
func (h *Hasher) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
