package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrPasswordMismatch is returned when the password does not match the stored digest.
	ErrPasswordMismatch = errors.New("password does not match")
	// ErrCorruptCredential is returned when the stored digest cannot be parsed.
	ErrCorruptCredential = errors.New("stored credential is corrupt")
)

// PasswordHasher defines the contract for one-way password hashing.
// An interface so the services don't care about the algorithm.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) error
}

// BcryptHasher hashes passwords with bcrypt. Each digest carries its own
// random salt, so hashing the same password twice yields different digests.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher at the default cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash derives a salted digest from password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify compares password against digest.
func (h *BcryptHasher) Verify(password, digest string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("%w: %v", ErrCorruptCredential, err)
	}
}
