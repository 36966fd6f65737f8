package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt cost bounds accepted from configuration.
const (
	MinBcryptCost = 10
	MaxBcryptCost = 14

	// MaxPasswordBytes is the bcrypt input limit; password and pepper share it.
	MaxPasswordBytes = 72
	minPasswordBytes = 8
)

// PasswordConfig holds configuration for password hashing and verification.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional global secret appended before hashing
}

// NewPasswordConfig derives the password configuration from the auth section.
func NewPasswordConfig(auth AuthConfig) (*PasswordConfig, error) {
	config := &PasswordConfig{
		BcryptCost: auth.BcryptCost,
		Pepper:     auth.PasswordPepper,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *PasswordConfig) normalize() error {
	if c.BcryptCost < MinBcryptCost || c.BcryptCost > MaxBcryptCost {
		return fmt.Errorf("bcrypt cost out of range: %d (must be %d-%d)", c.BcryptCost, MinBcryptCost, MaxBcryptCost)
	}
	if c.MaxPasswordLength() < minPasswordBytes {
		return fmt.Errorf("password pepper too long: %d bytes (at most %d)", len(c.Pepper), MaxPasswordBytes-minPasswordBytes)
	}
	return nil
}

// MaxPasswordLength is the longest password, in bytes, that hashes without truncation.
func (c *PasswordConfig) MaxPasswordLength() int {
	return MaxPasswordBytes - len(c.Pepper)
}

func (c *PasswordConfig) peppered(pw string) []byte {
	return []byte(pw + c.Pepper)
}

// HashPassword hashes a password using bcrypt. The plaintext is never returned or stored.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(c.peppered(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether pw matches storedHash.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	if storedHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), c.peppered(pw)) == nil
}
