package config

import (
	"fmt"
	"time"
)

// MinJWTSecretLength is the shortest accepted HS256 signing secret.
const MinJWTSecretLength = 32

// JWTConfig holds configuration for JWT token generation and validation.
type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// NewJWTConfig derives the JWT configuration from the auth section.
// JWT_SECRET is required here even though Load accepts its absence.
func NewJWTConfig(auth AuthConfig) (*JWTConfig, error) {
	config := &JWTConfig{
		Secret: auth.JWTSecret,
		Issuer: auth.JWTIssuer,
		TTL:    auth.TokenTTL,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize fills defaults and validates the configuration.
func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required but not set")
	}
	if len(c.Secret) < MinJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters, got: %d", MinJWTSecretLength, len(c.Secret))
	}
	if c.Issuer == "" {
		c.Issuer = "resume-nest"
	}
	if c.TTL < time.Hour {
		return fmt.Errorf("JWT_TTL must be at least 1 hour, got: %s", c.TTL)
	}
	return nil
}
