// Package jwtmw issues and verifies the bearer tokens that scope every request to one user.
package jwtmw

import (
	"os"
	"time"
)

const (
	// EnvKeyJWTSecret names the HMAC signing secret variable.
	EnvKeyJWTSecret = "JWT_SECRET"
	// EnvKeyJWTExpiration names the token lifetime variable (Go duration).
	EnvKeyJWTExpiration = "JWT_EXPIRATION"

	defaultExpiration = 24 * time.Hour
)

// Config holds token settings.
type Config struct {
	Secret     string
	Expiration time.Duration
}

// LoadConfig reads token settings from environment variables.
func LoadConfig() Config {
	cfg := Config{
		Secret:     os.Getenv(EnvKeyJWTSecret),
		Expiration: defaultExpiration,
	}
	if d, err := time.ParseDuration(os.Getenv(EnvKeyJWTExpiration)); err == nil && d > 0 {
		cfg.Expiration = d
	}
	return cfg
}
