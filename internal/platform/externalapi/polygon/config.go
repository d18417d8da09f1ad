// Package polygon provides a client for the Polygon.io reference data API.
package polygon

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultBaseURL   = "https://api.polygon.io"
	defaultRateLimit = 5
)

// Config holds configuration for the Polygon API client.
type Config struct {
	APIKey    string        // API key sent as the apiKey query parameter
	BaseURL   string        // Base URL for the API (e.g., "https://api.polygon.io")
	Timeout   time.Duration // HTTP request timeout
	RateLimit int           // calls allowed per minute, 0 disables local limiting
}

// LoadConfig loads Polygon configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		APIKey:    os.Getenv("POLYGON_API_KEY"),
		BaseURL:   os.Getenv("POLYGON_BASE_URL"),
		Timeout:   10 * time.Second,
		RateLimit: defaultRateLimit,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if v := os.Getenv("POLYGON_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.RateLimit = n
		}
	}
	return cfg
}
