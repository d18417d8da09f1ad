// Package redis connects to the optional Redis cache.
package redis

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotConfigured is returned when REDIS_HOST is empty.
var ErrNotConfigured = errors.New("redis is not configured")

// Config holds the Redis connection settings.
type Config struct {
	Host     string
	Port     string
	Password string
	// CacheTTL is how long cached report aggregates live.
	CacheTTL time.Duration
}

// LoadConfig reads Redis settings from environment variables.
func LoadConfig() Config {
	cfg := Config{
		Host:     os.Getenv("REDIS_HOST"),
		Port:     os.Getenv("REDIS_PORT"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}
	if cfg.Port == "" {
		cfg.Port = "6379"
	}
	if ttl, err := time.ParseDuration(os.Getenv("REPORT_CACHE_TTL")); err == nil {
		cfg.CacheTTL = ttl
	}
	return cfg
}

// Addr returns host:port.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// NewRedisClient connects and pings Redis.
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Host == "" {
		return nil, ErrNotConfigured
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       0,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.Addr(), "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.Addr())
	return rdb, nil
}
