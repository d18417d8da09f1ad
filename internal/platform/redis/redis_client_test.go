package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("REDIS_PASSWORD", "secret")
	t.Setenv("REPORT_CACHE_TTL", "90s")

	cfg := LoadConfig()

	assert.Equal(t, "cache:6379", cfg.Addr())
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
}

func TestLoadConfig_InvalidTTLIgnored(t *testing.T) {
	t.Setenv("REPORT_CACHE_TTL", "soon")

	cfg := LoadConfig()

	assert.Zero(t, cfg.CacheTTL)
}

func TestNewRedisClient_NotConfigured(t *testing.T) {
	rdb, err := NewRedisClient(context.Background(), Config{})

	assert.Nil(t, rdb)
	assert.True(t, errors.Is(err, ErrNotConfigured))
}
