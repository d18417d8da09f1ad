// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"dividend_backend/internal/platform/externalapi/moex"
	"dividend_backend/internal/platform/externalapi/polygon"
	infrahttp "dividend_backend/internal/platform/http"
	"dividend_backend/internal/shared/ratelimiter"
)

// NewPolygonClient creates a Polygon client that refuses calls beyond the configured per-minute budget.
func NewPolygonClient() *polygon.Client {
	cfg := polygon.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	var limiter ratelimiter.RateLimiterInterface
	if cfg.RateLimit > 0 {
		limiter = ratelimiter.NewRateLimiter(cfg.RateLimit, time.Minute)
	}
	return polygon.NewClient(cfg, httpClient, limiter)
}

// NewUnlimitedPolygonClient creates a Polygon client without a local limiter,
// for callers that pace requests themselves.
func NewUnlimitedPolygonClient() *polygon.Client {
	cfg := polygon.LoadConfig()
	return polygon.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout), nil)
}

// NewMOEXClient creates the fallback dividend history client.
func NewMOEXClient() *moex.Client {
	cfg := moex.LoadConfig()
	return moex.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}
