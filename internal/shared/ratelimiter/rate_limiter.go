// Package ratelimiter は、レート制限のある外部APIへの呼び出し回数を管理します。
package ratelimiter

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	// Allow は今すぐ呼び出せるかを返し、呼び出せる場合は枠を1つ消費します。
	Allow() bool
	// WaitIfNeeded は枠が空くか ctx が終了するまで待機します。
	WaitIfNeeded(ctx context.Context) error
}

// RateLimiter は interval あたり limit 回までの呼び出しを許可し、枠は均等に補充されます。
type RateLimiter struct {
	limiter *rate.Limiter
	limit   int
}

var _ RateLimiterInterface = (*RateLimiter)(nil)

// NewRateLimiter は新しいRateLimiterを生成します。limit が0以下の場合は制限しません。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	if limit <= 0 || interval <= 0 {
		return &RateLimiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Every(interval/time.Duration(limit)), limit),
		limit:   limit,
	}
}

// Allow は待機せずに呼び出せるかを返します。
func (rl *RateLimiter) Allow() bool {
	return rl.limiter.Allow()
}

// WaitIfNeeded はレートリミットの上限に達しているかを確認し、必要であれば待機します。
func (rl *RateLimiter) WaitIfNeeded(ctx context.Context) error {
	r := rl.limiter.Reserve()
	if !r.OK() {
		return rl.limiter.Wait(ctx)
	}
	delay := r.Delay()
	if delay == 0 {
		return nil
	}
	slog.Info("rate limit reached, waiting", "limit", rl.limit, "wait", delay)
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}
