package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowBurstThenDeny(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(3, time.Minute)

	assert.True(t, rl.Allow())
	assert.True(t, rl.Allow())
	assert.True(t, rl.Allow())
	assert.False(t, rl.Allow())
}

func TestRateLimiter_Disabled(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0, time.Minute)

	for i := 0; i < 100; i++ {
		require.True(t, rl.Allow())
	}
	require.NoError(t, rl.WaitIfNeeded(context.Background()))
}

func TestRateLimiter_WaitIfNeeded(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 50*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, rl.WaitIfNeeded(ctx))

	start := time.Now()
	require.NoError(t, rl.WaitIfNeeded(ctx))
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestRateLimiter_WaitIfNeeded_ContextCancelled(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, time.Hour)
	require.True(t, rl.Allow())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := rl.WaitIfNeeded(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
