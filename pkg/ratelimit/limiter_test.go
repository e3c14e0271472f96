package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLimiter_SlidingWindow(t *testing.T) {
	cfg := &Config{RequestsPerSecond: 2, BurstSize: 1, Window: time.Second}
	l := NewLocalLimiter(cfg)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := base
	l.now = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		res := l.Allow(ctx, "1.2.3.4")
		require.True(t, res.Allowed, "request %d", i)
		assert.Equal(t, 2-i, res.Remaining)
	}

	res := l.Allow(ctx, "1.2.3.4")
	assert.False(t, res.Allowed)
	assert.Equal(t, time.Second, res.RetryAfter)

	// other keys are independent
	assert.True(t, l.Allow(ctx, "5.6.7.8").Allowed)

	now = base.Add(time.Second + time.Millisecond)
	assert.True(t, l.Allow(ctx, "1.2.3.4").Allowed)
}

func TestSlidingWindowLimiter_NoRedisUsesLocal(t *testing.T) {
	l := NewSlidingWindowLimiter(nil, &Config{RequestsPerSecond: 1, BurstSize: 0})

	ctx := context.Background()
	assert.True(t, l.Allow(ctx, "k").Allowed)
	assert.False(t, l.Allow(ctx, "k").Allowed)
	assert.Equal(t, "closed", l.BreakerState())
}

func TestConfig_Limit(t *testing.T) {
	assert.Equal(t, 60, DefaultConfig().Limit())
}

func TestLocalLimiter_ZeroLimitDenies(t *testing.T) {
	l := NewSlidingWindowLimiter(nil, &Config{RequestsPerSecond: 0, BurstSize: 0, Window: time.Second})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		res := l.Allow(ctx, "1.2.3.4")
		assert.False(t, res.Allowed)
		assert.Equal(t, 0, res.Limit)
		assert.Equal(t, time.Second, res.RetryAfter)
	}
}
