//go:build integration

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestSlidingWindowLimiter_Redis(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	addr, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(addr)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	l := NewSlidingWindowLimiter(client, &Config{RequestsPerSecond: 2, BurstSize: 0, Window: time.Second})

	first := l.Allow(ctx, "10.0.0.1")
	require.True(t, first.Allowed)
	assert.Equal(t, 1, first.Remaining)
	require.True(t, l.Allow(ctx, "10.0.0.1").Allowed)

	denied := l.Allow(ctx, "10.0.0.1")
	assert.False(t, denied.Allowed)
	assert.Greater(t, denied.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, denied.RetryAfter, time.Second)

	assert.True(t, l.Allow(ctx, "10.0.0.2").Allowed)
	assert.Equal(t, "closed", l.BreakerState())
}
