// Package ratelimit provides per-key request rate limiting backed by Redis,
// with an in-process fallback when Redis is absent or failing.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dvrs00/teste-de-software/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
)

// Config holds rate limiter configuration.
type Config struct {
	RequestsPerSecond int           // steady rate per key
	BurstSize         int           // extra requests allowed inside one window
	Window            time.Duration // window size (default: 1s)
	KeyPrefix         string        // redis key prefix (default: "ratelimit")
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	return &Config{
		RequestsPerSecond: 20,
		BurstSize:         40,
		Window:            time.Second,
		KeyPrefix:         "ratelimit",
	}
}

// Limit is the number of requests a key may make per window.
func (c *Config) Limit() int {
	return c.RequestsPerSecond + c.BurstSize
}

// Result describes a single limiter decision.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) Result
}

// =============================================================================
// SlidingWindowLimiter - Redis sliding window
// =============================================================================

// slidingWindowScript returns remaining capacity (>= 0) when the request is
// admitted, or the negative wait in milliseconds when it is not.
var slidingWindowScript = redis.NewScript(`
	local key = KEYS[1]
	local now = tonumber(ARGV[1])
	local window_start = tonumber(ARGV[2])
	local max_requests = tonumber(ARGV[3])
	local window_ms = tonumber(ARGV[4])
	local member = ARGV[5]

	redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)

	local count = redis.call('ZCARD', key)
	if count < max_requests then
		redis.call('ZADD', key, now, member)
		redis.call('PEXPIRE', key, window_ms * 2)
		return max_requests - count - 1
	end

	local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
	if #oldest > 0 then
		return -math.max(1, oldest[2] + window_ms - now)
	end
	return -window_ms
`)

// SlidingWindowLimiter implements sliding window rate limiting in Redis.
// Redis calls go through a circuit breaker; while it is open, or when a
// call fails, decisions come from the local limiter.
type SlidingWindowLimiter struct {
	redis    *redis.Client
	config   *Config
	breaker  *gobreaker.CircuitBreaker
	fallback *LocalLimiter
	now      func() time.Time

	seq   uint64
	seqMu sync.Mutex
}

// NewSlidingWindowLimiter creates a limiter. A nil client yields a limiter
// that only uses the local fallback.
func NewSlidingWindowLimiter(redisClient *redis.Client, config *Config) *SlidingWindowLimiter {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Window <= 0 {
		config.Window = time.Second
	}
	if config.KeyPrefix == "" {
		config.KeyPrefix = "ratelimit"
	}

	settings := gobreaker.Settings{
		Name:        "ratelimit-redis",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(map[string]any{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("circuit breaker state changed")
		},
	}

	return &SlidingWindowLimiter{
		redis:    redisClient,
		config:   config,
		breaker:  gobreaker.NewCircuitBreaker(settings),
		fallback: NewLocalLimiter(config),
		now:      time.Now,
	}
}

// Allow checks if request is allowed.
func (l *SlidingWindowLimiter) Allow(ctx context.Context, key string) Result {
	if l.redis == nil {
		return l.fallback.Allow(ctx, key)
	}

	now := l.now()
	limit := l.config.Limit()
	redisKey := fmt.Sprintf("%s:%s", l.config.KeyPrefix, key)

	out, err := l.breaker.Execute(func() (interface{}, error) {
		return slidingWindowScript.Run(ctx, l.redis, []string{redisKey},
			now.UnixMilli(),
			now.Add(-l.config.Window).UnixMilli(),
			limit,
			l.config.Window.Milliseconds(),
			l.member(now),
		).Int64()
	})
	if err != nil {
		return l.fallback.Allow(ctx, key)
	}

	v := out.(int64)
	if v >= 0 {
		return Result{Allowed: true, Limit: limit, Remaining: int(v)}
	}
	return Result{
		Allowed:    false,
		Limit:      limit,
		RetryAfter: time.Duration(-v) * time.Millisecond,
	}
}

// BreakerState reports the Redis circuit breaker state.
func (l *SlidingWindowLimiter) BreakerState() string {
	return l.breaker.State().String()
}

// member makes sorted-set entries unique within one millisecond.
func (l *SlidingWindowLimiter) member(now time.Time) string {
	l.seqMu.Lock()
	l.seq++
	n := l.seq
	l.seqMu.Unlock()
	return fmt.Sprintf("%d-%d", now.UnixMilli(), n)
}

// =============================================================================
// LocalLimiter - in-process sliding window
// =============================================================================

// LocalLimiter keeps a per-key log of admitted request times.
type LocalLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	hits   map[string][]time.Time
	now    func() time.Time

	lastSweep time.Time
}

// NewLocalLimiter creates an in-memory sliding window limiter.
func NewLocalLimiter(config *Config) *LocalLimiter {
	if config == nil {
		config = DefaultConfig()
	}
	window := config.Window
	if window <= 0 {
		window = time.Second
	}
	return &LocalLimiter{
		limit:  config.Limit(),
		window: window,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)
	l.sweep(now, cutoff)

	hits := dropBefore(l.hits[key], cutoff)
	if len(hits) >= l.limit {
		// A zero limit denies every request with nothing logged.
		retry := l.window
		if len(hits) > 0 {
			l.hits[key] = hits
			retry = hits[0].Add(l.window).Sub(now)
		}
		return Result{
			Allowed:    false,
			Limit:      l.limit,
			RetryAfter: retry,
		}
	}

	l.hits[key] = append(hits, now)
	return Result{Allowed: true, Limit: l.limit, Remaining: l.limit - len(hits) - 1}
}

// sweep drops idle keys at most once per window. Caller holds the lock.
func (l *LocalLimiter) sweep(now, cutoff time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	l.lastSweep = now
	for key, hits := range l.hits {
		if len(hits) == 0 || !hits[len(hits)-1].After(cutoff) {
			delete(l.hits, key)
		}
	}
}

func dropBefore(hits []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	return hits[i:]
}
