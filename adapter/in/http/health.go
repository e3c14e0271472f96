package http

import (
	"context"
	"time"

	"github.com/dvrs00/teste-de-software/infra/database"
	"github.com/dvrs00/teste-de-software/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// HealthChecker is anything that can report reachability.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// PoolReporter reports connection pool pressure. *metrics.Metrics
// implements it.
type PoolReporter interface {
	DBPool() (metrics.PoolReport, bool)
}

type HealthHandler struct {
	store HealthChecker
	pool  PoolReporter
	redis *redis.Client
}

// NewHealthHandler creates a HealthHandler. pool and redis may be nil.
func NewHealthHandler(store HealthChecker, pool PoolReporter, redis *redis.Client) *HealthHandler {
	return &HealthHandler{
		store: store,
		pool:  pool,
		redis: redis,
	}
}

func (h *HealthHandler) Register(app fiber.Router) {
	app.Get("/health", h.Health)
	app.Get("/ready", h.Ready)
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	checks := make(map[string]any)
	allHealthy := true

	if h.store != nil {
		if err := h.store.Ping(ctx); err != nil {
			checks["store"] = "unhealthy"
			allHealthy = false
		} else {
			checks["store"] = "healthy"
		}
	} else {
		checks["store"] = "not configured"
	}

	if h.pool != nil {
		if report, ok := h.pool.DBPool(); ok {
			checks["db_pool"] = report
		}
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = "unhealthy"
			allHealthy = false
		} else {
			checks["redis"] = "healthy"
			checks["redis_pool"] = database.GetRedisStats(h.redis)
		}
	} else {
		checks["redis"] = "not configured"
	}

	status := "ready"
	statusCode := fiber.StatusOK
	if !allHealthy {
		status = "not ready"
		statusCode = fiber.StatusServiceUnavailable
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"status":    status,
		"checks":    checks,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
