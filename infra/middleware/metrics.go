package middleware

import (
	"errors"
	"time"

	"github.com/dvrs00/teste-de-software/pkg/apperr"
	"github.com/dvrs00/teste-de-software/pkg/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request count and latency by matched route.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		if route == "" || (route == "/" && c.Path() != "/") {
			route = "unmatched"
		}
		m.ObserveRequest(c.Method(), route, statusOf(c, err), time.Since(start))
		return err
	}
}

// statusOf predicts the status the error handler will write for err.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return apperr.GetHTTPStatus(err)
}
