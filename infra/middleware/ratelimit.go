package middleware

import (
	"math"
	"strconv"

	"github.com/dvrs00/teste-de-software/pkg/apperr"
	"github.com/dvrs00/teste-de-software/pkg/ratelimit"

	"github.com/gofiber/fiber/v2"
)

// RateLimit limits requests per client IP.
func RateLimit(limiter ratelimit.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := limiter.Allow(c.UserContext(), c.IP())

		c.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if !res.Allowed {
			retryAfter := int(math.Ceil(res.RetryAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))
			return apperr.RateLimited(retryAfter)
		}
		return c.Next()
	}
}
