package middleware

import (
	"github.com/dvrs00/teste-de-software/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SecurityHeaders adds security headers to all responses
func SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		c.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		return c.Next()
	}
}

// NoCache sets no-cache headers for dynamic API responses.
func NoCache() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
		c.Set(fiber.HeaderPragma, "no-cache")
		c.Set(fiber.HeaderExpires, "0")
		return c.Next()
	}
}

// ValidateUUID rejects requests whose route parameter is not a UUID and
// stores the parsed value in Locals under the parameter name.
func ValidateUUID(paramName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params(paramName))
		if err != nil {
			return apperr.ValidationFailed(apperr.FieldError{
				Field:   paramName,
				Message: paramName + " must be a UUID.",
			})
		}
		c.Locals(paramName, id)
		return c.Next()
	}
}

// ParamUUID returns the value stored by ValidateUUID.
func ParamUUID(c *fiber.Ctx, paramName string) uuid.UUID {
	id, _ := c.Locals(paramName).(uuid.UUID)
	return id
}
