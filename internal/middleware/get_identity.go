package middleware

import (
	"github.com/gofiber/fiber/v2"

	"studyhive/dto"
	"studyhive/internal/models"
)

// Identity returns the caller decoded by RequireToken.
func Identity(c *fiber.Ctx) (dto.Identity, bool) {
	id, ok := c.Locals(LocalIdentity).(dto.Identity)
	return id, ok
}

// RequireRole must run after RequireToken.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := Identity(c)
		if !ok {
			return unauthorized(c)
		}
		for _, r := range roles {
			if models.Role(id.Role) == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "Forbidden access"})
	}
}
