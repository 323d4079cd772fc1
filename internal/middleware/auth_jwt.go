package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/glog"
	"github.com/mitchellh/mapstructure"

	"studyhive/dto"
	"studyhive/internal/services"
)

const (
	LocalClaims   = "claims"
	LocalIdentity = "identity"
)

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Unauthorized access"})
}

// bearerToken extracts the token from "Bearer <token>".
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RequireToken rejects the request with 401 unless it carries a valid bearer
// token that predates no role change of its subject.
func RequireToken(tokens *services.TokenService, revoked services.RevocationStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return unauthorized(c)
		}
		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			return unauthorized(c)
		}

		var id dto.Identity
		if err := mapstructure.WeakDecode(map[string]any(claims), &id); err != nil {
			return unauthorized(c)
		}

		if id.Email != "" && revoked != nil {
			changedAt, found, err := revoked.RoleChangedAt(c.UserContext(), id.Email)
			switch {
			case err != nil:
				glog.Warningf("revocation lookup for %s: %v", id.Email, err)
			case found && services.Superseded(claims, changedAt):
				return unauthorized(c)
			}
		}

		c.Locals(LocalClaims, claims)
		c.Locals(LocalIdentity, id)
		return c.Next()
	}
}

func Claims(c *fiber.Ctx) jwt.MapClaims {
	claims, _ := c.Locals(LocalClaims).(jwt.MapClaims)
	return claims
}
