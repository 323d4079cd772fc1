package controllers

import (
	"github.com/gofiber/fiber/v2"

	"studyhive/dto"
	"studyhive/internal/services"
)

type AuthHandler struct {
	tokens *services.TokenService
	users  *services.UserService
}

func NewAuthHandler(tokens *services.TokenService, users *services.UserService) *AuthHandler {
	return &AuthHandler{tokens: tokens, users: users}
}

// IssueToken godoc
// @Summary      Issue an access token
// @Description  Signs the posted claims for one hour. The role claim is always taken from the users collection.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        claims body object true "Claims to embed, usually {email, name}"
// @Success      200 {object} dto.TokenResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /jwt [post]
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	claims := map[string]any{}
	if err := parseBody(c, &claims); err != nil {
		return err
	}

	email, _ := claims["email"].(string)
	role, err := h.users.RoleOf(c.UserContext(), email)
	if err != nil {
		return err
	}
	claims["role"] = string(role)

	token, err := h.tokens.Issue(claims)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{Token: token})
}
