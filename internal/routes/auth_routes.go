package routes

import (
	"github.com/gofiber/fiber/v2"

	"studyhive/internal/controllers"
	"studyhive/internal/services"
)

func SetupRoutesAuth(app *fiber.App, tokens *services.TokenService, users *services.UserService) {
	h := controllers.NewAuthHandler(tokens, users)
	app.Post("/jwt", h.IssueToken)
}
