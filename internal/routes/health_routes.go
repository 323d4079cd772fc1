package routes

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"studyhive/internal/controllers"
)

func SetupRoutesHealth(app *fiber.App, ping func(ctx context.Context) error) {
	h := controllers.NewHealthHandler(ping)
	app.Get("/", h.Root)
	app.Get("/healthz", h.Healthz)
}
