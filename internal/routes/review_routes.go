package routes

import (
	"github.com/gofiber/fiber/v2"

	"studyhive/internal/controllers"
	"studyhive/internal/repository"
)

func SetupRoutesReview(app *fiber.App, reviews repository.ReviewRepository) {
	h := controllers.NewReviewHandler(reviews)
	app.Get("/review/:id", h.GetReview)
	app.Post("/review", h.CreateReview)
}
