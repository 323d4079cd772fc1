package routes

import (
	"github.com/gofiber/fiber/v2"

	"studyhive/internal/controllers"
	"studyhive/internal/services"
)

func SetupRoutesPayment(app *fiber.App, payments *services.PaymentService, auth fiber.Handler) {
	h := controllers.NewPaymentHandler(payments)
	app.Post("/create-payment-intent", auth, h.CreatePaymentIntent)
}
