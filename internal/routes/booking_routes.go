package routes

import (
	"github.com/gofiber/fiber/v2"

	"studyhive/internal/controllers"
	"studyhive/internal/repository"
)

func SetupRoutesBooking(app *fiber.App, bookings repository.BookingRepository, auth fiber.Handler) {
	h := controllers.NewBookingHandler(bookings)
	app.Get("/booked/:email", auth, h.ListBooked)
	app.Post("/booked", auth, h.CreateBooking)
}
