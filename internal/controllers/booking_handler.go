package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"studyhive/dto"
	"studyhive/internal/models"
	"studyhive/internal/repository"
	"studyhive/utils"
)

type BookingHandler struct {
	bookings repository.BookingRepository
}

func NewBookingHandler(bookings repository.BookingRepository) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// ListBooked godoc
// @Summary      List a student's bookings with their sessions
// @Description  The joined list is wrapped in one extra array: [[...]].
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        email path string true "Student email"
// @Success      200 {array} []models.BookedSession
// @Router       /booked/{email} [get]
func (h *BookingHandler) ListBooked(c *fiber.Ctx) error {
	booked, err := h.bookings.ListWithSession(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON([][]models.BookedSession{booked})
}

// CreateBooking godoc
// @Summary      Book a session
// @Description  Booking the same session twice is allowed.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        booking body dto.CreateBookingRequest true "Booking"
// @Success      200 {object} models.InsertResult
// @Failure      400 {object} dto.ErrorResponse
// @Router       /booked [post]
func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var req dto.CreateBookingRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := required("studentEmail", req.StudentEmail, "sessionId", req.SessionID); err != nil {
		return err
	}

	res, err := h.bookings.Insert(c.UserContext(), models.Booking{
		StudentEmail: strings.TrimSpace(req.StudentEmail),
		StudentName:  req.StudentName,
		TutorEmail:   req.TutorEmail,
		SessionID:    models.Ref(utils.CanonicalRef(req.SessionID)),
	})
	if err != nil {
		return err
	}
	return c.JSON(res)
}
