package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/glog"

	"studyhive/dto"
	"studyhive/internal/services"
)

type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// CreatePaymentIntent godoc
// @Summary      Start a card payment
// @Description  price is in dollars and is converted to cents by truncation.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.PaymentIntentRequest true "Price"
// @Success      200 {object} dto.PaymentIntentResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      502 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	var req dto.PaymentIntentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	secret, err := h.payments.CreateIntent(c.UserContext(), req.Price.Float())
	switch {
	case errors.Is(err, services.ErrInvalidPrice):
		return badRequest("invalid price")
	case errors.Is(err, services.ErrPaymentsDisabled):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	case errors.Is(err, services.ErrPaymentProcessor):
		glog.Errorf("create payment intent: %v", err)
		return fiber.NewError(fiber.StatusBadGateway, "payment processor error")
	case err != nil:
		return err
	}
	return c.JSON(dto.PaymentIntentResponse{ClientSecret: secret})
}
