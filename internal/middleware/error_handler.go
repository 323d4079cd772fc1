package middleware

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/glog"

	"studyhive/dto"
	"studyhive/internal/repository"
)

// ErrorHandler is the app-wide fiber.Config.ErrorHandler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal server error"

	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code, msg = fe.Code, fe.Message
	case errors.Is(err, repository.ErrInvalidID):
		code, msg = fiber.StatusBadRequest, "invalid id"
	case errors.Is(err, context.DeadlineExceeded):
		code, msg = fiber.StatusGatewayTimeout, "upstream timeout"
	}

	if code >= fiber.StatusInternalServerError {
		glog.Errorf("%s %s [%v]: %v", c.Method(), c.OriginalURL(), c.Locals("requestid"), err)
	}
	return c.Status(code).JSON(dto.ErrorResponse{Message: msg})
}
