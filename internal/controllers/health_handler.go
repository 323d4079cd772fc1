package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/glog"
)

type HealthHandler struct {
	ping func(ctx context.Context) error
}

// NewHealthHandler takes the database ping; nil means always healthy.
func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.SendString("Server is running")
}

// Healthz godoc
// @Summary      Health check
// @Tags         health
// @Produce      plain
// @Success      200 {string} string "ok"
// @Failure      503 {string} string "unavailable"
// @Router       /healthz [get]
func (h *HealthHandler) Healthz(c *fiber.Ctx) error {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			glog.Warningf("health check: %v", err)
			return c.Status(fiber.StatusServiceUnavailable).SendString("unavailable")
		}
	}
	return c.SendString("ok")
}
