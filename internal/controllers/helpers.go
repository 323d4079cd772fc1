package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func badRequest(msg string) error {
	return fiber.NewError(fiber.StatusBadRequest, msg)
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return badRequest("invalid body")
	}
	return nil
}

// required takes name, value pairs and reports the first blank value.
func required(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return badRequest(pairs[i] + " is required")
		}
	}
	return nil
}

// sendDoc answers JSON null for a missing document.
func sendDoc[T any](c *fiber.Ctx, doc *T) error {
	if doc == nil {
		return c.Type("json").SendString("null")
	}
	return c.JSON(doc)
}
