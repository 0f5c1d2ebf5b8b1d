package apierr

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Handler is the central Fiber error handler. Taxonomy errors render as
// {error, code, message} with their own status; everything else falls back
// to Fiber's status handling with details suppressed for 5xx.
func Handler(c *fiber.Ctx, err error) error {
	if apiErr, ok := From(err); ok {
		if apiErr.Status >= 500 {
			slog.Error("request failed", "method", c.Method(), "path", c.Path(), "code", apiErr.Code, "error", err.Error())
		}
		return c.Status(apiErr.Status).JSON(fiber.Map{
			"error":   true,
			"code":    apiErr.Code,
			"message": apiErr.Message,
		})
	}

	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
