package middleware

import (
	"catalog/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// HandleInputErrors stops the request with 400 when the preceding validation
// checks recorded any failure, and passes it on untouched otherwise.
func HandleInputErrors(c *fiber.Ctx) error {
	if failures := validation.Failures(c); len(failures) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": failures,
		})
	}
	return c.Next()
}
