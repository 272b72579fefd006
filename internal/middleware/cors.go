package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// IsAllowedOrigin reports whether origin is the single trusted origin.
// An empty trusted origin allows nothing.
func IsAllowedOrigin(trusted string) func(origin string) bool {
	return func(origin string) bool {
		return trusted != "" && origin == trusted
	}
}

// CORS rejects cross-origin requests whose Origin is not allowed before they
// reach the router. Requests without an Origin header are not cross-origin
// and pass through, even when a trusted origin is configured.
func CORS(allowed func(origin string) bool) fiber.Handler {
	headers := cors.New(cors.Config{
		AllowOriginsFunc: allowed,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	})

	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin != "" && !allowed(origin) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Denegado por Cors",
			})
		}
		return headers(c)
	}
}
