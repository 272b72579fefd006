package handlers

import "github.com/gofiber/fiber/v2"

// HealthHandler answers the API liveness probe.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// RegisterRoutes registers the probe at the root of router.
func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleAPIRoot)
}

// HandleAPIRoot reports that the API is up.
func (h *HealthHandler) HandleAPIRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"msg": "Desde api"})
}
