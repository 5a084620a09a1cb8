package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HealthCheck handles GET /health. It is the only unauthenticated endpoint.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": isoTimestamp(),
		"service":   "Carrier Sales API",
	})
}

// NotFound is the fallback for unknown routes.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":     "Endpoint not found",
		"timestamp": isoTimestamp(),
	})
}
