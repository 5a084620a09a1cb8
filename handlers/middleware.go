package handlers

import (
	"crypto/subtle"
	"time"

	"github.com/brokerdesk/carrier-sales-api/config"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// APIKeyAuth returns middleware that requires the X-API-Key header to match
// the configured secret. Every authenticated route fails uniformly with 401
// on a bad or missing key.
func APIKeyAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		provided := c.Get("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(cfg.APIKey)) != 1 {
			logrus.WithFields(logrus.Fields{
				"component": "APIKeyAuth",
				"path":      c.Path(),
			}).Warn("Rejected request with invalid API key")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return c.Next()
	}
}

// isoTimestamp is the server-assigned timestamp used in response envelopes.
func isoTimestamp() string {
	return time.Now().Format(time.RFC3339)
}
