package handlers

import (
	"github.com/brokerdesk/carrier-sales-api/services"
	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	Service *services.AnalyticsService
}

func NewAnalyticsHandler(service *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: service}
}

// GetAnalytics handles GET /api/analytics. An empty call store yields the
// distinguished {total_calls: 0} envelope without the analytics block.
func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	summary, err := h.Service.Summarize()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success":   false,
			"error":     err.Error(),
			"timestamp": isoTimestamp(),
		})
	}

	if summary.TotalCalls == 0 {
		return c.JSON(fiber.Map{
			"success":     true,
			"total_calls": 0,
			"message":     "No calls recorded yet",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"analytics": summary,
		"timestamp": isoTimestamp(),
	})
}
