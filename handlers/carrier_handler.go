package handlers

import (
	"strings"

	"github.com/brokerdesk/carrier-sales-api/services"
	"github.com/gofiber/fiber/v2"
)

type CarrierHandler struct {
	Service *services.CarrierService
}

func NewCarrierHandler(service *services.CarrierService) *CarrierHandler {
	return &CarrierHandler{Service: service}
}

// VerifyCarrier handles GET /api/verify-carrier?mc_number=. Verification
// failure is signaled through the verified field of a 200 envelope, never
// through the HTTP status; only a missing mc_number is a 400.
func (h *CarrierHandler) VerifyCarrier(c *fiber.Ctx) error {
	mcNumber := strings.TrimSpace(c.Query("mc_number"))
	if mcNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":  false,
			"verified": false,
			"error":    "mc_number required",
		})
	}

	result, err := h.Service.Verify(c.Context(), mcNumber)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":  false,
			"verified": false,
			"error":    err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"verified":     result.Verified,
		"carrier_data": result.Carrier,
		"message":      result.Message,
	})
}
