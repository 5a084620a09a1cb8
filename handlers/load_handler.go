package handlers

import (
	"github.com/brokerdesk/carrier-sales-api/models"
	"github.com/brokerdesk/carrier-sales-api/services"
	"github.com/gofiber/fiber/v2"
)

type LoadHandler struct {
	Service *services.LoadService
}

func NewLoadHandler(service *services.LoadService) *LoadHandler {
	return &LoadHandler{Service: service}
}

// SearchLoads handles GET /api/loads. All filter parameters are optional;
// with none supplied the full catalog is returned.
func (h *LoadHandler) SearchLoads(c *fiber.Ctx) error {
	criteria := models.SearchCriteria{
		Origin:           c.Query("origin"),
		OriginCity:       c.Query("origin_city"),
		OriginState:      c.Query("origin_state"),
		Destination:      c.Query("destination"),
		DestinationCity:  c.Query("destination_city"),
		DestinationState: c.Query("destination_state"),
		EquipmentType:    c.Query("equipment_type"),
		Commodity:        c.Query("commodity"),
		PickupDate:       c.Query("pickup_date"),
	}

	loads, err := h.Service.Search(criteria)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success":   false,
			"error":     err.Error(),
			"timestamp": isoTimestamp(),
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"count":     len(loads),
		"loads":     loads,
		"timestamp": isoTimestamp(),
	})
}

// GetLoadByID handles GET /api/loads/:load_id.
func (h *LoadHandler) GetLoadByID(c *fiber.Ctx) error {
	load, err := h.Service.GetByID(c.Params("load_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success":   false,
			"error":     err.Error(),
			"timestamp": isoTimestamp(),
		})
	}
	if load == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success":   false,
			"error":     "Load not found",
			"timestamp": isoTimestamp(),
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"load":      load,
		"timestamp": isoTimestamp(),
	})
}
