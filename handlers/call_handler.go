package handlers

import (
	"encoding/json"

	"github.com/brokerdesk/carrier-sales-api/models"
	"github.com/brokerdesk/carrier-sales-api/services"
	"github.com/gofiber/fiber/v2"
)

type CallHandler struct {
	Service *services.CallService
}

func NewCallHandler(service *services.CallService) *CallHandler {
	return &CallHandler{Service: service}
}

// SaveCallResults handles POST /api/call-results and its alias
// /api/save-call-results. The payload is accepted without schema validation
// beyond JSON well-formedness; a malformed body or a store write failure is
// a 500 with the error text.
func (h *CallHandler) SaveCallResults(c *fiber.Ctx) error {
	payload := models.Record{}
	if body := c.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success":   false,
				"error":     err.Error(),
				"timestamp": isoTimestamp(),
			})
		}
	}

	id, timestamp, err := h.Service.Record(payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success":   false,
			"error":     err.Error(),
			"timestamp": isoTimestamp(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"message":   "Call results saved successfully",
		"call_id":   id,
		"timestamp": timestamp,
	})
}

// GetAllCalls handles GET /api/calls?limit=, newest first.
func (h *CallHandler) GetAllCalls(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)

	calls, err := h.Service.List(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success":   false,
			"error":     err.Error(),
			"timestamp": isoTimestamp(),
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"count":     len(calls),
		"calls":     calls,
		"timestamp": isoTimestamp(),
	})
}
