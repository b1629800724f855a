package handler

import (
	"go-inventory-pro/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StatusHandler struct {
	service service.StatusService
}

func NewStatusHandler(s service.StatusService) *StatusHandler {
	return &StatusHandler{service: s}
}

type activateRequest struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// ActivateItem reactivates a product, category, or supplier. Product
// activation is blocked while the product's supplier is inactive.
func (h *StatusHandler) ActivateItem(c *fiber.Ctx) error {
	var req activateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	id, err := parseUUID(req.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	item, err := h.service.ActivateItem(req.Type, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Item activated successfully",
		"item":    item,
	})
}

// GetInactiveItems lists inactive records, optionally narrowed to one
// kind and filtered by a search term. Query params: type (products,
// categories, suppliers), search.
func (h *StatusHandler) GetInactiveItems(c *fiber.Ctx) error {
	items, err := h.service.SearchInactive(c.Query("type"), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}

	// Only the requested kinds appear in the response body.
	body := fiber.Map{}
	if items.Products != nil {
		body["products"] = items.Products
	}
	if items.Categories != nil {
		body["categories"] = items.Categories
	}
	if items.Suppliers != nil {
		body["suppliers"] = items.Suppliers
	}
	return c.JSON(body)
}
