package handler

import (
	"go-inventory-pro/internal/service"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	service service.NotificationService
}

func NewNotificationHandler(s service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: s}
}

// SendLowStockAlert triggers the reorder report for products at or below
// their threshold. Delivery is logged, not emailed.
func (h *NotificationHandler) SendLowStockAlert(c *fiber.Ctx) error {
	report, err := h.service.SendLowStockAlert()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}
