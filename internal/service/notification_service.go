package service

import (
	"fmt"
	"strings"
	"time"

	"go-inventory-pro/internal/repository"
	"go-inventory-pro/internal/ws"
	"go-inventory-pro/prometheus"

	"go.uber.org/zap"
)

// LowStockItem describes one product at or below its reorder threshold.
type LowStockItem struct {
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	CurrentStock int    `json:"currentStock"`
	MinStock     int    `json:"minStock"`
	Shortage     int    `json:"shortage"`
	Supplier     string `json:"supplier"`
}

type LowStockReport struct {
	Message  string         `json:"message"`
	Count    int            `json:"count"`
	Products []LowStockItem `json:"products,omitempty"`
}

type NotificationService interface {
	SendLowStockAlert() (*LowStockReport, error)
}

type notificationService struct {
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
	hub          *ws.Hub
}

func NewNotificationService(pRepo repository.ProductRepository, sRepo repository.SettingsRepository, hub *ws.Hub) NotificationService {
	return &notificationService{
		productRepo:  pRepo,
		settingsRepo: sRepo,
		hub:          hub,
	}
}

// SendLowStockAlert collects active products at or below their reorder
// threshold and "sends" the reorder report. Delivery is a stub: the
// formatted email body is written to the log instead of an SMTP gateway.
func (s *notificationService) SendLowStockAlert() (*LowStockReport, error) {
	settings, err := s.settingsRepo.Load()
	if err != nil {
		return nil, storageErr(err)
	}
	if !settings.LowStockAlerts {
		return &LowStockReport{Message: "Low stock alerts are disabled"}, nil
	}

	products, err := s.productRepo.FindLowStock()
	if err != nil {
		return nil, storageErr(err)
	}
	if len(products) == 0 {
		return &LowStockReport{Message: "No low stock items found"}, nil
	}

	items := make([]LowStockItem, 0, len(products))
	var body strings.Builder
	fmt.Fprintf(&body, "Low Stock Alert - %s\n", time.Now().Format("2006-01-02"))
	body.WriteString("=============================================\n\n")
	body.WriteString("The following items are running low on stock:\n\n")
	for _, p := range products {
		fmt.Fprintf(&body, "- %s (SKU: %s)\n    Current Stock: %d\n    Minimum Required: %d\n    Supplier: %s\n    Shortage: %d units\n\n",
			p.Name, p.SKU, p.Quantity, p.MinQuantity, p.Supplier, p.MinQuantity-p.Quantity)
		items = append(items, LowStockItem{
			Name:         p.Name,
			SKU:          p.SKU,
			CurrentStock: p.Quantity,
			MinStock:     p.MinQuantity,
			Shortage:     p.MinQuantity - p.Quantity,
			Supplier:     p.Supplier,
		})
	}
	body.WriteString("Please reorder these items as soon as possible.\n")

	zap.L().Info("low stock email notification (stub, not delivered)",
		zap.String("to", settings.CompanyEmail),
		zap.Int("count", len(items)),
		zap.String("body", body.String()),
	)
	prometheus.LowStockAlerts.Inc()

	s.hub.Publish(ws.Event{
		Type:    "notification",
		Action:  "low_stock_alert",
		Data:    items,
		Message: fmt.Sprintf("%d products are low on stock", len(items)),
	})

	return &LowStockReport{
		Message:  "Low stock notification sent successfully",
		Count:    len(items),
		Products: items,
	}, nil
}
