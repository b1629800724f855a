package service

import (
	"testing"

	"go-inventory-pro/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowStockAlertNoItems(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, &model.Product{Name: "Full", SKU: "F-1", Supplier: "Acme", Quantity: 50, MinQuantity: 5})

	report, err := env.notifications.SendLowStockAlert()
	require.NoError(t, err)
	assert.Equal(t, 0, report.Count)
	assert.Equal(t, "No low stock items found", report.Message)
}

func TestLowStockAlertReportsShortages(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, &model.Product{Name: "Low", SKU: "L-1", Supplier: "Acme", Quantity: 2, MinQuantity: 5})
	env.seedProduct(t, &model.Product{Name: "Empty", SKU: "E-1", Supplier: "Acme", Quantity: 0, MinQuantity: 5})
	env.seedProduct(t, &model.Product{Name: "Full", SKU: "F-1", Supplier: "Acme", Quantity: 50, MinQuantity: 5})
	env.seedProduct(t, &model.Product{
		Name: "Retired", SKU: "R-1", Supplier: "Acme", Quantity: 0, MinQuantity: 5,
		Status: model.StatusInactive,
	})

	report, err := env.notifications.SendLowStockAlert()
	require.NoError(t, err)
	assert.Equal(t, 2, report.Count)
	require.Len(t, report.Products, 2)

	byName := map[string]LowStockItem{}
	for _, item := range report.Products {
		byName[item.Name] = item
	}
	assert.Equal(t, 3, byName["Low"].Shortage)
	assert.Equal(t, 5, byName["Empty"].Shortage)
}

func TestLowStockAlertRespectsDisabledToggle(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, &model.Product{Name: "Low", SKU: "L-1", Supplier: "Acme", Quantity: 2, MinQuantity: 5})

	_, _, err := env.settings.UpdateSettings(map[string]interface{}{"lowStockAlerts": false})
	require.NoError(t, err)

	report, err := env.notifications.SendLowStockAlert()
	require.NoError(t, err)
	assert.Equal(t, 0, report.Count)
	assert.Equal(t, "Low stock alerts are disabled", report.Message)
}
