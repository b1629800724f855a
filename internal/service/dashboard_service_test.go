package service

import (
	"testing"
	"time"

	"go-inventory-pro/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStatsScenario(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, &model.Product{Name: "Empty", SKU: "E-1", Supplier: "Acme", Quantity: 0, MinQuantity: 5, Price: 10})
	env.seedProduct(t, &model.Product{Name: "Low", SKU: "L-1", Supplier: "Acme", Quantity: 3, MinQuantity: 5, Price: 20})
	env.seedProduct(t, &model.Product{Name: "Full", SKU: "F-1", Supplier: "Acme", Quantity: 50, MinQuantity: 5, Price: 1})

	stats, err := env.dashboard.GetDashboardStats()
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalProducts)
	// Out-of-stock is its own bucket; qty=0 is not "low stock".
	assert.EqualValues(t, 1, stats.OutOfStockProducts)
	assert.EqualValues(t, 1, stats.LowStockProducts)
	assert.InDelta(t, 110.0, stats.TotalValue, 0.001) // 0*10 + 3*20 + 50*1
}

func TestDashboardStatsExcludeInactiveProducts(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, &model.Product{Name: "Active", SKU: "A-1", Supplier: "Acme", Quantity: 2, MinQuantity: 5, Price: 100})
	env.seedProduct(t, &model.Product{
		Name: "Retired", SKU: "R-1", Supplier: "Acme", Quantity: 9, MinQuantity: 5, Price: 100,
		Status: model.StatusInactive,
	})
	require.NoError(t, env.categoryRepo.Create(&model.Category{Name: "Tools", Status: model.StatusInactive}))
	env.seedSupplier(t, "Globex", model.StatusInactive)

	stats, err := env.dashboard.GetDashboardStats()
	require.NoError(t, err)

	assert.EqualValues(t, 1, stats.TotalProducts)
	assert.EqualValues(t, 1, stats.LowStockProducts)
	assert.InDelta(t, 200.0, stats.TotalValue, 0.001)

	// Inactive items are reported separately, never mixed into the
	// active aggregates.
	assert.EqualValues(t, 1, stats.InactiveItems.Products)
	assert.EqualValues(t, 1, stats.InactiveItems.Categories)
	assert.EqualValues(t, 1, stats.InactiveItems.Suppliers)
}

func TestDashboardCategoryStatsOrderedByCount(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, &model.Product{Name: "A", SKU: "A-1", Category: "Hardware", Supplier: "Acme", Quantity: 1, Price: 5})
	env.seedProduct(t, &model.Product{Name: "B", SKU: "B-1", Category: "Hardware", Supplier: "Acme", Quantity: 2, Price: 5})
	env.seedProduct(t, &model.Product{Name: "C", SKU: "C-1", Category: "Software", Supplier: "Acme", Quantity: 4, Price: 10})

	stats, err := env.dashboard.GetDashboardStats()
	require.NoError(t, err)

	require.Len(t, stats.CategoryStats, 2)
	assert.Equal(t, "Hardware", stats.CategoryStats[0].Category)
	assert.EqualValues(t, 2, stats.CategoryStats[0].Count)
	assert.InDelta(t, 15.0, stats.CategoryStats[0].TotalValue, 0.001)
	assert.Equal(t, "Software", stats.CategoryStats[1].Category)
	assert.InDelta(t, 40.0, stats.CategoryStats[1].TotalValue, 0.001)
}

func TestDashboardRecentProducts(t *testing.T) {
	env := newTestEnv(t)
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 7; i++ {
		p := &model.Product{Name: "P", SKU: "SKU-" + string(rune('A'+i)), Supplier: "Acme"}
		p.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		env.seedProduct(t, p)
	}
	inactive := &model.Product{Name: "Hidden", SKU: "H-1", Supplier: "Acme", Status: model.StatusInactive}
	inactive.CreatedAt = base.Add(time.Hour)
	env.seedProduct(t, inactive)

	stats, err := env.dashboard.GetDashboardStats()
	require.NoError(t, err)

	require.Len(t, stats.RecentProducts, 5)
	// Newest first, and only active products appear.
	assert.Equal(t, "SKU-G", stats.RecentProducts[0].SKU)
	assert.Equal(t, "SKU-C", stats.RecentProducts[4].SKU)
}
