package service

import (
	"path/filepath"
	"testing"

	"go-inventory-pro/internal/model"
	"go-inventory-pro/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a throwaway file-backed SQLite database. A file (not
// :memory:) is required so the concurrency tests can share it across
// connections; _txlock=immediate serializes writers up front and
// _busy_timeout makes contending writers wait instead of erroring.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "inventory.db") + "?_busy_timeout=10000&_txlock=immediate"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Product{}, &model.Category{}, &model.Supplier{}, &model.Settings{}))
	return db
}

type testEnv struct {
	db           *gorm.DB
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	settingsRepo repository.SettingsRepository

	products      ProductService
	categories    CategoryService
	suppliers     SupplierService
	status        StatusService
	dashboard     DashboardService
	notifications NotificationService
	settings      SettingsService
}

func newTestEnv(t *testing.T) *testEnv {
	db := newTestDB(t)
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)

	return &testEnv{
		db:            db,
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		supplierRepo:  supplierRepo,
		settingsRepo:  settingsRepo,
		products:      NewProductService(productRepo, supplierRepo, nil),
		categories:    NewCategoryService(categoryRepo),
		suppliers:     NewSupplierService(supplierRepo, productRepo, nil),
		status:        NewStatusService(productRepo, categoryRepo, supplierRepo, nil),
		dashboard:     NewDashboardService(productRepo),
		notifications: NewNotificationService(productRepo, settingsRepo, nil),
		settings:      NewSettingsService(settingsRepo),
	}
}

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func productInput(name, sku, supplier string) *ProductInput {
	return &ProductInput{
		Name:        name,
		SKU:         sku,
		Category:    "General",
		Supplier:    supplier,
		Quantity:    intPtr(10),
		MinQuantity: intPtr(5),
		Price:       floatPtr(9.99),
		Cost:        floatPtr(4.99),
	}
}

func (e *testEnv) seedSupplier(t *testing.T, name string, status model.Status) *model.Supplier {
	t.Helper()
	supplier := &model.Supplier{Name: name, Status: status}
	require.NoError(t, e.supplierRepo.Create(supplier))
	return supplier
}

func (e *testEnv) seedProduct(t *testing.T, p *model.Product) *model.Product {
	t.Helper()
	if p.Category == "" {
		p.Category = "General"
	}
	if p.Status == "" {
		p.Status = model.StatusActive
	}
	require.NoError(t, e.productRepo.Create(p))
	return p
}
