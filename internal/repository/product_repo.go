package repository

import (
	"strings"
	"time"

	"go-inventory-pro/internal/model"
	"go-inventory-pro/prometheus"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductFilter narrows product listings. Status defaults to active when
// empty; Page/Limit default to 1/50.
type ProductFilter struct {
	Search   string
	Category string
	Status   model.Status
	Page     int
	Limit    int
}

type ProductRepository interface {
	Create(product *model.Product) error
	Find(filter ProductFilter) ([]model.Product, int64, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	FindBySKUExcluding(sku string, excludeID uuid.UUID) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) (int64, error)
	ActivateIfSupplierActive(id uuid.UUID) (int64, error)
	DeactivateBySupplier(supplierName string) (int64, error)
	FindLowStock() ([]model.Product, error)
	FindInactive(search string) ([]model.Product, error)
	GetDashboardStats() (*DashboardStats, error)
}

// CategoryStat is a per-category rollup over active products.
type CategoryStat struct {
	Category   string  `json:"category"`
	Count      int64   `json:"count"`
	TotalValue float64 `json:"totalValue"`
}

// InactiveCounts holds per-kind counts of inactive records. Inactive
// items are kept out of the active aggregates.
type InactiveCounts struct {
	Products   int64 `json:"products"`
	Categories int64 `json:"categories"`
	Suppliers  int64 `json:"suppliers"`
}

// DashboardStats is the overview aggregate, recomputed fresh on every
// call. There is no cache and no incremental maintenance.
type DashboardStats struct {
	TotalProducts      int64           `json:"totalProducts"`
	LowStockProducts   int64           `json:"lowStockProducts"`
	OutOfStockProducts int64           `json:"outOfStockProducts"`
	TotalValue         float64         `json:"totalValue"`
	CategoryStats      []CategoryStat  `json:"categoryStats"`
	RecentProducts     []model.Product `json:"recentProducts"`
	InactiveItems      InactiveCounts  `json:"inactiveItems"`
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())
	return r.db.Create(product).Error
}

func (r *productRepo) Find(filter ProductFilter) ([]model.Product, int64, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	status := filter.Status
	if status == "" {
		status = model.StatusActive
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 50
	}

	q := r.db.Model(&model.Product{}).Where("status = ?", status)
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ? OR LOWER(description) LIKE ?", like, like, like)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	return products, total, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySKUExcluding(sku string, excludeID uuid.UUID) (*model.Product, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var product model.Product
	err := r.db.First(&product, "sku = ? AND id <> ?", sku, excludeID).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	defer prometheus.TrackDBOperation("update")(time.Now())
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) (int64, error) {
	defer prometheus.TrackDBOperation("delete")(time.Now())
	res := r.db.Delete(&model.Product{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// ActivateIfSupplierActive flips the product to active only when no
// inactive supplier row matches its supplier name. The supplier check and
// the status write happen in one UPDATE statement, so a concurrent
// supplier deactivation cannot slip between a read and the write. An
// unknown supplier name does not block activation.
func (r *productRepo) ActivateIfSupplierActive(id uuid.UUID) (int64, error) {
	defer prometheus.TrackDBOperation("update")(time.Now())
	res := r.db.Model(&model.Product{}).
		Where("id = ?", id).
		Where("NOT EXISTS (SELECT 1 FROM suppliers WHERE suppliers.name = products.supplier AND suppliers.status = ?)", model.StatusInactive).
		Update("status", model.StatusActive)
	return res.RowsAffected, res.Error
}

// DeactivateBySupplier deactivates every product referencing the supplier
// by name. One bulk UPDATE keyed on the current name; filtering on active
// status makes re-running it a no-op.
func (r *productRepo) DeactivateBySupplier(supplierName string) (int64, error) {
	defer prometheus.TrackDBOperation("update")(time.Now())
	res := r.db.Model(&model.Product{}).
		Where("supplier = ? AND status = ?", supplierName, model.StatusActive).
		Update("status", model.StatusInactive)
	return res.RowsAffected, res.Error
}

func (r *productRepo) FindLowStock() ([]model.Product, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var products []model.Product
	err := r.db.
		Where("status = ? AND quantity <= min_quantity", model.StatusActive).
		Order("quantity ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindInactive(search string) ([]model.Product, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	q := r.db.Where("status = ?", model.StatusInactive)
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ? OR LOWER(category) LIKE ? OR LOWER(supplier) LIKE ?",
			like, like, like, like)
	}
	var products []model.Product
	err := q.Order("updated_at DESC").Find(&products).Error
	return products, err
}

func (r *productRepo) GetDashboardStats() (*DashboardStats, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	stats := &DashboardStats{
		CategoryStats:  []CategoryStat{},
		RecentProducts: []model.Product{},
	}
	active := model.StatusActive

	if err := r.db.Model(&model.Product{}).
		Where("status = ?", active).
		Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}

	// Low stock excludes out-of-stock; quantity zero is counted separately.
	if err := r.db.Model(&model.Product{}).
		Where("status = ? AND quantity > 0 AND quantity <= min_quantity", active).
		Count(&stats.LowStockProducts).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Product{}).
		Where("status = ? AND quantity = 0", active).
		Count(&stats.OutOfStockProducts).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Product{}).
		Where("status = ?", active).
		Select("COALESCE(SUM(quantity * price), 0)").
		Scan(&stats.TotalValue).Error; err != nil {
		return nil, err
	}

	rows, err := r.db.Model(&model.Product{}).
		Select("category, COUNT(*) as count, COALESCE(SUM(quantity * price), 0) as total_value").
		Where("status = ?", active).
		Group("category").
		Order("count DESC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var cs CategoryStat
		if err := rows.Scan(&cs.Category, &cs.Count, &cs.TotalValue); err != nil {
			return nil, err
		}
		stats.CategoryStats = append(stats.CategoryStats, cs)
	}

	if err := r.db.
		Where("status = ?", active).
		Order("created_at DESC").
		Limit(5).
		Find(&stats.RecentProducts).Error; err != nil {
		return nil, err
	}

	inactive := model.StatusInactive
	if err := r.db.Model(&model.Product{}).
		Where("status = ?", inactive).
		Count(&stats.InactiveItems.Products).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Category{}).
		Where("status = ?", inactive).
		Count(&stats.InactiveItems.Categories).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Supplier{}).
		Where("status = ?", inactive).
		Count(&stats.InactiveItems.Suppliers).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
