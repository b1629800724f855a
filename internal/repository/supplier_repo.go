package repository

import (
	"strings"
	"time"

	"go-inventory-pro/internal/model"
	"go-inventory-pro/prometheus"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	FindActive() ([]model.Supplier, error)
	FindByID(id uuid.UUID) (*model.Supplier, error)
	FindByName(name string) (*model.Supplier, error)
	Update(supplier *model.Supplier) error
	Delete(id uuid.UUID) (int64, error)
	SetStatus(id uuid.UUID, status model.Status) (int64, error)
	FindInactive(search string) ([]model.Supplier, error)
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())
	return r.db.Create(supplier).Error
}

func (r *supplierRepo) FindActive() ([]model.Supplier, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var suppliers []model.Supplier
	err := r.db.Where("status = ?", model.StatusActive).Order("name ASC").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var supplier model.Supplier
	err := r.db.First(&supplier, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// FindByName resolves the weak name linkage from products. Callers must
// treat a not-found result as a normal condition, not an error.
func (r *supplierRepo) FindByName(name string) (*model.Supplier, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var supplier model.Supplier
	err := r.db.First(&supplier, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepo) Update(supplier *model.Supplier) error {
	defer prometheus.TrackDBOperation("update")(time.Now())
	return r.db.Save(supplier).Error
}

func (r *supplierRepo) Delete(id uuid.UUID) (int64, error) {
	defer prometheus.TrackDBOperation("delete")(time.Now())
	res := r.db.Delete(&model.Supplier{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *supplierRepo) SetStatus(id uuid.UUID, status model.Status) (int64, error) {
	defer prometheus.TrackDBOperation("update")(time.Now())
	res := r.db.Model(&model.Supplier{}).Where("id = ?", id).Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *supplierRepo) FindInactive(search string) ([]model.Supplier, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	q := r.db.Where("status = ?", model.StatusInactive)
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ?", like, like, like)
	}
	var suppliers []model.Supplier
	err := q.Order("updated_at DESC").Find(&suppliers).Error
	return suppliers, err
}
