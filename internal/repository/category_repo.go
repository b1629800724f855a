package repository

import (
	"strings"
	"time"

	"go-inventory-pro/internal/model"
	"go-inventory-pro/prometheus"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindActive() ([]model.Category, error)
	FindByID(id uuid.UUID) (*model.Category, error)
	FindByName(name string) (*model.Category, error)
	Update(category *model.Category) error
	Delete(id uuid.UUID) (int64, error)
	SetStatus(id uuid.UUID, status model.Status) (int64, error)
	FindInactive(search string) ([]model.Category, error)
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.Category) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())
	return r.db.Create(category).Error
}

func (r *categoryRepo) FindActive() ([]model.Category, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var categories []model.Category
	err := r.db.Where("status = ?", model.StatusActive).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var category model.Category
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) FindByName(name string) (*model.Category, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var category model.Category
	err := r.db.First(&category, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) Update(category *model.Category) error {
	defer prometheus.TrackDBOperation("update")(time.Now())
	return r.db.Save(category).Error
}

func (r *categoryRepo) Delete(id uuid.UUID) (int64, error) {
	defer prometheus.TrackDBOperation("delete")(time.Now())
	res := r.db.Delete(&model.Category{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *categoryRepo) SetStatus(id uuid.UUID, status model.Status) (int64, error) {
	defer prometheus.TrackDBOperation("update")(time.Now())
	res := r.db.Model(&model.Category{}).Where("id = ?", id).Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *categoryRepo) FindInactive(search string) ([]model.Category, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	q := r.db.Where("status = ?", model.StatusInactive)
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ?", like)
	}
	var categories []model.Category
	err := q.Order("updated_at DESC").Find(&categories).Error
	return categories, err
}
