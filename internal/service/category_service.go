package service

import (
	"strings"

	"go-inventory-pro/internal/apperr"
	"go-inventory-pro/internal/model"
	"go-inventory-pro/internal/repository"
	"go-inventory-pro/pkg/validator"
	"go-inventory-pro/prometheus"

	"github.com/google/uuid"
)

type CategoryInput struct {
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description"`
	Status      model.Status `json:"status" validate:"status"`
}

func (in *CategoryInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Status == "" {
		in.Status = model.StatusActive
	}
}

type CategoryService interface {
	CreateCategory(input *CategoryInput) (*model.Category, error)
	UpdateCategory(id uuid.UUID, input *CategoryInput) (*model.Category, error)
	DeleteCategory(id uuid.UUID) error
	ListCategories() ([]model.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(cRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: cRepo}
}

func (s *categoryService) CreateCategory(input *CategoryInput) (*model.Category, error) {
	input.normalize()
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return nil, validationErr(errs)
	}

	existing, err := s.categoryRepo.FindByName(input.Name)
	if err != nil && !isNotFound(err) {
		return nil, storageErr(err)
	}
	if existing != nil {
		return nil, &apperr.DuplicateKeyError{Field: "name", Value: input.Name}
	}

	category := &model.Category{
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		if isDuplicate(err) {
			return nil, &apperr.DuplicateKeyError{Field: "name", Value: input.Name}
		}
		return nil, storageErr(err)
	}

	prometheus.RecordEntityOperation("category", "create")
	return category, nil
}

func (s *categoryService) UpdateCategory(id uuid.UUID, input *CategoryInput) (*model.Category, error) {
	input.normalize()
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return nil, validationErr(errs)
	}

	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("category")
		}
		return nil, storageErr(err)
	}

	existing, err := s.categoryRepo.FindByName(input.Name)
	if err != nil && !isNotFound(err) {
		return nil, storageErr(err)
	}
	if existing != nil && existing.ID != id {
		return nil, &apperr.DuplicateKeyError{Field: "name", Value: input.Name}
	}

	category.Name = input.Name
	category.Description = input.Description
	category.Status = input.Status

	if err := s.categoryRepo.Update(category); err != nil {
		if isDuplicate(err) {
			return nil, &apperr.DuplicateKeyError{Field: "name", Value: input.Name}
		}
		return nil, storageErr(err)
	}

	prometheus.RecordEntityOperation("category", "update")
	return category, nil
}

func (s *categoryService) DeleteCategory(id uuid.UUID) error {
	rows, err := s.categoryRepo.Delete(id)
	if err != nil {
		return storageErr(err)
	}
	if rows == 0 {
		return apperr.NotFound("category")
	}
	prometheus.RecordEntityOperation("category", "delete")
	return nil
}

func (s *categoryService) ListCategories() ([]model.Category, error) {
	categories, err := s.categoryRepo.FindActive()
	if err != nil {
		return nil, storageErr(err)
	}
	return categories, nil
}
