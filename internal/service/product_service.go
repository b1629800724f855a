package service

import (
	"fmt"
	"strings"

	"go-inventory-pro/internal/apperr"
	"go-inventory-pro/internal/model"
	"go-inventory-pro/internal/repository"
	"go-inventory-pro/internal/ws"
	"go-inventory-pro/pkg/validator"
	"go-inventory-pro/prometheus"

	"github.com/google/uuid"
)

// ProductInput is the payload for product create/update. Numeric fields
// are pointers so that an explicit zero is distinguishable from a missing
// field.
type ProductInput struct {
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description"`
	SKU         string       `json:"sku" validate:"required"`
	Category    string       `json:"category" validate:"required"`
	Supplier    string       `json:"supplier" validate:"required"`
	Quantity    *int         `json:"quantity" validate:"required,gte=0"`
	MinQuantity *int         `json:"minQuantity" validate:"required,gte=0"`
	Price       *float64     `json:"price" validate:"required,gte=0"`
	Cost        *float64     `json:"cost" validate:"required,gte=0"`
	ImageURL    string       `json:"imageUrl"`
	Status      model.Status `json:"status" validate:"status"`
}

func (in *ProductInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.SKU = strings.TrimSpace(in.SKU)
	in.Category = strings.TrimSpace(in.Category)
	in.Supplier = strings.TrimSpace(in.Supplier)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	if in.Status == "" {
		in.Status = model.StatusActive
	}
}

type ProductService interface {
	CreateProduct(input *ProductInput) (*model.Product, error)
	UpdateProduct(id uuid.UUID, input *ProductInput) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
	GetProduct(id uuid.UUID) (*model.Product, error)
	ListProducts(filter repository.ProductFilter) ([]model.Product, int64, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	hub          *ws.Hub
}

func NewProductService(pRepo repository.ProductRepository, sRepo repository.SupplierRepository, hub *ws.Hub) ProductService {
	return &productService{
		productRepo:  pRepo,
		supplierRepo: sRepo,
		hub:          hub,
	}
}

// CreateProduct validates in a fixed order: field presence and ranges,
// then SKU uniqueness, then the supplier-active gate. An unknown supplier
// name passes the gate; only a known-inactive supplier blocks creation.
func (s *productService) CreateProduct(input *ProductInput) (*model.Product, error) {
	input.normalize()
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return nil, validationErr(errs)
	}

	existing, err := s.productRepo.FindBySKU(input.SKU)
	if err != nil && !isNotFound(err) {
		return nil, storageErr(err)
	}
	if existing != nil {
		return nil, &apperr.DuplicateKeyError{Field: "SKU", Value: input.SKU}
	}

	supplier, err := s.supplierRepo.FindByName(input.Supplier)
	if err != nil && !isNotFound(err) {
		return nil, storageErr(err)
	}
	if supplier != nil && supplier.Status == model.StatusInactive {
		return nil, &apperr.PolicyViolationError{
			Msg:     "Cannot create product with inactive supplier",
			Details: "The selected supplier is inactive. Please activate the supplier first or choose a different supplier.",
		}
	}

	product := &model.Product{
		Name:        input.Name,
		Description: input.Description,
		SKU:         input.SKU,
		Category:    input.Category,
		Supplier:    input.Supplier,
		Quantity:    *input.Quantity,
		MinQuantity: *input.MinQuantity,
		Price:       *input.Price,
		Cost:        *input.Cost,
		ImageURL:    input.ImageURL,
		Status:      input.Status,
	}

	if err := s.productRepo.Create(product); err != nil {
		if isDuplicate(err) {
			return nil, &apperr.DuplicateKeyError{Field: "SKU", Value: input.SKU}
		}
		return nil, storageErr(err)
	}

	prometheus.RecordEntityOperation("product", "create")
	s.hub.Publish(ws.Event{
		Type:    "inventory_update",
		Action:  "product_created",
		Data:    product,
		Message: fmt.Sprintf("Product '%s' created", product.Name),
	})

	return product, nil
}

// UpdateProduct runs the same field validation as create and excludes the
// record itself from the SKU uniqueness check. It deliberately does not
// re-run the supplier-active gate; that check belongs to create and
// activate only.
func (s *productService) UpdateProduct(id uuid.UUID, input *ProductInput) (*model.Product, error) {
	input.normalize()
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return nil, validationErr(errs)
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("product")
		}
		return nil, storageErr(err)
	}

	existing, err := s.productRepo.FindBySKUExcluding(input.SKU, id)
	if err != nil && !isNotFound(err) {
		return nil, storageErr(err)
	}
	if existing != nil {
		return nil, &apperr.DuplicateKeyError{Field: "SKU", Value: input.SKU}
	}

	product.Name = input.Name
	product.Description = input.Description
	product.SKU = input.SKU
	product.Category = input.Category
	product.Supplier = input.Supplier
	product.Quantity = *input.Quantity
	product.MinQuantity = *input.MinQuantity
	product.Price = *input.Price
	product.Cost = *input.Cost
	product.ImageURL = input.ImageURL
	product.Status = input.Status

	if err := s.productRepo.Update(product); err != nil {
		if isDuplicate(err) {
			return nil, &apperr.DuplicateKeyError{Field: "SKU", Value: input.SKU}
		}
		return nil, storageErr(err)
	}

	prometheus.RecordEntityOperation("product", "update")
	s.hub.Publish(ws.Event{
		Type:    "inventory_update",
		Action:  "product_updated",
		Data:    product,
		Message: fmt.Sprintf("Product '%s' updated", product.Name),
	})

	return product, nil
}

func (s *productService) DeleteProduct(id uuid.UUID) error {
	rows, err := s.productRepo.Delete(id)
	if err != nil {
		return storageErr(err)
	}
	if rows == 0 {
		return apperr.NotFound("product")
	}
	prometheus.RecordEntityOperation("product", "delete")
	return nil
}

func (s *productService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("product")
		}
		return nil, storageErr(err)
	}
	return product, nil
}

func (s *productService) ListProducts(filter repository.ProductFilter) ([]model.Product, int64, error) {
	products, total, err := s.productRepo.Find(filter)
	if err != nil {
		return nil, 0, storageErr(err)
	}
	return products, total, nil
}
