package service

import (
	"fmt"

	"go-inventory-pro/internal/apperr"
	"go-inventory-pro/internal/model"
	"go-inventory-pro/internal/repository"
	"go-inventory-pro/internal/ws"
	"go-inventory-pro/prometheus"

	"github.com/google/uuid"
)

// Item kinds accepted by the activation and inactive-search flows.
const (
	KindProduct  = "product"
	KindCategory = "category"
	KindSupplier = "supplier"
)

// InactiveItems holds per-kind result sets. A nil slice means the kind
// was not requested; an empty slice means it was requested and matched
// nothing.
type InactiveItems struct {
	Products   []model.Product
	Categories []model.Category
	Suppliers  []model.Supplier
}

type StatusService interface {
	ActivateItem(kind string, id uuid.UUID) (interface{}, error)
	SearchInactive(kind, search string) (*InactiveItems, error)
}

type statusService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	hub          *ws.Hub
}

func NewStatusService(
	pRepo repository.ProductRepository,
	cRepo repository.CategoryRepository,
	sRepo repository.SupplierRepository,
	hub *ws.Hub,
) StatusService {
	return &statusService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		supplierRepo: sRepo,
		hub:          hub,
	}
}

// ActivateItem sets the record active. For products the supplier gate and
// the status write are a single conditional UPDATE, so a concurrent
// supplier deactivation cannot leave a product active under an inactive
// supplier. Categories and suppliers activate unconditionally.
func (s *statusService) ActivateItem(kind string, id uuid.UUID) (interface{}, error) {
	switch kind {
	case KindProduct:
		return s.activateProduct(id)

	case KindCategory:
		rows, err := s.categoryRepo.SetStatus(id, model.StatusActive)
		if err != nil {
			return nil, storageErr(err)
		}
		if rows == 0 {
			return nil, apperr.NotFound("category")
		}
		prometheus.RecordEntityOperation("category", "activate")
		category, err := s.categoryRepo.FindByID(id)
		if err != nil {
			return nil, storageErr(err)
		}
		return category, nil

	case KindSupplier:
		rows, err := s.supplierRepo.SetStatus(id, model.StatusActive)
		if err != nil {
			return nil, storageErr(err)
		}
		if rows == 0 {
			return nil, apperr.NotFound("supplier")
		}
		prometheus.RecordEntityOperation("supplier", "activate")
		supplier, err := s.supplierRepo.FindByID(id)
		if err != nil {
			return nil, storageErr(err)
		}
		return supplier, nil

	default:
		return nil, apperr.Validation("Invalid type specified: %q", kind)
	}
}

func (s *statusService) activateProduct(id uuid.UUID) (interface{}, error) {
	rows, err := s.productRepo.ActivateIfSupplierActive(id)
	if err != nil {
		return nil, storageErr(err)
	}
	if rows == 0 {
		// Nothing was written. Distinguish a missing product from one
		// blocked by its inactive supplier; the product is left unchanged
		// either way.
		if _, err := s.productRepo.FindByID(id); err != nil {
			if isNotFound(err) {
				return nil, apperr.NotFound("product")
			}
			return nil, storageErr(err)
		}
		return nil, &apperr.PolicyViolationError{
			Msg:     "Cannot activate product with inactive supplier",
			Details: "The supplier for this product is inactive. Please activate the supplier first.",
		}
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, storageErr(err)
	}
	prometheus.RecordEntityOperation("product", "activate")
	s.hub.Publish(ws.Event{
		Type:    "inventory_update",
		Action:  "product_activated",
		Data:    product,
		Message: fmt.Sprintf("Product '%s' activated", product.Name),
	})
	return product, nil
}

// SearchInactive filters inactive records with a case-insensitive
// substring match on name plus kind-specific fields (product: sku,
// category, supplier; supplier: email, phone). An empty kind returns all
// three kinds, each filtered independently.
func (s *statusService) SearchInactive(kind, search string) (*InactiveItems, error) {
	result := &InactiveItems{}

	if kind == "" || kind == "products" || kind == KindProduct {
		products, err := s.productRepo.FindInactive(search)
		if err != nil {
			return nil, storageErr(err)
		}
		if products == nil {
			products = []model.Product{}
		}
		result.Products = products
	}

	if kind == "" || kind == "categories" || kind == KindCategory {
		categories, err := s.categoryRepo.FindInactive(search)
		if err != nil {
			return nil, storageErr(err)
		}
		if categories == nil {
			categories = []model.Category{}
		}
		result.Categories = categories
	}

	if kind == "" || kind == "suppliers" || kind == KindSupplier {
		suppliers, err := s.supplierRepo.FindInactive(search)
		if err != nil {
			return nil, storageErr(err)
		}
		if suppliers == nil {
			suppliers = []model.Supplier{}
		}
		result.Suppliers = suppliers
	}

	return result, nil
}
