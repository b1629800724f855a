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
	"go.uber.org/zap"
)

type SupplierInput struct {
	Name    string       `json:"name" validate:"required"`
	Email   string       `json:"email"`
	Phone   string       `json:"phone"`
	Address string       `json:"address"`
	Status  model.Status `json:"status" validate:"status"`
}

func (in *SupplierInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	if in.Status == "" {
		in.Status = model.StatusActive
	}
}

type SupplierService interface {
	CreateSupplier(input *SupplierInput) (*model.Supplier, error)
	UpdateSupplier(id uuid.UUID, input *SupplierInput) (*model.Supplier, error)
	DeleteSupplier(id uuid.UUID) error
	GetSupplier(id uuid.UUID) (*model.Supplier, error)
	ListSuppliers() ([]model.Supplier, error)
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	hub          *ws.Hub
}

func NewSupplierService(sRepo repository.SupplierRepository, pRepo repository.ProductRepository, hub *ws.Hub) SupplierService {
	return &supplierService{
		supplierRepo: sRepo,
		productRepo:  pRepo,
		hub:          hub,
	}
}

func (s *supplierService) CreateSupplier(input *SupplierInput) (*model.Supplier, error) {
	input.normalize()
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return nil, validationErr(errs)
	}

	supplier := &model.Supplier{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		Status:  input.Status,
	}
	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, storageErr(err)
	}

	prometheus.RecordEntityOperation("supplier", "create")
	return supplier, nil
}

// UpdateSupplier applies field updates, then cascades deactivation onto
// every product linked to the supplier. Products link by name, so the
// cascade uses the post-update name: a rename in the same request must
// deactivate products under the new name. Reactivating a supplier never
// reactivates its products; those go through the activation flow, which
// re-checks the supplier.
func (s *supplierService) UpdateSupplier(id uuid.UUID, input *SupplierInput) (*model.Supplier, error) {
	input.normalize()
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return nil, validationErr(errs)
	}

	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("supplier")
		}
		return nil, storageErr(err)
	}

	supplier.Name = input.Name
	supplier.Email = input.Email
	supplier.Phone = input.Phone
	supplier.Address = input.Address
	supplier.Status = input.Status

	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, storageErr(err)
	}
	prometheus.RecordEntityOperation("supplier", "update")

	if supplier.Status == model.StatusInactive {
		// Best-effort bulk cascade, not atomic with the supplier write.
		// It is idempotent and re-runnable, so a failure here is logged
		// and counted rather than rolled back.
		count, err := s.productRepo.DeactivateBySupplier(supplier.Name)
		if err != nil {
			prometheus.CascadeFailures.Inc()
			zap.L().Error("failed to cascade supplier deactivation",
				zap.String("supplier", supplier.Name),
				zap.Error(err),
			)
		} else if count > 0 {
			prometheus.CascadeDeactivatedProducts.Add(float64(count))
			zap.L().Info("deactivated products for supplier",
				zap.String("supplier", supplier.Name),
				zap.Int64("count", count),
			)
			s.hub.Publish(ws.Event{
				Type:    "inventory_update",
				Action:  "supplier_deactivated",
				Data:    supplier,
				Message: fmt.Sprintf("Supplier '%s' deactivated along with %d products", supplier.Name, count),
			})
		}
	}

	return supplier, nil
}

func (s *supplierService) DeleteSupplier(id uuid.UUID) error {
	rows, err := s.supplierRepo.Delete(id)
	if err != nil {
		return storageErr(err)
	}
	if rows == 0 {
		return apperr.NotFound("supplier")
	}
	prometheus.RecordEntityOperation("supplier", "delete")
	return nil
}

func (s *supplierService) GetSupplier(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("supplier")
		}
		return nil, storageErr(err)
	}
	return supplier, nil
}

func (s *supplierService) ListSuppliers() ([]model.Supplier, error) {
	suppliers, err := s.supplierRepo.FindActive()
	if err != nil {
		return nil, storageErr(err)
	}
	return suppliers, nil
}
