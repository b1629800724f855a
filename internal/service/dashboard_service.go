package service

import (
	"go-inventory-pro/internal/repository"
)

type DashboardService interface {
	GetDashboardStats() (*repository.DashboardStats, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
}

func NewDashboardService(pRepo repository.ProductRepository) DashboardService {
	return &dashboardService{productRepo: pRepo}
}

// GetDashboardStats recomputes every aggregate on demand. The data volume
// is small and all operations are read-only, so there is no cache to
// invalidate.
func (s *dashboardService) GetDashboardStats() (*repository.DashboardStats, error) {
	stats, err := s.productRepo.GetDashboardStats()
	if err != nil {
		return nil, storageErr(err)
	}
	return stats, nil
}
