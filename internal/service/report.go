package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shopwave/storefront-api/internal/dto"
	"github.com/shopwave/storefront-api/internal/model"
	"github.com/shopwave/storefront-api/internal/repository"
)

// ReportService aggregates the numbers behind the admin dashboard.
type ReportService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func NewReportService(userRepo repository.UserRepository, productRepo repository.ProductRepository, orderRepo repository.OrderRepository) *ReportService {
	return &ReportService{userRepo: userRepo, productRepo: productRepo, orderRepo: orderRepo}
}

func (s *ReportService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	orders, err := s.orderRepo.ListAll(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	productCount, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	userCount, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	revenue := decimal.Zero
	byStatus := make(map[model.OrderStatus]int)
	for _, o := range orders {
		revenue = revenue.Add(o.Total)
		byStatus[o.Status]++
	}

	return &dto.DashboardResponse{
		OrderCount:     len(orders),
		ProductCount:   productCount,
		UserCount:      userCount,
		Revenue:        revenue,
		OrdersByStatus: byStatus,
	}, nil
}
