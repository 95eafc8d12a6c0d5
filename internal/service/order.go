package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shopwave/storefront-api/internal/model"
	"github.com/shopwave/storefront-api/internal/repository"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderAccessDenied = errors.New("access denied")
	ErrInvalidStatus     = errors.New("invalid order status")
)

type OrderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// GetByID returns the order if it belongs to the requesting user. Admins may
// read any order.
func (s *OrderService) GetByID(ctx context.Context, orderID, userID uuid.UUID, role string) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID && role != model.RoleAdmin {
		return nil, ErrOrderAccessDenied
	}
	return order, nil
}

// ListByUserID returns the user's orders, newest first.
func (s *OrderService) ListByUserID(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	return s.orderRepo.ListByUserID(ctx, userID)
}

// ListAll returns every order, optionally filtered by status. Admin only.
func (s *OrderService) ListAll(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.orderRepo.ListAll(ctx, status)
}

// UpdateStatus applies an admin status transition.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}
