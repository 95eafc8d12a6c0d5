package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shopwave/storefront-api/internal/model"
)

var ErrNotFound = errors.New("not found")

type OrderRepository interface {
	// Insert prepends: the order collection is kept newest-first.
	Insert(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	ListAll(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error
	Count(ctx context.Context) (int, error)
}

type memOrderRepo struct {
	mu     sync.RWMutex
	orders []model.Order
}

func NewOrderRepository() OrderRepository {
	return &memOrderRepo{}
}

func (r *memOrderRepo) Insert(_ context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	now := time.Now().UTC()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	if order.UpdatedAt.IsZero() {
		order.UpdatedAt = now
	}
	r.orders = append([]model.Order{*order}, r.orders...)
	return nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var orders []model.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *memOrderRepo) ListAll(_ context.Context, status model.OrderStatus) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var orders []model.Order
	for _, o := range r.orders {
		if status != "" && o.Status != status {
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			r.orders[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrNotFound
}

func (r *memOrderRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders), nil
}
