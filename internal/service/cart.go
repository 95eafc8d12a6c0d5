package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/shopwave/storefront-api/internal/model"
	"github.com/shopwave/storefront-api/internal/repository"
	"github.com/shopwave/storefront-api/internal/session"
)

// CartService owns the line items for one session key at a time. Every
// mutation recomputes the subtotal from scratch and re-persists the whole
// cart, which protects against drift from partial updates.
type CartService struct {
	carts       *session.CartStore
	productRepo repository.ProductRepository
}

func NewCartService(carts *session.CartStore, productRepo repository.ProductRepository) *CartService {
	return &CartService{carts: carts, productRepo: productRepo}
}

func (s *CartService) Get(ctx context.Context, owner string) (*model.Cart, error) {
	return s.carts.Load(ctx, owner)
}

// AddItem merges the quantity into an existing line for the same product, or
// appends a new line with a snapshot of the product. Stock is deliberately
// not checked here; that is a presentation concern.
func (s *CartService) AddItem(ctx context.Context, owner string, productID uuid.UUID, quantity int) (*model.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	cart, err := s.carts.Load(ctx, owner)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, model.CartItem{
			ID:        uuid.New(),
			ProductID: productID,
			Product:   *product,
			Quantity:  quantity,
		})
	}

	return cart, s.persist(ctx, owner, cart)
}

// RemoveItem deletes the matching line item. An unknown item id is a no-op,
// not an error.
func (s *CartService) RemoveItem(ctx context.Context, owner string, itemID uuid.UUID) (*model.Cart, error) {
	cart, err := s.carts.Load(ctx, owner)
	if err != nil {
		return nil, err
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	return cart, s.persist(ctx, owner, cart)
}

// UpdateQuantity sets a line item's quantity exactly. Quantities below 1 are
// no-ops rather than removals.
func (s *CartService) UpdateQuantity(ctx context.Context, owner string, itemID uuid.UUID, quantity int) (*model.Cart, error) {
	cart, err := s.carts.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return cart, nil
	}

	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Quantity = quantity
			break
		}
	}

	return cart, s.persist(ctx, owner, cart)
}

// Clear drops the stored cart entirely rather than saving an empty one.
func (s *CartService) Clear(ctx context.Context, owner string) (*model.Cart, error) {
	if err := s.carts.Clear(ctx, owner); err != nil {
		return nil, err
	}
	return &model.Cart{}, nil
}

// Contains reports whether any line item references the product.
func (s *CartService) Contains(ctx context.Context, owner string, productID uuid.UUID) (bool, error) {
	cart, err := s.carts.Load(ctx, owner)
	if err != nil {
		return false, err
	}
	for _, item := range cart.Items {
		if item.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *CartService) persist(ctx context.Context, owner string, cart *model.Cart) error {
	cart.RecalculateSubtotal()
	return s.carts.Save(ctx, owner, cart)
}
