package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopwave/storefront-api/internal/model"
)

// CartStore serializes carts into the session store, one key per session.
type CartStore struct {
	store Store
}

func NewCartStore(store Store) *CartStore {
	return &CartStore{store: store}
}

// CartKey derives the storage partition for a session owner. Empty owners
// fall back to the guest partition.
func CartKey(owner string) string {
	if owner == "" {
		owner = GuestKey
	}
	return "cart_" + owner
}

// Load reads the cart for owner. Absent and malformed payloads both load as
// an empty cart; deserialization failures are never fatal.
func (s *CartStore) Load(ctx context.Context, owner string) (*model.Cart, error) {
	raw, err := s.store.Get(ctx, CartKey(owner))
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	cart := &model.Cart{}
	if len(raw) == 0 {
		cart.RecalculateSubtotal()
		return cart, nil
	}
	if err := json.Unmarshal(raw, cart); err != nil {
		// Corrupt stored payload: degrade to an empty cart.
		empty := &model.Cart{}
		empty.RecalculateSubtotal()
		return empty, nil
	}
	cart.RecalculateSubtotal()
	return cart, nil
}

func (s *CartStore) Save(ctx context.Context, owner string, cart *model.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.store.Set(ctx, CartKey(owner), raw); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *CartStore) Clear(ctx context.Context, owner string) error {
	if err := s.store.Delete(ctx, CartKey(owner)); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
