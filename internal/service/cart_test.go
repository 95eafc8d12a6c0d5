package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopwave/storefront-api/internal/model"
	"github.com/shopwave/storefront-api/internal/repository"
	"github.com/shopwave/storefront-api/internal/session"
)

func newTestProduct(t *testing.T, repo repository.ProductRepository, price string) *model.Product {
	t.Helper()
	product := &model.Product{
		Name:     "Test Product",
		Price:    decimal.RequireFromString(price),
		Category: "Electronics",
		Stock:    100,
	}
	require.NoError(t, repo.Create(context.Background(), product))
	return product
}

func newTestCartService(t *testing.T) (*CartService, repository.ProductRepository, session.Store) {
	t.Helper()
	store := session.NewMemoryStore()
	productRepo := repository.NewProductRepository(nil)
	return NewCartService(session.NewCartStore(store), productRepo), productRepo, store
}

func TestCartService_AddItem(t *testing.T) {
	svc, productRepo, _ := newTestCartService(t)
	product := newTestProduct(t, productRepo, "19.99")

	cart, err := svc.AddItem(context.Background(), "guest", product.ID, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.True(t, cart.Subtotal.Equal(decimal.RequireFromString("39.98")))
}

func TestCartService_AddItem_MergesSameProduct(t *testing.T) {
	svc, productRepo, _ := newTestCartService(t)
	product := newTestProduct(t, productRepo, "10")

	_, err := svc.AddItem(context.Background(), "guest", product.ID, 2)
	require.NoError(t, err)
	cart, err := svc.AddItem(context.Background(), "guest", product.ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1, "same product merges into one line item")
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartService_AddItem_ProductNotFound(t *testing.T) {
	svc, _, _ := newTestCartService(t)
	_, err := svc.AddItem(context.Background(), "guest", uuid.New(), 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCartService_SubtotalAlwaysMatchesItems(t *testing.T) {
	svc, productRepo, _ := newTestCartService(t)
	ctx := context.Background()
	first := newTestProduct(t, productRepo, "12.50")
	second := newTestProduct(t, productRepo, "3.25")

	_, err := svc.AddItem(ctx, "guest", first.ID, 2)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "guest", second.ID, 4)
	require.NoError(t, err)

	cart, err = svc.UpdateQuantity(ctx, "guest", cart.Items[0].ID, 3)
	require.NoError(t, err)
	cart, err = svc.RemoveItem(ctx, "guest", cart.Items[1].ID)
	require.NoError(t, err)

	expected := decimal.Zero
	for _, item := range cart.Items {
		expected = expected.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	assert.True(t, cart.Subtotal.Equal(expected), "subtotal %s, items sum %s", cart.Subtotal, expected)
}

func TestCartService_UpdateQuantity_BelowOneIsNoOp(t *testing.T) {
	svc, productRepo, _ := newTestCartService(t)
	ctx := context.Background()
	product := newTestProduct(t, productRepo, "10")

	cart, err := svc.AddItem(ctx, "guest", product.ID, 2)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	for _, quantity := range []int{0, -1} {
		cart, err = svc.UpdateQuantity(ctx, "guest", itemID, quantity)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity, "quantity %d must not change the cart", quantity)
	}
}

func TestCartService_RemoveItem_AbsentIsNoOp(t *testing.T) {
	svc, productRepo, _ := newTestCartService(t)
	ctx := context.Background()
	product := newTestProduct(t, productRepo, "10")

	_, err := svc.AddItem(ctx, "guest", product.ID, 1)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "guest", uuid.New())
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCartService_Clear(t *testing.T) {
	svc, productRepo, store := newTestCartService(t)
	ctx := context.Background()
	product := newTestProduct(t, productRepo, "10")

	_, err := svc.AddItem(ctx, "guest", product.ID, 1)
	require.NoError(t, err)

	cart, err := svc.Clear(ctx, "guest")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Subtotal.IsZero())

	// The stored key is deleted, not overwritten with an empty cart.
	raw, err := store.Get(ctx, session.CartKey("guest"))
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestCartService_Contains(t *testing.T) {
	svc, productRepo, _ := newTestCartService(t)
	ctx := context.Background()
	product := newTestProduct(t, productRepo, "10")

	ok, err := svc.Contains(ctx, "guest", product.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.AddItem(ctx, "guest", product.ID, 1)
	require.NoError(t, err)

	ok, err = svc.Contains(ctx, "guest", product.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCartService_SessionKeysAreIsolated(t *testing.T) {
	svc, productRepo, _ := newTestCartService(t)
	ctx := context.Background()
	product := newTestProduct(t, productRepo, "10")

	_, err := svc.AddItem(ctx, "guest", product.ID, 1)
	require.NoError(t, err)

	// Switching to a user's session key swaps the entire cart contents.
	cart, err := svc.Get(ctx, uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_CorruptStoredPayloadLoadsEmpty(t *testing.T) {
	svc, _, store := newTestCartService(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, session.CartKey("guest"), []byte("{not json")))

	cart, err := svc.Get(ctx, "guest")
	require.NoError(t, err, "deserialization failures must not propagate")
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Subtotal.IsZero())
}
