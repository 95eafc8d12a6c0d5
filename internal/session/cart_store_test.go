package session

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopwave/storefront-api/internal/model"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	got, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got, "absent keys read as nil")

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	got, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, store.Delete(ctx, "k"))
	got, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCartKey(t *testing.T) {
	assert.Equal(t, "cart_guest", CartKey(""))
	assert.Equal(t, "cart_guest", CartKey(GuestKey))
	assert.Equal(t, "cart_abc", CartKey("abc"))
}

func TestCartStore_RoundTrip(t *testing.T) {
	carts := NewCartStore(NewMemoryStore())
	ctx := context.Background()

	cart := &model.Cart{
		Items: []model.CartItem{{
			ID:        uuid.New(),
			ProductID: uuid.New(),
			Product:   model.Product{Name: "Headphones", Price: decimal.RequireFromString("299.99")},
			Quantity:  2,
		}},
	}
	cart.RecalculateSubtotal()
	require.NoError(t, carts.Save(ctx, "guest", cart))

	loaded, err := carts.Load(ctx, "guest")
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "Headphones", loaded.Items[0].Product.Name)
	assert.True(t, loaded.Subtotal.Equal(decimal.RequireFromString("599.98")))
}

func TestCartStore_AbsentLoadsEmpty(t *testing.T) {
	carts := NewCartStore(NewMemoryStore())

	cart, err := carts.Load(context.Background(), "guest")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Subtotal.IsZero())
}

func TestCartStore_MalformedPayloadLoadsEmpty(t *testing.T) {
	store := NewMemoryStore()
	carts := NewCartStore(store)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, CartKey("guest"), []byte(`{"items": [{"quantity": "oops"}]}`)))

	cart, err := carts.Load(ctx, "guest")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartStore_Clear(t *testing.T) {
	carts := NewCartStore(NewMemoryStore())
	ctx := context.Background()

	cart := &model.Cart{}
	require.NoError(t, carts.Save(ctx, "guest", cart))
	require.NoError(t, carts.Clear(ctx, "guest"))

	loaded, err := carts.Load(ctx, "guest")
	require.NoError(t, err)
	assert.Empty(t, loaded.Items)
}
