package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopwave/storefront-api/internal/model"
)

func TestUserRepo_GetByEmail_CaseInsensitive(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &model.User{Email: "Admin@Example.com", Role: model.RoleAdmin}))

	user, err := repo.GetByEmail(ctx, "admin@example.COM")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, model.RoleAdmin, user.Role)
}

func TestUserRepo_GetByID_Missing(t *testing.T) {
	repo := NewUserRepository()
	user, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestProductRepo_ListPagination(t *testing.T) {
	repo := NewProductRepository(nil)
	ctx := context.Background()
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, repo.Create(ctx, &model.Product{
			Name: name, Price: decimal.NewFromInt(1), Category: "Electronics",
		}))
	}

	page, total, err := repo.List(ctx, ProductQuery{Limit: 2, Offset: 2, Sort: "name", Order: "asc"})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, "c", page[0].Name)

	beyond, total, err := repo.List(ctx, ProductQuery{Limit: 2, Offset: 10, Sort: "name", Order: "asc"})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, beyond)
}

func TestProductRepo_Delete(t *testing.T) {
	repo := NewProductRepository(nil)
	ctx := context.Background()
	product := &model.Product{Name: "Headphones", Price: decimal.NewFromInt(1)}
	require.NoError(t, repo.Create(ctx, product))

	require.NoError(t, repo.Delete(ctx, product.ID))
	assert.ErrorIs(t, repo.Delete(ctx, product.ID), ErrNotFound)
}

func TestOrderRepo_InsertPrepends(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()
	userID := uuid.New()

	first := &model.Order{UserID: userID, Status: model.OrderStatusDelivered}
	second := &model.Order{UserID: userID, Status: model.OrderStatusProcessing}
	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, second))

	orders, err := repo.ListByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID, "newest order comes first")
}

func TestOrderRepo_UpdateStatus_Missing(t *testing.T) {
	repo := NewOrderRepository()
	err := repo.UpdateStatus(context.Background(), uuid.New(), model.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrNotFound)
}
