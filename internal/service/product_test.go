package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopwave/storefront-api/internal/dto"
	"github.com/shopwave/storefront-api/internal/repository"
)

func newTestProductService(t *testing.T) *ProductService {
	t.Helper()
	return NewProductService(repository.NewProductRepository([]string{"Electronics", "Fashion"}), nil)
}

func createProduct(t *testing.T, svc *ProductService, name, category, price string) *dto.ProductResponse {
	t.Helper()
	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
		Category:    category,
		Stock:       10,
	})
	require.NoError(t, err)
	return resp
}

func TestProductService_GetByID(t *testing.T) {
	svc := newTestProductService(t)
	created := createProduct(t, svc, "Headphones", "Electronics", "299.99")

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Headphones", got.Name)
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	svc := newTestProductService(t)
	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_List_FiltersByCategory(t *testing.T) {
	svc := newTestProductService(t)
	createProduct(t, svc, "Headphones", "Electronics", "299.99")
	createProduct(t, svc, "Leather Bag", "Fashion", "499.99")

	resp, err := svc.List(context.Background(), dto.ListProductsRequest{
		Page: 1, Limit: 20, Category: "Fashion", Sort: "created_at", Order: "desc",
	})
	require.NoError(t, err)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Leather Bag", resp.Products[0].Name)
	assert.Equal(t, 1, resp.Total)
}

func TestProductService_List_SearchMatchesNameAndDescription(t *testing.T) {
	svc := newTestProductService(t)
	createProduct(t, svc, "Headphones", "Electronics", "299.99")
	createProduct(t, svc, "Smart Watch", "Electronics", "349.99")

	resp, err := svc.List(context.Background(), dto.ListProductsRequest{
		Page: 1, Limit: 20, Search: "headph", Sort: "created_at", Order: "desc",
	})
	require.NoError(t, err)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Headphones", resp.Products[0].Name)
}

func TestProductService_List_SortsByPrice(t *testing.T) {
	svc := newTestProductService(t)
	createProduct(t, svc, "Cheap", "Electronics", "10")
	createProduct(t, svc, "Pricey", "Electronics", "1000")

	resp, err := svc.List(context.Background(), dto.ListProductsRequest{
		Page: 1, Limit: 20, Sort: "price", Order: "asc",
	})
	require.NoError(t, err)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "Cheap", resp.Products[0].Name)
}

func TestProductService_Update(t *testing.T) {
	svc := newTestProductService(t)
	created := createProduct(t, svc, "Headphones", "Electronics", "299.99")

	newPrice := decimal.RequireFromString("249.99")
	updated, err := svc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(newPrice))
	assert.Equal(t, "Headphones", updated.Name, "unset fields stay untouched")
}

func TestProductService_Delete_NotFound(t *testing.T) {
	svc := newTestProductService(t)
	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_Categories(t *testing.T) {
	svc := newTestProductService(t)
	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Electronics", "Fashion"}, categories)
}
