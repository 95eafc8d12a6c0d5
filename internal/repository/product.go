package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shopwave/storefront-api/internal/model"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, q ProductQuery) ([]model.Product, int, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	Categories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}

type ProductQuery struct {
	Limit    int
	Offset   int
	Search   string
	Category string
	Sort     string // name | price | created_at
	Order    string // asc | desc
}

type memProductRepo struct {
	mu         sync.RWMutex
	products   map[uuid.UUID]model.Product
	categories []string
}

func NewProductRepository(categories []string) ProductRepository {
	return &memProductRepo{
		products:   make(map[uuid.UUID]model.Product),
		categories: categories,
	}
}

func (r *memProductRepo) Create(_ context.Context, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	now := time.Now().UTC()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	r.products[product.ID] = *product
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (r *memProductRepo) List(_ context.Context, q ProductQuery) ([]model.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []model.Product
	search := strings.ToLower(q.Search)
	for _, p := range r.products {
		if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		matched = append(matched, p)
	}

	sortProducts(matched, q.Sort, q.Order)

	total := len(matched)
	if q.Offset >= total {
		return nil, total, nil
	}
	end := q.Offset + q.Limit
	if q.Limit <= 0 || end > total {
		end = total
	}
	return matched[q.Offset:end], total, nil
}

func sortProducts(products []model.Product, by, order string) {
	less := func(i, j int) bool {
		switch by {
		case "name":
			return products[i].Name < products[j].Name
		case "price":
			return products[i].Price.LessThan(products[j].Price)
		default:
			return products[i].CreatedAt.Before(products[j].CreatedAt)
		}
	}
	if order != "asc" {
		sort.SliceStable(products, func(i, j int) bool { return less(j, i) })
		return
	}
	sort.SliceStable(products, less)
}

func (r *memProductRepo) Update(_ context.Context, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return nil
	}
	product.UpdatedAt = time.Now().UTC()
	r.products[product.ID] = *product
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) Categories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *memProductRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}
