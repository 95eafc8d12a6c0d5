package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopwave/storefront-api/internal/model"
	"github.com/shopwave/storefront-api/internal/repository"
)

// Categories is the fixed demo catalog taxonomy.
var Categories = []string{
	"Electronics", "Fashion", "Home & Kitchen", "Books",
	"Sports", "Office", "Beauty", "Toys",
}

// Stable IDs so the demo data is addressable across restarts.
var (
	AdminUserID    = uuid.MustParse("7b9ad24e-1a3b-4b6f-8c1d-0e2f3a4b5c6d")
	CustomerUserID = uuid.MustParse("c4d5e6f7-0809-4a1b-9c2d-3e4f5a6b7c8d")
)

// Apply loads the demo fixtures into the in-memory repositories. It stands in
// for a real backend's data set and is meant for manual testing.
func Apply(ctx context.Context, users repository.UserRepository, products repository.ProductRepository, orders repository.OrderRepository) error {
	if err := seedUsers(ctx, users); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	catalog, err := seedProducts(ctx, products)
	if err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if err := seedOrders(ctx, orders, catalog); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	return nil
}

func seedUsers(ctx context.Context, repo repository.UserRepository) error {
	users := []model.User{
		{
			ID:        AdminUserID,
			Email:     "admin@example.com",
			FirstName: "Admin",
			LastName:  "User",
			Role:      model.RoleAdmin,
			CreatedAt: date(2023, 1, 1),
		},
		{
			ID:        CustomerUserID,
			Email:     "customer@example.com",
			FirstName: "Customer",
			LastName:  "User",
			Role:      model.RoleCustomer,
			CreatedAt: date(2023, 1, 2),
		},
	}
	for i := range users {
		if err := repo.Create(ctx, &users[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedProducts(ctx context.Context, repo repository.ProductRepository) ([]model.Product, error) {
	reviews := []model.Review{
		{
			ID:        uuid.New(),
			UserID:    CustomerUserID,
			UserName:  "Customer User",
			Rating:    4,
			Comment:   "Great product, very happy with my purchase!",
			CreatedAt: date(2023, 2, 1),
		},
		{
			ID:        uuid.New(),
			UserID:    uuid.New(),
			UserName:  "Jane Doe",
			Rating:    5,
			Comment:   "Exceeded my expectations. Highly recommended!",
			CreatedAt: date(2023, 2, 2),
		},
	}

	products := []model.Product{
		{
			Name:        "Premium Wireless Headphones",
			Description: "Noise-cancelling wireless headphones with crystal-clear sound for music lovers and professionals.",
			Price:       decimal.RequireFromString("299.99"),
			Images: []string{
				"https://images.example.com/headphones-front.jpg",
				"https://images.example.com/headphones-side.jpg",
			},
			Category:  "Electronics",
			Stock:     50,
			Rating:    4.5,
			Reviews:   reviews,
			CreatedAt: date(2023, 1, 15),
		},
		{
			Name:        "Smart Watch Series X",
			Description: "Heart rate monitoring, sleep tracking, and notifications on your wrist.",
			Price:       decimal.RequireFromString("349.99"),
			Images:      []string{"https://images.example.com/watch.jpg"},
			Category:    "Electronics",
			Stock:       30,
			Rating:      4.7,
			CreatedAt:   date(2023, 1, 16),
		},
		{
			Name:        "Ultra HD 4K Smart TV",
			Description: "Stunning visuals and smart connectivity for your home entertainment.",
			Price:       decimal.RequireFromString("999.99"),
			Images:      []string{"https://images.example.com/tv.jpg"},
			Category:    "Electronics",
			Stock:       15,
			Rating:      4.8,
			CreatedAt:   date(2023, 1, 17),
		},
		{
			Name:        "Professional Camera Kit",
			Description: "Capture life's moments with precision. Includes multiple lenses and accessories.",
			Price:       decimal.RequireFromString("1299.99"),
			Images:      []string{"https://images.example.com/camera.jpg"},
			Category:    "Electronics",
			Stock:       10,
			Rating:      4.9,
			CreatedAt:   date(2023, 1, 18),
		},
		{
			Name:        "Designer Leather Bag",
			Description: "Handcrafted leather bag combining elegance with functionality.",
			Price:       decimal.RequireFromString("499.99"),
			Images:      []string{"https://images.example.com/bag.jpg"},
			Category:    "Fashion",
			Stock:       25,
			Rating:      4.6,
			CreatedAt:   date(2023, 1, 19),
		},
		{
			Name:        "Ergonomic Office Chair",
			Description: "All-day comfort with adjustable lumbar support and breathable mesh.",
			Price:       decimal.RequireFromString("249.99"),
			Images:      []string{"https://images.example.com/chair.jpg"},
			Category:    "Office",
			Stock:       40,
			Rating:      4.4,
			CreatedAt:   date(2023, 1, 20),
		},
		{
			Name:        "Stainless Steel Cookware Set",
			Description: "Ten-piece set for everyday cooking, dishwasher safe.",
			Price:       decimal.RequireFromString("189.99"),
			Images:      []string{"https://images.example.com/cookware.jpg"},
			Category:    "Home & Kitchen",
			Stock:       35,
			Rating:      4.3,
			CreatedAt:   date(2023, 1, 21),
		},
		{
			Name:        "Trail Running Shoes",
			Description: "Lightweight grip and cushioning for any terrain.",
			Price:       decimal.RequireFromString("129.99"),
			Images:      []string{"https://images.example.com/shoes.jpg"},
			Category:    "Sports",
			Stock:       60,
			Rating:      4.5,
			CreatedAt:   date(2023, 1, 22),
		},
	}
	for i := range products {
		if err := repo.Create(ctx, &products[i]); err != nil {
			return nil, err
		}
	}
	return products, nil
}

func seedOrders(ctx context.Context, repo repository.OrderRepository, products []model.Product) error {
	address := model.Address{
		FullName:   "Customer User",
		Line1:      "123 Main St",
		City:       "Anytown",
		State:      "Anystate",
		PostalCode: "12345",
		Country:    "United States",
		Phone:      "555-123-4567",
	}

	delivered := model.Order{
		UserID: CustomerUserID,
		Items: []model.OrderItem{
			orderItem(products[0], 1),
			orderItem(products[1], 1),
		},
		Total:           products[0].Price.Add(products[1].Price),
		Status:          model.OrderStatusDelivered,
		ShippingAddress: address,
		PaymentMethod:   "Credit Card",
		CreatedAt:       date(2023, 2, 15),
		UpdatedAt:       date(2023, 2, 20),
	}
	shipped := model.Order{
		UserID:          CustomerUserID,
		Items:           []model.OrderItem{orderItem(products[2], 1)},
		Total:           products[2].Price,
		Status:          model.OrderStatusShipped,
		ShippingAddress: address,
		PaymentMethod:   "PayPal",
		CreatedAt:       date(2023, 3, 1),
		UpdatedAt:       date(2023, 3, 5),
	}

	// Insert prepends, so the older order goes in first.
	if err := repo.Insert(ctx, &delivered); err != nil {
		return err
	}
	return repo.Insert(ctx, &shipped)
}

func orderItem(p model.Product, qty int) model.OrderItem {
	return model.OrderItem{
		ID:        uuid.New(),
		ProductID: p.ID,
		Product:   p,
		Quantity:  qty,
		Price:     p.Price,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
