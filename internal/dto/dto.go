package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopwave/storefront-api/internal/model"
	"github.com/shopwave/storefront-api/internal/pricing"
)

// --- Auth ---

// Password is accepted but never verified: the demo auth layer matches the
// email against the seeded user list and trusts the client.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
}

// --- Product ---

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Images      []string        `json:"images"`
	Category    string          `json:"category" binding:"required"`
	Stock       int             `json:"stock" binding:"min=0"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Images      []string         `json:"images"`
	Category    *string          `json:"category"`
	Stock       *int             `json:"stock"`
}

type ListProductsRequest struct {
	Page     int    `form:"page,default=1" binding:"min=1"`
	Limit    int    `form:"limit,default=20" binding:"min=1,max=100"`
	Search   string `form:"search"`
	Category string `form:"category"`
	Sort     string `form:"sort,default=created_at" binding:"oneof=name price created_at"`
	Order    string `form:"order,default=desc" binding:"oneof=asc desc"`
}

type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	Rating      float64         `json:"rating"`
	Reviews     []model.Review  `json:"reviews,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

// --- Cart ---

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"omitempty,min=1"`
}

// Quantity is unbounded here on purpose: values below 1 are treated as
// no-ops by the cart service, not as request errors.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
	Quantity  int             `json:"quantity"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Quote pricing.Quote      `json:"quote"`
}

// --- Checkout ---

type ShippingRequest struct {
	FullName   string `json:"full_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

type PaymentRequest struct {
	Method     string `json:"method" binding:"required,oneof=credit_card upi paypal"`
	CardNumber string `json:"card_number"`
	CardHolder string `json:"card_holder"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
	UpiID      string `json:"upi_id"`
}

type CheckoutStateResponse struct {
	Step            string         `json:"step"`
	ShippingAddress *model.Address `json:"shipping_address,omitempty"`
	PaymentMethod   string         `json:"payment_method,omitempty"`
	UpiStatus       string         `json:"upi_status,omitempty"`
	Cart            *CartResponse  `json:"cart,omitempty"`
}

// --- Order ---

type OrderItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	UserID          uuid.UUID           `json:"user_id"`
	Items           []OrderItemResponse `json:"items"`
	Total           decimal.Decimal     `json:"total"`
	Status          model.OrderStatus   `json:"status"`
	StatusInfo      model.StatusInfo    `json:"status_info"`
	ShippingAddress model.Address       `json:"shipping_address"`
	PaymentMethod   string              `json:"payment_method"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

type UpdateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status" binding:"required"`
}

// --- Admin dashboard ---

type DashboardResponse struct {
	OrderCount     int                       `json:"order_count"`
	ProductCount   int                       `json:"product_count"`
	UserCount      int                       `json:"user_count"`
	Revenue        decimal.Decimal           `json:"revenue"`
	OrdersByStatus map[model.OrderStatus]int `json:"orders_by_status"`
}
