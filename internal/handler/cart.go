package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shopwave/storefront-api/internal/dto"
	"github.com/shopwave/storefront-api/internal/middleware"
	"github.com/shopwave/storefront-api/internal/model"
	"github.com/shopwave/storefront-api/internal/pricing"
	"github.com/shopwave/storefront-api/internal/service"
)

type CartHandler struct {
	svc    *service.CartService
	pricer *pricing.Calculator
}

func NewCartHandler(svc *service.CartService, pricer *pricing.Calculator) *CartHandler {
	return &CartHandler{svc: svc, pricer: pricer}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.svc.Get(c.Request.Context(), middleware.SessionKey(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, h.toCartResponse(cart))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	cart, err := h.svc.AddItem(c.Request.Context(), middleware.SessionKey(c), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, h.toCartResponse(cart))
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.svc.UpdateQuantity(c.Request.Context(), middleware.SessionKey(c), itemID, req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, h.toCartResponse(cart))
}

func (h *CartHandler) DeleteItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	cart, err := h.svc.RemoveItem(c.Request.Context(), middleware.SessionKey(c), itemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, h.toCartResponse(cart))
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if _, err := h.svc.Clear(c.Request.Context(), middleware.SessionKey(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) toCartResponse(cart *model.Cart) dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		image := ""
		if len(item.Product.Images) > 0 {
			image = item.Product.Images[0]
		}
		items = append(items, dto.CartItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Image:     image,
			Quantity:  item.Quantity,
		})
	}
	return dto.CartResponse{Items: items, Quote: h.pricer.Quote(cart.Subtotal)}
}
