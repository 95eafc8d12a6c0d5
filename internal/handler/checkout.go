package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopwave/storefront-api/internal/dto"
	"github.com/shopwave/storefront-api/internal/middleware"
	"github.com/shopwave/storefront-api/internal/service"
)

type CheckoutHandler struct {
	svc     *service.CheckoutService
	cartSvc *service.CartService
	cartH   *CartHandler
}

func NewCheckoutHandler(svc *service.CheckoutService, cartSvc *service.CartService, cartH *CartHandler) *CheckoutHandler {
	return &CheckoutHandler{svc: svc, cartSvc: cartSvc, cartH: cartH}
}

func (h *CheckoutHandler) GetState(c *gin.Context) {
	owner := middleware.SessionKey(c)
	step, address, method, upiStatus := h.svc.State(owner)

	resp := dto.CheckoutStateResponse{
		Step:          string(step),
		PaymentMethod: method,
		UpiStatus:     upiStatus,
	}
	if address.FullName != "" {
		addr := address
		resp.ShippingAddress = &addr
	}

	cart, err := h.cartSvc.Get(c.Request.Context(), owner)
	if err == nil {
		cartResp := h.cartH.toCartResponse(cart)
		resp.Cart = &cartResp
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CheckoutHandler) SubmitShipping(c *gin.Context) {
	var req dto.ShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.svc.SubmitShipping(c.Request.Context(), middleware.SessionKey(c), req)
	if err != nil {
		if errors.Is(err, service.ErrIncompleteAddress) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "please fill in all required shipping fields"})
			return
		}
		if errors.Is(err, service.ErrWrongStep) {
			c.JSON(http.StatusConflict, gin.H{"error": "not at the shipping step"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"step": string(service.StepPayment)})
}

func (h *CheckoutHandler) SubmitPayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.svc.SubmitPayment(c.Request.Context(), middleware.SessionKey(c), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPayment) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "please fill in all required payment fields"})
			return
		}
		if errors.Is(err, service.ErrWrongStep) {
			c.JSON(http.StatusConflict, gin.H{"error": "not at the payment step"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"step": string(service.StepReview)})
}

func (h *CheckoutHandler) Back(c *gin.Context) {
	owner := middleware.SessionKey(c)
	h.svc.Back(owner)
	step, _, _, _ := h.svc.State(owner)
	c.JSON(http.StatusOK, gin.H{"step": string(step)})
}

func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	order, err := h.svc.PlaceOrder(c.Request.Context(), middleware.SessionKey(c), middleware.GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongStep):
			c.JSON(http.StatusConflict, gin.H{"error": "not at the review step"})
		case errors.Is(err, service.ErrPaymentPending):
			c.JSON(http.StatusConflict, gin.H{"error": "payment confirmation still pending"})
		case errors.Is(err, service.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}
