package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shopwave/storefront-api/internal/dto"
	"github.com/shopwave/storefront-api/internal/model"
	"github.com/shopwave/storefront-api/internal/service"
)

// AdminHandler serves the dashboard and order management endpoints.
type AdminHandler struct {
	orderService  *service.OrderService
	reportService *service.ReportService
}

func NewAdminHandler(orderService *service.OrderService, reportService *service.ReportService) *AdminHandler {
	return &AdminHandler{orderService: orderService, reportService: reportService}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	resp, err := h.reportService.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	status := model.OrderStatus(c.Query("status"))

	orders, err := h.orderService.ListAll(c.Request.Context(), status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, toOrderResponse(&o))
	}
	c.JSON(http.StatusOK, dto.OrderListResponse{Orders: items, Total: len(items)})
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.orderService.UpdateStatus(c.Request.Context(), orderID, req.Status); err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
			return
		}
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}
