package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"astroportal/internal/models/request_models"
	"astroportal/internal/services"
	"astroportal/pkg/utils"
)

type OrderController struct {
	orderService services.OrderServiceInterface
}

func NewOrderController(orderService services.OrderServiceInterface) *OrderController {
	return &OrderController{orderService: orderService}
}

// CreateOrder godoc
// @Summary Order a horoscope
// @Description Places a pending order, debits credits and queues generation
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body request_models.CreateOrderRequest true "Order payload"
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders [post]
func (o *OrderController) CreateOrder(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	var req request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	order, err := o.orderService.CreateOrder(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Order created successfully")
}

// CancelOrder godoc
// @Summary Cancel a pending order
// @Tags Orders
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders/{orderId}/cancel [post]
func (o *OrderController) CancelOrder(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	if err := o.orderService.CancelOrder(c.Request.Context(), accountID, orderID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Order cancelled successfully")
}

// GetOrderById godoc
// @Summary Get one of the caller's orders
// @Tags Orders
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders/{orderId} [get]
func (o *OrderController) GetOrderById(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := o.orderService.GetOrderById(c.Request.Context(), accountID, orderID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Order fetched successfully")
}

// ListOrders godoc
// @Summary List the caller's orders
// @Tags Orders
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders [get]
func (o *OrderController) ListOrders(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	orders, err := o.orderService.ListOrders(c.Request.Context(), accountID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, orders, "Orders fetched successfully")
}

// GetHistory godoc
// @Summary Get the caller's order and horoscope history feed
// @Tags Orders
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders/history [get]
func (o *OrderController) GetHistory(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	history, err := o.orderService.GetHistory(c.Request.Context(), accountID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, history, "History fetched successfully")
}
