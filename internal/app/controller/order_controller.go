package controller

import (
	"net/http"
	"strconv"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"github.com/eatyapp/eaty-backend/internal/app/service"
	apperrors "github.com/eatyapp/eaty-backend/internal/errors"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

func (ctrl *OrderController) PlaceOrder(c *gin.Context) {
	var req model.OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	id, err := ctrl.orderService.PlaceOrder(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order placed", "id": id})
}

// GetBusinessOrders lists a business's incoming orders for the panel
func (ctrl *OrderController) GetBusinessOrders(c *gin.Context) {
	orders, err := ctrl.orderService.GetBusinessOrders(c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetCustomerOrders lists a customer's order history
func (ctrl *OrderController) GetCustomerOrders(c *gin.Context) {
	orders, err := ctrl.orderService.GetCustomerOrders(c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (ctrl *OrderController) UpdateStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "Invalid order id")
		return
	}

	var req model.OrderStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	if err := ctrl.orderService.UpdateStatus(uint(orderID), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}
