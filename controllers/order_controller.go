package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/newbienorbie/prostore/models"
	"github.com/newbienorbie/prostore/services"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// PlaceOrder godoc
// @Summary Place order
// @Description Create an order from the current cart
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 201 {object} models.Response
// @Failure 400 {object} models.Response
// @Router /orders [post]
func (ctrl *OrderController) PlaceOrder(c *gin.Context) {
	order, failure := ctrl.orderService.PlaceOrder(c.Request.Context(), c.GetString("user_id"))
	if failure != nil {
		c.JSON(http.StatusBadRequest, failure)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Order placed successfully",
		Data:    order,
	})
}

// GetMyOrders godoc
// @Summary My orders
// @Description Get the authenticated user's order history
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} models.PaginatedResponse
// @Router /orders/my [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := ctrl.orderService.GetMyOrders(c.Request.Context(), c.GetString("user_id"), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to load orders",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetOrder godoc
// @Summary Get order
// @Description Get an order by id (owner or admin)
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	order, err := ctrl.orderService.GetOrder(c.Request.Context(), c.Param("id"), c.GetString("user_id"), c.GetString("user_role"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order retrieved successfully",
		Data:    order,
	})
}

// CreatePayPalOrder godoc
// @Summary Create PayPal order
// @Description Open a PayPal payment for an order
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders/{id}/paypal/create [post]
func (ctrl *OrderController) CreatePayPalOrder(c *gin.Context) {
	paypalOrderID, err := ctrl.orderService.CreatePayPalOrder(c.Request.Context(), c.Param("id"), c.GetString("user_id"), c.GetString("user_role"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "PayPal order created",
		Data:    gin.H{"paypal_order_id": paypalOrderID},
	})
}

// CapturePayPalOrder godoc
// @Summary Capture PayPal order
// @Description Capture an approved PayPal payment and mark the order paid
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body models.CapturePayPalRequest true "PayPal order id"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders/{id}/paypal/capture [post]
func (ctrl *OrderController) CapturePayPalOrder(c *gin.Context) {
	var req models.CapturePayPalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	err := ctrl.orderService.CapturePayPalOrder(c.Request.Context(), c.Param("id"), req.OrderID, c.GetString("user_id"), c.GetString("user_role"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Your order has been paid",
	})
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description Get all orders with pagination (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := ctrl.orderService.GetAllOrders(c.Request.Context(), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to load orders",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// MarkPaid godoc
// @Summary Mark order paid
// @Description Mark an order as paid (Admin, for cash on delivery)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id}/pay [patch]
func (ctrl *OrderController) MarkPaid(c *gin.Context) {
	if err := ctrl.orderService.MarkPaid(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Order not found or already paid",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order marked as paid",
	})
}

// MarkDelivered godoc
// @Summary Mark order delivered
// @Description Mark a paid order as delivered (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id}/deliver [patch]
func (ctrl *OrderController) MarkDelivered(c *gin.Context) {
	if err := ctrl.orderService.MarkDelivered(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Order not found or not paid yet",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order marked as delivered",
	})
}

// Delete godoc
// @Summary Delete order
// @Description Delete an order (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [delete]
func (ctrl *OrderController) Delete(c *gin.Context) {
	if err := ctrl.orderService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order deleted successfully",
	})
}

// GetOverview godoc
// @Summary Sales overview
// @Description Get order, product and user counts plus sales figures (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/overview [get]
func (ctrl *OrderController) GetOverview(c *gin.Context) {
	summary, err := ctrl.orderService.GetSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to load overview",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Overview retrieved successfully",
		Data:    summary,
	})
}
