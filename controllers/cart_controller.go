package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newbienorbie/prostore/middleware"
	"github.com/newbienorbie/prostore/models"
	"github.com/newbienorbie/prostore/services"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GetCart godoc
// @Summary Get my cart
// @Description Get the cart for the current user or session
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, err := ctrl.cartService.GetMyCart(c.Request.Context(), c.GetString(middleware.SessionCartKey), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to load cart",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved successfully",
		Data:    cart,
	})
}

// AddItem godoc
// @Summary Add item to cart
// @Description Add one unit of a product to the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body addItemRequest true "Product to add"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.Response
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Product is required",
		})
		return
	}

	result := ctrl.cartService.AddItem(c.Request.Context(), c.GetString(middleware.SessionCartKey), c.GetString("user_id"), req.ProductID)

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	c.JSON(status, result)
}

// RemoveItem godoc
// @Summary Remove item from cart
// @Description Remove one unit of a product from the cart
// @Tags Cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.Response
// @Router /cart/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	result := ctrl.cartService.RemoveItem(c.Request.Context(), c.GetString(middleware.SessionCartKey), c.GetString("user_id"), c.Param("productId"))

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	c.JSON(status, result)
}
