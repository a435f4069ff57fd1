package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/newbienorbie/prostore/models"
	"github.com/newbienorbie/prostore/services"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetProfile godoc
// @Summary Get profile
// @Description Get the authenticated user's profile
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/profile [get]
func (ctrl *UserController) GetProfile(c *gin.Context) {
	user, err := ctrl.userService.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile retrieved successfully",
		Data:    user,
	})
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Update the authenticated user's name
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Profile"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/profile [patch]
func (ctrl *UserController) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.userService.UpdateProfile(c.Request.Context(), c.GetString("user_id"), req); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update profile",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "User updated successfully",
	})
}

// UpdateAddress godoc
// @Summary Update shipping address
// @Description Set the authenticated user's shipping address
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ShippingAddress true "Shipping address"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/profile/address [put]
func (ctrl *UserController) UpdateAddress(c *gin.Context) {
	var address models.ShippingAddress
	if err := c.ShouldBindJSON(&address); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid address",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.userService.UpdateAddress(c.Request.Context(), c.GetString("user_id"), &address); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update address",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "User updated successfully",
	})
}

// UpdatePaymentMethod godoc
// @Summary Update payment method
// @Description Set the authenticated user's preferred payment method
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.PaymentMethodRequest true "Payment method"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/profile/payment-method [put]
func (ctrl *UserController) UpdatePaymentMethod(c *gin.Context) {
	var req models.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Payment method is required",
		})
		return
	}

	if err := ctrl.userService.UpdatePaymentMethod(c.Request.Context(), c.GetString("user_id"), req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Payment method updated successfully",
	})
}

// GetAllUsers godoc
// @Summary Get all users
// @Description Get all users with pagination (Admin)
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param q query string false "Search by name"
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/users [get]
func (ctrl *UserController) GetAllUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := ctrl.userService.GetAllUsers(c.Request.Context(), c.Query("q"), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to load users",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetUserByID godoc
// @Summary Get user
// @Description Get a user by id (Admin)
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/users/{id} [get]
func (ctrl *UserController) GetUserByID(c *gin.Context) {
	user, err := ctrl.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "User retrieved successfully",
		Data:    user,
	})
}

// UpdateUser godoc
// @Summary Update user
// @Description Update a user's name and role (Admin)
// @Tags Admin - Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body models.UpdateUserRequest true "User"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/users/{id} [patch]
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.userService.UpdateUser(c.Request.Context(), c.Param("id"), req); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "User updated successfully",
	})
}

// DeleteUser godoc
// @Summary Delete user
// @Description Delete a user (Admin)
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/users/{id} [delete]
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	if err := ctrl.userService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "User deleted successfully",
	})
}
