package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newbienorbie/prostore/middleware"
	"github.com/newbienorbie/prostore/models"
	"github.com/newbienorbie/prostore/services"
)

type AuthController struct {
	authService *services.AuthService
	cartService *services.CartService
}

func NewAuthController(authService *services.AuthService, cartService *services.CartService) *AuthController {
	return &AuthController{authService: authService, cartService: cartService}
}

// SignUp godoc
// @Summary Register new user
// @Description Create a user account and sign in
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.SignUpRequest true "Sign Up Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/sign-up [post]
func (ctrl *AuthController) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	result, err := ctrl.authService.SignUp(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	ctrl.mergeSessionCart(c, result.User.ID)

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "User registered successfully",
		Data:    result,
	})
}

// SignIn godoc
// @Summary Sign in
// @Description Authenticate with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.SignInRequest true "Sign In Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/sign-in [post]
func (ctrl *AuthController) SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	result, err := ctrl.authService.SignIn(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Message: "Invalid email or password",
		})
		return
	}

	ctrl.mergeSessionCart(c, result.User.ID)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Signed in successfully",
		Data:    result,
	})
}

// SignOut godoc
// @Summary Sign out
// @Description Sign out and drop the user's cart
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/sign-out [post]
func (ctrl *AuthController) SignOut(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := ctrl.cartService.DeleteUserCart(c.Request.Context(), userID); err != nil {
		log.Printf("failed to delete cart on sign-out for user %s: %v", userID, err)
	}

	c.SetCookie(middleware.SessionCartCookie, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Signed out successfully",
	})
}

// mergeSessionCart reconciles the anonymous cart into the user's cart at the
// authentication transition. Best effort: a failed merge is logged and the
// sign-in still succeeds.
func (ctrl *AuthController) mergeSessionCart(c *gin.Context, userID string) {
	sessionCartID := c.GetString(middleware.SessionCartKey)
	if err := ctrl.cartService.MergeCarts(c.Request.Context(), sessionCartID, userID); err != nil {
		log.Printf("failed to merge session cart %s for user %s: %v", sessionCartID, userID, err)
	}
}
