package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newbienorbie/prostore/models"
	"github.com/newbienorbie/prostore/services"
)

type ReviewController struct {
	reviewService *services.ReviewService
}

func NewReviewController(reviewService *services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// CreateReview godoc
// @Summary Create or update review
// @Description Write a review for a product; a second submission replaces the first
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.CreateReviewRequest true "Review"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/reviews [post]
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid review",
			Error:   err.Error(),
		})
		return
	}

	review, err := ctrl.reviewService.CreateOrUpdate(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to save review",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Review updated successfully",
		Data:    review,
	})
}

// GetProductReviews godoc
// @Summary List reviews
// @Description Get all reviews for a product, newest first
// @Tags Reviews
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /products/{id}/reviews [get]
func (ctrl *ReviewController) GetProductReviews(c *gin.Context) {
	reviews, err := ctrl.reviewService.GetProductReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to load reviews",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Reviews retrieved successfully",
		Data:    reviews,
	})
}

// GetMyReview godoc
// @Summary Get my review
// @Description Get the authenticated user's review for a product
// @Tags Reviews
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/reviews/me [get]
func (ctrl *ReviewController) GetMyReview(c *gin.Context) {
	review, err := ctrl.reviewService.GetMyReview(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Review not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Review retrieved successfully",
		Data:    review,
	})
}
