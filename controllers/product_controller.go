package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/newbienorbie/prostore/models"
	"github.com/newbienorbie/prostore/services"
)

type ProductController struct {
	productService *services.ProductService
}

func NewProductController(productService *services.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// Search godoc
// @Summary Search products
// @Description Search the catalog with filters and pagination
// @Tags Products
// @Produce json
// @Param q query string false "Search by name"
// @Param category query string false "Filter by category"
// @Param price query string false "Price range min-max"
// @Param rating query string false "Minimum rating"
// @Param sort query string false "Sort: lowest, highest, rating, newest"
// @Param page query int false "Page number"
// @Success 200 {object} models.PaginatedResponse
// @Router /products [get]
func (ctrl *ProductController) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := ctrl.productService.Search(c.Request.Context(), models.ProductQuery{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Price:    c.Query("price"),
		Rating:   c.Query("rating"),
		Sort:     c.Query("sort"),
		Page:     page,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to search products",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLatest godoc
// @Summary Latest products
// @Description Get the newest products for the home page
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products/latest [get]
func (ctrl *ProductController) GetLatest(c *gin.Context) {
	products, err := ctrl.productService.GetLatest(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to load products",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
	})
}

// GetFeatured godoc
// @Summary Featured products
// @Description Get featured banner products
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products/featured [get]
func (ctrl *ProductController) GetFeatured(c *gin.Context) {
	products, err := ctrl.productService.GetFeatured(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to load products",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
	})
}

// GetCategories godoc
// @Summary List categories
// @Description Get all product categories with counts
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products/categories [get]
func (ctrl *ProductController) GetCategories(c *gin.Context) {
	categories, err := ctrl.productService.GetCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to load categories",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved successfully",
		Data:    categories,
	})
}

// GetByID godoc
// @Summary Get product
// @Description Get a product by id
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetByID(c *gin.Context) {
	product, err := ctrl.productService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product retrieved successfully",
		Data:    product,
	})
}

// GetBySlug godoc
// @Summary Get product by slug
// @Description Get a product by its slug
// @Tags Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/slug/{slug} [get]
func (ctrl *ProductController) GetBySlug(c *gin.Context) {
	product, err := ctrl.productService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product retrieved successfully",
		Data:    product,
	})
}

// Create godoc
// @Summary Create product
// @Description Create a new product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) Create(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	product, err := ctrl.productService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create product",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// Update godoc
// @Summary Update product
// @Description Update an existing product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.UpdateProductRequest true "Product"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) Update(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	product, err := ctrl.productService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// Delete godoc
// @Summary Delete product
// @Description Delete a product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) Delete(c *gin.Context) {
	if err := ctrl.productService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}
