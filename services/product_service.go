package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"time"

	"github.com/newbienorbie/prostore/models"
	"github.com/newbienorbie/prostore/repositories"
)

const (
	LatestProductsLimit = 4
	ProductPageSize     = 12

	featuredCacheKey = "products:featured"
	featuredCacheTTL = 5 * time.Minute
)

type ProductService struct {
	products repositories.ProductStore
}

func NewProductService(products repositories.ProductStore) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) GetLatest(ctx context.Context) ([]models.Product, error) {
	return s.products.Latest(ctx, LatestProductsLimit)
}

// GetFeatured serves the featured banner products through a cache-aside redis
// layer; a cold or absent cache falls through to the database.
func (s *ProductService) GetFeatured(ctx context.Context) ([]models.Product, error) {
	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, featuredCacheKey).Result()
		if err == nil {
			var products []models.Product
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				return products, nil
			}
		}
	}

	products, err := s.products.Featured(ctx, LatestProductsLimit)
	if err != nil {
		return nil, err
	}

	if models.RedisClient != nil {
		if encoded, err := json.Marshal(products); err == nil {
			if err := models.RedisClient.Set(ctx, featuredCacheKey, encoded, featuredCacheTTL).Err(); err != nil {
				log.Printf("failed to cache featured products: %v", err)
			}
		}
	}
	return products, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.products.FindBySlug(ctx, slug)
}

func (s *ProductService) Search(ctx context.Context, q models.ProductQuery) (*models.PaginatedResponse, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = ProductPageSize
	}

	products, total, err := s.products.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	return &models.PaginatedResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
		Meta: models.PaginationMeta{
			Page:       q.Page,
			Limit:      q.Limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(q.Limit))),
		},
	}, nil
}

func (s *ProductService) GetCategories(ctx context.Context) ([]models.CategoryCount, error) {
	return s.products.Categories(ctx)
}

func (s *ProductService) Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:        req.Name,
		Slug:        req.Slug,
		Category:    req.Category,
		Brand:       req.Brand,
		Description: req.Description,
		Images:      req.Images,
		Price:       req.Price,
		Stock:       req.Stock,
		IsFeatured:  req.IsFeatured,
		Banner:      req.Banner,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateFeaturedCache(ctx)
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("product not found")
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Slug != "" {
		product.Slug = req.Slug
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Brand != "" {
		product.Brand = req.Brand
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if len(req.Images) > 0 {
		product.Images = req.Images
	}
	if req.Price != "" {
		product.Price = req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	if req.Banner != nil {
		product.Banner = req.Banner
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateFeaturedCache(ctx)
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateFeaturedCache(ctx)
	return nil
}

func (s *ProductService) invalidateFeaturedCache(ctx context.Context) {
	if models.RedisClient == nil {
		return
	}
	if err := models.RedisClient.Del(ctx, featuredCacheKey).Err(); err != nil {
		log.Printf("failed to invalidate featured products cache: %v", err)
	}
}
