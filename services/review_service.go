package services

import (
	"context"

	"github.com/newbienorbie/prostore/models"
	"github.com/newbienorbie/prostore/repositories"
)

type ReviewService struct {
	reviews  repositories.ReviewStore
	products repositories.ProductStore
}

func NewReviewService(reviews repositories.ReviewStore, products repositories.ProductStore) *ReviewService {
	return &ReviewService{reviews: reviews, products: products}
}

// CreateOrUpdate writes the user's review for a product. One review per user
// per product; the product's aggregate rating is recomputed alongside.
func (s *ReviewService) CreateOrUpdate(ctx context.Context, userID, productID string, req models.CreateReviewRequest) (*models.Review, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	review := &models.Review{
		UserID:      userID,
		ProductID:   productID,
		Rating:      req.Rating,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.reviews.Upsert(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) GetProductReviews(ctx context.Context, productID string) ([]models.Review, error) {
	return s.reviews.ListByProduct(ctx, productID)
}

func (s *ReviewService) GetMyReview(ctx context.Context, userID, productID string) (*models.Review, error) {
	return s.reviews.FindByUserAndProduct(ctx, userID, productID)
}
