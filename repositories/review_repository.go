package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/newbienorbie/prostore/config"
	"github.com/newbienorbie/prostore/models"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

// Upsert writes the user's review for a product (one per user per product) and
// recomputes the product's aggregate rating in the same transaction.
func (r *ReviewRepository) Upsert(ctx context.Context, review *models.Review) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO reviews (user_id, product_id, rating, title, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET rating = EXCLUDED.rating, title = EXCLUDED.title, description = EXCLUDED.description
		RETURNING id, created_at
	`, review.UserID, review.ProductID, review.Rating, review.Title, review.Description, time.Now(),
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE products SET
			rating = (SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE product_id = $1),
			num_reviews = (SELECT COUNT(*) FROM reviews WHERE product_id = $1)
		WHERE id = $1
	`, review.ProductID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	rows, err := config.DB.Query(ctx, `
		SELECT r.id, r.user_id, u.name, r.product_id, r.rating, r.title, r.description, r.created_at
		FROM reviews r JOIN users u ON r.user_id = u.id
		WHERE r.product_id = $1 ORDER BY r.created_at DESC
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		err := rows.Scan(&rev.ID, &rev.UserID, &rev.UserName, &rev.ProductID, &rev.Rating, &rev.Title, &rev.Description, &rev.CreatedAt)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) FindByUserAndProduct(ctx context.Context, userID, productID string) (*models.Review, error) {
	var rev models.Review
	err := config.DB.QueryRow(ctx, `
		SELECT id, user_id, product_id, rating, title, description, created_at
		FROM reviews WHERE user_id = $1 AND product_id = $2
	`, userID, productID).Scan(&rev.ID, &rev.UserID, &rev.ProductID, &rev.Rating, &rev.Title, &rev.Description, &rev.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rev, nil
}
