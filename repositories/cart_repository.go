package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/newbienorbie/prostore/config"
	"github.com/newbienorbie/prostore/models"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

const cartColumns = `id, user_id, session_cart_id, items,
	items_price::text, shipping_price::text, tax_price::text, total_price::text,
	version, created_at, updated_at`

func (r *CartRepository) FindBySessionID(ctx context.Context, sessionCartID string) (*models.Cart, error) {
	query := `SELECT ` + cartColumns + ` FROM carts WHERE session_cart_id = $1`
	return r.scanCart(config.DB.QueryRow(ctx, query, sessionCartID))
}

func (r *CartRepository) FindByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	query := `SELECT ` + cartColumns + ` FROM carts WHERE user_id = $1`
	return r.scanCart(config.DB.QueryRow(ctx, query, userID))
}

func (r *CartRepository) Create(ctx context.Context, cart *models.Cart) error {
	itemsJSON, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("failed to encode cart items: %w", err)
	}

	query := `
		INSERT INTO carts (user_id, session_cart_id, items, items_price, shipping_price, tax_price, total_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6::numeric, $7::numeric, $8, $8)
		RETURNING id, version, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		cart.UserID, cart.SessionCartID, itemsJSON,
		cart.ItemsPrice, cart.ShippingPrice, cart.TaxPrice, cart.TotalPrice, now,
	).Scan(&cart.ID, &cart.Version, &cart.CreatedAt, &cart.UpdatedAt)
}

// Update persists items and prices with a compare-and-swap on version. A stale
// version means another request won the read-modify-write race.
func (r *CartRepository) Update(ctx context.Context, cart *models.Cart) error {
	itemsJSON, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("failed to encode cart items: %w", err)
	}

	query := `
		UPDATE carts
		SET items = $1, items_price = $2::numeric, shipping_price = $3::numeric,
		    tax_price = $4::numeric, total_price = $5::numeric,
		    version = version + 1, updated_at = $6
		WHERE id = $7 AND version = $8
	`
	tag, err := config.DB.Exec(ctx, query,
		itemsJSON, cart.ItemsPrice, cart.ShippingPrice, cart.TaxPrice, cart.TotalPrice,
		time.Now(), cart.ID, cart.Version,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrCartConflict
	}
	cart.Version++
	return nil
}

// TransferToUser re-owns a session cart by a user and clears the session
// association. Items and totals are untouched.
func (r *CartRepository) TransferToUser(ctx context.Context, cartID, userID string) error {
	query := `UPDATE carts SET user_id = $1, session_cart_id = NULL, updated_at = $2 WHERE id = $3`
	tag, err := config.DB.Exec(ctx, query, userID, time.Now(), cartID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrCartNotFound
	}
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, cartID string) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM carts WHERE id = $1`, cartID)
	return err
}

func (r *CartRepository) scanCart(row pgx.Row) (*models.Cart, error) {
	var cart models.Cart
	var itemsJSON []byte

	err := row.Scan(
		&cart.ID, &cart.UserID, &cart.SessionCartID, &itemsJSON,
		&cart.ItemsPrice, &cart.ShippingPrice, &cart.TaxPrice, &cart.TotalPrice,
		&cart.Version, &cart.CreatedAt, &cart.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &cart.Items); err != nil {
		return nil, fmt.Errorf("failed to decode cart items: %w", err)
	}
	return &cart, nil
}
