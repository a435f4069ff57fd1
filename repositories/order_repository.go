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

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// CreateFromCart places an order in a single transaction: stock is checked and
// decremented row by row under FOR UPDATE, the order and its item snapshot are
// inserted, and the cart is emptied.
func (r *OrderRepository) CreateFromCart(ctx context.Context, order *models.Order, cart *models.Cart) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, item := range cart.Items {
		var stock int
		err := tx.QueryRow(ctx, `SELECT stock FROM products WHERE id = $1 FOR UPDATE`, item.ProductID).Scan(&stock)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: %s", models.ErrProductNotFound, item.Name)
		}
		if err != nil {
			return err
		}
		if stock < item.Qty {
			return fmt.Errorf("%w: %s", models.ErrOutOfStock, item.Name)
		}
		if _, err := tx.Exec(ctx, `UPDATE products SET stock = stock - $1 WHERE id = $2`, item.Qty, item.ProductID); err != nil {
			return err
		}
	}

	addressJSON, err := json.Marshal(order.Address)
	if err != nil {
		return fmt.Errorf("failed to encode address: %w", err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, shipping_address, payment_method, items_price, shipping_price, tax_price, total_price, created_at)
		VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6::numeric, $7::numeric, $8)
		RETURNING id, created_at
	`,
		order.UserID, addressJSON, order.PaymentMethod,
		order.ItemsPrice, order.ShippingPrice, order.TaxPrice, order.TotalPrice, time.Now(),
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}

	for _, item := range cart.Items {
		_, err := tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, name, slug, image, price, qty)
			VALUES ($1, $2, $3, $4, $5, $6::numeric, $7)
		`, order.ID, item.ProductID, item.Name, item.Slug, item.Image, item.Price, item.Qty)
		if err != nil {
			return err
		}
		order.Items = append(order.Items, models.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Slug:      item.Slug,
			Image:     item.Image,
			Price:     item.Price,
			Qty:       item.Qty,
		})
	}

	_, err = tx.Exec(ctx, `
		UPDATE carts
		SET items = '[]', items_price = 0, shipping_price = 0, tax_price = 0, total_price = 0,
		    version = version + 1, updated_at = $1
		WHERE id = $2
	`, time.Now(), cart.ID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

const orderColumns = `o.id, o.user_id, u.name, u.email, o.shipping_address, o.payment_method, o.payment_result,
	o.items_price::text, o.shipping_price::text, o.tax_price::text, o.total_price::text,
	o.is_paid, o.paid_at, o.is_delivered, o.delivered_at, o.created_at`

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o JOIN users u ON o.user_id = u.id WHERE o.id = $1`
	order, err := r.scanOrder(config.DB.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	rows, err := config.DB.Query(ctx, `
		SELECT order_id, product_id, name, slug, image, price::text, qty
		FROM order_items WHERE order_id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.OrderID, &item.ProductID, &item.Name, &item.Slug, &item.Image, &item.Price, &item.Qty); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return order, rows.Err()
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string, page, limit int) ([]models.Order, int, error) {
	var total int
	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + orderColumns + ` FROM orders o JOIN users u ON o.user_id = u.id
		WHERE o.user_id = $1 ORDER BY o.created_at DESC LIMIT $2 OFFSET $3`
	rows, err := config.DB.Query(ctx, query, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders, err := r.scanOrders(rows)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepository) List(ctx context.Context, page, limit int) ([]models.Order, int, error) {
	var total int
	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + orderColumns + ` FROM orders o JOIN users u ON o.user_id = u.id
		ORDER BY o.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := config.DB.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders, err := r.scanOrders(rows)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepository) SetPaymentResult(ctx context.Context, id string, result *models.PaymentResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode payment result: %w", err)
	}
	return r.exec(ctx, `UPDATE orders SET payment_result = $1 WHERE id = $2`, resultJSON, id)
}

func (r *OrderRepository) MarkPaid(ctx context.Context, id string, result *models.PaymentResult) error {
	var resultJSON []byte
	if result != nil {
		var err error
		resultJSON, err = json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode payment result: %w", err)
		}
	}
	return r.exec(ctx, `
		UPDATE orders SET is_paid = true, paid_at = $1, payment_result = COALESCE($2, payment_result)
		WHERE id = $3 AND is_paid = false
	`, time.Now(), resultJSON, id)
}

func (r *OrderRepository) MarkDelivered(ctx context.Context, id string) error {
	return r.exec(ctx, `
		UPDATE orders SET is_delivered = true, delivered_at = $1
		WHERE id = $2 AND is_paid = true
	`, time.Now(), id)
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	return r.exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
}

func (r *OrderRepository) Summary(ctx context.Context) (*models.SalesSummary, error) {
	summary := &models.SalesSummary{}

	err := config.DB.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM users),
			(SELECT COALESCE(SUM(total_price), 0)::text FROM orders)
	`).Scan(&summary.OrdersCount, &summary.ProductsCount, &summary.UsersCount, &summary.TotalSales)
	if err != nil {
		return nil, err
	}

	rows, err := config.DB.Query(ctx, `
		SELECT to_char(created_at, 'MM/YY') AS month, SUM(total_price)::text
		FROM orders GROUP BY month ORDER BY month DESC LIMIT 12
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var m models.MonthlySales
		if err := rows.Scan(&m.Month, &m.TotalSales); err != nil {
			return nil, err
		}
		summary.MonthlySales = append(summary.MonthlySales, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	latest, _, err := r.List(ctx, 1, 6)
	if err != nil {
		return nil, err
	}
	summary.LatestOrders = latest

	return summary, nil
}

func (r *OrderRepository) exec(ctx context.Context, query string, args ...interface{}) error {
	tag, err := config.DB.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) scanOrder(row pgx.Row) (*models.Order, error) {
	var o models.Order
	var addressJSON, resultJSON []byte

	err := row.Scan(
		&o.ID, &o.UserID, &o.UserName, &o.UserEmail, &addressJSON, &o.PaymentMethod, &resultJSON,
		&o.ItemsPrice, &o.ShippingPrice, &o.TaxPrice, &o.TotalPrice,
		&o.IsPaid, &o.PaidAt, &o.IsDelivered, &o.DeliveredAt, &o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.decodeOrder(&o, addressJSON, resultJSON)
}

func (r *OrderRepository) scanOrders(rows pgx.Rows) ([]models.Order, error) {
	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		var addressJSON, resultJSON []byte
		err := rows.Scan(
			&o.ID, &o.UserID, &o.UserName, &o.UserEmail, &addressJSON, &o.PaymentMethod, &resultJSON,
			&o.ItemsPrice, &o.ShippingPrice, &o.TaxPrice, &o.TotalPrice,
			&o.IsPaid, &o.PaidAt, &o.IsDelivered, &o.DeliveredAt, &o.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		decoded, err := r.decodeOrder(&o, addressJSON, resultJSON)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *decoded)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) decodeOrder(o *models.Order, addressJSON, resultJSON []byte) (*models.Order, error) {
	if len(addressJSON) > 0 {
		if err := json.Unmarshal(addressJSON, &o.Address); err != nil {
			return nil, fmt.Errorf("failed to decode address: %w", err)
		}
	}
	if len(resultJSON) > 0 {
		var result models.PaymentResult
		if err := json.Unmarshal(resultJSON, &result); err != nil {
			return nil, fmt.Errorf("failed to decode payment result: %w", err)
		}
		o.PaymentResult = &result
	}
	return o, nil
}
