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

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const userColumns = `id, name, email, password, role, address, payment_method, created_at, updated_at`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(config.DB.QueryRow(ctx, query, email))
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(config.DB.QueryRow(ctx, query, id))
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, created_at, updated_at
	`
	return config.DB.QueryRow(ctx, query,
		user.Name, user.Email, user.Password, user.Role, time.Now(),
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) UpdateName(ctx context.Context, id, name string) error {
	return r.exec(ctx, `UPDATE users SET name = $1, updated_at = $2 WHERE id = $3`, name, time.Now(), id)
}

func (r *UserRepository) UpdateAddress(ctx context.Context, id string, address *models.ShippingAddress) error {
	addressJSON, err := json.Marshal(address)
	if err != nil {
		return fmt.Errorf("failed to encode address: %w", err)
	}
	return r.exec(ctx, `UPDATE users SET address = $1, updated_at = $2 WHERE id = $3`, addressJSON, time.Now(), id)
}

func (r *UserRepository) UpdatePaymentMethod(ctx context.Context, id, method string) error {
	return r.exec(ctx, `UPDATE users SET payment_method = $1, updated_at = $2 WHERE id = $3`, method, time.Now(), id)
}

func (r *UserRepository) UpdateNameAndRole(ctx context.Context, id, name, role string) error {
	return r.exec(ctx, `UPDATE users SET name = $1, role = $2, updated_at = $3 WHERE id = $4`, name, role, time.Now(), id)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.exec(ctx, `DELETE FROM users WHERE id = $1`, id)
}

func (r *UserRepository) List(ctx context.Context, query string, page, limit int) ([]models.User, int, error) {
	where := ""
	args := []interface{}{}
	if query != "" && query != "all" {
		args = append(args, "%"+query+"%")
		where = " WHERE name ILIKE $1"
	}

	var total int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM users"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit)
	limitPos := len(args)
	args = append(args, (page-1)*limit)
	offsetPos := len(args)

	listQuery := fmt.Sprintf("SELECT %s FROM users%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		userColumns, where, limitPos, offsetPos)

	rows, err := config.DB.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := r.scanUserFromRows(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *user)
	}
	return users, total, rows.Err()
}

func (r *UserRepository) exec(ctx context.Context, query string, args ...interface{}) error {
	tag, err := config.DB.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	var addressJSON []byte
	var paymentMethod *string

	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &addressJSON, &paymentMethod, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.decodeUser(&u, addressJSON, paymentMethod)
}

func (r *UserRepository) scanUserFromRows(rows pgx.Rows) (*models.User, error) {
	var u models.User
	var addressJSON []byte
	var paymentMethod *string

	err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &addressJSON, &paymentMethod, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return r.decodeUser(&u, addressJSON, paymentMethod)
}

func (r *UserRepository) decodeUser(u *models.User, addressJSON []byte, paymentMethod *string) (*models.User, error) {
	if len(addressJSON) > 0 {
		var address models.ShippingAddress
		if err := json.Unmarshal(addressJSON, &address); err != nil {
			return nil, fmt.Errorf("failed to decode address: %w", err)
		}
		u.Address = &address
	}
	if paymentMethod != nil {
		u.PaymentMethod = *paymentMethod
	}
	return u, nil
}
