package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/newbienorbie/prostore/config"
	"github.com/newbienorbie/prostore/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `id, name, slug, category, brand, description, images,
	price::text, stock, rating::text, num_reviews, is_featured, banner, created_at`

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanProduct(config.DB.QueryRow(ctx, query, id))
}

func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1`
	return r.scanProduct(config.DB.QueryRow(ctx, query, slug))
}

func (r *ProductRepository) Latest(ctx context.Context, limit int) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1`
	rows, err := config.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanProducts(rows)
}

func (r *ProductRepository) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_featured = true ORDER BY created_at DESC LIMIT $1`
	rows, err := config.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanProducts(rows)
}

func (r *ProductRepository) Search(ctx context.Context, q models.ProductQuery) ([]models.Product, int, error) {
	conditions := []string{}
	args := []interface{}{}

	if q.Query != "" && q.Query != "all" {
		args = append(args, "%"+q.Query+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if q.Category != "" && q.Category != "all" {
		args = append(args, q.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if q.Price != "" && q.Price != "all" {
		// price filter arrives as "min-max"
		parts := strings.SplitN(q.Price, "-", 2)
		if len(parts) == 2 {
			args = append(args, parts[0])
			conditions = append(conditions, fmt.Sprintf("price >= $%d::numeric", len(args)))
			args = append(args, parts[1])
			conditions = append(conditions, fmt.Sprintf("price <= $%d::numeric", len(args)))
		}
	}
	if q.Rating != "" && q.Rating != "all" {
		args = append(args, q.Rating)
		conditions = append(conditions, fmt.Sprintf("rating >= $%d::numeric", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy := "created_at DESC"
	switch q.Sort {
	case "lowest":
		orderBy = "price ASC"
	case "highest":
		orderBy = "price DESC"
	case "rating":
		orderBy = "rating DESC"
	}

	args = append(args, q.Limit)
	limitPos := len(args)
	args = append(args, (q.Page-1)*q.Limit)
	offsetPos := len(args)

	query := fmt.Sprintf("SELECT %s FROM products%s ORDER BY %s LIMIT $%d OFFSET $%d",
		productColumns, where, orderBy, limitPos, offsetPos)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products, err := r.scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepository) Categories(ctx context.Context) ([]models.CategoryCount, error) {
	query := `SELECT category, COUNT(*) FROM products GROUP BY category ORDER BY category`
	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.CategoryCount{}
	for rows.Next() {
		var c models.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, slug, category, brand, description, images, price, stock, is_featured, banner, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8, $9, $10, $11)
		RETURNING id, rating::text, num_reviews, created_at
	`
	return config.DB.QueryRow(ctx, query,
		product.Name, product.Slug, product.Category, product.Brand, product.Description,
		product.Images, product.Price, product.Stock, product.IsFeatured, product.Banner, time.Now(),
	).Scan(&product.ID, &product.Rating, &product.NumReviews, &product.CreatedAt)
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products SET name = $1, slug = $2, category = $3, brand = $4, description = $5,
		    images = $6, price = $7::numeric, stock = $8, is_featured = $9, banner = $10
		WHERE id = $11
	`
	tag, err := config.DB.Exec(ctx, query,
		product.Name, product.Slug, product.Category, product.Brand, product.Description,
		product.Images, product.Price, product.Stock, product.IsFeatured, product.Banner, product.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := config.DB.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Category, &p.Brand, &p.Description, &p.Images,
		&p.Price, &p.Stock, &p.Rating, &p.NumReviews, &p.IsFeatured, &p.Banner, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) scanProducts(rows pgx.Rows) ([]models.Product, error) {
	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.Slug, &p.Category, &p.Brand, &p.Description, &p.Images,
			&p.Price, &p.Stock, &p.Rating, &p.NumReviews, &p.IsFeatured, &p.Banner, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
