package repositories

import (
	"context"

	"github.com/newbienorbie/prostore/models"
)

// Store interfaces sit between services and the pgx implementations so the
// services can be exercised against in-memory fakes.

type CartStore interface {
	FindBySessionID(ctx context.Context, sessionCartID string) (*models.Cart, error)
	FindByUserID(ctx context.Context, userID string) (*models.Cart, error)
	Create(ctx context.Context, cart *models.Cart) error
	Update(ctx context.Context, cart *models.Cart) error
	TransferToUser(ctx context.Context, cartID, userID string) error
	Delete(ctx context.Context, cartID string) error
}

type ProductStore interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	Latest(ctx context.Context, limit int) ([]models.Product, error)
	Featured(ctx context.Context, limit int) ([]models.Product, error)
	Search(ctx context.Context, q models.ProductQuery) ([]models.Product, int, error)
	Categories(ctx context.Context) ([]models.CategoryCount, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateName(ctx context.Context, id, name string) error
	UpdateAddress(ctx context.Context, id string, address *models.ShippingAddress) error
	UpdatePaymentMethod(ctx context.Context, id, method string) error
	UpdateNameAndRole(ctx context.Context, id, name, role string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, query string, page, limit int) ([]models.User, int, error)
}

type OrderStore interface {
	CreateFromCart(ctx context.Context, order *models.Order, cart *models.Cart) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string, page, limit int) ([]models.Order, int, error)
	List(ctx context.Context, page, limit int) ([]models.Order, int, error)
	SetPaymentResult(ctx context.Context, id string, result *models.PaymentResult) error
	MarkPaid(ctx context.Context, id string, result *models.PaymentResult) error
	MarkDelivered(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context) (*models.SalesSummary, error)
}

type ReviewStore interface {
	Upsert(ctx context.Context, review *models.Review) error
	ListByProduct(ctx context.Context, productID string) ([]models.Review, error)
	FindByUserAndProduct(ctx context.Context, userID, productID string) (*models.Review, error)
}
