package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/newbienorbie/prostore/models"
)

type mockCartStore struct {
	mock.Mock
}

func (m *mockCartStore) FindBySessionID(ctx context.Context, sessionCartID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionCartID)
	cart, _ := args.Get(0).(*models.Cart)
	return cart, args.Error(1)
}

func (m *mockCartStore) FindByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	args := m.Called(ctx, userID)
	cart, _ := args.Get(0).(*models.Cart)
	return cart, args.Error(1)
}

func (m *mockCartStore) Create(ctx context.Context, cart *models.Cart) error {
	return m.Called(ctx, cart).Error(0)
}

func (m *mockCartStore) Update(ctx context.Context, cart *models.Cart) error {
	return m.Called(ctx, cart).Error(0)
}

func (m *mockCartStore) TransferToUser(ctx context.Context, cartID, userID string) error {
	return m.Called(ctx, cartID, userID).Error(0)
}

func (m *mockCartStore) Delete(ctx context.Context, cartID string) error {
	return m.Called(ctx, cartID).Error(0)
}

type mockProductStore struct {
	mock.Mock
}

func (m *mockProductStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *mockProductStore) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	args := m.Called(ctx, slug)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *mockProductStore) Latest(ctx context.Context, limit int) ([]models.Product, error) {
	args := m.Called(ctx, limit)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *mockProductStore) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	args := m.Called(ctx, limit)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *mockProductStore) Search(ctx context.Context, q models.ProductQuery) ([]models.Product, int, error) {
	args := m.Called(ctx, q)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Int(1), args.Error(2)
}

func (m *mockProductStore) Categories(ctx context.Context) ([]models.CategoryCount, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]models.CategoryCount)
	return categories, args.Error(1)
}

func (m *mockProductStore) Create(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductStore) Update(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func testShirt() *models.Product {
	return &models.Product{
		ID:     "prod-1",
		Name:   "Polo Sporting Stretch Shirt",
		Slug:   "polo-sporting-stretch-shirt",
		Images: []string{"/images/p1-1.jpg"},
		Price:  "59.99",
		Stock:  5,
	}
}

func TestAddItemCreatesCart(t *testing.T) {
	carts := new(mockCartStore)
	products := new(mockProductStore)
	svc := NewCartService(carts, products)
	ctx := context.Background()

	products.On("FindByID", ctx, "prod-1").Return(testShirt(), nil)
	carts.On("FindBySessionID", ctx, "sess-1").Return(nil, models.ErrCartNotFound)
	carts.On("Create", ctx, mock.AnythingOfType("*models.Cart")).Return(nil)

	result := svc.AddItem(ctx, "sess-1", "", "prod-1")

	require.True(t, result.Success)
	assert.Equal(t, "Polo Sporting Stretch Shirt added to cart", result.Message)

	created := carts.Calls[len(carts.Calls)-1].Arguments.Get(1).(*models.Cart)
	require.Len(t, created.Items, 1)
	assert.Equal(t, 1, created.Items[0].Qty)
	assert.Equal(t, "59.99", created.Items[0].Price)
	assert.Equal(t, "/images/p1-1.jpg", created.Items[0].Image)
	assert.Equal(t, "59.99", created.ItemsPrice)
	assert.Equal(t, "10.00", created.ShippingPrice)
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	carts := new(mockCartStore)
	products := new(mockProductStore)
	svc := NewCartService(carts, products)
	ctx := context.Background()

	cart := &models.Cart{
		ID:    "cart-1",
		Items: []models.CartItem{{ProductID: "prod-1", Name: "Polo Sporting Stretch Shirt", Price: "59.99", Qty: 2}},
	}

	products.On("FindByID", ctx, "prod-1").Return(testShirt(), nil)
	carts.On("FindBySessionID", ctx, "sess-1").Return(cart, nil)
	carts.On("Update", ctx, cart).Return(nil)

	result := svc.AddItem(ctx, "sess-1", "", "prod-1")

	require.True(t, result.Success)
	assert.Equal(t, "Polo Sporting Stretch Shirt updated in cart", result.Message)
	assert.Equal(t, 3, cart.Items[0].Qty)
}

func TestAddItemRejectsWhenStockExhausted(t *testing.T) {
	carts := new(mockCartStore)
	products := new(mockProductStore)
	svc := NewCartService(carts, products)
	ctx := context.Background()

	cart := &models.Cart{
		ID:    "cart-1",
		Items: []models.CartItem{{ProductID: "prod-1", Price: "59.99", Qty: 5}},
	}

	products.On("FindByID", ctx, "prod-1").Return(testShirt(), nil)
	carts.On("FindBySessionID", ctx, "sess-1").Return(cart, nil)

	result := svc.AddItem(ctx, "sess-1", "", "prod-1")

	assert.False(t, result.Success)
	assert.Equal(t, "Not enough stock", result.Message)
	assert.Equal(t, 5, cart.Items[0].Qty, "cart must stay unchanged")
	carts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAddItemRejectsOutOfStockProduct(t *testing.T) {
	carts := new(mockCartStore)
	products := new(mockProductStore)
	svc := NewCartService(carts, products)
	ctx := context.Background()

	product := testShirt()
	product.Stock = 0

	products.On("FindByID", ctx, "prod-1").Return(product, nil)
	carts.On("FindBySessionID", ctx, "sess-1").Return(nil, models.ErrCartNotFound)

	result := svc.AddItem(ctx, "sess-1", "", "prod-1")

	assert.False(t, result.Success)
	assert.Equal(t, "Not enough stock", result.Message)
	carts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddItemRequiresSession(t *testing.T) {
	svc := NewCartService(new(mockCartStore), new(mockProductStore))

	result := svc.AddItem(context.Background(), "", "", "prod-1")

	assert.False(t, result.Success)
	assert.Equal(t, "Cart session not found", result.Message)
}

func TestAddItemProductNotFound(t *testing.T) {
	carts := new(mockCartStore)
	products := new(mockProductStore)
	svc := NewCartService(carts, products)
	ctx := context.Background()

	products.On("FindByID", ctx, "ghost").Return(nil, models.ErrProductNotFound)

	result := svc.AddItem(ctx, "sess-1", "", "ghost")

	assert.False(t, result.Success)
	assert.Equal(t, "Product not found", result.Message)
}

func TestAddItemReportsConflict(t *testing.T) {
	carts := new(mockCartStore)
	products := new(mockProductStore)
	svc := NewCartService(carts, products)
	ctx := context.Background()

	cart := &models.Cart{
		ID:    "cart-1",
		Items: []models.CartItem{{ProductID: "prod-1", Price: "59.99", Qty: 1}},
	}

	products.On("FindByID", ctx, "prod-1").Return(testShirt(), nil)
	carts.On("FindBySessionID", ctx, "sess-1").Return(cart, nil)
	carts.On("Update", ctx, cart).Return(models.ErrCartConflict)

	result := svc.AddItem(ctx, "sess-1", "", "prod-1")

	assert.False(t, result.Success)
	assert.Equal(t, "Cart was modified, please try again", result.Message)
}

func TestRemoveItemDropsLastUnit(t *testing.T) {
	carts := new(mockCartStore)
	products := new(mockProductStore)
	svc := NewCartService(carts, products)
	ctx := context.Background()

	cart := &models.Cart{
		ID: "cart-1",
		Items: []models.CartItem{
			{ProductID: "prod-1", Price: "59.99", Qty: 1},
			{ProductID: "prod-2", Price: "20.00", Qty: 2},
		},
	}

	products.On("FindByID", ctx, "prod-1").Return(testShirt(), nil)
	carts.On("FindBySessionID", ctx, "sess-1").Return(cart, nil)
	carts.On("Update", ctx, cart).Return(nil)

	result := svc.RemoveItem(ctx, "sess-1", "", "prod-1")

	require.True(t, result.Success)
	assert.Equal(t, "Polo Sporting Stretch Shirt was removed from cart", result.Message)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "prod-2", cart.Items[0].ProductID)
	assert.Equal(t, "40.00", cart.ItemsPrice)
}

func TestRemoveItemDecrementsQuantity(t *testing.T) {
	carts := new(mockCartStore)
	products := new(mockProductStore)
	svc := NewCartService(carts, products)
	ctx := context.Background()

	cart := &models.Cart{
		ID:    "cart-1",
		Items: []models.CartItem{{ProductID: "prod-1", Price: "59.99", Qty: 3}},
	}

	products.On("FindByID", ctx, "prod-1").Return(testShirt(), nil)
	carts.On("FindBySessionID", ctx, "sess-1").Return(cart, nil)
	carts.On("Update", ctx, cart).Return(nil)

	result := svc.RemoveItem(ctx, "sess-1", "", "prod-1")

	require.True(t, result.Success)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Qty)
}

func TestRemoveItemNotInCart(t *testing.T) {
	carts := new(mockCartStore)
	products := new(mockProductStore)
	svc := NewCartService(carts, products)
	ctx := context.Background()

	cart := &models.Cart{
		ID:    "cart-1",
		Items: []models.CartItem{{ProductID: "prod-2", Price: "20.00", Qty: 1}},
	}

	products.On("FindByID", ctx, "prod-1").Return(testShirt(), nil)
	carts.On("FindBySessionID", ctx, "sess-1").Return(cart, nil)

	result := svc.RemoveItem(ctx, "sess-1", "", "prod-1")

	assert.False(t, result.Success)
	assert.Equal(t, "Item not found", result.Message)
	carts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMergeCartsNoSessionCart(t *testing.T) {
	carts := new(mockCartStore)
	svc := NewCartService(carts, new(mockProductStore))
	ctx := context.Background()

	carts.On("FindBySessionID", ctx, "sess-1").Return(nil, models.ErrCartNotFound)

	err := svc.MergeCarts(ctx, "sess-1", "user-1")

	require.NoError(t, err)
	carts.AssertNotCalled(t, "TransferToUser", mock.Anything, mock.Anything, mock.Anything)
	carts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMergeCartsTransfersOwnership(t *testing.T) {
	carts := new(mockCartStore)
	svc := NewCartService(carts, new(mockProductStore))
	ctx := context.Background()

	sessionCart := &models.Cart{
		ID:         "cart-1",
		Items:      []models.CartItem{{ProductID: "prod-1", Price: "59.99", Qty: 2}},
		ItemsPrice: "119.98",
		TotalPrice: "137.98",
	}

	carts.On("FindBySessionID", ctx, "sess-1").Return(sessionCart, nil)
	carts.On("FindByUserID", ctx, "user-1").Return(nil, models.ErrCartNotFound)
	carts.On("TransferToUser", ctx, "cart-1", "user-1").Return(nil)

	err := svc.MergeCarts(ctx, "sess-1", "user-1")

	require.NoError(t, err)
	// ownership moves; the cart contents and totals are untouched
	assert.Equal(t, "119.98", sessionCart.ItemsPrice)
	assert.Equal(t, "137.98", sessionCart.TotalPrice)
	carts.AssertCalled(t, "TransferToUser", ctx, "cart-1", "user-1")
	carts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	carts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestMergeCartsCombinesQuantities(t *testing.T) {
	carts := new(mockCartStore)
	svc := NewCartService(carts, new(mockProductStore))
	ctx := context.Background()

	sessionCart := &models.Cart{
		ID: "sess-cart",
		Items: []models.CartItem{
			{ProductID: "prod-1", Price: "10.00", Qty: 2},
			{ProductID: "prod-3", Price: "5.00", Qty: 1},
		},
	}
	userCart := &models.Cart{
		ID: "user-cart",
		Items: []models.CartItem{
			{ProductID: "prod-1", Price: "10.00", Qty: 1},
			{ProductID: "prod-2", Price: "8.00", Qty: 1},
		},
	}

	carts.On("FindBySessionID", ctx, "sess-1").Return(sessionCart, nil)
	carts.On("FindByUserID", ctx, "user-1").Return(userCart, nil)
	carts.On("Update", ctx, userCart).Return(nil)
	carts.On("Delete", ctx, "sess-cart").Return(nil)

	err := svc.MergeCarts(ctx, "sess-1", "user-1")

	require.NoError(t, err)
	require.Len(t, userCart.Items, 3)
	assert.Equal(t, 3, userCart.Items[0].Qty, "quantities for the shared product sum")
	assert.Equal(t, 1, userCart.Items[1].Qty)
	assert.Equal(t, "prod-3", userCart.Items[2].ProductID)
	// 3*10 + 8 + 5 = 43.00, below the free-shipping threshold
	assert.Equal(t, "43.00", userCart.ItemsPrice)
	assert.Equal(t, "10.00", userCart.ShippingPrice)
	assert.Equal(t, "6.45", userCart.TaxPrice)
	assert.Equal(t, "59.45", userCart.TotalPrice)
	carts.AssertCalled(t, "Delete", ctx, "sess-cart")
}

func TestMergeCartsSelfMergeDoublesNothingUnknown(t *testing.T) {
	carts := new(mockCartStore)
	svc := NewCartService(carts, new(mockProductStore))
	ctx := context.Background()

	sessionCart := &models.Cart{
		ID:    "sess-cart",
		Items: []models.CartItem{{ProductID: "prod-1", Price: "10.00", Qty: 2}},
	}
	userCart := &models.Cart{
		ID:    "user-cart",
		Items: []models.CartItem{{ProductID: "prod-1", Price: "10.00", Qty: 2}},
	}

	carts.On("FindBySessionID", ctx, "sess-1").Return(sessionCart, nil)
	carts.On("FindByUserID", ctx, "user-1").Return(userCart, nil)
	carts.On("Update", ctx, userCart).Return(nil)
	carts.On("Delete", ctx, "sess-cart").Return(nil)

	err := svc.MergeCarts(ctx, "sess-1", "user-1")

	require.NoError(t, err)
	require.Len(t, userCart.Items, 1, "identical carts merge without duplicate lines")
	assert.Equal(t, 4, userCart.Items[0].Qty)
}

func TestMergeCartsSurvivesDeleteFailure(t *testing.T) {
	carts := new(mockCartStore)
	svc := NewCartService(carts, new(mockProductStore))
	ctx := context.Background()

	sessionCart := &models.Cart{
		ID:    "sess-cart",
		Items: []models.CartItem{{ProductID: "prod-1", Price: "10.00", Qty: 1}},
	}
	userCart := &models.Cart{
		ID:    "user-cart",
		Items: []models.CartItem{{ProductID: "prod-2", Price: "5.00", Qty: 1}},
	}

	carts.On("FindBySessionID", ctx, "sess-1").Return(sessionCart, nil)
	carts.On("FindByUserID", ctx, "user-1").Return(userCart, nil)
	carts.On("Update", ctx, userCart).Return(nil)
	carts.On("Delete", ctx, "sess-cart").Return(errors.New("db down"))

	err := svc.MergeCarts(ctx, "sess-1", "user-1")

	assert.NoError(t, err, "a failed cleanup does not fail the merge")
}

func TestMergeCartsPropagatesUpdateError(t *testing.T) {
	carts := new(mockCartStore)
	svc := NewCartService(carts, new(mockProductStore))
	ctx := context.Background()

	sessionCart := &models.Cart{
		ID:    "sess-cart",
		Items: []models.CartItem{{ProductID: "prod-1", Price: "10.00", Qty: 1}},
	}
	userCart := &models.Cart{
		ID:    "user-cart",
		Items: []models.CartItem{{ProductID: "prod-2", Price: "5.00", Qty: 1}},
	}

	carts.On("FindBySessionID", ctx, "sess-1").Return(sessionCart, nil)
	carts.On("FindByUserID", ctx, "user-1").Return(userCart, nil)
	carts.On("Update", ctx, userCart).Return(models.ErrCartConflict)

	err := svc.MergeCarts(ctx, "sess-1", "user-1")

	assert.ErrorIs(t, err, models.ErrCartConflict)
	carts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestGetMyCartPrefersUserCart(t *testing.T) {
	carts := new(mockCartStore)
	svc := NewCartService(carts, new(mockProductStore))
	ctx := context.Background()

	userCart := &models.Cart{ID: "user-cart"}
	carts.On("FindByUserID", ctx, "user-1").Return(userCart, nil)

	cart, err := svc.GetMyCart(ctx, "sess-1", "user-1")

	require.NoError(t, err)
	assert.Equal(t, "user-cart", cart.ID)
	carts.AssertNotCalled(t, "FindBySessionID", mock.Anything, mock.Anything)
}

func TestGetMyCartMissingIsNotAnError(t *testing.T) {
	carts := new(mockCartStore)
	svc := NewCartService(carts, new(mockProductStore))
	ctx := context.Background()

	carts.On("FindBySessionID", ctx, "sess-1").Return(nil, models.ErrCartNotFound)

	cart, err := svc.GetMyCart(ctx, "sess-1", "")

	require.NoError(t, err)
	assert.Nil(t, cart)
}

func TestDeleteUserCart(t *testing.T) {
	carts := new(mockCartStore)
	svc := NewCartService(carts, new(mockProductStore))
	ctx := context.Background()

	carts.On("FindByUserID", ctx, "user-1").Return(&models.Cart{ID: "cart-1"}, nil)
	carts.On("Delete", ctx, "cart-1").Return(nil)

	require.NoError(t, svc.DeleteUserCart(ctx, "user-1"))
	carts.AssertCalled(t, "Delete", ctx, "cart-1")
}

func TestDeleteUserCartMissingIsNoop(t *testing.T) {
	carts := new(mockCartStore)
	svc := NewCartService(carts, new(mockProductStore))
	ctx := context.Background()

	carts.On("FindByUserID", ctx, "user-1").Return(nil, models.ErrCartNotFound)

	require.NoError(t, svc.DeleteUserCart(ctx, "user-1"))
	carts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
