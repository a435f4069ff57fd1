package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/newbienorbie/prostore/models"
	"github.com/newbienorbie/prostore/repositories"
	"github.com/newbienorbie/prostore/utils"
)

type CartService struct {
	carts    repositories.CartStore
	products repositories.ProductStore
}

func NewCartService(carts repositories.CartStore, products repositories.ProductStore) *CartService {
	return &CartService{carts: carts, products: products}
}

// GetMyCart returns the cart owned by the user when signed in, otherwise the
// session cart. A missing cart is not an error; callers get nil.
func (s *CartService) GetMyCart(ctx context.Context, sessionCartID, userID string) (*models.Cart, error) {
	if sessionCartID == "" && userID == "" {
		return nil, fmt.Errorf("%w: cart session not found", models.ErrCartNotFound)
	}

	var cart *models.Cart
	var err error
	if userID != "" {
		cart, err = s.carts.FindByUserID(ctx, userID)
	} else {
		cart, err = s.carts.FindBySessionID(ctx, sessionCartID)
	}
	if errors.Is(err, models.ErrCartNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem puts one unit of the product into the cart, creating the cart on the
// first add. Failures come back as a user-facing result, never an error.
func (s *CartService) AddItem(ctx context.Context, sessionCartID, userID, productID string) *models.Response {
	if sessionCartID == "" {
		return &models.Response{Success: false, Message: "Cart session not found"}
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return s.failure(err)
	}

	cart, err := s.GetMyCart(ctx, sessionCartID, userID)
	if err != nil {
		return s.failure(err)
	}

	if cart == nil {
		if product.Stock < 1 {
			return &models.Response{Success: false, Message: "Not enough stock"}
		}

		cart = &models.Cart{
			SessionCartID: &sessionCartID,
			Items:         []models.CartItem{newCartItem(product)},
		}
		if userID != "" {
			cart.UserID = &userID
		}
		if resp := s.repriceCart(cart); resp != nil {
			return resp
		}
		if err := s.carts.Create(ctx, cart); err != nil {
			return s.failure(err)
		}
		return &models.Response{Success: true, Message: fmt.Sprintf("%s added to cart", product.Name)}
	}

	existing := cart.FindItem(productID)
	if existing != nil {
		if existing.Qty+1 > product.Stock {
			return &models.Response{Success: false, Message: "Not enough stock"}
		}
		existing.Qty++
	} else {
		if product.Stock < 1 {
			return &models.Response{Success: false, Message: "Not enough stock"}
		}
		cart.Items = append(cart.Items, newCartItem(product))
	}

	if resp := s.repriceCart(cart); resp != nil {
		return resp
	}
	if err := s.carts.Update(ctx, cart); err != nil {
		return s.failure(err)
	}

	verb := "added to"
	if existing != nil {
		verb = "updated in"
	}
	return &models.Response{Success: true, Message: fmt.Sprintf("%s %s cart", product.Name, verb)}
}

// RemoveItem takes one unit of the product out of the cart, deleting the line
// when its last unit goes.
func (s *CartService) RemoveItem(ctx context.Context, sessionCartID, userID, productID string) *models.Response {
	if sessionCartID == "" {
		return &models.Response{Success: false, Message: "Cart session not found"}
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return s.failure(err)
	}

	cart, err := s.GetMyCart(ctx, sessionCartID, userID)
	if err != nil {
		return s.failure(err)
	}
	if cart == nil {
		return &models.Response{Success: false, Message: "Cart not found"}
	}

	existing := cart.FindItem(productID)
	if existing == nil {
		return &models.Response{Success: false, Message: "Item not found"}
	}

	if existing.Qty == 1 {
		items := make([]models.CartItem, 0, len(cart.Items)-1)
		for _, item := range cart.Items {
			if item.ProductID != productID {
				items = append(items, item)
			}
		}
		cart.Items = items
	} else {
		existing.Qty--
	}

	if resp := s.repriceCart(cart); resp != nil {
		return resp
	}
	if err := s.carts.Update(ctx, cart); err != nil {
		return s.failure(err)
	}

	return &models.Response{Success: true, Message: fmt.Sprintf("%s was removed from cart", product.Name)}
}

// MergeCarts reconciles the anonymous session cart into the user's cart at
// sign-in/sign-up. No session cart is a no-op. Without a user cart, ownership
// of the session cart transfers and totals stay bit-identical. With one, the
// quantities merge by product id, prices are recomputed, and the now-abandoned
// session cart row is removed.
func (s *CartService) MergeCarts(ctx context.Context, sessionCartID, userID string) error {
	if sessionCartID == "" {
		return nil
	}

	sessionCart, err := s.carts.FindBySessionID(ctx, sessionCartID)
	if errors.Is(err, models.ErrCartNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up session cart: %w", err)
	}

	userCart, err := s.carts.FindByUserID(ctx, userID)
	if errors.Is(err, models.ErrCartNotFound) {
		return s.carts.TransferToUser(ctx, sessionCart.ID, userID)
	}
	if err != nil {
		return fmt.Errorf("failed to look up user cart: %w", err)
	}

	for _, sessionItem := range sessionCart.Items {
		if existing := userCart.FindItem(sessionItem.ProductID); existing != nil {
			existing.Qty += sessionItem.Qty
		} else {
			userCart.Items = append(userCart.Items, sessionItem)
		}
	}

	prices, err := utils.CalcPrice(userCart.Items)
	if err != nil {
		return fmt.Errorf("failed to price merged cart: %w", err)
	}
	userCart.ItemsPrice = prices.ItemsPrice
	userCart.ShippingPrice = prices.ShippingPrice
	userCart.TaxPrice = prices.TaxPrice
	userCart.TotalPrice = prices.TotalPrice

	if err := s.carts.Update(ctx, userCart); err != nil {
		return fmt.Errorf("failed to persist merged cart: %w", err)
	}

	if err := s.carts.Delete(ctx, sessionCart.ID); err != nil {
		// merge already landed; the leftover row is only garbage
		log.Printf("failed to delete merged session cart %s: %v", sessionCart.ID, err)
	}
	return nil
}

// DeleteUserCart drops the signed-in user's cart record (sign-out behavior).
func (s *CartService) DeleteUserCart(ctx context.Context, userID string) error {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if errors.Is(err, models.ErrCartNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.carts.Delete(ctx, cart.ID)
}

func (s *CartService) repriceCart(cart *models.Cart) *models.Response {
	prices, err := utils.CalcPrice(cart.Items)
	if err != nil {
		return s.failure(err)
	}
	cart.ItemsPrice = prices.ItemsPrice
	cart.ShippingPrice = prices.ShippingPrice
	cart.TaxPrice = prices.TaxPrice
	cart.TotalPrice = prices.TotalPrice
	return nil
}

func (s *CartService) failure(err error) *models.Response {
	switch {
	case errors.Is(err, models.ErrProductNotFound):
		return &models.Response{Success: false, Message: "Product not found"}
	case errors.Is(err, models.ErrCartNotFound):
		return &models.Response{Success: false, Message: "Cart not found"}
	case errors.Is(err, models.ErrItemNotFound):
		return &models.Response{Success: false, Message: "Item not found"}
	case errors.Is(err, models.ErrOutOfStock):
		return &models.Response{Success: false, Message: "Not enough stock"}
	case errors.Is(err, models.ErrCartConflict):
		return &models.Response{Success: false, Message: "Cart was modified, please try again"}
	case errors.Is(err, models.ErrInvalidInput):
		return &models.Response{Success: false, Message: err.Error()}
	default:
		log.Printf("cart operation failed: %v", err)
		return &models.Response{Success: false, Message: "Something went wrong, please try again"}
	}
}

func newCartItem(product *models.Product) models.CartItem {
	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}
	return models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Slug:      product.Slug,
		Image:     image,
		Price:     product.Price,
		Qty:       1,
	}
}
