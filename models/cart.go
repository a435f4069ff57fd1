package models

import "time"

// CartItem is a snapshot of a product line inside a cart. Identity key is
// ProductID; an item with Qty == 0 is removed from the list, never persisted.
type CartItem struct {
	ProductID string `json:"product_id" binding:"required"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Image     string `json:"image"`
	Price     string `json:"price"`
	Qty       int    `json:"qty"`
}

// Cart is owned either by a signed-in user (UserID set) or by an anonymous
// session (SessionCartID set). The four price fields are always the output of
// the pricing engine over Items. Version guards read-modify-write updates.
type Cart struct {
	ID            string     `json:"id"`
	UserID        *string    `json:"user_id,omitempty"`
	SessionCartID *string    `json:"session_cart_id,omitempty"`
	Items         []CartItem `json:"items"`
	ItemsPrice    string     `json:"items_price"`
	ShippingPrice string     `json:"shipping_price"`
	TaxPrice      string     `json:"tax_price"`
	TotalPrice    string     `json:"total_price"`
	Version       int        `json:"-"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CartPrices holds the four totals the pricing engine produces, formatted with
// exactly two decimal digits.
type CartPrices struct {
	ItemsPrice    string `json:"items_price"`
	ShippingPrice string `json:"shipping_price"`
	TaxPrice      string `json:"tax_price"`
	TotalPrice    string `json:"total_price"`
}

// FindItem returns the cart line with the given product id, or nil.
func (c *Cart) FindItem(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}
