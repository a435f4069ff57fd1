package utils

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/newbienorbie/prostore/models"
)

// Pricing policy: flat-rate shipping waived strictly above the free-shipping
// threshold, flat 15% tax on the item subtotal.
var (
	freeShippingThreshold = decimal.NewFromInt(100)
	shippingFlatRate      = decimal.NewFromInt(10)
	taxRate               = decimal.NewFromFloat(0.15)
)

// CalcPrice maps a list of cart items to the four monetary totals. All totals
// are rounded half-up at the second decimal and formatted with exactly two
// decimal digits. Purely functional; identical input yields identical strings.
func CalcPrice(items []models.CartItem) (*models.CartPrices, error) {
	if len(items) == 0 {
		return &models.CartPrices{
			ItemsPrice:    "0.00",
			ShippingPrice: "0.00",
			TaxPrice:      "0.00",
			TotalPrice:    "0.00",
		}, nil
	}

	subtotal := decimal.Zero
	for _, item := range items {
		price, err := decimal.NewFromString(item.Price)
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("%w: invalid price %q for product %s", models.ErrInvalidInput, item.Price, item.ProductID)
		}
		if item.Qty < 0 {
			return nil, fmt.Errorf("%w: negative quantity %d for product %s", models.ErrInvalidInput, item.Qty, item.ProductID)
		}
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}

	// decimal.Round rounds half away from zero, which is half-up for the
	// non-negative amounts handled here.
	itemsPrice := subtotal.Round(2)

	shippingPrice := shippingFlatRate
	if itemsPrice.GreaterThan(freeShippingThreshold) {
		shippingPrice = decimal.Zero
	}

	taxPrice := itemsPrice.Mul(taxRate).Round(2)
	totalPrice := itemsPrice.Add(shippingPrice).Add(taxPrice).Round(2)

	return &models.CartPrices{
		ItemsPrice:    itemsPrice.StringFixed(2),
		ShippingPrice: shippingPrice.StringFixed(2),
		TaxPrice:      taxPrice.StringFixed(2),
		TotalPrice:    totalPrice.StringFixed(2),
	}, nil
}
