package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newbienorbie/prostore/models"
)

func TestCalcPriceBelowFreeShipping(t *testing.T) {
	prices, err := CalcPrice([]models.CartItem{
		{ProductID: "p1", Price: "25.00", Qty: 2},
		{ProductID: "p2", Price: "30.00", Qty: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "80.00", prices.ItemsPrice)
	assert.Equal(t, "10.00", prices.ShippingPrice)
	assert.Equal(t, "12.00", prices.TaxPrice)
	assert.Equal(t, "102.00", prices.TotalPrice)
}

func TestCalcPriceAboveFreeShipping(t *testing.T) {
	prices, err := CalcPrice([]models.CartItem{
		{ProductID: "p1", Price: "120.00", Qty: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "120.00", prices.ItemsPrice)
	assert.Equal(t, "0.00", prices.ShippingPrice)
	assert.Equal(t, "18.00", prices.TaxPrice)
	assert.Equal(t, "138.00", prices.TotalPrice)
}

func TestCalcPriceExactlyAtThresholdStillShips(t *testing.T) {
	prices, err := CalcPrice([]models.CartItem{
		{ProductID: "p1", Price: "100.00", Qty: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "100.00", prices.ItemsPrice)
	assert.Equal(t, "10.00", prices.ShippingPrice)
	assert.Equal(t, "15.00", prices.TaxPrice)
	assert.Equal(t, "125.00", prices.TotalPrice)
}

func TestCalcPriceJustAboveThreshold(t *testing.T) {
	prices, err := CalcPrice([]models.CartItem{
		{ProductID: "p1", Price: "100.01", Qty: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "0.00", prices.ShippingPrice)
}

func TestCalcPriceEmptyCart(t *testing.T) {
	prices, err := CalcPrice(nil)
	require.NoError(t, err)

	assert.Equal(t, "0.00", prices.ItemsPrice)
	assert.Equal(t, "0.00", prices.ShippingPrice)
	assert.Equal(t, "0.00", prices.TaxPrice)
	assert.Equal(t, "0.00", prices.TotalPrice)
}

func TestCalcPriceRoundsHalfUp(t *testing.T) {
	// 3 * 3.335 = 10.005, rounds up to 10.01
	prices, err := CalcPrice([]models.CartItem{
		{ProductID: "p1", Price: "3.335", Qty: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, "10.01", prices.ItemsPrice)
}

func TestCalcPriceTwoDecimalOutputs(t *testing.T) {
	prices, err := CalcPrice([]models.CartItem{
		{ProductID: "p1", Price: "10", Qty: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "10.00", prices.ItemsPrice)
	assert.Equal(t, "1.50", prices.TaxPrice)
	assert.Equal(t, "21.50", prices.TotalPrice)
}

func TestCalcPriceDeterministic(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "p1", Price: "19.99", Qty: 3},
		{ProductID: "p2", Price: "4.25", Qty: 2},
	}

	first, err := CalcPrice(items)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		again, err := CalcPrice(items)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCalcPriceInvalidPrice(t *testing.T) {
	_, err := CalcPrice([]models.CartItem{
		{ProductID: "p1", Price: "not-a-number", Qty: 1},
	})
	assert.True(t, errors.Is(err, models.ErrInvalidInput))
}

func TestCalcPriceNegativePrice(t *testing.T) {
	_, err := CalcPrice([]models.CartItem{
		{ProductID: "p1", Price: "-5.00", Qty: 1},
	})
	assert.True(t, errors.Is(err, models.ErrInvalidInput))
}

func TestCalcPriceNegativeQty(t *testing.T) {
	_, err := CalcPrice([]models.CartItem{
		{ProductID: "p1", Price: "5.00", Qty: -1},
	})
	assert.True(t, errors.Is(err, models.ErrInvalidInput))
}

func TestCalcPriceZeroQtyLineContributesNothing(t *testing.T) {
	prices, err := CalcPrice([]models.CartItem{
		{ProductID: "p1", Price: "50.00", Qty: 0},
		{ProductID: "p2", Price: "20.00", Qty: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "20.00", prices.ItemsPrice)
}
