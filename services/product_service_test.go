package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newbienorbie/prostore/models"
)

func TestGetLatestUsesFixedLimit(t *testing.T) {
	products := new(mockProductStore)
	svc := NewProductService(products)
	ctx := context.Background()

	products.On("Latest", ctx, LatestProductsLimit).Return([]models.Product{{ID: "p1"}}, nil)

	result, err := svc.GetLatest(ctx)

	require.NoError(t, err)
	assert.Len(t, result, 1)
	products.AssertCalled(t, "Latest", ctx, LatestProductsLimit)
}

func TestGetFeaturedWithoutCache(t *testing.T) {
	models.RedisClient = nil
	products := new(mockProductStore)
	svc := NewProductService(products)
	ctx := context.Background()

	products.On("Featured", ctx, LatestProductsLimit).Return([]models.Product{{ID: "p1", IsFeatured: true}}, nil)

	result, err := svc.GetFeatured(ctx)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, result[0].IsFeatured)
}

func TestSearchDefaultsPagination(t *testing.T) {
	products := new(mockProductStore)
	svc := NewProductService(products)
	ctx := context.Background()

	expected := models.ProductQuery{Query: "shirt", Page: 1, Limit: ProductPageSize}
	products.On("Search", ctx, expected).Return([]models.Product{{ID: "p1"}, {ID: "p2"}}, 25, nil)

	result, err := svc.Search(ctx, models.ProductQuery{Query: "shirt"})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Meta.Page)
	assert.Equal(t, ProductPageSize, result.Meta.Limit)
	assert.Equal(t, 25, result.Meta.TotalItems)
	assert.Equal(t, 3, result.Meta.TotalPages)
}

func TestUpdateAppliesPartialPatch(t *testing.T) {
	products := new(mockProductStore)
	svc := NewProductService(products)
	ctx := context.Background()

	existing := &models.Product{
		ID:    "p1",
		Name:  "Old Name",
		Slug:  "old-slug",
		Price: "10.00",
		Stock: 5,
	}
	products.On("FindByID", ctx, "p1").Return(existing, nil)
	products.On("Update", ctx, existing).Return(nil)

	newStock := 9
	updated, err := svc.Update(ctx, "p1", models.UpdateProductRequest{Name: "New Name", Stock: &newStock})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "old-slug", updated.Slug, "untouched fields keep their value")
	assert.Equal(t, "10.00", updated.Price)
	assert.Equal(t, 9, updated.Stock)
}
