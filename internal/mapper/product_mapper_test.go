package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wearly-be/pkg/catalog"
	"wearly-be/pkg/stylist"
)

func TestToProductsFieldMapping(t *testing.T) {
	results := []stylist.BackendProduct{
		{
			Title:           "Trail Runner",
			Description:     "Grippy sole",
			Price:           75,
			ProductURL:      "https://shop/p1",
			ProductImageURL: "https://shop/p1.jpg",
			UserProductURL:  "https://cdn/u1.jpg",
			Store:           "Zalando",
			Color:           "Red",
			Size:            "42",
			GarmentType:     "Shoes",
		},
	}

	products := ToProducts(results)

	require.Len(t, products, 1)
	p := products[0]
	assert.Equal(t, "https://shop/p1", p.Id)
	assert.Equal(t, "Trail Runner", p.Name)
	assert.Equal(t, float64(75), p.Price)
	assert.Equal(t, "https://shop/p1.jpg", p.Image)
	assert.Equal(t, "https://cdn/u1.jpg", p.UserTryOnImage)
	assert.Equal(t, "Zalando", p.Source)
	assert.Equal(t, "Red", p.Color)
	assert.Equal(t, "42", p.Size)
	assert.Equal(t, "Shoes", p.Category)
	assert.True(t, p.InStock)
	assert.Equal(t, "Grippy sole", p.Description)
}

func TestToProductsDiscountPairing(t *testing.T) {
	results := []stylist.BackendProduct{
		// Real discount: pair travels.
		{Title: "A", Price: 50, OriginalPrice: 80, Discount: 37},
		// No discount reported: stale original price must not leak through.
		{Title: "B", Price: 50, OriginalPrice: 80},
		// Non-positive discount counts as none.
		{Title: "C", Price: 50, OriginalPrice: 80, Discount: -5},
	}

	products := ToProducts(results)
	require.Len(t, products, 3)

	assert.Equal(t, float64(80), products[0].OriginalPrice)
	assert.Equal(t, float64(37), products[0].Discount)
	assert.GreaterOrEqual(t, products[0].OriginalPrice, products[0].Price)

	for _, p := range products[1:] {
		assert.Zero(t, p.OriginalPrice, "product %s", p.Name)
		assert.Zero(t, p.Discount, "product %s", p.Name)
	}
}

func TestToProductsFallbacks(t *testing.T) {
	results := []stylist.BackendProduct{
		{Title: "First", Price: 10},
		{Title: "Second", Price: 20, ProductURL: "https://shop/p2"},
	}

	products := ToProducts(results)
	require.Len(t, products, 2)

	// Missing URL gets a positional id, missing image the placeholder.
	assert.Equal(t, "product-0", products[0].Id)
	assert.Equal(t, catalog.PlaceholderImageURL, products[0].Image)
	assert.Equal(t, "https://shop/p2", products[1].Id)
}

func TestToProductsEmpty(t *testing.T) {
	products := ToProducts(nil)

	assert.NotNil(t, products)
	assert.Empty(t, products)
}
