package catalog

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

var mockSources = []string{"Amazon", "Zalando", "ASOS", "Nike", "Adidas"}

// GenerateMockProducts synthesizes substitute results for a query, used when
// the assistant backend cannot be reached. Facet detection is deterministic;
// item count, prices, discounts and stock are randomized, so callers must
// treat those as ranges.
func GenerateMockProducts(query string) []Product {
	facets := ParseQuery(query)

	color := titleCase(facets.Color)
	category := titleCase(facets.Category)

	count := rand.Intn(5) + 8
	products := make([]Product, 0, count)

	for i := 0; i < count; i++ {
		price := randomPrice(facets.MaxPrice)

		p := Product{
			Id:          fmt.Sprintf("product-%d", i),
			Name:        fmt.Sprintf("%s %s - Style %d", color, category, i+1),
			Price:       price,
			Image:       fmt.Sprintf("https://images.unsplash.com/photo-%d?w=400&h=400&fit=crop&auto=format", 1540000000000+int64(i)*100000),
			Source:      mockSources[rand.Intn(len(mockSources))],
			Color:       color,
			Size:        strings.ToUpper(facets.Size),
			Category:    category,
			InStock:     rand.Float64() > 0.1,
			Description: fmt.Sprintf("High-quality %s in %s. Perfect for any occasion.", facets.Category, facets.Color),
		}

		if rand.Float64() > 0.4 {
			p.OriginalPrice = price + float64(rand.Intn(30)+10)
			p.Discount = math.Round((p.OriginalPrice - price) / p.OriginalPrice * 100)
		}

		products = append(products, p)
	}

	return products
}

// randomPrice picks an integer price in [20, maxPrice). Caps at or below the
// floor collapse to the floor itself.
func randomPrice(maxPrice int) float64 {
	span := maxPrice - 20
	if span <= 0 {
		return 20
	}
	return float64(rand.Intn(span) + 20)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
