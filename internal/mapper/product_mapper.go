package mapper

import (
	"fmt"

	"wearly-be/pkg/catalog"
	"wearly-be/pkg/stylist"
)

// ToProducts normalizes the backend's heterogeneous search results into the
// canonical product shape. The backend's item URL doubles as the id; items
// without one get a positional fallback so every id in a result set is
// non-empty and unique.
func ToProducts(results []stylist.BackendProduct) []catalog.Product {
	products := make([]catalog.Product, 0, len(results))

	for i, item := range results {
		p := catalog.Product{
			Id:             item.ProductURL,
			Name:           item.Title,
			Price:          item.Price,
			Image:          item.ProductImageURL,
			UserTryOnImage: item.UserProductURL,
			Source:         item.Store,
			Color:          item.Color,
			Size:           item.Size,
			Category:       item.GarmentType,
			InStock:        true,
			Description:    item.Description,
		}

		if p.Id == "" {
			p.Id = fmt.Sprintf("product-%d", i)
		}
		if p.Image == "" {
			p.Image = catalog.PlaceholderImageURL
		}

		// originalPrice only travels together with a real discount, so a
		// stale pre-discount price is never shown without its badge.
		if item.Discount > 0 {
			p.OriginalPrice = item.OriginalPrice
			p.Discount = item.Discount
		}

		products = append(products, p)
	}

	return products
}
