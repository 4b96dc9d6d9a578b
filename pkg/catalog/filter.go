package catalog

// Filters are the user-selected constraints applied to a result list.
// Empty facet sets impose no constraint, and a MaxPrice of zero or less
// leaves prices unbounded.
type Filters struct {
	MaxPrice   float64  `json:"max_price"`
	Colors     []string `json:"colors"`
	Sizes      []string `json:"sizes"`
	Categories []string `json:"categories"`
}

// IsZero reports whether the filters constrain nothing.
func (f Filters) IsZero() bool {
	return f.MaxPrice <= 0 && len(f.Colors) == 0 && len(f.Sizes) == 0 && len(f.Categories) == 0
}

// ApplyFilters returns the products passing every constraint, preserving
// input order. The input slice is never modified.
func ApplyFilters(products []Product, f Filters) []Product {
	filtered := make([]Product, 0, len(products))

	for _, p := range products {
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		if !memberOf(f.Colors, p.Color) {
			continue
		}
		if !memberOf(f.Sizes, p.Size) {
			continue
		}
		if !memberOf(f.Categories, p.Category) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

// memberOf is inclusive by default: an empty set accepts every value.
func memberOf(set []string, value string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
