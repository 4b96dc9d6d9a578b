package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// Fixed vocabularies scanned against incoming queries. First match wins.
var (
	knownColors     = []string{"blue", "black", "white", "red", "green", "gray", "brown"}
	knownSizes      = []string{"xs", "s", "m", "l", "xl", "xxl"}
	knownCategories = []string{"pants", "jackets", "shirts", "shoes", "accessories"}
)

const defaultMaxPrice = 100

var underPricePattern = regexp.MustCompile(`under (\d+)`)

// QueryFacets holds what could be read out of a free-text search query.
type QueryFacets struct {
	Color    string
	Size     string
	Category string
	MaxPrice int
}

// ParseQuery scans the lower-cased query for known colors, sizes and
// categories plus an "under N" price cap. Facets with no match fall back to
// blue / m / pants, the price cap to 100.
func ParseQuery(raw string) QueryFacets {
	lower := strings.ToLower(raw)

	facets := QueryFacets{
		Color:    firstMatch(lower, knownColors, "blue"),
		Size:     firstMatch(lower, knownSizes, "m"),
		Category: firstMatch(lower, knownCategories, "pants"),
		MaxPrice: defaultMaxPrice,
	}

	if m := underPricePattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			facets.MaxPrice = v
		}
	}

	return facets
}

func firstMatch(query string, vocabulary []string, fallback string) string {
	for _, term := range vocabulary {
		if strings.Contains(query, term) {
			return term
		}
	}
	return fallback
}
