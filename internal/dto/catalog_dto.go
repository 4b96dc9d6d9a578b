package dto

import "wearly-be/pkg/catalog"

// ProductListResponse is the session's current grid after filtering, plus the
// ids of products whose try-on is still being generated.
type ProductListResponse struct {
	Products      []catalog.Product `json:"products"`
	TryOnInFlight []string          `json:"try_on_in_flight"`
}
