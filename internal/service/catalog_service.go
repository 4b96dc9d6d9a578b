package service

import (
	"wearly-be/internal/dto"
	"wearly-be/internal/store"
	"wearly-be/pkg/catalog"
)

type ICatalogService interface {
	ListProducts(sess *store.Session, filters catalog.Filters) *dto.ProductListResponse
}

type catalogService struct{}

func NewCatalogService() ICatalogService {
	return &catalogService{}
}

// ListProducts applies the user-selected filters to the session's current
// product list. Filtering is pure; the stored list is untouched.
func (s *catalogService) ListProducts(sess *store.Session, filters catalog.Filters) *dto.ProductListResponse {
	inFlight := make([]string, 0, len(sess.TryOnInFlight))
	for id := range sess.TryOnInFlight {
		inFlight = append(inFlight, id)
	}

	return &dto.ProductListResponse{
		Products:      catalog.ApplyFilters(sess.Products, filters),
		TryOnInFlight: inFlight,
	}
}
