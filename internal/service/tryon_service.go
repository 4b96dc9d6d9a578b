package service

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"wearly-be/internal/dto"
	"wearly-be/internal/pkg/logger"
	"wearly-be/internal/store"
	"wearly-be/pkg/catalog"
	"wearly-be/pkg/stylist"
)

var errSessionNotReady = dto.NewValidationError("Session not ready. Please wait for the session to be established.")

type ITryOnService interface {
	TryOn(ctx context.Context, sess *store.Session, productID string) (*dto.TryOnResponse, error)
}

type tryOnService struct {
	stylist  *stylist.Client
	sessions *store.SessionStore
	logger   logger.ILogger
}

func NewTryOnService(stylistClient *stylist.Client, sessions *store.SessionStore, sysLogger logger.ILogger) ITryOnService {
	return &tryOnService{
		stylist:  stylistClient,
		sessions: sessions,
		logger:   sysLogger,
	}
}

// TryOn asks the backend for a composite of the product on the user's photo
// and patches the matching product in place (identity by id, whole-list
// replacement). The in-flight set tracks pending ids per product; two
// concurrent requests for the same id are not prevented.
func (s *tryOnService) TryOn(ctx context.Context, sess *store.Session, productID string) (*dto.TryOnResponse, error) {
	if sess.AssistantSessionId == "" {
		return nil, errSessionNotReady
	}

	product, found := findProduct(sess.Products, productID)
	if !found {
		return nil, fiber.NewError(fiber.StatusNotFound, "product not found in current results")
	}

	s.setInFlight(sess, productID, true)

	result, err := s.stylist.TryOnFromItem(ctx, sess.AssistantSessionId, product.Image)
	if err != nil {
		s.logger.Error("tryon", "try-on failed", map[string]interface{}{
			"error":      err.Error(),
			"product_id": productID,
		})

		s.setInFlight(sess, productID, false)
		return nil, err
	}

	updated := make([]catalog.Product, len(sess.Products))
	copy(updated, sess.Products)
	for i := range updated {
		if updated[i].Id == productID {
			updated[i].UserTryOnImage = result.TryOnImageURL
			product = updated[i]
		}
	}
	sess.Products = updated
	s.setInFlight(sess, productID, false)
	s.sessions.Save(sess)

	return &dto.TryOnResponse{
		TryOnImageURL: result.TryOnImageURL,
		Message:       result.Message,
		Product:       product,
	}, nil
}

// setInFlight swaps in a fresh map so readers never observe a partial update.
func (s *tryOnService) setInFlight(sess *store.Session, productID string, inFlight bool) {
	next := make(map[string]bool, len(sess.TryOnInFlight)+1)
	for id := range sess.TryOnInFlight {
		next[id] = true
	}
	if inFlight {
		next[productID] = true
	} else {
		delete(next, productID)
	}
	sess.TryOnInFlight = next
	s.sessions.Save(sess)
}

func findProduct(products []catalog.Product, id string) (catalog.Product, bool) {
	for _, p := range products {
		if p.Id == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}
