package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"wearly-be/internal/pkg/serverutils"
	"wearly-be/internal/service"
	"wearly-be/internal/store"
	"wearly-be/pkg/catalog"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	ListProducts(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
	sessions       *store.SessionStore
}

func NewCatalogController(catalogService service.ICatalogService, sessions *store.SessionStore) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
		sessions:       sessions,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	r.Get("/products", c.ListProducts)
}

// ListProducts returns the session's current grid, filtered by the query
// params: max_price plus comma-separated colors/sizes/categories.
func (c *catalogController) ListProducts(ctx *fiber.Ctx) error {
	sess, found := c.sessions.Get(ctx.Query("session_id"))
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "unknown session")
	}

	filters := catalog.Filters{
		MaxPrice:   ctx.QueryFloat("max_price"),
		Colors:     splitParam(ctx.Query("colors")),
		Sizes:      splitParam(ctx.Query("sizes")),
		Categories: splitParam(ctx.Query("categories")),
	}

	res := c.catalogService.ListProducts(sess, filters)
	return ctx.JSON(serverutils.SuccessResponse("Products retrieved", res))
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
