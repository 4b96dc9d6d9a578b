package controller

import (
	"github.com/gofiber/fiber/v2"

	"wearly-be/internal/dto"
	"wearly-be/internal/pkg/serverutils"
	"wearly-be/internal/service"
	"wearly-be/internal/store"
)

type ITryOnController interface {
	RegisterRoutes(r fiber.Router)
	TryOnFromItem(ctx *fiber.Ctx) error
}

type tryOnController struct {
	tryOnService service.ITryOnService
	sessions     *store.SessionStore
}

func NewTryOnController(tryOnService service.ITryOnService, sessions *store.SessionStore) ITryOnController {
	return &tryOnController{
		tryOnService: tryOnService,
		sessions:     sessions,
	}
}

func (c *tryOnController) RegisterRoutes(r fiber.Router) {
	r.Post("/try-on/from-item", c.TryOnFromItem)
}

func (c *tryOnController) TryOnFromItem(ctx *fiber.Ctx) error {
	var req dto.TryOnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	sess, found := c.sessions.Get(req.SessionId)
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "unknown session")
	}

	res, err := c.tryOnService.TryOn(ctx.Context(), sess, req.ProductId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Try-on complete", res))
}
