package controller

import (
	"github.com/gofiber/fiber/v2"

	"wearly-be/internal/pkg/serverutils"
	"wearly-be/internal/service"
)

type IPlanController interface {
	RegisterRoutes(r fiber.Router)
	GetAllPlans(ctx *fiber.Ctx) error
}

type planController struct {
	planService service.IPlanService
}

func NewPlanController(planService service.IPlanService) IPlanController {
	return &planController{
		planService: planService,
	}
}

func (c *planController) RegisterRoutes(r fiber.Router) {
	r.Get("/plans", c.GetAllPlans)
}

func (c *planController) GetAllPlans(ctx *fiber.Ctx) error {
	plans := c.planService.GetAllPlans(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Plans retrieved", plans))
}
