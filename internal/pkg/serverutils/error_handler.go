package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"wearly-be/internal/dto"
	"wearly-be/pkg/stylist"
)

// ErrorHandlerMiddleware maps the error taxonomy onto HTTP statuses:
// pre-flight validation failures become 400s, upstream failures become 502s
// carrying the upstream detail, everything else is a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, validationErr.Reason))
		}

		var apiErr *stylist.APIError
		if errors.As(err, &apiErr) {
			return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponse(fiber.StatusBadGateway, apiErr.Error()))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}
