package controller

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"wearly-be/internal/pkg/serverutils"
	"wearly-be/internal/service"
	"wearly-be/internal/store"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	UploadUserImage(ctx *fiber.Ctx) error
}

type uploadController struct {
	uploadService service.IUploadService
	sessions      *store.SessionStore
}

func NewUploadController(uploadService service.IUploadService, sessions *store.SessionStore) IUploadController {
	return &uploadController{
		uploadService: uploadService,
		sessions:      sessions,
	}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	r.Post("/upload-user-image", c.UploadUserImage)
}

func (c *uploadController) UploadUserImage(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "multipart field 'image' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	sess := resolveSession(c.sessions, ctx.FormValue("session_id"))

	res, err := c.uploadService.UploadUserImage(
		ctx.Context(),
		sess,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Image uploaded", res))
}
