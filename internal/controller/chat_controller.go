package controller

import (
	"github.com/gofiber/fiber/v2"

	"wearly-be/internal/dto"
	"wearly-be/internal/pkg/serverutils"
	"wearly-be/internal/service"
	"wearly-be/internal/store"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	sessions    *store.SessionStore
}

func NewChatController(chatService service.IChatService, sessions *store.SessionStore) IChatController {
	return &chatController{
		chatService: chatService,
		sessions:    sessions,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
}

// Chat runs one search turn. The response is always usable: on upstream
// failure it carries simulated products and says so.
func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	sess := resolveSession(c.sessions, req.SessionId)
	res := c.chatService.Search(ctx.Context(), sess, req.Message)

	return ctx.JSON(serverutils.SuccessResponse("Search completed", res))
}
