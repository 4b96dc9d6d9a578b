package bootstrap

import (
	"time"

	"wearly-be/internal/config"
	"wearly-be/internal/controller"
	"wearly-be/internal/pkg/logger"
	"wearly-be/internal/service"
	"wearly-be/internal/store"
	"wearly-be/pkg/stylist"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	UploadController  controller.IUploadController
	TryOnController   controller.ITryOnController
	CatalogController controller.ICatalogController
	PlanController    controller.IPlanController

	// Shared facades
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	sessions := store.NewSessionStore(time.Duration(cfg.Stylist.SessionTTLMinutes) * time.Minute)
	stylistClient := stylist.NewClient(cfg.Stylist.BaseURL)

	// 2. Services
	chatService := service.NewChatService(stylistClient, sessions, sysLogger)
	uploadService := service.NewUploadService(stylistClient, sessions, sysLogger)
	tryOnService := service.NewTryOnService(stylistClient, sessions, sysLogger)
	catalogService := service.NewCatalogService()
	planService := service.NewPlanService()

	// 3. Controllers
	return &Container{
		ChatController:    controller.NewChatController(chatService, sessions),
		UploadController:  controller.NewUploadController(uploadService, sessions),
		TryOnController:   controller.NewTryOnController(tryOnService, sessions),
		CatalogController: controller.NewCatalogController(catalogService, sessions),
		PlanController:    controller.NewPlanController(planService),
		Logger:            sysLogger,
	}
}
