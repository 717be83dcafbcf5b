package uploadsHandler

import (
	uploadsService "AgentDock/internal/api/uploads/service"
	"AgentDock/internal/middleware"
	"AgentDock/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadsHandler struct {
	log            *logrus.Logger
	uploadsService uploadsService.UploadsService
	middleware     middleware.Middleware
	utils          utils.IUtils
}

func New(
	log *logrus.Logger,
	us uploadsService.UploadsService,
	middleware middleware.Middleware,
	utils utils.IUtils) *UploadsHandler {
	return &UploadsHandler{
		log:            log,
		uploadsService: us,
		middleware:     middleware,
		utils:          utils,
	}
}

func (h *UploadsHandler) Start(srv fiber.Router) {
	uploads := srv.Group("/uploads", h.middleware.NewSessionMiddleware, h.middleware.NewTenantMiddleware)
	uploads.Post("/", h.HandleUpload)
}
