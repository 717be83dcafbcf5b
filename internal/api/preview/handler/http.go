package previewHandler

import (
	previewService "AgentDock/internal/api/preview/service"
	"AgentDock/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PreviewHandler struct {
	log            *logrus.Logger
	previewService previewService.PreviewService
	validator      *validator.Validate
	middleware     middleware.Middleware
}

func New(
	log *logrus.Logger,
	ps previewService.PreviewService,
	validate *validator.Validate,
	middleware middleware.Middleware) *PreviewHandler {
	return &PreviewHandler{
		log:            log,
		previewService: ps,
		validator:      validate,
		middleware:     middleware,
	}
}

func (h *PreviewHandler) Start(srv fiber.Router) {
	preview := srv.Group("/preview", h.middleware.NewSessionMiddleware, h.middleware.NewTenantMiddleware)
	preview.Post("/chat", h.HandleChat)
	preview.Get("/transcript", h.HandleTranscript)
	preview.Delete("/transcript", h.HandleClearTranscript)
}
