package handoffsHandler

import (
	handoffsService "AgentDock/internal/api/handoffs/service"
	"AgentDock/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type HandoffsHandler struct {
	log             *logrus.Logger
	handoffsService handoffsService.HandoffsService
	validator       *validator.Validate
	middleware      middleware.Middleware
}

func New(
	log *logrus.Logger,
	hs handoffsService.HandoffsService,
	validate *validator.Validate,
	middleware middleware.Middleware) *HandoffsHandler {
	return &HandoffsHandler{
		log:             log,
		handoffsService: hs,
		validator:       validate,
		middleware:      middleware,
	}
}

func (h *HandoffsHandler) Start(srv fiber.Router) {
	handoffs := srv.Group("/handoffs", h.middleware.NewSessionMiddleware, h.middleware.NewTenantMiddleware)
	handoffs.Get("/", h.HandleList)
	handoffs.Patch("/:id", h.HandleUpdate)
}
