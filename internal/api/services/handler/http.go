package servicesHandler

import (
	servicesService "AgentDock/internal/api/services/service"
	"AgentDock/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServicesHandler struct {
	log             *logrus.Logger
	servicesService servicesService.ServicesService
	validator       *validator.Validate
	middleware      middleware.Middleware
}

func New(
	log *logrus.Logger,
	ss servicesService.ServicesService,
	validate *validator.Validate,
	middleware middleware.Middleware) *ServicesHandler {
	return &ServicesHandler{
		log:             log,
		servicesService: ss,
		validator:       validate,
		middleware:      middleware,
	}
}

func (h *ServicesHandler) Start(srv fiber.Router) {
	services := srv.Group("/services", h.middleware.NewSessionMiddleware, h.middleware.NewTenantMiddleware)
	services.Get("/", h.HandleList)
	services.Put("/", h.HandleReplace)
}
