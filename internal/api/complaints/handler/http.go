package complaintsHandler

import (
	complaintsService "AgentDock/internal/api/complaints/service"
	"AgentDock/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ComplaintsHandler struct {
	log               *logrus.Logger
	complaintsService complaintsService.ComplaintsService
	validator         *validator.Validate
	middleware        middleware.Middleware
}

func New(
	log *logrus.Logger,
	cs complaintsService.ComplaintsService,
	validate *validator.Validate,
	middleware middleware.Middleware) *ComplaintsHandler {
	return &ComplaintsHandler{
		log:               log,
		complaintsService: cs,
		validator:         validate,
		middleware:        middleware,
	}
}

func (h *ComplaintsHandler) Start(srv fiber.Router) {
	complaints := srv.Group("/complaints", h.middleware.NewSessionMiddleware, h.middleware.NewTenantMiddleware)
	complaints.Get("/", h.HandleList)
	complaints.Post("/", h.HandleCreate)
	complaints.Patch("/:id", h.HandleUpdate)
}
