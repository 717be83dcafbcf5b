package dashboardHandler

import (
	dashboardService "AgentDock/internal/api/dashboard/service"
	"AgentDock/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type DashboardHandler struct {
	log              *logrus.Logger
	dashboardService dashboardService.DashboardService
	validator        *validator.Validate
	middleware       middleware.Middleware
}

func New(
	log *logrus.Logger,
	ds dashboardService.DashboardService,
	validate *validator.Validate,
	middleware middleware.Middleware) *DashboardHandler {
	return &DashboardHandler{
		log:              log,
		dashboardService: ds,
		validator:        validate,
		middleware:       middleware,
	}
}

func (h *DashboardHandler) Start(srv fiber.Router) {
	dashboard := srv.Group("/dashboard", h.middleware.NewSessionMiddleware, h.middleware.NewTenantMiddleware)
	dashboard.Get("/", h.HandleOverview)
	dashboard.Get("/stats", h.HandleStats)
	dashboard.Put("/knowledge", h.HandleUpdateKnowledge)
	dashboard.Post("/knowledge/upload", h.HandleUploadKnowledge)
	dashboard.Get("/faq-suggestions", h.HandleFaqSuggestions)
	dashboard.Get("/coaching-insights", h.HandleCoachingInsights)
	dashboard.Post("/reset", h.HandleReset)
}
