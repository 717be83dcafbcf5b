package settingsHandler

import (
	settingsService "AgentDock/internal/api/settings/service"
	"AgentDock/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SettingsHandler struct {
	log             *logrus.Logger
	settingsService settingsService.SettingsService
	validator       *validator.Validate
	middleware      middleware.Middleware
}

func New(
	log *logrus.Logger,
	ss settingsService.SettingsService,
	validate *validator.Validate,
	middleware middleware.Middleware) *SettingsHandler {
	return &SettingsHandler{
		log:             log,
		settingsService: ss,
		validator:       validate,
		middleware:      middleware,
	}
}

func (h *SettingsHandler) Start(srv fiber.Router) {
	settings := srv.Group("/settings", h.middleware.NewSessionMiddleware, h.middleware.NewTenantMiddleware)
	settings.Get("/", h.HandleGet)
	settings.Put("/theme", h.HandleSetTheme)
	settings.Post("/reset", h.HandleReset)
	settings.Delete("/appointments", h.HandleClearAppointments)
	settings.Delete("/messages", h.HandleClearMessages)
}
