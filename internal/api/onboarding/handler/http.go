package onboardingHandler

import (
	onboardingService "AgentDock/internal/api/onboarding/service"
	"AgentDock/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type OnboardingHandler struct {
	log               *logrus.Logger
	onboardingService onboardingService.OnboardingService
	validator         *validator.Validate
	middleware        middleware.Middleware
}

func New(
	log *logrus.Logger,
	os onboardingService.OnboardingService,
	validate *validator.Validate,
	middleware middleware.Middleware) *OnboardingHandler {
	return &OnboardingHandler{
		log:               log,
		onboardingService: os,
		validator:         validate,
		middleware:        middleware,
	}
}

func (h *OnboardingHandler) Start(srv fiber.Router) {
	wizard := srv.Group("/onboarding", h.middleware.NewSessionMiddleware, h.middleware.NewTenantMiddleware)
	wizard.Get("/", h.HandleDraft)
	wizard.Put("/", h.HandleSave)
	wizard.Post("/assistant", h.HandleAssistant)
	wizard.Delete("/assistant", h.HandleClearAssistant)
	wizard.Post("/polish", h.HandlePolish)
}
