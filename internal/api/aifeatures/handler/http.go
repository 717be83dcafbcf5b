package aifeaturesHandler

import (
	aifeaturesService "AgentDock/internal/api/aifeatures/service"
	"AgentDock/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AIFeaturesHandler struct {
	log               *logrus.Logger
	aifeaturesService aifeaturesService.AIFeaturesService
	validator         *validator.Validate
	middleware        middleware.Middleware
}

func New(
	log *logrus.Logger,
	as aifeaturesService.AIFeaturesService,
	validate *validator.Validate,
	middleware middleware.Middleware) *AIFeaturesHandler {
	return &AIFeaturesHandler{
		log:               log,
		aifeaturesService: as,
		validator:         validate,
		middleware:        middleware,
	}
}

func (h *AIFeaturesHandler) Start(srv fiber.Router) {
	ai := srv.Group("/ai", h.middleware.NewSessionMiddleware, h.middleware.NewTenantMiddleware)
	ai.Get("/analytics", h.HandleAnalytics)
	ai.Get("/sentiment", h.HandleSentiment)
	ai.Get("/optimization", h.HandleOptimization)
	ai.Get("/personalization", h.HandlePersonalization)
	ai.Post("/personalization", h.HandleUpdatePersonalization)
	ai.Post("/social-content", h.HandleSocialContent)
}
