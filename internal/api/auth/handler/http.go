package authHandler

import (
	authService "AgentDock/internal/api/auth/service"
	"AgentDock/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log         *logrus.Logger
	authService authService.AuthService
	validator   *validator.Validate
	middleware  middleware.Middleware
}

func New(
	log *logrus.Logger,
	as authService.AuthService,
	validate *validator.Validate,
	middleware middleware.Middleware) *AuthHandler {
	return &AuthHandler{
		log:         log,
		authService: as,
		validator:   validate,
		middleware:  middleware,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")
	auth.Post("/login", h.middleware.NewRateLimiter, h.HandleLogin)
	auth.Post("/signup", h.middleware.NewRateLimiter, h.HandleSignup)
	auth.Post("/logout", h.middleware.NewSessionMiddleware, h.HandleLogout)
	auth.Get("/session", h.middleware.NewSessionMiddleware, h.HandleSession)
	auth.Post("/password-recovery", h.middleware.NewRateLimiter, h.HandlePasswordRecovery)
	auth.Post("/password-reset", h.middleware.NewRateLimiter, h.HandlePasswordReset)
	auth.Post("/check-email", h.HandleCheckEmail)
}
