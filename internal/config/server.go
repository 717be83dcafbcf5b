package config

import (
	aifeaturesHandler "AgentDock/internal/api/aifeatures/handler"
	aifeaturesService "AgentDock/internal/api/aifeatures/service"
	authHandler "AgentDock/internal/api/auth/handler"
	authService "AgentDock/internal/api/auth/service"
	bookingsHandler "AgentDock/internal/api/bookings/handler"
	bookingsService "AgentDock/internal/api/bookings/service"
	chatsHandler "AgentDock/internal/api/chats/handler"
	chatsService "AgentDock/internal/api/chats/service"
	complaintsHandler "AgentDock/internal/api/complaints/handler"
	complaintsService "AgentDock/internal/api/complaints/service"
	dashboardHandler "AgentDock/internal/api/dashboard/handler"
	dashboardService "AgentDock/internal/api/dashboard/service"
	handoffsHandler "AgentDock/internal/api/handoffs/handler"
	handoffsService "AgentDock/internal/api/handoffs/service"
	liveHandler "AgentDock/internal/api/live/handler"
	onboardingHandler "AgentDock/internal/api/onboarding/handler"
	onboardingService "AgentDock/internal/api/onboarding/service"
	ordersHandler "AgentDock/internal/api/orders/handler"
	ordersService "AgentDock/internal/api/orders/service"
	previewHandler "AgentDock/internal/api/preview/handler"
	previewService "AgentDock/internal/api/preview/service"
	servicesHandler "AgentDock/internal/api/services/handler"
	servicesService "AgentDock/internal/api/services/service"
	settingsHandler "AgentDock/internal/api/settings/handler"
	settingsService "AgentDock/internal/api/settings/service"
	traceHandler "AgentDock/internal/api/trace/handler"
	traceService "AgentDock/internal/api/trace/service"
	uploadsHandler "AgentDock/internal/api/uploads/handler"
	uploadsService "AgentDock/internal/api/uploads/service"
	"AgentDock/internal/live"
	"AgentDock/internal/middleware"
	"AgentDock/internal/session"
	"AgentDock/pkg/agentdock"
	"AgentDock/pkg/storage"
	"AgentDock/pkg/utils"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	store       storage.Adapter
	sessions    *session.Manager
	agentClient *agentdock.Client
	liveHub     *live.Hub
	handlers    []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithStorage() ServerOption {
	return func(s *Server) error {
		store, err := storage.FromEnv(os.Getenv("CONSOLE_STORAGE"))
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize storage adapter: %v", err)
			}
			return fmt.Errorf("failed to create storage adapter: %w", err)
		}
		s.store = store
		return nil
	}
}

func WithSessionManager() ServerOption {
	return func(s *Server) error {
		if s.store == nil {
			return fmt.Errorf("storage must be initialized before sessions")
		}
		s.sessions = session.NewManager(s.store, s.log)
		return nil
	}
}

func WithAgentDockClient() ServerOption {
	return func(s *Server) error {
		s.agentClient = agentdock.New(s.log)
		return nil
	}
}

func WithLiveHub() ServerOption {
	return func(s *Server) error {
		if s.agentClient == nil {
			return fmt.Errorf("backend client must be initialized before the live hub")
		}
		s.liveHub = live.NewHub(s.agentClient, s.log)
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.sessions == nil {
			return fmt.Errorf("sessions must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.sessions)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authServices := authService.New(s.log, s.agentClient, s.sessions)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware)

	// Onboarding Wizard
	onboardingServices := onboardingService.New(s.log, s.agentClient)
	onboardingHandlers := onboardingHandler.New(s.log, onboardingServices, s.validator, s.middleware)

	// Bookings
	bookingsServices := bookingsService.New(s.log, s.agentClient)
	bookingsHandlers := bookingsHandler.New(s.log, bookingsServices, s.validator, s.middleware)

	// Orders
	ordersServices := ordersService.New(s.log, s.agentClient)
	ordersHandlers := ordersHandler.New(s.log, ordersServices, s.validator, s.middleware)

	// Complaints
	complaintsServices := complaintsService.New(s.log, s.agentClient)
	complaintsHandlers := complaintsHandler.New(s.log, complaintsServices, s.validator, s.middleware)

	// Handoffs
	handoffsServices := handoffsService.New(s.log, s.agentClient)
	handoffsHandlers := handoffsHandler.New(s.log, handoffsServices, s.validator, s.middleware)

	// Chats
	chatsServices := chatsService.New(s.log, s.agentClient)
	chatsHandlers := chatsHandler.New(s.log, chatsServices, s.validator, s.middleware)

	// Agent Trace
	traceServices := traceService.New(s.log, s.agentClient)
	traceHandlers := traceHandler.New(s.log, traceServices, s.middleware)

	// Dashboard
	dashboardServices := dashboardService.New(s.log, s.agentClient)
	dashboardHandlers := dashboardHandler.New(s.log, dashboardServices, s.validator, s.middleware)

	// Service Catalog
	servicesServices := servicesService.New(s.log, s.agentClient)
	servicesHandlers := servicesHandler.New(s.log, servicesServices, s.validator, s.middleware)

	// Settings
	settingsServices := settingsService.New(s.log, s.agentClient)
	settingsHandlers := settingsHandler.New(s.log, settingsServices, s.validator, s.middleware)

	// Agent Preview
	previewServices := previewService.New(s.log, s.agentClient, s.utils)
	previewHandlers := previewHandler.New(s.log, previewServices, s.validator, s.middleware)

	// AI Features
	aifeaturesServices := aifeaturesService.New(s.log, s.agentClient)
	aifeaturesHandlers := aifeaturesHandler.New(s.log, aifeaturesServices, s.validator, s.middleware)

	// Uploads
	uploadsServices := uploadsService.New(s.log, s.agentClient)
	uploadsHandlers := uploadsHandler.New(s.log, uploadsServices, s.middleware, s.utils)

	// Live Push
	liveHandlers := liveHandler.New(s.log, s.liveHub, s.middleware)

	s.setupHealthCheck()
	s.handlers = append(s.handlers,
		authHandlers,
		onboardingHandlers,
		bookingsHandlers,
		ordersHandlers,
		complaintsHandlers,
		handoffsHandlers,
		chatsHandlers,
		traceHandlers,
		dashboardHandlers,
		servicesHandlers,
		settingsHandlers,
		previewHandlers,
		aifeaturesHandlers,
		uploadsHandlers,
		liveHandlers,
	)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	router := s.engine.Group("/api/v1")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

// Shutdown drains the server, stops every live feed and releases the
// storage adapter.
func (s *Server) Shutdown() {
	if s.liveHub != nil {
		s.liveHub.Close()
	}
	if err := s.engine.Shutdown(); err != nil {
		s.log.Errorf("Failed to shut down server: %v", err)
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.log.Errorf("Failed to close storage adapter: %v", err)
		}
	}
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
