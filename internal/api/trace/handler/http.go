package traceHandler

import (
	traceService "AgentDock/internal/api/trace/service"
	"AgentDock/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TraceHandler struct {
	log          *logrus.Logger
	traceService traceService.TraceService
	middleware   middleware.Middleware
}

func New(
	log *logrus.Logger,
	ts traceService.TraceService,
	middleware middleware.Middleware) *TraceHandler {
	return &TraceHandler{
		log:          log,
		traceService: ts,
		middleware:   middleware,
	}
}

func (h *TraceHandler) Start(srv fiber.Router) {
	trace := srv.Group("/trace", h.middleware.NewSessionMiddleware, h.middleware.NewTenantMiddleware)
	trace.Get("/", h.HandleList)
}
