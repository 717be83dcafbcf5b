package liveHandler

import (
	"AgentDock/internal/live"
	"AgentDock/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type LiveHandler struct {
	log        *logrus.Logger
	hub        *live.Hub
	middleware middleware.Middleware
}

func New(
	log *logrus.Logger,
	hub *live.Hub,
	middleware middleware.Middleware) *LiveHandler {
	return &LiveHandler{
		log:        log,
		hub:        hub,
		middleware: middleware,
	}
}

func (h *LiveHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	liveGroup := srv.Group("/live", h.middleware.NewSessionMiddleware, h.middleware.NewTenantMiddleware)
	liveGroup.Use("/ws", wsMiddleware)
	liveGroup.Get("/ws", websocket.New(h.handleWebSocket))
}
