package chatsHandler

import (
	chatsService "AgentDock/internal/api/chats/service"
	"AgentDock/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ChatsHandler struct {
	log          *logrus.Logger
	chatsService chatsService.ChatsService
	validator    *validator.Validate
	middleware   middleware.Middleware
}

func New(
	log *logrus.Logger,
	cs chatsService.ChatsService,
	validate *validator.Validate,
	middleware middleware.Middleware) *ChatsHandler {
	return &ChatsHandler{
		log:          log,
		chatsService: cs,
		validator:    validate,
		middleware:   middleware,
	}
}

func (h *ChatsHandler) Start(srv fiber.Router) {
	chats := srv.Group("/chats", h.middleware.NewSessionMiddleware, h.middleware.NewTenantMiddleware)
	chats.Get("/", h.HandleConversations)
	chats.Delete("/messages", h.HandleClearMessages)
	chats.Delete("/messages/:id", h.HandleDeleteMessage)
	chats.Get("/:customerID/messages", h.HandleMessages)
	chats.Get("/:customerID/summary", h.HandleSummary)
	chats.Post("/:customerID/read", h.HandleMarkRead)
}
