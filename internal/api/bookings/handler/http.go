package bookingsHandler

import (
	bookingsService "AgentDock/internal/api/bookings/service"
	"AgentDock/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BookingsHandler struct {
	log             *logrus.Logger
	bookingsService bookingsService.BookingsService
	validator       *validator.Validate
	middleware      middleware.Middleware
}

func New(
	log *logrus.Logger,
	bs bookingsService.BookingsService,
	validate *validator.Validate,
	middleware middleware.Middleware) *BookingsHandler {
	return &BookingsHandler{
		log:             log,
		bookingsService: bs,
		validator:       validate,
		middleware:      middleware,
	}
}

func (h *BookingsHandler) Start(srv fiber.Router) {
	bookings := srv.Group("/bookings", h.middleware.NewSessionMiddleware, h.middleware.NewTenantMiddleware)
	bookings.Get("/", h.HandleList)
	bookings.Patch("/:id", h.HandleUpdate)
	bookings.Delete("/", h.HandleClear)
}
