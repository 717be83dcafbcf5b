package ordersHandler

import (
	ordersService "AgentDock/internal/api/orders/service"
	"AgentDock/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type OrdersHandler struct {
	log           *logrus.Logger
	ordersService ordersService.OrdersService
	validator     *validator.Validate
	middleware    middleware.Middleware
}

func New(
	log *logrus.Logger,
	os ordersService.OrdersService,
	validate *validator.Validate,
	middleware middleware.Middleware) *OrdersHandler {
	return &OrdersHandler{
		log:           log,
		ordersService: os,
		validator:     validate,
		middleware:    middleware,
	}
}

func (h *OrdersHandler) Start(srv fiber.Router) {
	orders := srv.Group("/orders", h.middleware.NewSessionMiddleware, h.middleware.NewTenantMiddleware)
	orders.Get("/", h.HandleList)
	orders.Patch("/:id", h.HandleUpdate)
}
