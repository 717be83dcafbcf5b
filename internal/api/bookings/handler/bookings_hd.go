package bookingsHandler

import (
	"AgentDock/internal/api/bookings"
	contextPkg "AgentDock/pkg/context"
	"AgentDock/pkg/handlerUtil"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *BookingsHandler) HandleList(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	res, err := h.bookingsService.List(c, sess, ctx.Query("status"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "bookings_list")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *BookingsHandler) HandleUpdate(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	appointmentID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return errHandler.Handle(ctx, requestID, bookings.ErrInvalidID, ctx.Path(), "parse_appointment_id")
	}

	var req bookings.UpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	updated, err := h.bookingsService.Update(c, sess, appointmentID, req.Status)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "bookings_update")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, updated)
	}
}

func (h *BookingsHandler) HandleClear(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	if err := h.bookingsService.Clear(c, sess); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "bookings_clear")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, nil)
	}
}
