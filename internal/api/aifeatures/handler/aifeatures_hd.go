package aifeaturesHandler

import (
	"AgentDock/internal/api/aifeatures"
	contextPkg "AgentDock/pkg/context"
	"AgentDock/pkg/handlerUtil"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AIFeaturesHandler) HandleAnalytics(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	res, err := h.aifeaturesService.Analytics(c, sess)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "ai_analytics")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *AIFeaturesHandler) HandleSentiment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	res, err := h.aifeaturesService.Sentiment(c, sess)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "ai_sentiment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *AIFeaturesHandler) HandleOptimization(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	res, err := h.aifeaturesService.Optimization(c, sess)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "ai_optimization")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *AIFeaturesHandler) HandlePersonalization(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	res, err := h.aifeaturesService.Personalization(c, sess, ctx.Query("customer_id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "ai_personalization")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *AIFeaturesHandler) HandleUpdatePersonalization(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	var req aifeatures.PersonalizationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.aifeaturesService.UpdatePersonalization(c, sess, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "ai_update_personalization")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *AIFeaturesHandler) HandleSocialContent(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	var req aifeatures.SocialContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.aifeaturesService.SocialContent(c, sess, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "ai_social_content")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
