package dashboardHandler

import (
	"AgentDock/internal/api/dashboard"
	contextPkg "AgentDock/pkg/context"
	"AgentDock/pkg/handlerUtil"
	"bytes"
	"io"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *DashboardHandler) HandleOverview(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	res, err := h.dashboardService.Overview(c, sess)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "dashboard_overview")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *DashboardHandler) HandleStats(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	res, err := h.dashboardService.Stats(c, sess)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "dashboard_stats")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *DashboardHandler) HandleUpdateKnowledge(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	var req dashboard.KnowledgeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.dashboardService.UpdateKnowledge(c, sess, req.RawText); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "dashboard_update_knowledge")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, nil)
	}
}

func (h *DashboardHandler) HandleUploadKnowledge(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	file, err := ctx.FormFile("file")
	if err != nil {
		return errHandler.Handle(ctx, requestID, dashboard.ErrMissingFile, ctx.Path(), "parse_knowledge_file")
	}

	appendMode := ctx.FormValue("append", "true")
	body, contentType, err := repackKnowledgeFile(file, appendMode)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "repack_knowledge_file")
	}

	res, err := h.dashboardService.UploadKnowledge(c, sess, body, contentType)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "dashboard_upload_knowledge")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

// repackKnowledgeFile rewraps the browser upload into a fresh multipart
// body so the document can be forwarded upstream unchanged.
func repackKnowledgeFile(file *multipart.FileHeader, appendMode string) ([]byte, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", file.Filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, src); err != nil {
		return nil, "", err
	}

	if err := writer.WriteField("append", appendMode); err != nil {
		return nil, "", err
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}

func (h *DashboardHandler) HandleFaqSuggestions(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	res, err := h.dashboardService.FaqSuggestions(c, sess)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "dashboard_faq_suggestions")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *DashboardHandler) HandleCoachingInsights(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	res, err := h.dashboardService.CoachingInsights(c, sess)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "dashboard_coaching_insights")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *DashboardHandler) HandleReset(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	var req dashboard.ResetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.dashboardService.Reset(c, sess, req.WipeProfile); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "dashboard_reset")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, nil)
	}
}
