package uploadsHandler

import (
	"AgentDock/internal/api/uploads"
	contextPkg "AgentDock/pkg/context"
	"AgentDock/pkg/handlerUtil"
	"AgentDock/pkg/response"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *UploadsHandler) HandleUpload(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	file, err := ctx.FormFile("file")
	if err != nil {
		return errHandler.Handle(ctx, requestID, uploads.ErrMissingFile, ctx.Path(), "parse_upload_file")
	}

	if err := h.utils.ValidateImageFile(file); err != nil {
		return errHandler.Handle(ctx, requestID, response.NewError(fiber.StatusBadRequest, err.Error()), ctx.Path(), "validate_upload_file")
	}

	body, contentType, err := h.utils.RepackMultipart(file, nil)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "repack_upload_file")
	}

	res, err := h.uploadsService.UploadImage(c, sess, body, contentType)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "uploads_image")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
