package handlerUtil

import (
	"AgentDock/pkg/agentdock"
	"AgentDock/pkg/log"
	"AgentDock/pkg/response"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error    string `json:"error"`
	Code     string `json:"code,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// Handle maps service errors to HTTP responses. Backend failures keep the
// backend's status and message so the browser sees exactly what a direct
// call would have returned.
func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	var upstreamErr *agentdock.UpstreamError
	if errors.As(err, &upstreamErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"status":     upstreamErr.Status,
			"error":      upstreamErr.Message,
			"path":       path,
			"operation":  operation,
		}).Warn("Backend request failed")
		return c.Status(upstreamErr.Status).JSON(fiber.Map{
			"error": upstreamErr.Message,
		})
	}

	if errors.Is(err, agentdock.ErrSessionExpired) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"path":       path,
			"operation":  operation,
		}).Warn("Session expired")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":    "session expired",
			"redirect": "/login",
		})
	}

	if errors.Is(err, context.DeadlineExceeded) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"path":       path,
			"operation":  operation,
		}).Error("Request timed out")
		return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
			"error": "request timed out",
		})
	}

	traceID := log.ErrorWithTraceID(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}, "Unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":    "internal server error",
		"trace_id": traceID,
	})
}

// HandleValidationError renders validator failures in the same envelope.
func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// HandleRequestTimeout is the branch handlers take when their own deadline
// fires before the service returns.
func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
		"error": "request timed out",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, status int, data interface{}) error {
	if data == nil {
		return c.SendStatus(status)
	}
	return c.Status(status).JSON(data)
}
