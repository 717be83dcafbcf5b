package chatsHandler

import (
	"AgentDock/internal/api/chats"
	contextPkg "AgentDock/pkg/context"
	"AgentDock/pkg/handlerUtil"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ChatsHandler) HandleConversations(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	res, err := h.chatsService.Conversations(c, sess)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "chats_conversations")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *ChatsHandler) HandleMessages(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	res, err := h.chatsService.Messages(c, sess, ctx.Params("customerID"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "chats_messages")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *ChatsHandler) HandleSummary(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	res, err := h.chatsService.Summary(c, sess, ctx.Params("customerID"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "chats_summary")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *ChatsHandler) HandleMarkRead(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	if err := h.chatsService.MarkRead(c, sess, ctx.Params("customerID")); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "chats_mark_read")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, nil)
	}
}

func (h *ChatsHandler) HandleDeleteMessage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	messageID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return errHandler.Handle(ctx, requestID, chats.ErrInvalidMessageID, ctx.Path(), "parse_message_id")
	}

	if err := h.chatsService.DeleteMessage(c, sess, messageID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "chats_delete_message")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, nil)
	}
}

func (h *ChatsHandler) HandleClearMessages(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sess := h.middleware.GetSession(ctx)

	if err := h.chatsService.ClearMessages(c, sess); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "chats_clear_messages")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, nil)
	}
}
