package chats

import (
	"AgentDock/pkg/response"
	"net/http"
)

var (
	ErrInvalidMessageID = response.NewError(http.StatusBadRequest, "invalid message id")
)
