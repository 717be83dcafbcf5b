package handoffs

import (
	"AgentDock/pkg/response"
	"net/http"
)

var (
	ErrInvalidID   = response.NewError(http.StatusBadRequest, "invalid handoff id")
	ErrEmptyUpdate = response.NewError(http.StatusBadRequest, "no handoff fields to update")
)
