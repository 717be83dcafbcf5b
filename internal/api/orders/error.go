package orders

import (
	"AgentDock/pkg/response"
	"net/http"
)

var (
	ErrInvalidID   = response.NewError(http.StatusBadRequest, "invalid order id")
	ErrEmptyUpdate = response.NewError(http.StatusBadRequest, "no order fields to update")
)
