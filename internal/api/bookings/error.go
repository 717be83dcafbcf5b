package bookings

import (
	"AgentDock/pkg/response"
	"net/http"
)

var (
	ErrUnknownStatus = response.NewError(http.StatusBadRequest, "unknown appointment status")
	ErrInvalidID     = response.NewError(http.StatusBadRequest, "invalid appointment id")
)
