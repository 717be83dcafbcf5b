package dashboard

import (
	"AgentDock/pkg/response"
	"net/http"
)

var (
	ErrMissingFile = response.NewError(http.StatusBadRequest, "knowledge upload requires a file")
)
