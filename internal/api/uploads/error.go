package uploads

import (
	"AgentDock/pkg/response"
	"net/http"
)

var (
	ErrMissingFile = response.NewError(http.StatusBadRequest, "upload requires a file")
)
