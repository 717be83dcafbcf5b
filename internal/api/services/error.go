package services

import (
	"AgentDock/pkg/response"
	"net/http"
)

var (
	ErrUnnamedService = response.NewError(http.StatusBadRequest, "every service needs a name")
)
