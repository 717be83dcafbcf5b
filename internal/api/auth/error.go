package auth

import (
	"AgentDock/pkg/response"
	"net/http"
)

var (
	ErrInvalidCredentials = response.NewError(http.StatusBadRequest, "invalid email or password")
	ErrSignupFailed       = response.NewError(http.StatusBadRequest, "could not create business account")
)
