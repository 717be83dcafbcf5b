package onboarding

import (
	"AgentDock/pkg/response"
	"net/http"
)

var (
	ErrEmptyDraft = response.NewError(http.StatusBadRequest, "profile draft is empty")
)
