package complaints

import (
	"AgentDock/pkg/response"
	"net/http"
)

var (
	ErrInvalidID   = response.NewError(http.StatusBadRequest, "invalid complaint id")
	ErrEmptyUpdate = response.NewError(http.StatusBadRequest, "no complaint fields to update")
)
