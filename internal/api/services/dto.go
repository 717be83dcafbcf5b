package services

import "AgentDock/internal/entity"

type ListResponse struct {
	Services []entity.Service `json:"services"`
}

// ReplaceRequest swaps the whole catalog in one call. Partial edits are
// made by sending the full desired list back.
type ReplaceRequest struct {
	Services []entity.Service `json:"services" validate:"required,dive"`
}
