package orders

import "AgentDock/internal/entity"

type OrderView struct {
	entity.Order
	SLALabel string `json:"sla_label,omitempty"`
}

type ListResponse struct {
	Orders []OrderView    `json:"orders"`
	Counts map[string]int `json:"counts"`
}

type UpdateRequest struct {
	Status          *string `json:"status" validate:"omitempty,oneof=pending confirmed fulfilled cancelled"`
	AssignedTo      *string `json:"assigned_to" validate:"omitempty,max=255"`
	DueAt           *string `json:"due_at" validate:"omitempty"`
	DueInMinutes    *int    `json:"due_in_minutes" validate:"omitempty,min=1,max=10080"`
	ResolutionNotes *string `json:"resolution_notes" validate:"omitempty,max=4000"`
}
