package bookings

import "AgentDock/internal/entity"

type ListResponse struct {
	Appointments []entity.Appointment `json:"appointments"`
	ServiceNames map[string]string    `json:"service_names"`
	Counts       map[string]int       `json:"counts"`
	Filter       string               `json:"filter"`
}

type UpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
