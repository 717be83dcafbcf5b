package complaints

import "AgentDock/internal/entity"

type ListResponse struct {
	Complaints []entity.Complaint `json:"complaints"`
	Counts     map[string]int     `json:"counts"`
	Status     string             `json:"status_filter,omitempty"`
	Priority   string             `json:"priority_filter,omitempty"`
}

type CreateRequest struct {
	CustomerName     string `json:"customer_name" validate:"omitempty,max=255"`
	CustomerPhone    string `json:"customer_phone" validate:"omitempty,max=20"`
	ComplaintDetails string `json:"complaint_details" validate:"required,max=4000"`
	Category         string `json:"category" validate:"omitempty,max=64"`
	Priority         string `json:"priority" validate:"omitempty,oneof=Low Medium High Critical"`
}

type UpdateRequest struct {
	Status        *string `json:"status" validate:"omitempty,oneof=Pending In-Progress Resolved Escalated Reopened"`
	Priority      *string `json:"priority" validate:"omitempty,oneof=Low Medium High Critical"`
	AssignedAgent *string `json:"assigned_agent" validate:"omitempty,max=255"`
	Notes         *string `json:"notes" validate:"omitempty,max=4000"`
	Category      *string `json:"category" validate:"omitempty,max=64"`
}
