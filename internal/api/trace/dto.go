package trace

import "AgentDock/internal/entity"

type ListResponse struct {
	Rows []entity.TraceRow `json:"rows"`
}
