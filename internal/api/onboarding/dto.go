package onboarding

import (
	"AgentDock/internal/entity"
	"AgentDock/pkg/agentdock"
)

type DraftResponse struct {
	Draft        entity.BusinessProfile `json:"draft"`
	Completeness int                    `json:"completeness"`
}

type AssistantRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

type AssistantResponse struct {
	Reply        string                 `json:"reply"`
	Draft        entity.BusinessProfile `json:"draft"`
	Completeness int                    `json:"completeness"`
	Step         string                 `json:"step,omitempty"`
}

type PolishRequest struct {
	Field string `json:"field" validate:"required,max=64"`
	Text  string `json:"text" validate:"required,max=4000"`
}

type PolishResponse struct {
	Text string `json:"text"`
}

// AssistantState is the per-tenant wizard memory persisted between turns:
// the running transcript and the draft as the assistant last left it.
type AssistantState struct {
	Turns []agentdock.AssistantTurn `json:"turns"`
	Draft *entity.BusinessProfile   `json:"draft,omitempty"`
}
