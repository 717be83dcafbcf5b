package entity

const (
	HandoffOpen     = "open"
	HandoffResolved = "resolved"
)

// Handoff is an agent-to-human escalation event. DueAt carries the
// operator-set SLA deadline.
type Handoff struct {
	ID              int64   `json:"id"`
	TenantID        int64   `json:"tenant_id"`
	CustomerID      *int64  `json:"customer_id"`
	Reason          *string `json:"reason"`
	Status          string  `json:"status"`
	AssignedTo      *string `json:"assigned_to,omitempty"`
	DueAt           *string `json:"due_at,omitempty"`
	ResolutionNotes *string `json:"resolution_notes,omitempty"`
	ResolvedAt      *string `json:"resolved_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       *string `json:"updated_at,omitempty"`
}
