package entity

const (
	ComplaintPending    = "Pending"
	ComplaintInProgress = "In-Progress"
	ComplaintResolved   = "Resolved"
	ComplaintEscalated  = "Escalated"
	ComplaintReopened   = "Reopened"
)

const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

type Complaint struct {
	ID               int64   `json:"id"`
	TenantID         int64   `json:"tenant_id"`
	CustomerID       *int64  `json:"customer_id"`
	CustomerName     *string `json:"customer_name"`
	CustomerPhone    *string `json:"customer_phone"`
	ComplaintDetails string  `json:"complaint_details"`
	Category         *string `json:"category"`
	Priority         string  `json:"priority"`
	Status           string  `json:"status"`
	AssignedAgent    *string `json:"assigned_agent"`
	Notes            *string `json:"notes"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
	ResolvedAt       *string `json:"resolved_at"`
}
