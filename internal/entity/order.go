package entity

const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderFulfilled = "fulfilled"
	OrderCancelled = "cancelled"
)

type Order struct {
	ID              int64         `json:"id"`
	TenantID        int64         `json:"tenant_id"`
	CustomerID      *int64        `json:"customer_id"`
	Status          string        `json:"status"`
	Items           []interface{} `json:"items"`
	TotalAmount     *float64      `json:"total_amount"`
	AssignedTo      *string       `json:"assigned_to,omitempty"`
	DueAt           *string       `json:"due_at,omitempty"`
	ResolutionNotes *string       `json:"resolution_notes,omitempty"`
	ResolvedAt      *string       `json:"resolved_at,omitempty"`
	CreatedAt       string        `json:"created_at"`
	UpdatedAt       *string       `json:"updated_at,omitempty"`
}
