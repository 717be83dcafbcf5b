package entity

const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// AppointmentStatuses is the closed set the UI offers; the backend remains
// the authority on transitions.
var AppointmentStatuses = []string{
	AppointmentPending,
	AppointmentConfirmed,
	AppointmentCompleted,
	AppointmentCancelled,
}

type Appointment struct {
	ID            int64   `json:"id"`
	TenantID      int64   `json:"tenant_id"`
	CustomerID    *int64  `json:"customer_id"`
	ServiceID     *int64  `json:"service_id"`
	ServiceName   *string `json:"service_name,omitempty"`
	CustomerName  *string `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
	StartTime     string  `json:"start_time"`
	Status        string  `json:"status"`
}
