package entity

const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

type Message struct {
	ID         int64  `json:"id"`
	TenantID   int64  `json:"tenant_id"`
	CustomerID *int64 `json:"customer_id"`
	Direction  string `json:"direction"`
	Text       string `json:"text"`
	CreatedAt  string `json:"created_at"`
}

// Conversation is the backend's per-customer grouping of messages.
type Conversation struct {
	ConversationKey string  `json:"conversation_key"`
	CustomerID      *int64  `json:"customer_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   *string `json:"customer_phone"`
	StateMode       *string `json:"state_mode,omitempty"`
	LastMessage     string  `json:"last_message"`
	LastDirection   string  `json:"last_direction"`
	LastAt          string  `json:"last_at"`
	Unread          int     `json:"unread,omitempty"`
}

type ConversationSummary struct {
	Summary   string `json:"summary"`
	Sentiment string `json:"sentiment"`
	NextSteps string `json:"next_steps,omitempty"`
}
