package entity

// TraceRow is a read-only debug record of one AI agent turn.
type TraceRow struct {
	ID            int64         `json:"id"`
	TenantID      int64         `json:"tenant_id"`
	CustomerID    *int64        `json:"customer_id"`
	CustomerPhone *string       `json:"customer_phone"`
	MessageInID   *int64        `json:"message_in_id"`
	ModelUsed     *string       `json:"model_used"`
	KBChunkIDs    *string       `json:"kb_chunk_ids"`
	Actions       []interface{} `json:"actions"`
	ToolResults   []interface{} `json:"tool_results"`
	ErrorType     *string       `json:"error_type"`
	CreatedAt     string        `json:"created_at"`
}
