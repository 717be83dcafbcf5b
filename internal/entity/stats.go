package entity

type Stats struct {
	MessagesToday             int     `json:"messages_today"`
	ConversationsToday        *int    `json:"conversations_today,omitempty"`
	UnreadConversations       *int    `json:"unread_conversations,omitempty"`
	TotalAppointments         int     `json:"total_appointments"`
	TotalComplaints           int     `json:"total_complaints"`
	MostRequestedServiceName  *string `json:"most_requested_service_name"`
	MostRequestedServiceCount int     `json:"most_requested_service_count"`
}

type Knowledge struct {
	RawText   string  `json:"raw_text"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

type Faq struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type CoachingInsight struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
