package chats

import "AgentDock/internal/entity"

type ConversationsResponse struct {
	Conversations []entity.Conversation `json:"conversations"`
}

type MessagesResponse struct {
	Messages []entity.Message `json:"messages"`
}

type SummaryResponse struct {
	Summary   string `json:"summary"`
	Sentiment string `json:"sentiment"`
	NextSteps string `json:"next_steps,omitempty"`
}
