package chats

import (
	"AgentDock/internal/entity"
	"sort"
)

// SortAscending orders messages oldest-first by created_at so the thread
// reads top to bottom no matter how the backend returned it. Timestamps
// are RFC3339 strings, so lexical order is chronological; equal stamps
// fall back to the message id.
func SortAscending(messages []entity.Message) []entity.Message {
	sorted := append([]entity.Message(nil), messages...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt != sorted[j].CreatedAt {
			return sorted[i].CreatedAt < sorted[j].CreatedAt
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}
