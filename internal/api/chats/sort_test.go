package chats

import (
	"AgentDock/internal/entity"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortAscending(t *testing.T) {
	messages := []entity.Message{
		{ID: 3, CreatedAt: "2026-08-29T12:05:00Z"},
		{ID: 1, CreatedAt: "2026-08-29T11:00:00Z"},
		{ID: 2, CreatedAt: "2026-08-29T12:05:00Z"},
	}

	sorted := SortAscending(messages)

	require.Len(t, sorted, 3)
	assert.Equal(t, int64(1), sorted[0].ID)
	assert.Equal(t, int64(2), sorted[1].ID)
	assert.Equal(t, int64(3), sorted[2].ID)

	// Input untouched.
	assert.Equal(t, int64(3), messages[0].ID)
}

func TestSortAscending_Empty(t *testing.T) {
	assert.Empty(t, SortAscending(nil))
}
