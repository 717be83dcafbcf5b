package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSLALabel(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	in25 := now.Add(25 * time.Minute).Format(time.RFC3339)
	assert.Equal(t, "25m left", SLALabel(&in25, now))

	ago5 := now.Add(-5 * time.Minute).Format(time.RFC3339)
	assert.Equal(t, "5m overdue", SLALabel(&ago5, now))

	assert.Empty(t, SLALabel(nil, now))
	empty := ""
	assert.Empty(t, SLALabel(&empty, now))
	garbage := "tomorrow-ish"
	assert.Empty(t, SLALabel(&garbage, now))
}

func TestDueAtFromMinutes(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-29T12:30:00Z", DueAtFromMinutes(30, now))
}
