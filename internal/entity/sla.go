package entity

import (
	"fmt"
	"time"
)

// SLALabel renders a due timestamp as the short badge the work queues
// show: "12m left", "5m overdue", or empty when no deadline is set or the
// timestamp does not parse.
func SLALabel(dueAt *string, now time.Time) string {
	if dueAt == nil || *dueAt == "" {
		return ""
	}

	due, err := time.Parse(time.RFC3339, *dueAt)
	if err != nil {
		return ""
	}

	remaining := due.Sub(now).Round(time.Minute)
	minutes := int(remaining.Minutes())

	if minutes >= 0 {
		return fmt.Sprintf("%dm left", minutes)
	}
	return fmt.Sprintf("%dm overdue", -minutes)
}

// DueAtFromMinutes converts a quick-set SLA offset into the RFC3339
// timestamp the backend stores.
func DueAtFromMinutes(minutes int, now time.Time) string {
	return now.Add(time.Duration(minutes) * time.Minute).UTC().Format(time.RFC3339)
}
