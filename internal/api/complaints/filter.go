package complaints

import (
	"AgentDock/internal/entity"
	"strings"
)

// Filter narrows complaints by status and priority. Matching is
// case-insensitive because the backend has stored both "pending" and
// "Pending" over its lifetime.
func Filter(list []entity.Complaint, status, priority string) []entity.Complaint {
	if status == "" && priority == "" {
		return list
	}

	filtered := make([]entity.Complaint, 0, len(list))
	for _, c := range list {
		if status != "" && !strings.EqualFold(c.Status, status) {
			continue
		}
		if priority != "" && !strings.EqualFold(c.Priority, priority) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// CountByStatus tallies the unfiltered list, normalizing case onto the
// canonical status labels.
func CountByStatus(list []entity.Complaint) map[string]int {
	canonical := []string{
		entity.ComplaintPending,
		entity.ComplaintInProgress,
		entity.ComplaintResolved,
		entity.ComplaintEscalated,
		entity.ComplaintReopened,
	}

	counts := make(map[string]int, len(canonical))
	for _, status := range canonical {
		counts[status] = 0
	}
	for _, c := range list {
		matched := false
		for _, status := range canonical {
			if strings.EqualFold(c.Status, status) {
				counts[status]++
				matched = true
				break
			}
		}
		if !matched {
			counts[c.Status]++
		}
	}
	return counts
}
