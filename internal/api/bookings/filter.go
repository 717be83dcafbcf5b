package bookings

import "AgentDock/internal/entity"

// FilterByStatus narrows the appointment list in the console; the backend
// always returns everything. "all" and the empty string mean no filter.
func FilterByStatus(appointments []entity.Appointment, status string) []entity.Appointment {
	if status == "" || status == "all" {
		return appointments
	}

	filtered := make([]entity.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if appt.Status == status {
			filtered = append(filtered, appt)
		}
	}
	return filtered
}

// CountByStatus tallies the full list so the tab badges stay correct even
// while a filter is active.
func CountByStatus(appointments []entity.Appointment) map[string]int {
	counts := map[string]int{
		entity.AppointmentPending:   0,
		entity.AppointmentConfirmed: 0,
		entity.AppointmentCompleted: 0,
		entity.AppointmentCancelled: 0,
	}
	for _, appt := range appointments {
		counts[appt.Status]++
	}
	return counts
}

func ValidStatus(status string) bool {
	if status == "" || status == "all" {
		return true
	}
	for _, s := range entity.AppointmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}
