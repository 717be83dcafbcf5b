package bookings

import (
	"AgentDock/internal/entity"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAppointments() []entity.Appointment {
	return []entity.Appointment{
		{ID: 1, Status: entity.AppointmentPending},
		{ID: 2, Status: entity.AppointmentConfirmed},
		{ID: 3, Status: entity.AppointmentCompleted},
		{ID: 4, Status: entity.AppointmentCancelled},
	}
}

func TestFilterByStatus(t *testing.T) {
	confirmed := FilterByStatus(sampleAppointments(), "confirmed")
	require.Len(t, confirmed, 1)
	assert.Equal(t, int64(2), confirmed[0].ID)

	assert.Len(t, FilterByStatus(sampleAppointments(), "all"), 4)
	assert.Len(t, FilterByStatus(sampleAppointments(), ""), 4)
	assert.Empty(t, FilterByStatus(nil, "confirmed"))
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus(sampleAppointments())

	assert.Equal(t, 1, counts[entity.AppointmentPending])
	assert.Equal(t, 1, counts[entity.AppointmentConfirmed])
	assert.Equal(t, 1, counts[entity.AppointmentCompleted])
	assert.Equal(t, 1, counts[entity.AppointmentCancelled])

	empty := CountByStatus(nil)
	assert.Equal(t, 0, empty[entity.AppointmentPending])
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(""))
	assert.True(t, ValidStatus("all"))
	assert.True(t, ValidStatus("confirmed"))
	assert.False(t, ValidStatus("Confirmed"))
	assert.False(t, ValidStatus("done"))
}
