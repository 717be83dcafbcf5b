package complaints

import (
	"AgentDock/internal/entity"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleComplaints() []entity.Complaint {
	return []entity.Complaint{
		{ID: 1, Status: "Pending", Priority: "High"},
		{ID: 2, Status: "pending", Priority: "Low"},
		{ID: 3, Status: "Resolved", Priority: "high"},
		{ID: 4, Status: "In-Progress", Priority: "Medium"},
	}
}

func TestFilter_CaseInsensitive(t *testing.T) {
	pending := Filter(sampleComplaints(), "PENDING", "")
	require.Len(t, pending, 2)
	assert.Equal(t, int64(1), pending[0].ID)
	assert.Equal(t, int64(2), pending[1].ID)

	high := Filter(sampleComplaints(), "", "high")
	require.Len(t, high, 2)

	pendingHigh := Filter(sampleComplaints(), "pending", "HIGH")
	require.Len(t, pendingHigh, 1)
	assert.Equal(t, int64(1), pendingHigh[0].ID)
}

func TestFilter_NoFiltersReturnsAll(t *testing.T) {
	assert.Len(t, Filter(sampleComplaints(), "", ""), 4)
}

func TestCountByStatus_NormalizesCase(t *testing.T) {
	counts := CountByStatus(sampleComplaints())

	assert.Equal(t, 2, counts[entity.ComplaintPending])
	assert.Equal(t, 1, counts[entity.ComplaintResolved])
	assert.Equal(t, 1, counts[entity.ComplaintInProgress])
	assert.Equal(t, 0, counts[entity.ComplaintEscalated])
}
