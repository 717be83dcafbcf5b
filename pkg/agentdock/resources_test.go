package agentdock

import (
	"AgentDock/pkg/log"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourcePaths(t *testing.T) {
	var recorded []string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded = append(recorded, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte("[]"))
			return
		}
		_, _ = w.Write([]byte("{}"))
	}))
	defer backend.Close()

	client := NewWithBaseURL(log.NewLogger(), backend.URL)
	sess := &fakeSession{auth: "demo-token"}
	ctx := context.Background()

	_, err := client.GetTrace(ctx, sess, "1")
	require.NoError(t, err)
	_, err = client.UpdateAppointment(ctx, sess, 7, map[string]interface{}{"status": "confirmed"})
	require.NoError(t, err)
	_, err = client.UpdateOrder(ctx, sess, 8, map[string]interface{}{"status": "fulfilled"})
	require.NoError(t, err)
	_, err = client.UpdateComplaint(ctx, sess, 9, map[string]interface{}{"status": "resolved"})
	require.NoError(t, err)
	_, err = client.UpdateHandoff(ctx, sess, 10, map[string]interface{}{"status": "resolved"})
	require.NoError(t, err)
	require.NoError(t, client.DeleteMessage(ctx, sess, 11))
	_, err = client.GenerateSocialContent(ctx, sess, "1", map[string]interface{}{"platform": "instagram"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"GET /tenants/1/trace",
		"PATCH /appointments/7",
		"PATCH /orders/8",
		"PATCH /complaints/9",
		"PATCH /handoffs/10",
		"DELETE /messages/11",
		"POST /tenants/1/generate-social-content",
	}, recorded)
}

func TestGetBusinessProfile_PathAndServiceIDs(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tenants/1/business-profile", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"name": "Blades Barbershop",
			"business_type": "barber",
			"services": [{"id": "svc_9f2", "name": "Full groom", "duration_minutes": 60}]
		}`))
	}))
	defer backend.Close()

	client := NewWithBaseURL(log.NewLogger(), backend.URL)
	sess := &fakeSession{auth: "demo-token"}

	profile, err := client.GetBusinessProfile(context.Background(), sess, "1")

	require.NoError(t, err)
	require.Len(t, profile.Services, 1)
	assert.Equal(t, "svc_9f2", profile.Services[0].ID)
	assert.Equal(t, "Full groom", profile.Services[0].Name)
}
