package onboardingService

import (
	"AgentDock/internal/api/onboarding"
	"AgentDock/internal/entity"
	"AgentDock/internal/session"
	"AgentDock/pkg/agentdock"
	"AgentDock/pkg/log"
	"AgentDock/pkg/storage"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(t *testing.T, tenantID string) *session.Session {
	t.Helper()

	sessions := session.NewManager(storage.NewMemory(), log.NewLogger())
	sess, _, err := sessions.Issue(context.Background())
	require.NoError(t, err)
	require.NoError(t, sess.StoreTenantID(context.Background(), tenantID))
	require.NoError(t, sess.StoreAuthToken(context.Background(), "auth-token"))
	return sess
}

func TestDraft_ServesWizardDefaultsForNewTenant(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("CONSOLE_SESSION_SECRET", "test-secret")

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":"profile not found"}`)
	}))
	defer backend.Close()

	logger := log.NewLogger()
	svc := New(logger, agentdock.NewWithBaseURL(logger, backend.URL))
	sess := testSession(t, "tenant-new")

	res, err := svc.Draft(context.Background(), sess)
	require.NoError(t, err)

	assert.Equal(t, "general", res.Draft.BusinessType)
	assert.Equal(t, "Africa/Lagos", res.Draft.TimeZone)
	assert.Equal(t, "09:00-18:00", res.Draft.OpeningHours["monday"])
	assert.Equal(t, "10:00-16:00", res.Draft.OpeningHours["saturday"])
	assert.Equal(t, "closed", res.Draft.OpeningHours["sunday"])
	require.Len(t, res.Draft.Services, 1)
	assert.Empty(t, res.Draft.Services[0].Name)
	assert.Equal(t, 30, res.Draft.Services[0].DurationMinutes)
}

func TestDraft_PrefillsFromExistingProfile(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("CONSOLE_SESSION_SECRET", "test-secret")

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tenants/tenant-blades/business-profile", r.URL.Path)
		assert.Equal(t, "Bearer auth-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"name": "Blades Cutz",
			"business_type": "barber",
			"location": "Lagos",
			"services": [{"name": "Fade", "duration_minutes": 45}]
		}`)
	}))
	defer backend.Close()

	logger := log.NewLogger()
	svc := New(logger, agentdock.NewWithBaseURL(logger, backend.URL))
	sess := testSession(t, "tenant-blades")

	res, err := svc.Draft(context.Background(), sess)
	require.NoError(t, err)

	assert.Equal(t, "Blades Cutz", res.Draft.Name)
	assert.Equal(t, "barber", res.Draft.BusinessType)
	require.Len(t, res.Draft.Services, 1)
	assert.Equal(t, "Fade", res.Draft.Services[0].Name)
	// Missing sections still get the wizard defaults.
	assert.Equal(t, "Africa/Lagos", res.Draft.TimeZone)
	assert.Equal(t, "09:00-18:00", res.Draft.OpeningHours["monday"])
	assert.Greater(t, res.Completeness, 0)
}

func TestSave_RejectsEmptyDraft(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("CONSOLE_SESSION_SECRET", "test-secret")

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("empty draft must not reach the backend")
	}))
	defer backend.Close()

	logger := log.NewLogger()
	svc := New(logger, agentdock.NewWithBaseURL(logger, backend.URL))
	sess := testSession(t, "tenant-empty")

	_, err := svc.Save(context.Background(), sess, entity.BusinessProfile{})
	assert.ErrorIs(t, err, onboarding.ErrEmptyDraft)
}
