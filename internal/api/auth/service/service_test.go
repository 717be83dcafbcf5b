package authService

import (
	"AgentDock/internal/api/auth"
	"AgentDock/internal/session"
	"AgentDock/pkg/agentdock"
	"AgentDock/pkg/log"
	"AgentDock/pkg/storage"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJSON = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestService(t *testing.T, backendURL string) AuthService {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("CONSOLE_SESSION_SECRET", "test-secret")

	logger := log.NewLogger()
	sessions := session.NewManager(storage.NewMemory(), logger)
	client := agentdock.NewWithBaseURL(logger, backendURL)
	return New(logger, client, sessions)
}

func TestSignup_CreatesTenantThenLogsIn(t *testing.T) {
	var createBody, loginBody map[string]interface{}

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tenants":
			require.NoError(t, testJSON.NewDecoder(r.Body).Decode(&createBody))
			_ = testJSON.NewEncoder(w).Encode(map[string]int{"id": 42})
		case "/auth/login":
			require.NoError(t, testJSON.NewDecoder(r.Body).Decode(&loginBody))
			_ = testJSON.NewEncoder(w).Encode(map[string]interface{}{
				"tenant_id":     42,
				"tenant_name":   "Blades Barbershop",
				"auth_token":    "grant-token",
				"refresh_token": "grant-refresh",
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer backend.Close()

	svc := newTestService(t, backend.URL)

	res, err := svc.Signup(context.Background(), auth.SignupRequest{
		BusinessName: "Blades Barbershop",
		BusinessType: "barber",
		Email:        "ada@blades.ng",
		Password:     "hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, "Blades Barbershop", createBody["name"])
	assert.Equal(t, "ada@blades.ng", loginBody["email"])
	assert.Equal(t, "42", res.TenantID)
	assert.Equal(t, "Blades Barbershop", res.BusinessName)
	assert.Equal(t, "/onboarding", res.Redirect)
}

func TestSignup_SurvivesFailedAutoLogin(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tenants":
			_ = testJSON.NewEncoder(w).Encode(map[string]int{"id": 42})
		case "/auth/login":
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = testJSON.NewEncoder(w).Encode(map[string]string{"error": "try later"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer backend.Close()

	svc := newTestService(t, backend.URL)

	res, err := svc.Signup(context.Background(), auth.SignupRequest{
		BusinessName: "Blades Barbershop",
		Email:        "ada@blades.ng",
		Password:     "hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, "42", res.TenantID)
	assert.Equal(t, "Blades Barbershop", res.BusinessName)
}
