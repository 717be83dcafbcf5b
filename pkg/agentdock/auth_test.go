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

func TestLogin_ParsesBackendGrant(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@blades.ng", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"tenant_id":     42,
			"tenant_name":   "Blades Barbershop",
			"business_type": "barber",
			"auth_token":    "grant-token",
			"expires_in":    900,
			"refresh_token": "grant-refresh",
		})
	}))
	defer backend.Close()

	client := NewWithBaseURL(log.NewLogger(), backend.URL)

	result, err := client.Login(context.Background(), "ada@blades.ng", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, int64(42), result.TenantID)
	assert.Equal(t, "Blades Barbershop", result.BusinessName)
	assert.Equal(t, "barber", result.BusinessType)
	assert.Equal(t, "grant-token", result.Token)
	assert.Equal(t, int64(900), result.ExpiresIn)
	assert.Equal(t, "grant-refresh", result.RefreshToken)
}

func TestCreateTenant_SendsNameAndParsesID(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tenants", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Blades Barbershop", body["name"])
		assert.NotContains(t, body, "business_name")

		_ = json.NewEncoder(w).Encode(map[string]int{"id": 42})
	}))
	defer backend.Close()

	client := NewWithBaseURL(log.NewLogger(), backend.URL)

	result, err := client.CreateTenant(context.Background(), CreateTenantRequest{
		Name:     "Blades Barbershop",
		Email:    "ada@blades.ng",
		Password: "hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), result.ID)
}

func TestPasswordResetPaths(t *testing.T) {
	var paths []string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer backend.Close()

	client := NewWithBaseURL(log.NewLogger(), backend.URL)

	require.NoError(t, client.RequestPasswordReset(context.Background(), "ada@blades.ng"))
	require.NoError(t, client.ResetPassword(context.Background(), "reset-token", "hunter3"))

	assert.Equal(t, []string{"/auth/request-password-reset", "/auth/reset-password"}, paths)
}
