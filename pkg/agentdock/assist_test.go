package agentdock

import (
	"AgentDock/internal/entity"
	"AgentDock/pkg/log"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoChat_ScopesByTenantInBody(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/demo/chat", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 42, body["tenant_id"])
		assert.Equal(t, "do you have slots tomorrow?", body["message"])
		assert.Equal(t, "+2348000000001", body["customer_phone"])
		assert.NotContains(t, body, "phone")

		_ = json.NewEncoder(w).Encode(map[string]string{"reply": "yes, 10am is free"})
	}))
	defer backend.Close()

	client := NewWithBaseURL(log.NewLogger(), backend.URL)
	sess := &fakeSession{auth: "demo-token"}

	reply, err := client.DemoChat(context.Background(), sess, "42", "+2348000000001", "do you have slots tomorrow?")

	require.NoError(t, err)
	assert.Equal(t, "yes, 10am is free", reply)
}

func TestPolishText_ParsesSuggestion(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/polish-text", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 42, body["tenant_id"])
		assert.Equal(t, "tagline", body["field"])

		_ = json.NewEncoder(w).Encode(map[string]string{"suggested_text": "Sharp cuts, no waiting."})
	}))
	defer backend.Close()

	client := NewWithBaseURL(log.NewLogger(), backend.URL)
	sess := &fakeSession{auth: "demo-token"}

	polished, err := client.PolishText(context.Background(), sess, "42", "tagline", "we cut hair fast")

	require.NoError(t, err)
	assert.Equal(t, "Sharp cuts, no waiting.", polished)
}

func TestSetupAssistant_WireShape(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/setup-assistant", r.URL.Path)

		var body struct {
			TenantID int64                  `json:"tenant_id"`
			Message  string                 `json:"message"`
			Profile  map[string]interface{} `json:"business_profile"`
			History  []map[string]string    `json:"history"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(42), body.TenantID)
		assert.Equal(t, "we open at nine", body.Message)
		assert.Equal(t, "Blades Barbershop", body.Profile["name"])
		require.Len(t, body.History, 1)
		assert.Equal(t, "user", body.History[0]["from"])
		assert.Equal(t, "hello", body.History[0]["text"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"assistant_reply": "Noted, opening at 09:00.",
			"profile_patch":   map[string]interface{}{"opening_hours": map[string]string{"monday": "09:00-18:00"}},
			"step_hint":       "hours",
		})
	}))
	defer backend.Close()

	client := NewWithBaseURL(log.NewLogger(), backend.URL)
	sess := &fakeSession{auth: "demo-token"}

	result, err := client.SetupAssistant(context.Background(), sess, "42", SetupAssistantRequest{
		Message: "we open at nine",
		Draft:   &entity.BusinessProfile{Name: "Blades Barbershop"},
		History: []AssistantTurn{{From: "user", Text: "hello"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Noted, opening at 09:00.", result.Reply)
	assert.Equal(t, "hours", result.Step)
	require.NotNil(t, result.ProfilePatch)
	assert.Equal(t, map[string]string{"monday": "09:00-18:00"}, result.ProfilePatch.OpeningHours)
}
