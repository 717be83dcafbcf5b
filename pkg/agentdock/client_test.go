package agentdock

import (
	"AgentDock/pkg/log"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	mu      sync.Mutex
	auth    string
	refresh string
}

func (s *fakeSession) AuthToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth
}

func (s *fakeSession) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh
}

func (s *fakeSession) StoreAuthToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = token
	return nil
}

func (s *fakeSession) StoreRefreshToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh = token
	return nil
}

func TestDoJSON_RefreshesExpiredTokenOnce(t *testing.T) {
	var statsCalls, refreshCalls atomic.Int64

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tenants/1/stats":
			statsCalls.Add(1)
			if r.Header.Get("Authorization") != "Bearer fresh-token" {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "token_expired"})
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]int{"messages_today": 7})
		case "/auth/refresh":
			refreshCalls.Add(1)
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, "old-refresh", body["refresh_token"])
			_ = json.NewEncoder(w).Encode(map[string]string{
				"auth_token":    "fresh-token",
				"refresh_token": "new-refresh",
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer backend.Close()

	client := NewWithBaseURL(log.NewLogger(), backend.URL)
	sess := &fakeSession{auth: "stale-token", refresh: "old-refresh"}

	var out struct {
		MessagesToday int `json:"messages_today"`
	}
	err := client.doJSON(context.Background(), sess, http.MethodGet, "/tenants/1/stats", nil, &out)

	require.NoError(t, err)
	assert.Equal(t, 7, out.MessagesToday)
	assert.Equal(t, int64(1), refreshCalls.Load())
	assert.Equal(t, int64(2), statsCalls.Load())
	assert.Equal(t, "fresh-token", sess.AuthToken())
	assert.Equal(t, "new-refresh", sess.RefreshToken())
}

func TestDoJSON_RefreshesBeforeKnownExpiry(t *testing.T) {
	claims := jwt.MapClaims{"sid": "console", "exp": time.Now().Add(5 * time.Second).Unix()}
	nearExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	var statsCalls, refreshCalls atomic.Int64

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tenants/1/stats":
			statsCalls.Add(1)
			assert.Equal(t, "Bearer fresh-token", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(map[string]int{"messages_today": 3})
		case "/auth/refresh":
			refreshCalls.Add(1)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"auth_token":    "fresh-token",
				"refresh_token": "new-refresh",
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer backend.Close()

	client := NewWithBaseURL(log.NewLogger(), backend.URL)
	sess := &fakeSession{auth: nearExpiry, refresh: "old-refresh"}

	err = client.doJSON(context.Background(), sess, http.MethodGet, "/tenants/1/stats", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(1), refreshCalls.Load())
	assert.Equal(t, int64(1), statsCalls.Load(), "a near-expiry bearer should never hit the backend")
	assert.Equal(t, "fresh-token", sess.AuthToken())
}

func TestDoJSON_DoesNotRetryOtherUnauthorizedErrors(t *testing.T) {
	var refreshCalls atomic.Int64

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			refreshCalls.Add(1)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
	}))
	defer backend.Close()

	client := NewWithBaseURL(log.NewLogger(), backend.URL)
	sess := &fakeSession{auth: "stale-token", refresh: "old-refresh"}

	err := client.doJSON(context.Background(), sess, http.MethodGet, "/tenants/1/stats", nil, nil)

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusUnauthorized, upstreamErr.Status)
	assert.Equal(t, "invalid token", upstreamErr.Message)
	assert.Equal(t, int64(0), refreshCalls.Load())
}

func TestDoJSON_FailedRefreshReportsSessionExpired(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "token_expired"})
	}))
	defer backend.Close()

	client := NewWithBaseURL(log.NewLogger(), backend.URL)
	sess := &fakeSession{auth: "stale-token", refresh: "old-refresh"}

	err := client.doJSON(context.Background(), sess, http.MethodGet, "/tenants/1/stats", nil, nil)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestDoJSON_FallbackErrorMessage(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer backend.Close()

	client := NewWithBaseURL(log.NewLogger(), backend.URL)

	err := client.doJSON(context.Background(), nil, http.MethodGet, "/tenants/1/stats", nil, nil)

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, "request failed", upstreamErr.Message)
}

func TestAbsoluteURL(t *testing.T) {
	client := NewWithBaseURL(log.NewLogger(), "http://backend:5000")

	assert.Equal(t, "http://backend:5000/uploads/a.png", client.AbsoluteURL("/uploads/a.png"))
	assert.Equal(t, "http://backend:5000/uploads/a.png", client.AbsoluteURL("uploads/a.png"))
	assert.Equal(t, "https://cdn.example.com/a.png", client.AbsoluteURL("https://cdn.example.com/a.png"))
	assert.Equal(t, "", client.AbsoluteURL(""))
}
