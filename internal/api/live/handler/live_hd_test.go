package liveHandler

import (
	"AgentDock/internal/live"
	"AgentDock/internal/middleware"
	"AgentDock/internal/session"
	"AgentDock/pkg/agentdock"
	jwtPkg "AgentDock/pkg/jwt"
	"AgentDock/pkg/log"
	"AgentDock/pkg/storage"
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend serves just enough of the tenant API for a feed: list
// endpoints whose bytes change on every fetch, and an SSE stream that
// keeps announcing order events.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()

	var fetches int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/events") {
			w.Header().Set("Content-Type", "text/event-stream")
			flusher, ok := w.(http.Flusher)
			if !ok {
				t.Error("response writer does not support flushing")
				return
			}
			for {
				select {
				case <-r.Context().Done():
					return
				case <-time.After(100 * time.Millisecond):
					fmt.Fprint(w, "event: tenant_event\ndata: {\"type\":\"order_updated\"}\n\n")
					flusher.Flush()
				}
			}
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `[{"id":%d}]`, atomic.AddInt64(&fetches, 1))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func startConsole(t *testing.T, backendURL string) (string, *session.Manager) {
	t.Helper()

	logger := log.NewLogger()
	store := storage.NewMemory()
	sessions := session.NewManager(store, logger)
	mw := middleware.New(logger, sessions)
	client := agentdock.NewWithBaseURL(logger, backendURL)
	hub := live.NewHub(client, logger)
	t.Cleanup(hub.Close)

	app := fiber.New()
	handler := New(logger, hub, mw)
	handler.Start(app.Group("/api/v1"))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		if err := app.Listener(ln); err != nil {
			logger.Debug(err.Error())
		}
	}()
	t.Cleanup(func() { _ = app.Shutdown() })

	return ln.Addr().String(), sessions
}

func TestLiveWebSocket_RejectsMissingSession(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("CONSOLE_SESSION_SECRET", "test-secret")

	backend := fakeBackend(t)
	addr, _ := startConsole(t, backend.URL)

	conn, resp, err := websocket.DefaultDialer.Dial("ws://"+addr+"/api/v1/live/ws", nil)
	require.Error(t, err)
	if conn != nil {
		conn.Close()
	}
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLiveWebSocket_DeliversChangeNotices(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("CONSOLE_SESSION_SECRET", "test-secret")

	backend := fakeBackend(t)
	addr, sessions := startConsole(t, backend.URL)

	ctx := context.Background()
	sess, token, err := sessions.Issue(ctx)
	require.NoError(t, err)
	require.NoError(t, sess.StoreTenantID(ctx, "tenant-1"))
	require.NoError(t, sess.StoreAuthToken(ctx, "auth-token"))
	require.NoError(t, sess.StoreRefreshToken(ctx, "refresh-token"))

	header := http.Header{}
	header.Set(jwtPkg.SessionHeader, token)

	conn, resp, err := websocket.DefaultDialer.Dial("ws://"+addr+"/api/v1/live/ws", header)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(10*time.Second)))

	var notice live.Notice
	require.NoError(t, conn.ReadJSON(&notice))
	assert.NotEmpty(t, notice.Resource)
	assert.NotEmpty(t, notice.Type)
}
