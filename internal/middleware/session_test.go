package middleware

import (
	"AgentDock/internal/session"
	jwtPkg "AgentDock/pkg/jwt"
	"AgentDock/pkg/log"
	"AgentDock/pkg/storage"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJSON = jsoniter.ConfigCompatibleWithStandardLibrary

func newGatedApp(t *testing.T) (*fiber.App, *session.Manager, *int) {
	t.Helper()

	logger := log.NewLogger()
	sessions := session.NewManager(storage.NewMemory(), logger)
	mw := New(logger, sessions)

	hits := 0
	app := fiber.New()
	app.Get("/guarded", mw.NewSessionMiddleware, mw.NewTenantMiddleware, func(c *fiber.Ctx) error {
		hits++
		sess := mw.GetSession(c)
		return c.JSON(fiber.Map{"tenant_id": sess.TenantID()})
	})

	return app, sessions, &hits
}

func decodeBody(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]string
	require.NoError(t, testJSON.Unmarshal(raw, &body))
	return body
}

func TestSessionMiddleware_RejectsMissingToken(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("CONSOLE_SESSION_SECRET", "test-secret")

	app, _, hits := newGatedApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "session required", body["error"])
	assert.Equal(t, "/login", body["redirect"])
	assert.Zero(t, *hits)
}

func TestTenantMiddleware_RejectsSessionWithoutTenant(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("CONSOLE_SESSION_SECRET", "test-secret")

	app, sessions, hits := newGatedApp(t)

	_, token, err := sessions.Issue(context.Background())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set(jwtPkg.SessionHeader, token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "tenant required", body["error"])
	assert.Equal(t, "/login", body["redirect"])
	assert.Zero(t, *hits)
}

func TestTenantMiddleware_AdmitsLoadedTenant(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("CONSOLE_SESSION_SECRET", "test-secret")

	app, sessions, hits := newGatedApp(t)

	sess, token, err := sessions.Issue(context.Background())
	require.NoError(t, err)
	require.NoError(t, sess.StoreTenantID(context.Background(), "tenant-9"))

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set(jwtPkg.SessionHeader, token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "tenant-9", body["tenant_id"])
	assert.Equal(t, 1, *hits)
}

func TestSessionMiddleware_RejectsCookieFromAnotherSecret(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("CONSOLE_SESSION_SECRET", "test-secret")

	app, _, hits := newGatedApp(t)

	t.Setenv("CONSOLE_SESSION_SECRET", "other-secret")
	token, _, err := jwtPkg.SignSession("01HTEST", time.Hour)
	require.NoError(t, err)
	t.Setenv("CONSOLE_SESSION_SECRET", "test-secret")

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: jwtPkg.SessionCookie, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, *hits)
}
