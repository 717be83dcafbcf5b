package session

import (
	"AgentDock/pkg/log"
	"AgentDock/pkg/storage"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("CONSOLE_SESSION_SECRET", "test-secret")
	return NewManager(storage.NewMemory(), log.NewLogger())
}

func TestIssueAndResolveRoundTrip(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	sess, token, err := manager.Issue(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, sess.Loaded())

	require.NoError(t, sess.StoreTenantID(ctx, "42"))
	require.NoError(t, sess.StoreAuthToken(ctx, "auth-1"))
	require.NoError(t, sess.StoreRefreshToken(ctx, "refresh-1"))

	resolved, err := manager.Resolve(ctx, sess.ID())
	require.NoError(t, err)
	assert.True(t, resolved.Loaded())
	assert.Equal(t, "42", resolved.TenantID())
	assert.Equal(t, "auth-1", resolved.AuthToken())
	assert.Equal(t, "refresh-1", resolved.RefreshToken())
}

func TestClearTenantRemovesStateAndStorage(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	sess, _, err := manager.Issue(ctx)
	require.NoError(t, err)
	require.NoError(t, sess.StoreTenantID(ctx, "42"))
	require.NoError(t, sess.StoreAuthToken(ctx, "auth-1"))
	require.NoError(t, sess.StoreRefreshToken(ctx, "refresh-1"))

	require.NoError(t, sess.ClearTenant(ctx))

	assert.Empty(t, sess.TenantID())
	assert.Empty(t, sess.AuthToken())
	assert.Empty(t, sess.RefreshToken())

	resolved, err := manager.Resolve(ctx, sess.ID())
	require.NoError(t, err)
	assert.Empty(t, resolved.TenantID())
	assert.Empty(t, resolved.AuthToken())
	assert.Empty(t, resolved.RefreshToken())
}

func TestClearTenantIsIdempotent(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	sess, _, err := manager.Issue(ctx)
	require.NoError(t, err)

	assert.NoError(t, sess.ClearTenant(ctx))
	assert.NoError(t, sess.ClearTenant(ctx))
}

func TestCacheSurvivesLogout(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	sess, _, err := manager.Issue(ctx)
	require.NoError(t, err)
	require.NoError(t, sess.StoreTenantID(ctx, "42"))
	require.NoError(t, sess.SetCache(ctx, ThemeKey, "dark"))

	require.NoError(t, sess.ClearTenant(ctx))

	theme, err := sess.Cache(ctx, ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestCacheMissingKeyIsEmpty(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	sess, _, err := manager.Issue(ctx)
	require.NoError(t, err)

	value, err := sess.Cache(ctx, "agentdock_demo_chat_42")
	require.NoError(t, err)
	assert.Empty(t, value)

	assert.NoError(t, sess.DeleteCache(ctx, "agentdock_demo_chat_42"))
}

func TestSessionsAreIsolated(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	first, _, err := manager.Issue(ctx)
	require.NoError(t, err)
	second, _, err := manager.Issue(ctx)
	require.NoError(t, err)

	require.NoError(t, first.StoreTenantID(ctx, "42"))

	resolved, err := manager.Resolve(ctx, second.ID())
	require.NoError(t, err)
	assert.Empty(t, resolved.TenantID())
}
