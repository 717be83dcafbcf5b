package session

import (
	"AgentDock/pkg/storage"
	"errors"
	"sync"

	"golang.org/x/net/context"
)

const (
	keyTenantID     = "tenant_id"
	keyAuthToken    = "auth_token"
	keyRefreshToken = "refresh_token"
)

// Session is one browser's console state, hydrated from the storage adapter
// by Manager.Resolve. It satisfies the upstream client's credential
// interface, so a mid-request token refresh persists through the same
// adapter the browser's next request will read.
type Session struct {
	manager *Manager
	id      string

	mu           sync.RWMutex
	loaded       bool
	tenantID     string
	authToken    string
	refreshToken string
}

func (s *Session) ID() string {
	return s.id
}

// Loaded reports whether the persisted state has been read. Handlers must
// not treat an unloaded session as logged out.
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Session) TenantID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tenantID
}

func (s *Session) AuthToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authToken
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

func (s *Session) StoreTenantID(ctx context.Context, tenantID string) error {
	if err := s.manager.store.Set(ctx, s.key(keyTenantID), tenantID); err != nil {
		return err
	}
	s.mu.Lock()
	s.tenantID = tenantID
	s.mu.Unlock()
	return nil
}

func (s *Session) StoreAuthToken(ctx context.Context, token string) error {
	if err := s.manager.store.Set(ctx, s.key(keyAuthToken), token); err != nil {
		return err
	}
	s.mu.Lock()
	s.authToken = token
	s.mu.Unlock()
	return nil
}

func (s *Session) StoreRefreshToken(ctx context.Context, token string) error {
	if err := s.manager.store.Set(ctx, s.key(keyRefreshToken), token); err != nil {
		return err
	}
	s.mu.Lock()
	s.refreshToken = token
	s.mu.Unlock()
	return nil
}

// ClearTenant logs the session out: all three credential keys are removed
// from storage and the in-memory view is zeroed. Cached values (theme,
// transcripts) survive, matching how the browser kept cosmetic state
// through a logout.
func (s *Session) ClearTenant(ctx context.Context) error {
	var firstErr error
	for _, key := range []string{keyTenantID, keyAuthToken, keyRefreshToken} {
		if err := s.manager.store.Delete(ctx, s.key(key)); err != nil && !errors.Is(err, storage.ErrNotFound) && firstErr == nil {
			firstErr = err
		}
	}

	s.mu.Lock()
	s.tenantID = ""
	s.authToken = ""
	s.refreshToken = ""
	s.mu.Unlock()

	return firstErr
}

// Cache reads a session-scoped auxiliary value (theme, assistant
// transcripts, the demo phone). Missing keys come back empty, not as
// errors.
func (s *Session) Cache(ctx context.Context, key string) (string, error) {
	value, err := s.manager.store.Get(ctx, s.key(key))
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	return value, err
}

func (s *Session) SetCache(ctx context.Context, key, value string) error {
	return s.manager.store.Set(ctx, s.key(key), value)
}

func (s *Session) DeleteCache(ctx context.Context, key string) error {
	err := s.manager.store.Delete(ctx, s.key(key))
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	return err
}

func (s *Session) key(name string) string {
	return "console:" + s.id + ":" + name
}

func (s *Session) load(ctx context.Context) error {
	for name, target := range map[string]*string{
		keyTenantID:     &s.tenantID,
		keyAuthToken:    &s.authToken,
		keyRefreshToken: &s.refreshToken,
	} {
		value, err := s.manager.store.Get(ctx, s.key(name))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return err
		}
		*target = value
	}

	s.mu.Lock()
	s.loaded = true
	s.mu.Unlock()
	return nil
}
