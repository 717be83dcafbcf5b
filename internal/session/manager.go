package session

import (
	jwtPkg "AgentDock/pkg/jwt"
	"AgentDock/pkg/storage"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	// ThemeKey holds the operator's light/dark choice.
	ThemeKey = "agentdock_theme"

	// Session tokens outlive the backend's auth tokens on purpose; the
	// refresh flow keeps the upstream pair current underneath.
	sessionTTL = 30 * 24 * time.Hour
)

type Manager struct {
	store  storage.Adapter
	logger *logrus.Logger
}

func NewManager(store storage.Adapter, logger *logrus.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
	}
}

// Issue mints a fresh session and the signed token the browser will carry.
func (m *Manager) Issue(ctx context.Context) (*Session, string, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return nil, "", err
	}

	sess := &Session{manager: m, id: id.String(), loaded: true}

	token, _, err := jwtPkg.SignSession(sess.id, sessionTTL)
	if err != nil {
		return nil, "", err
	}

	return sess, token, nil
}

// Resolve hydrates the session behind a verified session ID. The adapter is
// read once here; handlers work off the in-memory copy for the rest of the
// request.
func (m *Manager) Resolve(ctx context.Context, sessionID string) (*Session, error) {
	sess := &Session{manager: m, id: sessionID}
	if err := sess.load(ctx); err != nil {
		return nil, err
	}
	return sess, nil
}

func (m *Manager) Store() storage.Adapter {
	return m.store
}
