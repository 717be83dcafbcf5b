package settingsService

import (
	"AgentDock/internal/api/settings"
	"AgentDock/internal/session"
	"AgentDock/pkg/agentdock"
	"AgentDock/pkg/log"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const defaultTheme = "light"

type SettingsService interface {
	Get(ctx context.Context, sess *session.Session) (*settings.SettingsResponse, error)
	SetTheme(ctx context.Context, sess *session.Session, theme string) (*settings.ThemeResponse, error)
	Reset(ctx context.Context, sess *session.Session, wipeProfile bool) error
	ClearAppointments(ctx context.Context, sess *session.Session) error
	ClearMessages(ctx context.Context, sess *session.Session) error
}

type settingsService struct {
	log    *logrus.Logger
	client *agentdock.Client
}

func New(log *logrus.Logger, client *agentdock.Client) SettingsService {
	return &settingsService{
		log:    log,
		client: client,
	}
}

// Get merges the locally stored theme with a short profile summary. The
// theme lives in session cache, not upstream, so it survives backend
// resets and tenant wipes.
func (s *settingsService) Get(ctx context.Context, sess *session.Session) (*settings.SettingsResponse, error) {
	res := &settings.SettingsResponse{Theme: defaultTheme}

	theme, err := sess.Cache(ctx, session.ThemeKey)
	if err != nil {
		return nil, err
	}
	if theme != "" {
		res.Theme = theme
	}

	profile, err := s.client.GetBusinessProfile(ctx, sess, sess.TenantID())
	if err != nil {
		s.log.WithFields(log.Fields{
			"tenant_id": sess.TenantID(),
			"error":     err.Error(),
		}).Debug("Profile unavailable for settings")
		return res, nil
	}

	res.BusinessName = profile.Name
	res.BusinessType = profile.BusinessType
	res.BusinessCode = profile.BusinessCode
	res.TimeZone = profile.TimeZone
	return res, nil
}

func (s *settingsService) SetTheme(ctx context.Context, sess *session.Session, theme string) (*settings.ThemeResponse, error) {
	if err := sess.SetCache(ctx, session.ThemeKey, theme); err != nil {
		return nil, err
	}
	return &settings.ThemeResponse{Theme: theme}, nil
}

func (s *settingsService) Reset(ctx context.Context, sess *session.Session, wipeProfile bool) error {
	return s.client.ResetTenant(ctx, sess, sess.TenantID(), wipeProfile)
}

func (s *settingsService) ClearAppointments(ctx context.Context, sess *session.Session) error {
	return s.client.ClearAppointments(ctx, sess, sess.TenantID())
}

func (s *settingsService) ClearMessages(ctx context.Context, sess *session.Session) error {
	return s.client.ClearMessages(ctx, sess, sess.TenantID())
}
