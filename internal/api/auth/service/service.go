package authService

import (
	"AgentDock/internal/api/auth"
	"AgentDock/internal/session"
	"AgentDock/pkg/agentdock"
	"AgentDock/pkg/log"
	"errors"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type AuthService interface {
	Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error)
	Signup(ctx context.Context, req auth.SignupRequest) (*auth.AuthResponse, error)
	Logout(ctx context.Context, sess *session.Session) error
	Session(ctx context.Context, sess *session.Session) (*auth.SessionResponse, error)
	PasswordRecovery(ctx context.Context, email string) error
	PasswordReset(ctx context.Context, token, password string) error
	CheckEmail(ctx context.Context, email string) (bool, error)
}

type authService struct {
	log      *logrus.Logger
	client   *agentdock.Client
	sessions *session.Manager
}

func New(log *logrus.Logger, client *agentdock.Client, sessions *session.Manager) AuthService {
	return &authService{
		log:      log,
		client:   client,
		sessions: sessions,
	}
}

func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error) {
	result, err := s.client.Login(ctx, req.Email, req.Password)
	if err != nil {
		var upstreamErr *agentdock.UpstreamError
		if errors.As(err, &upstreamErr) && upstreamErr.Status < 500 {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	return s.openSession(ctx, result, "/dashboard")
}

// Signup creates the tenant, then logs in with the new credentials to get
// a grant, landing the new operator on the onboarding wizard. Creating a
// tenant only returns its ID; the login issues the tokens.
func (s *authService) Signup(ctx context.Context, req auth.SignupRequest) (*auth.AuthResponse, error) {
	created, err := s.client.CreateTenant(ctx, agentdock.CreateTenantRequest{
		Name:           req.BusinessName,
		BusinessType:   req.BusinessType,
		Email:          req.Email,
		Password:       req.Password,
		WhatsappNumber: req.WhatsappNumber,
	})
	if err != nil {
		return nil, err
	}

	grant := &agentdock.AuthResult{
		TenantID:     created.ID,
		BusinessName: req.BusinessName,
		BusinessType: req.BusinessType,
	}

	login, err := s.client.Login(ctx, req.Email, req.Password)
	if err != nil {
		// Signup itself succeeded; open a tokenless session and let the
		// operator log in from the console.
		s.log.WithFields(log.Fields{
			"error": err.Error(),
		}).Debug("Auto-login after signup failed")
	} else {
		if login.BusinessName == "" {
			login.BusinessName = req.BusinessName
		}
		if login.TenantID == 0 {
			login.TenantID = created.ID
		}
		grant = login
	}

	return s.openSession(ctx, grant, "/onboarding")
}

func (s *authService) openSession(ctx context.Context, grant *agentdock.AuthResult, redirect string) (*auth.AuthResponse, error) {
	sess, token, err := s.sessions.Issue(ctx)
	if err != nil {
		return nil, err
	}

	tenantID := strconv.FormatInt(grant.TenantID, 10)
	if err := sess.StoreTenantID(ctx, tenantID); err != nil {
		return nil, err
	}
	if grant.Token != "" {
		if err := sess.StoreAuthToken(ctx, grant.Token); err != nil {
			return nil, err
		}
	}
	if grant.RefreshToken != "" {
		if err := sess.StoreRefreshToken(ctx, grant.RefreshToken); err != nil {
			return nil, err
		}
	}

	return &auth.AuthResponse{
		SessionToken: token,
		TenantID:     tenantID,
		BusinessName: grant.BusinessName,
		Redirect:     redirect,
	}, nil
}

func (s *authService) Logout(ctx context.Context, sess *session.Session) error {
	return sess.ClearTenant(ctx)
}

func (s *authService) Session(ctx context.Context, sess *session.Session) (*auth.SessionResponse, error) {
	theme, err := sess.Cache(ctx, session.ThemeKey)
	if err != nil {
		return nil, err
	}

	return &auth.SessionResponse{
		TenantID:      sess.TenantID(),
		Authenticated: sess.TenantID() != "" && sess.AuthToken() != "",
		Theme:         theme,
	}, nil
}

func (s *authService) PasswordRecovery(ctx context.Context, email string) error {
	return s.client.RequestPasswordReset(ctx, email)
}

func (s *authService) PasswordReset(ctx context.Context, token, password string) error {
	return s.client.ResetPassword(ctx, token, password)
}

func (s *authService) CheckEmail(ctx context.Context, email string) (bool, error) {
	return s.client.CheckEmail(ctx, email)
}
