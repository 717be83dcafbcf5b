package dashboardService

import (
	"AgentDock/internal/api/dashboard"
	"AgentDock/internal/api/onboarding"
	"AgentDock/internal/entity"
	"AgentDock/internal/session"
	"AgentDock/pkg/agentdock"
	"AgentDock/pkg/log"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type DashboardService interface {
	Overview(ctx context.Context, sess *session.Session) (*dashboard.OverviewResponse, error)
	Stats(ctx context.Context, sess *session.Session) (*dashboard.StatsResponse, error)
	UpdateKnowledge(ctx context.Context, sess *session.Session, rawText string) error
	UploadKnowledge(ctx context.Context, sess *session.Session, body []byte, contentType string) (*entity.Knowledge, error)
	FaqSuggestions(ctx context.Context, sess *session.Session) (*dashboard.FaqResponse, error)
	CoachingInsights(ctx context.Context, sess *session.Session) (*dashboard.CoachingResponse, error)
	Reset(ctx context.Context, sess *session.Session, wipeProfile bool) error
}

type dashboardService struct {
	log    *logrus.Logger
	client *agentdock.Client
}

func New(log *logrus.Logger, client *agentdock.Client) DashboardService {
	return &dashboardService{
		log:    log,
		client: client,
	}
}

// Overview aggregates the landing page in one round: the profile drives
// the header and links, stats fill the tiles, knowledge feeds the editor.
// Stats and knowledge failing individually degrade to empty cards rather
// than blanking the page.
func (s *dashboardService) Overview(ctx context.Context, sess *session.Session) (*dashboard.OverviewResponse, error) {
	profile, err := s.client.GetBusinessProfile(ctx, sess, sess.TenantID())
	if err != nil {
		return nil, err
	}

	res := &dashboard.OverviewResponse{
		Profile:      profile,
		Completeness: onboarding.Completeness(*profile),
	}
	res.JoinLink, res.StartLink, res.StartCode = dashboard.SandboxLinks(profile.BusinessCode)

	stats, err := s.client.GetStats(ctx, sess, sess.TenantID())
	if err != nil {
		s.log.WithFields(log.Fields{
			"tenant_id": sess.TenantID(),
			"error":     err.Error(),
		}).Debug("Stats unavailable for overview")
	} else {
		res.Stats = stats
	}

	knowledge, err := s.client.GetKnowledge(ctx, sess, sess.TenantID())
	if err != nil {
		s.log.WithFields(log.Fields{
			"tenant_id": sess.TenantID(),
			"error":     err.Error(),
		}).Debug("Knowledge unavailable for overview")
	} else {
		res.Knowledge = knowledge
	}

	return res, nil
}

func (s *dashboardService) Stats(ctx context.Context, sess *session.Session) (*dashboard.StatsResponse, error) {
	stats, err := s.client.GetStats(ctx, sess, sess.TenantID())
	if err != nil {
		return nil, err
	}
	return &dashboard.StatsResponse{Stats: stats}, nil
}

func (s *dashboardService) UpdateKnowledge(ctx context.Context, sess *session.Session, rawText string) error {
	return s.client.UpdateKnowledge(ctx, sess, sess.TenantID(), rawText)
}

func (s *dashboardService) UploadKnowledge(ctx context.Context, sess *session.Session, body []byte, contentType string) (*entity.Knowledge, error) {
	return s.client.UploadKnowledgeFile(ctx, sess, sess.TenantID(), body, contentType)
}

func (s *dashboardService) FaqSuggestions(ctx context.Context, sess *session.Session) (*dashboard.FaqResponse, error) {
	faqs, err := s.client.FaqSuggestions(ctx, sess, sess.TenantID())
	if err != nil {
		return nil, err
	}
	return &dashboard.FaqResponse{Faqs: faqs}, nil
}

func (s *dashboardService) CoachingInsights(ctx context.Context, sess *session.Session) (*dashboard.CoachingResponse, error) {
	insights, err := s.client.CoachingInsights(ctx, sess, sess.TenantID())
	if err != nil {
		return nil, err
	}
	return &dashboard.CoachingResponse{Insights: insights}, nil
}

func (s *dashboardService) Reset(ctx context.Context, sess *session.Session, wipeProfile bool) error {
	return s.client.ResetTenant(ctx, sess, sess.TenantID(), wipeProfile)
}
