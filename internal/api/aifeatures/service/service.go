package aifeaturesService

import (
	"AgentDock/internal/api/aifeatures"
	"AgentDock/internal/session"
	"AgentDock/pkg/agentdock"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type AIFeaturesService interface {
	Analytics(ctx context.Context, sess *session.Session) (*aifeatures.InsightResponse, error)
	Sentiment(ctx context.Context, sess *session.Session) (*aifeatures.InsightResponse, error)
	Optimization(ctx context.Context, sess *session.Session) (*aifeatures.InsightResponse, error)
	Personalization(ctx context.Context, sess *session.Session, customerID string) (*aifeatures.InsightResponse, error)
	SocialContent(ctx context.Context, sess *session.Session, req aifeatures.SocialContentRequest) (*aifeatures.InsightResponse, error)
	UpdatePersonalization(ctx context.Context, sess *session.Session, req aifeatures.PersonalizationRequest) (*aifeatures.InsightResponse, error)
}

type aifeaturesService struct {
	log    *logrus.Logger
	client *agentdock.Client
}

func New(log *logrus.Logger, client *agentdock.Client) AIFeaturesService {
	return &aifeaturesService{
		log:    log,
		client: client,
	}
}

func (s *aifeaturesService) Analytics(ctx context.Context, sess *session.Session) (*aifeatures.InsightResponse, error) {
	result, err := s.client.Analytics(ctx, sess, sess.TenantID())
	if err != nil {
		return nil, err
	}
	return &aifeatures.InsightResponse{Result: result}, nil
}

func (s *aifeaturesService) Sentiment(ctx context.Context, sess *session.Session) (*aifeatures.InsightResponse, error) {
	result, err := s.client.SentimentAnalysis(ctx, sess, sess.TenantID())
	if err != nil {
		return nil, err
	}
	return &aifeatures.InsightResponse{Result: result}, nil
}

func (s *aifeaturesService) Optimization(ctx context.Context, sess *session.Session) (*aifeatures.InsightResponse, error) {
	result, err := s.client.OptimizationSuggestions(ctx, sess, sess.TenantID())
	if err != nil {
		return nil, err
	}
	return &aifeatures.InsightResponse{Result: result}, nil
}

func (s *aifeaturesService) Personalization(ctx context.Context, sess *session.Session, customerID string) (*aifeatures.InsightResponse, error) {
	result, err := s.client.GetPersonalization(ctx, sess, sess.TenantID(), customerID)
	if err != nil {
		return nil, err
	}
	return &aifeatures.InsightResponse{Result: result}, nil
}

func (s *aifeaturesService) SocialContent(ctx context.Context, sess *session.Session, req aifeatures.SocialContentRequest) (*aifeatures.InsightResponse, error) {
	body := map[string]interface{}{
		"platform":     req.Platform,
		"content_type": req.ContentType,
	}
	if req.ServiceFocus != "" {
		body["service_focus"] = req.ServiceFocus
	}
	if req.Tone != "" {
		body["tone"] = req.Tone
	}

	result, err := s.client.GenerateSocialContent(ctx, sess, sess.TenantID(), body)
	if err != nil {
		return nil, err
	}
	return &aifeatures.InsightResponse{Result: result}, nil
}

func (s *aifeaturesService) UpdatePersonalization(ctx context.Context, sess *session.Session, req aifeatures.PersonalizationRequest) (*aifeatures.InsightResponse, error) {
	result, err := s.client.UpdatePersonalization(ctx, sess, sess.TenantID(), map[string]interface{}{
		"customer_id": req.CustomerID,
		"preferences": req.Preferences,
	})
	if err != nil {
		return nil, err
	}
	return &aifeatures.InsightResponse{Result: result}, nil
}
