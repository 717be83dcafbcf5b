package traceService

import (
	"AgentDock/internal/api/trace"
	"AgentDock/internal/session"
	"AgentDock/pkg/agentdock"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type TraceService interface {
	List(ctx context.Context, sess *session.Session) (*trace.ListResponse, error)
}

type traceService struct {
	log    *logrus.Logger
	client *agentdock.Client
}

func New(log *logrus.Logger, client *agentdock.Client) TraceService {
	return &traceService{
		log:    log,
		client: client,
	}
}

func (s *traceService) List(ctx context.Context, sess *session.Session) (*trace.ListResponse, error) {
	rows, err := s.client.GetTrace(ctx, sess, sess.TenantID())
	if err != nil {
		return nil, err
	}
	return &trace.ListResponse{Rows: rows}, nil
}
