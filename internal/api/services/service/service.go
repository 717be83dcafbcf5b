package servicesService

import (
	"AgentDock/internal/api/services"
	"AgentDock/internal/entity"
	"AgentDock/internal/session"
	"AgentDock/pkg/agentdock"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ServicesService interface {
	List(ctx context.Context, sess *session.Session) (*services.ListResponse, error)
	Replace(ctx context.Context, sess *session.Session, list []entity.Service) (*services.ListResponse, error)
}

type servicesService struct {
	log    *logrus.Logger
	client *agentdock.Client
}

func New(log *logrus.Logger, client *agentdock.Client) ServicesService {
	return &servicesService{
		log:    log,
		client: client,
	}
}

func (s *servicesService) List(ctx context.Context, sess *session.Session) (*services.ListResponse, error) {
	list, err := s.client.GetServices(ctx, sess, sess.TenantID())
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []entity.Service{}
	}
	return &services.ListResponse{Services: list}, nil
}

// Replace writes the catalog back through the profile, since the backend
// keeps services as part of the singleton profile document.
func (s *servicesService) Replace(ctx context.Context, sess *session.Session, list []entity.Service) (*services.ListResponse, error) {
	for _, svc := range list {
		if svc.Name == "" {
			return nil, services.ErrUnnamedService
		}
	}

	profile, err := s.client.GetBusinessProfile(ctx, sess, sess.TenantID())
	if err != nil {
		return nil, err
	}

	profile.Services = list
	updated, err := s.client.UpdateBusinessProfile(ctx, sess, sess.TenantID(), profile)
	if err != nil {
		return nil, err
	}

	result := updated.Services
	if result == nil {
		result = []entity.Service{}
	}
	return &services.ListResponse{Services: result}, nil
}
