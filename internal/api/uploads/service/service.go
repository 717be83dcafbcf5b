package uploadsService

import (
	"AgentDock/internal/api/uploads"
	"AgentDock/internal/session"
	"AgentDock/pkg/agentdock"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type UploadsService interface {
	UploadImage(ctx context.Context, sess *session.Session, body []byte, contentType string) (*uploads.UploadResponse, error)
}

type uploadsService struct {
	log    *logrus.Logger
	client *agentdock.Client
}

func New(log *logrus.Logger, client *agentdock.Client) UploadsService {
	return &uploadsService{
		log:    log,
		client: client,
	}
}

// UploadImage forwards the image to the backend's shared upload endpoint
// and hands back an absolute URL the profile editor can store directly.
func (s *uploadsService) UploadImage(ctx context.Context, sess *session.Session, body []byte, contentType string) (*uploads.UploadResponse, error) {
	url, err := s.client.UploadImage(ctx, sess, body, contentType)
	if err != nil {
		return nil, err
	}
	return &uploads.UploadResponse{URL: url}, nil
}
