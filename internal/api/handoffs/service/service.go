package handoffsService

import (
	"AgentDock/internal/api/handoffs"
	"AgentDock/internal/entity"
	"AgentDock/internal/session"
	"AgentDock/pkg/agentdock"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type HandoffsService interface {
	List(ctx context.Context, sess *session.Session) (*handoffs.ListResponse, error)
	Update(ctx context.Context, sess *session.Session, handoffID int64, req handoffs.UpdateRequest) (*entity.Handoff, error)
}

type handoffsService struct {
	log    *logrus.Logger
	client *agentdock.Client
}

func New(log *logrus.Logger, client *agentdock.Client) HandoffsService {
	return &handoffsService{
		log:    log,
		client: client,
	}
}

func (s *handoffsService) List(ctx context.Context, sess *session.Session) (*handoffs.ListResponse, error) {
	list, err := s.client.GetHandoffs(ctx, sess, sess.TenantID())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	counts := map[string]int{
		entity.HandoffOpen:     0,
		entity.HandoffResolved: 0,
	}
	views := make([]handoffs.HandoffView, 0, len(list))
	for _, handoff := range list {
		counts[handoff.Status]++
		views = append(views, handoffs.HandoffView{
			Handoff:  handoff,
			SLALabel: entity.SLALabel(handoff.DueAt, now),
		})
	}

	return &handoffs.ListResponse{Handoffs: views, Counts: counts}, nil
}

func (s *handoffsService) Update(ctx context.Context, sess *session.Session, handoffID int64, req handoffs.UpdateRequest) (*entity.Handoff, error) {
	patch := make(map[string]interface{})
	if req.Status != nil {
		patch["status"] = *req.Status
	}
	if req.AssignedTo != nil {
		patch["assigned_to"] = *req.AssignedTo
	}
	if req.ResolutionNotes != nil {
		patch["resolution_notes"] = *req.ResolutionNotes
	}
	switch {
	case req.DueInMinutes != nil:
		patch["due_at"] = entity.DueAtFromMinutes(*req.DueInMinutes, time.Now())
	case req.DueAt != nil:
		patch["due_at"] = *req.DueAt
	}

	if len(patch) == 0 {
		return nil, handoffs.ErrEmptyUpdate
	}

	return s.client.UpdateHandoff(ctx, sess, handoffID, patch)
}
