package complaintsService

import (
	"AgentDock/internal/api/complaints"
	"AgentDock/internal/entity"
	"AgentDock/internal/session"
	"AgentDock/pkg/agentdock"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ComplaintsService interface {
	List(ctx context.Context, sess *session.Session, status, priority string) (*complaints.ListResponse, error)
	Create(ctx context.Context, sess *session.Session, req complaints.CreateRequest) (*entity.Complaint, error)
	Update(ctx context.Context, sess *session.Session, complaintID int64, req complaints.UpdateRequest) (*entity.Complaint, error)
}

type complaintsService struct {
	log    *logrus.Logger
	client *agentdock.Client
}

func New(log *logrus.Logger, client *agentdock.Client) ComplaintsService {
	return &complaintsService{
		log:    log,
		client: client,
	}
}

func (s *complaintsService) List(ctx context.Context, sess *session.Session, status, priority string) (*complaints.ListResponse, error) {
	list, err := s.client.GetComplaints(ctx, sess, sess.TenantID())
	if err != nil {
		return nil, err
	}

	return &complaints.ListResponse{
		Complaints: complaints.Filter(list, status, priority),
		Counts:     complaints.CountByStatus(list),
		Status:     status,
		Priority:   priority,
	}, nil
}

func (s *complaintsService) Create(ctx context.Context, sess *session.Session, req complaints.CreateRequest) (*entity.Complaint, error) {
	if req.Category == "" {
		req.Category = "General"
	}
	if req.Priority == "" {
		req.Priority = entity.PriorityMedium
	}

	body := map[string]interface{}{
		"complaint_details": req.ComplaintDetails,
		"category":          req.Category,
		"priority":          req.Priority,
	}
	if req.CustomerName != "" {
		body["customer_name"] = req.CustomerName
	}
	if req.CustomerPhone != "" {
		body["customer_phone"] = req.CustomerPhone
	}

	return s.client.CreateComplaint(ctx, sess, sess.TenantID(), body)
}

func (s *complaintsService) Update(ctx context.Context, sess *session.Session, complaintID int64, req complaints.UpdateRequest) (*entity.Complaint, error) {
	patch := make(map[string]interface{})
	if req.Status != nil {
		patch["status"] = *req.Status
	}
	if req.Priority != nil {
		patch["priority"] = *req.Priority
	}
	if req.AssignedAgent != nil {
		patch["assigned_agent"] = *req.AssignedAgent
	}
	if req.Notes != nil {
		patch["notes"] = *req.Notes
	}
	if req.Category != nil {
		patch["category"] = *req.Category
	}

	if len(patch) == 0 {
		return nil, complaints.ErrEmptyUpdate
	}

	return s.client.UpdateComplaint(ctx, sess, complaintID, patch)
}
