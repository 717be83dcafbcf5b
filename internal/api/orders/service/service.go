package ordersService

import (
	"AgentDock/internal/api/orders"
	"AgentDock/internal/entity"
	"AgentDock/internal/session"
	"AgentDock/pkg/agentdock"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type OrdersService interface {
	List(ctx context.Context, sess *session.Session) (*orders.ListResponse, error)
	Update(ctx context.Context, sess *session.Session, orderID int64, req orders.UpdateRequest) (*entity.Order, error)
}

type ordersService struct {
	log    *logrus.Logger
	client *agentdock.Client
}

func New(log *logrus.Logger, client *agentdock.Client) OrdersService {
	return &ordersService{
		log:    log,
		client: client,
	}
}

func (s *ordersService) List(ctx context.Context, sess *session.Session) (*orders.ListResponse, error) {
	list, err := s.client.GetOrders(ctx, sess, sess.TenantID())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	counts := map[string]int{
		entity.OrderPending:   0,
		entity.OrderConfirmed: 0,
		entity.OrderFulfilled: 0,
		entity.OrderCancelled: 0,
	}
	views := make([]orders.OrderView, 0, len(list))
	for _, order := range list {
		counts[order.Status]++
		views = append(views, orders.OrderView{
			Order:    order,
			SLALabel: entity.SLALabel(order.DueAt, now),
		})
	}

	return &orders.ListResponse{Orders: views, Counts: counts}, nil
}

func (s *ordersService) Update(ctx context.Context, sess *session.Session, orderID int64, req orders.UpdateRequest) (*entity.Order, error) {
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
		return nil, orders.ErrEmptyUpdate
	}

	return s.client.UpdateOrder(ctx, sess, orderID, patch)
}
