package bookingsService

import (
	"AgentDock/internal/api/bookings"
	"AgentDock/internal/entity"
	"AgentDock/internal/session"
	"AgentDock/pkg/agentdock"
	"AgentDock/pkg/log"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type BookingsService interface {
	List(ctx context.Context, sess *session.Session, status string) (*bookings.ListResponse, error)
	Update(ctx context.Context, sess *session.Session, appointmentID int64, status string) (*entity.Appointment, error)
	Clear(ctx context.Context, sess *session.Session) error
}

type bookingsService struct {
	log    *logrus.Logger
	client *agentdock.Client
}

func New(log *logrus.Logger, client *agentdock.Client) BookingsService {
	return &bookingsService{
		log:    log,
		client: client,
	}
}

func (s *bookingsService) List(ctx context.Context, sess *session.Session, status string) (*bookings.ListResponse, error) {
	if !bookings.ValidStatus(status) {
		return nil, bookings.ErrUnknownStatus
	}

	appointments, err := s.client.GetAppointments(ctx, sess, sess.TenantID())
	if err != nil {
		return nil, err
	}

	// The service-name lookup is decoration; a missing profile must not
	// empty the bookings page.
	serviceNames := make(map[string]string)
	profile, err := s.client.GetBusinessProfile(ctx, sess, sess.TenantID())
	if err != nil {
		s.log.WithFields(log.Fields{
			"tenant_id": sess.TenantID(),
			"error":     err.Error(),
		}).Debug("Profile unavailable for service names")
	} else {
		for _, svc := range profile.Services {
			if svc.ID != "" {
				serviceNames[svc.ID] = svc.Name
			}
		}
	}

	return &bookings.ListResponse{
		Appointments: bookings.FilterByStatus(appointments, status),
		ServiceNames: serviceNames,
		Counts:       bookings.CountByStatus(appointments),
		Filter:       status,
	}, nil
}

func (s *bookingsService) Update(ctx context.Context, sess *session.Session, appointmentID int64, status string) (*entity.Appointment, error) {
	return s.client.UpdateAppointment(ctx, sess, appointmentID, map[string]interface{}{
		"status": status,
	})
}

func (s *bookingsService) Clear(ctx context.Context, sess *session.Session) error {
	return s.client.ClearAppointments(ctx, sess, sess.TenantID())
}
