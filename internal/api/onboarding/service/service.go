package onboardingService

import (
	"AgentDock/internal/api/onboarding"
	"AgentDock/internal/entity"
	"AgentDock/internal/session"
	"AgentDock/pkg/agentdock"
	"AgentDock/pkg/log"
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const assistantStatePrefix = "agentdock_setup_assistant_"
const maxAssistantTurns = 50

type OnboardingService interface {
	Draft(ctx context.Context, sess *session.Session) (*onboarding.DraftResponse, error)
	Save(ctx context.Context, sess *session.Session, draft entity.BusinessProfile) (*onboarding.DraftResponse, error)
	Assistant(ctx context.Context, sess *session.Session, message string) (*onboarding.AssistantResponse, error)
	ClearAssistant(ctx context.Context, sess *session.Session) error
	Polish(ctx context.Context, sess *session.Session, field, text string) (string, error)
}

type onboardingService struct {
	log    *logrus.Logger
	client *agentdock.Client
}

func New(log *logrus.Logger, client *agentdock.Client) OnboardingService {
	return &onboardingService{
		log:    log,
		client: client,
	}
}

// Draft assembles the wizard's working copy. An assistant-edited draft
// wins over the stored profile; a tenant with neither gets the defaults.
func (s *onboardingService) Draft(ctx context.Context, sess *session.Session) (*onboarding.DraftResponse, error) {
	state, err := s.loadAssistantState(ctx, sess)
	if err != nil {
		return nil, err
	}
	if state.Draft != nil {
		return &onboarding.DraftResponse{
			Draft:        *state.Draft,
			Completeness: onboarding.Completeness(*state.Draft),
		}, nil
	}

	draft, err := s.currentDraft(ctx, sess)
	if err != nil {
		return nil, err
	}

	return &onboarding.DraftResponse{
		Draft:        draft,
		Completeness: onboarding.Completeness(draft),
	}, nil
}

func (s *onboardingService) currentDraft(ctx context.Context, sess *session.Session) (entity.BusinessProfile, error) {
	profile, err := s.client.GetBusinessProfile(ctx, sess, sess.TenantID())
	if err != nil {
		var upstreamErr *agentdock.UpstreamError
		if errors.As(err, &upstreamErr) && upstreamErr.Status == http.StatusNotFound {
			return onboarding.DefaultDraft(), nil
		}
		return entity.BusinessProfile{}, err
	}

	return onboarding.FillDefaults(*profile), nil
}

// Save pushes the whole draft upstream in one PUT and drops the assistant's
// working copy; the saved profile is now the single source of truth.
func (s *onboardingService) Save(ctx context.Context, sess *session.Session, draft entity.BusinessProfile) (*onboarding.DraftResponse, error) {
	if strings.TrimSpace(draft.Name) == "" && len(draft.Services) == 0 {
		return nil, onboarding.ErrEmptyDraft
	}

	updated, err := s.client.UpdateBusinessProfile(ctx, sess, sess.TenantID(), &draft)
	if err != nil {
		return nil, err
	}

	state, err := s.loadAssistantState(ctx, sess)
	if err == nil && state.Draft != nil {
		state.Draft = nil
		if err := s.storeAssistantState(ctx, sess, state); err != nil {
			s.log.WithFields(log.Fields{
				"tenant_id": sess.TenantID(),
				"error":     err.Error(),
			}).Debug("Failed to drop assistant draft after save")
		}
	}

	return &onboarding.DraftResponse{
		Draft:        *updated,
		Completeness: onboarding.Completeness(*updated),
	}, nil
}

// Assistant runs one conversational wizard turn: the backend replies and
// may hand back a profile patch, which is merged into the working draft
// and kept for the next turn.
func (s *onboardingService) Assistant(ctx context.Context, sess *session.Session, message string) (*onboarding.AssistantResponse, error) {
	state, err := s.loadAssistantState(ctx, sess)
	if err != nil {
		return nil, err
	}

	draft := entity.BusinessProfile{}
	if state.Draft != nil {
		draft = *state.Draft
	} else {
		draft, err = s.currentDraft(ctx, sess)
		if err != nil {
			return nil, err
		}
	}

	result, err := s.client.SetupAssistant(ctx, sess, sess.TenantID(), agentdock.SetupAssistantRequest{
		Message: message,
		Draft:   &draft,
		History: state.Turns,
	})
	if err != nil {
		return nil, err
	}

	draft = onboarding.Merge(draft, result.ProfilePatch)

	state.Draft = &draft
	state.Turns = append(state.Turns,
		agentdock.AssistantTurn{From: "user", Text: message},
		agentdock.AssistantTurn{From: "assistant", Text: result.Reply},
	)
	if len(state.Turns) > maxAssistantTurns {
		state.Turns = state.Turns[len(state.Turns)-maxAssistantTurns:]
	}

	if err := s.storeAssistantState(ctx, sess, state); err != nil {
		return nil, err
	}

	return &onboarding.AssistantResponse{
		Reply:        result.Reply,
		Draft:        draft,
		Completeness: onboarding.Completeness(draft),
		Step:         result.Step,
	}, nil
}

func (s *onboardingService) ClearAssistant(ctx context.Context, sess *session.Session) error {
	return sess.DeleteCache(ctx, assistantStatePrefix+sess.TenantID())
}

func (s *onboardingService) Polish(ctx context.Context, sess *session.Session, field, text string) (string, error) {
	return s.client.PolishText(ctx, sess, sess.TenantID(), field, text)
}

func (s *onboardingService) loadAssistantState(ctx context.Context, sess *session.Session) (onboarding.AssistantState, error) {
	var state onboarding.AssistantState

	raw, err := sess.Cache(ctx, assistantStatePrefix+sess.TenantID())
	if err != nil {
		return state, err
	}
	if raw == "" {
		return state, nil
	}

	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		// A corrupt cache entry should not lock the wizard; start over.
		s.log.WithFields(log.Fields{
			"tenant_id": sess.TenantID(),
			"error":     err.Error(),
		}).Debug("Discarding unreadable assistant state")
		return onboarding.AssistantState{}, nil
	}

	return state, nil
}

func (s *onboardingService) storeAssistantState(ctx context.Context, sess *session.Session, state onboarding.AssistantState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return sess.SetCache(ctx, assistantStatePrefix+sess.TenantID(), string(raw))
}
