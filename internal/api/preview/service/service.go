package previewService

import (
	"AgentDock/internal/api/preview"
	"AgentDock/internal/session"
	"AgentDock/pkg/agentdock"
	"AgentDock/pkg/log"
	"AgentDock/pkg/utils"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const transcriptPrefix = "agentdock_demo_chat_"
const maxTranscriptEntries = 50

type PreviewService interface {
	Chat(ctx context.Context, sess *session.Session, message string) (*preview.ChatResponse, error)
	Transcript(ctx context.Context, sess *session.Session) (*preview.TranscriptResponse, error)
	ClearTranscript(ctx context.Context, sess *session.Session) error
}

type previewService struct {
	log    *logrus.Logger
	client *agentdock.Client
	utils  utils.IUtils
}

func New(log *logrus.Logger, client *agentdock.Client, utils utils.IUtils) PreviewService {
	return &previewService{
		log:    log,
		client: client,
		utils:  utils,
	}
}

// Chat plays one customer turn against the live agent under a synthetic
// phone number, so the operator can poke their own bot without polluting
// real conversations. The number is minted once per tenant and reused so
// the agent keeps its conversational memory between turns.
func (s *previewService) Chat(ctx context.Context, sess *session.Session, message string) (*preview.ChatResponse, error) {
	state, err := s.loadState(ctx, sess)
	if err != nil {
		return nil, err
	}
	if state.Phone == "" {
		state.Phone = s.utils.NewDemoPhone()
	}

	reply, err := s.client.DemoChat(ctx, sess, sess.TenantID(), state.Phone, message)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	state.Entries = append(state.Entries,
		preview.TranscriptEntry{Role: "customer", Content: message, Timestamp: now},
		preview.TranscriptEntry{Role: "agent", Content: reply, Timestamp: now},
	)
	if len(state.Entries) > maxTranscriptEntries {
		state.Entries = state.Entries[len(state.Entries)-maxTranscriptEntries:]
	}

	if err := s.storeState(ctx, sess, state); err != nil {
		return nil, err
	}

	return &preview.ChatResponse{
		Reply:      reply,
		Transcript: state.Entries,
	}, nil
}

func (s *previewService) Transcript(ctx context.Context, sess *session.Session) (*preview.TranscriptResponse, error) {
	state, err := s.loadState(ctx, sess)
	if err != nil {
		return nil, err
	}

	entries := state.Entries
	if entries == nil {
		entries = []preview.TranscriptEntry{}
	}
	return &preview.TranscriptResponse{Transcript: entries}, nil
}

func (s *previewService) ClearTranscript(ctx context.Context, sess *session.Session) error {
	return sess.DeleteCache(ctx, transcriptPrefix+sess.TenantID())
}

func (s *previewService) loadState(ctx context.Context, sess *session.Session) (preview.TranscriptState, error) {
	var state preview.TranscriptState

	raw, err := sess.Cache(ctx, transcriptPrefix+sess.TenantID())
	if err != nil {
		return state, err
	}
	if raw == "" {
		return state, nil
	}

	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		s.log.WithFields(log.Fields{
			"tenant_id": sess.TenantID(),
			"error":     err.Error(),
		}).Debug("Discarding unreadable demo transcript")
		return preview.TranscriptState{}, nil
	}

	return state, nil
}

func (s *previewService) storeState(ctx context.Context, sess *session.Session, state preview.TranscriptState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return sess.SetCache(ctx, transcriptPrefix+sess.TenantID(), string(raw))
}
