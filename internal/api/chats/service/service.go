package chatsService

import (
	"AgentDock/internal/api/chats"
	"AgentDock/internal/session"
	"AgentDock/pkg/agentdock"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const messageLimit = 200

type ChatsService interface {
	Conversations(ctx context.Context, sess *session.Session) (*chats.ConversationsResponse, error)
	Messages(ctx context.Context, sess *session.Session, customerID string) (*chats.MessagesResponse, error)
	Summary(ctx context.Context, sess *session.Session, customerID string) (*chats.SummaryResponse, error)
	MarkRead(ctx context.Context, sess *session.Session, customerID string) error
	DeleteMessage(ctx context.Context, sess *session.Session, messageID int64) error
	ClearMessages(ctx context.Context, sess *session.Session) error
}

type chatsService struct {
	log    *logrus.Logger
	client *agentdock.Client
}

func New(log *logrus.Logger, client *agentdock.Client) ChatsService {
	return &chatsService{
		log:    log,
		client: client,
	}
}

func (s *chatsService) Conversations(ctx context.Context, sess *session.Session) (*chats.ConversationsResponse, error) {
	conversations, err := s.client.ListConversations(ctx, sess, sess.TenantID())
	if err != nil {
		return nil, err
	}
	return &chats.ConversationsResponse{Conversations: conversations}, nil
}

func (s *chatsService) Messages(ctx context.Context, sess *session.Session, customerID string) (*chats.MessagesResponse, error) {
	messages, err := s.client.GetMessages(ctx, sess, sess.TenantID(), customerID, messageLimit)
	if err != nil {
		return nil, err
	}
	return &chats.MessagesResponse{Messages: chats.SortAscending(messages)}, nil
}

func (s *chatsService) Summary(ctx context.Context, sess *session.Session, customerID string) (*chats.SummaryResponse, error) {
	summary, err := s.client.ConversationSummary(ctx, sess, sess.TenantID(), customerID)
	if err != nil {
		return nil, err
	}

	sentiment := summary.Sentiment
	switch sentiment {
	case "positive", "neutral", "negative":
	default:
		sentiment = "neutral"
	}

	return &chats.SummaryResponse{
		Summary:   summary.Summary,
		Sentiment: sentiment,
		NextSteps: summary.NextSteps,
	}, nil
}

func (s *chatsService) MarkRead(ctx context.Context, sess *session.Session, customerID string) error {
	return s.client.MarkConversationRead(ctx, sess, sess.TenantID(), customerID)
}

func (s *chatsService) DeleteMessage(ctx context.Context, sess *session.Session, messageID int64) error {
	return s.client.DeleteMessage(ctx, sess, messageID)
}

func (s *chatsService) ClearMessages(ctx context.Context, sess *session.Session) error {
	return s.client.ClearMessages(ctx, sess, sess.TenantID())
}
