package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mindwell/mindwell-api/internal/domain"
	"github.com/mindwell/mindwell-api/internal/observability"
)

// Service is the chat gateway: it delegates each message to the external
// provider and keeps an append-only durable log of the exchanges. It owns
// no conversation state of its own; multi-turn coherence is entirely the
// provider's job given the repeated session id.
type Service struct {
	client domain.ChatClient
	store  domain.ConversationStore
	now    func() time.Time
	newID  func() string
}

func NewService(client domain.ChatClient, store domain.ConversationStore) *Service {
	return &Service{
		client: client,
		store:  store,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Send forwards the message to the provider under the given session id
// (minting a fresh one when absent), persists the exchange on success and
// returns the stored turn. A provider failure surfaces as an upstream-chat
// error and nothing is persisted.
func (s *Service) Send(ctx context.Context, message, sessionID string) (*domain.ConversationTurn, error) {
	if sessionID == "" {
		sessionID = s.newID()
	}

	log := observability.LoggerFromContext(ctx).With(zap.String("session_id", sessionID))
	log.Info("forwarding message to chat provider")

	reply, err := s.client.Reply(ctx, sessionID, message)
	if err != nil {
		log.Error("chat provider failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamChat, err)
	}

	turn := &domain.ConversationTurn{
		ID:          s.newID(),
		SessionID:   sessionID,
		UserMessage: message,
		AIResponse:  reply,
		Timestamp:   s.now().UTC(),
	}

	if err := s.store.AppendTurn(ctx, turn); err != nil {
		log.Error("failed to persist conversation turn", zap.Error(err))
		return nil, fmt.Errorf("%w: append turn: %v", domain.ErrStorage, err)
	}

	log.Info("chat turn completed", zap.String("turn_id", turn.ID))
	return turn, nil
}

// History returns the session's turns oldest-first. Unlike every other
// listing in the service this reads as a transcript, not a feed. An
// unknown session id yields an empty transcript, not an error.
func (s *Service) History(ctx context.Context, sessionID string) ([]*domain.ConversationTurn, error) {
	out, err := s.store.ListTurnsBySession(ctx, sessionID)
	if err != nil {
		observability.LoggerFromContext(ctx).Error("failed to list conversation turns",
			zap.String("session_id", sessionID), zap.Error(err))
		return nil, fmt.Errorf("%w: chat history: %v", domain.ErrStorage, err)
	}
	return out, nil
}
