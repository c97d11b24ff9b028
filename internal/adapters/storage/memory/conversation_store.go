package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mindwell/mindwell-api/internal/domain"
)

// ConversationStore is the in-memory twin of the Firestore conversation
// backend. Turns are grouped by session id, the only lookup key.
type ConversationStore struct {
	mu    sync.RWMutex
	turns map[string][]*domain.ConversationTurn
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		turns: make(map[string][]*domain.ConversationTurn),
	}
}

func (s *ConversationStore) AppendTurn(_ context.Context, t *domain.ConversationTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns[t.SessionID] = append(s.turns[t.SessionID], t)
	return nil
}

func (s *ConversationStore) ListTurnsBySession(_ context.Context, sessionID string) ([]*domain.ConversationTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.turns[sessionID]
	out := make([]*domain.ConversationTurn, len(turns))
	copy(out, turns)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}
