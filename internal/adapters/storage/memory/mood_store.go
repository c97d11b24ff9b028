package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mindwell/mindwell-api/internal/domain"
)

// MoodStore is the in-memory twin of the Firestore mood backend.
type MoodStore struct {
	mu      sync.RWMutex
	entries []*domain.MoodEntry
}

func NewMoodStore() *MoodStore {
	return &MoodStore{}
}

func (s *MoodStore) AppendMoodEntry(_ context.Context, e *domain.MoodEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, e)
	return nil
}

func (s *MoodStore) ListMoodEntries(_ context.Context, limit int) ([]*domain.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.MoodEntry, len(s.entries))
	copy(out, s.entries)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
