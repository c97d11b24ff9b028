package mood

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mindwell/mindwell-api/internal/domain"
	"github.com/mindwell/mindwell-api/internal/observability"
)

// DefaultHistoryLimit is applied at the HTTP boundary when the caller does
// not supply a limit.
const DefaultHistoryLimit = 30

// Service holds the logic of the append-only mood log.
type Service struct {
	store domain.MoodStore
	now   func() time.Time
	newID func() string
}

func NewService(store domain.MoodStore) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Log appends a mood entry. The level is stored as supplied (the 1-10
// scale is a client convention, not enforced here); nil activities
// normalize to an empty list so the stored document never carries null.
func (s *Service) Log(ctx context.Context, level int, notes string, activities []string) (*domain.MoodEntry, error) {
	log := observability.LoggerFromContext(ctx).With(zap.Int("mood_level", level))

	if activities == nil {
		activities = []string{}
	}

	e := &domain.MoodEntry{
		ID:         s.newID(),
		MoodLevel:  level,
		Notes:      notes,
		Activities: activities,
		Timestamp:  s.now().UTC(),
	}

	if err := s.store.AppendMoodEntry(ctx, e); err != nil {
		log.Error("failed to log mood", zap.Error(err))
		return nil, fmt.Errorf("%w: log mood: %v", domain.ErrStorage, err)
	}

	log.Info("mood logged", zap.String("entry_id", e.ID))
	return e, nil
}

// History returns mood entries newest-first, truncated to limit. The limit
// is passed through as supplied; no floor or ceiling is enforced.
func (s *Service) History(ctx context.Context, limit int) ([]*domain.MoodEntry, error) {
	out, err := s.store.ListMoodEntries(ctx, limit)
	if err != nil {
		observability.LoggerFromContext(ctx).Error("failed to list mood entries", zap.Error(err))
		return nil, fmt.Errorf("%w: mood history: %v", domain.ErrStorage, err)
	}
	return out, nil
}
