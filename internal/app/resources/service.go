package resources

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mindwell/mindwell-api/internal/domain"
	"github.com/mindwell/mindwell-api/internal/observability"
)

// Service holds the logic of the resource library.
type Service struct {
	store domain.ResourceStore
	now   func() time.Time
	newID func() string
}

func NewService(store domain.ResourceStore) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

type CreateInput struct {
	Title       string
	Category    string
	Description string
	Content     string
	URL         string
}

// Create stores a new resource with a generated id and server-side UTC
// timestamp, and returns the stored document. There is no uniqueness
// constraint on title or category.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Resource, error) {
	log := observability.LoggerFromContext(ctx).With(zap.String("category", in.Category))

	r := &domain.Resource{
		ID:          s.newID(),
		Title:       in.Title,
		Category:    in.Category,
		Description: in.Description,
		Content:     in.Content,
		URL:         in.URL,
		Timestamp:   s.now().UTC(),
	}

	if err := s.store.CreateResource(ctx, r); err != nil {
		log.Error("failed to create resource", zap.Error(err))
		return nil, fmt.Errorf("%w: create resource: %v", domain.ErrStorage, err)
	}

	log.Info("resource created", zap.String("resource_id", r.ID))
	return r, nil
}

// List returns resources newest-first. An empty category means all; a
// non-empty one is an exact-match filter. No pagination.
func (s *Service) List(ctx context.Context, category string) ([]*domain.Resource, error) {
	out, err := s.store.ListResources(ctx, category)
	if err != nil {
		observability.LoggerFromContext(ctx).Error("failed to list resources", zap.Error(err))
		return nil, fmt.Errorf("%w: list resources: %v", domain.ErrStorage, err)
	}
	return out, nil
}

// Categories returns the distinct category strings observed across all
// stored resources.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	out, err := s.store.ListCategories(ctx)
	if err != nil {
		observability.LoggerFromContext(ctx).Error("failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("%w: list categories: %v", domain.ErrStorage, err)
	}
	return out, nil
}
