package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mindwell/mindwell-api/internal/domain"
)

// ResourceStore is the in-memory twin of the Firestore resource backend.
// Not persistent; suitable for dev and tests only.
type ResourceStore struct {
	mu        sync.RWMutex
	resources []*domain.Resource
}

func NewResourceStore() *ResourceStore {
	return &ResourceStore{}
}

func (s *ResourceStore) CreateResource(_ context.Context, r *domain.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resources = append(s.resources, r)
	return nil
}

func (s *ResourceStore) ListResources(_ context.Context, category string) ([]*domain.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Resource, 0, len(s.resources))
	for _, r := range s.resources {
		if category == "" || r.Category == category {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (s *ResourceStore) ListCategories(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, r := range s.resources {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	return out, nil
}

func (s *ResourceStore) ResourcesEmpty(_ context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.resources) == 0, nil
}
