package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/mindwell/mindwell-api/internal/domain"
)

// Store implements the resource, mood and conversation store ports on a
// single Firestore client. One struct, three interfaces.
type Store struct {
	client *firestore.Client
}

// NewStore creates a Firestore store for the given project.
func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

// Close releases the underlying client. Owned by the process entry point.
func (s *Store) Close() error {
	return s.client.Close()
}

// ─────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────

func (s *Store) resourcesCol() *firestore.CollectionRef {
	return s.client.Collection("resources")
}

func (s *Store) moodCol() *firestore.CollectionRef {
	return s.client.Collection("mood_entries")
}

func (s *Store) conversationsCol() *firestore.CollectionRef {
	return s.client.Collection("conversations")
}

// ─────────────────────────────────────────
// Firestore Types
// ─────────────────────────────────────────

type resourceDoc struct {
	Title       string    `firestore:"title"`
	Category    string    `firestore:"category"`
	Description string    `firestore:"description"`
	Content     string    `firestore:"content"`
	URL         string    `firestore:"url"`
	Timestamp   time.Time `firestore:"timestamp"`
}

type moodEntryDoc struct {
	MoodLevel  int       `firestore:"mood_level"`
	Notes      string    `firestore:"notes"`
	Activities []string  `firestore:"activities"`
	Timestamp  time.Time `firestore:"timestamp"`
}

type conversationTurnDoc struct {
	SessionID   string    `firestore:"session_id"`
	UserMessage string    `firestore:"user_message"`
	AIResponse  string    `firestore:"ai_response"`
	Timestamp   time.Time `firestore:"timestamp"`
}

// ─────────────────────────────────────────
// ResourceStore implementation
// ─────────────────────────────────────────

func (s *Store) CreateResource(ctx context.Context, r *domain.Resource) error {
	doc := resourceDoc{
		Title:       r.Title,
		Category:    r.Category,
		Description: r.Description,
		Content:     r.Content,
		URL:         r.URL,
		Timestamp:   r.Timestamp,
	}

	_, err := s.resourcesCol().Doc(r.ID).Create(ctx, doc)
	if err != nil {
		return fmt.Errorf("firestore CreateResource: %w", err)
	}
	return nil
}

func (s *Store) ListResources(ctx context.Context, category string) ([]*domain.Resource, error) {
	q := s.resourcesCol().Query
	if category != "" {
		q = q.Where("category", "==", category)
	}
	q = q.OrderBy("timestamp", firestore.Desc)

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*domain.Resource
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore ListResources: %w", err)
		}

		var doc resourceDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode resourceDoc: %w", err)
		}

		out = append(out, &domain.Resource{
			ID:          snap.Ref.ID,
			Title:       doc.Title,
			Category:    doc.Category,
			Description: doc.Description,
			Content:     doc.Content,
			URL:         doc.URL,
			Timestamp:   doc.Timestamp,
		})
	}
	return out, nil
}

// ListCategories reads only the category field of every resource and
// dedupes client-side; Firestore has no distinct operator.
func (s *Store) ListCategories(ctx context.Context) ([]string, error) {
	iter := s.resourcesCol().Select("category").Documents(ctx)
	defer iter.Stop()

	seen := make(map[string]struct{})
	var out []string
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore ListCategories: %w", err)
		}

		cat, _ := snap.Data()["category"].(string)
		if cat == "" {
			continue
		}
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	return out, nil
}

// ResourcesEmpty probes for a single document; the seed guard only cares
// whether the count is exactly zero.
func (s *Store) ResourcesEmpty(ctx context.Context) (bool, error) {
	iter := s.resourcesCol().Limit(1).Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("firestore ResourcesEmpty: %w", err)
	}
	return false, nil
}

// ─────────────────────────────────────────
// MoodStore implementation
// ─────────────────────────────────────────

func (s *Store) AppendMoodEntry(ctx context.Context, e *domain.MoodEntry) error {
	doc := moodEntryDoc{
		MoodLevel:  e.MoodLevel,
		Notes:      e.Notes,
		Activities: e.Activities,
		Timestamp:  e.Timestamp,
	}

	_, err := s.moodCol().Doc(e.ID).Create(ctx, doc)
	if err != nil {
		return fmt.Errorf("firestore AppendMoodEntry: %w", err)
	}
	return nil
}

func (s *Store) ListMoodEntries(ctx context.Context, limit int) ([]*domain.MoodEntry, error) {
	q := s.moodCol().OrderBy("timestamp", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*domain.MoodEntry
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore ListMoodEntries: %w", err)
		}

		var doc moodEntryDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode moodEntryDoc: %w", err)
		}

		activities := doc.Activities
		if activities == nil {
			activities = []string{}
		}

		out = append(out, &domain.MoodEntry{
			ID:         snap.Ref.ID,
			MoodLevel:  doc.MoodLevel,
			Notes:      doc.Notes,
			Activities: activities,
			Timestamp:  doc.Timestamp,
		})
	}
	return out, nil
}

// ─────────────────────────────────────────
// ConversationStore implementation
// ─────────────────────────────────────────

func (s *Store) AppendTurn(ctx context.Context, t *domain.ConversationTurn) error {
	doc := conversationTurnDoc{
		SessionID:   t.SessionID,
		UserMessage: t.UserMessage,
		AIResponse:  t.AIResponse,
		Timestamp:   t.Timestamp,
	}

	_, err := s.conversationsCol().Doc(t.ID).Create(ctx, doc)
	if err != nil {
		return fmt.Errorf("firestore AppendTurn: %w", err)
	}
	return nil
}

func (s *Store) ListTurnsBySession(ctx context.Context, sessionID string) ([]*domain.ConversationTurn, error) {
	q := s.conversationsCol().
		Where("session_id", "==", sessionID).
		OrderBy("timestamp", firestore.Asc)

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*domain.ConversationTurn
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore ListTurnsBySession: %w", err)
		}

		var doc conversationTurnDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode conversationTurnDoc: %w", err)
		}

		out = append(out, &domain.ConversationTurn{
			ID:          snap.Ref.ID,
			SessionID:   sessionID,
			UserMessage: doc.UserMessage,
			AIResponse:  doc.AIResponse,
			Timestamp:   doc.Timestamp,
		})
	}
	return out, nil
}
