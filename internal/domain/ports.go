package domain

import "context"

// ChatClient defines how the gateway talks to the external LLM provider.
// The provider owns multi-turn coherence for a given session id; this
// service only re-supplies the id on every call.
type ChatClient interface {
	Reply(ctx context.Context, sessionID, message string) (string, error)
}

// ResourceStore defines persistence for the resource library.
type ResourceStore interface {
	CreateResource(ctx context.Context, r *Resource) error
	// ListResources returns resources newest-first. An empty category
	// means no filter.
	ListResources(ctx context.Context, category string) ([]*Resource, error)
	ListCategories(ctx context.Context) ([]string, error)
	ResourcesEmpty(ctx context.Context) (bool, error)
}

// MoodStore defines persistence for the append-only mood log.
type MoodStore interface {
	AppendMoodEntry(ctx context.Context, e *MoodEntry) error
	// ListMoodEntries returns entries newest-first, at most limit of them.
	// limit <= 0 means all.
	ListMoodEntries(ctx context.Context, limit int) ([]*MoodEntry, error)
}

// ConversationStore defines persistence for the conversation log.
type ConversationStore interface {
	AppendTurn(ctx context.Context, t *ConversationTurn) error
	// ListTurnsBySession returns the session's turns oldest-first,
	// in transcript order.
	ListTurnsBySession(ctx context.Context, sessionID string) ([]*ConversationTurn, error)
}
