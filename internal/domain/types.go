package domain

import "time"

// Resource is one entry in the resource library (articles, exercises,
// pointers to professional help). Immutable after creation: there is no
// update or delete surface.
type Resource struct {
	ID          string
	Title       string
	Category    string
	Description string
	Content     string
	URL         string
	Timestamp   time.Time
}

// MoodEntry is one row of the append-only mood log. MoodLevel is a 1-10
// scale by convention; the server stores whatever the caller supplied.
type MoodEntry struct {
	ID         string
	MoodLevel  int
	Notes      string
	Activities []string
	Timestamp  time.Time
}

// ConversationTurn is one user message and the AI reply it produced.
// Turns sharing a SessionID form a logical conversation; a session "exists"
// iff at least one turn references it. There is no separate session entity.
type ConversationTurn struct {
	ID          string
	SessionID   string
	UserMessage string
	AIResponse  string
	Timestamp   time.Time
}

// CrisisContact is a single emergency contact line.
type CrisisContact struct {
	Name        string
	Phone       string
	Description string
}

// CrisisInfo is the static crisis payload. Never persisted.
type CrisisInfo struct {
	EmergencyContacts []CrisisContact
	ImmediateSteps    []string
}
