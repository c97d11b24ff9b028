package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/mindwell-api/internal/adapters/storage/memory"
	"github.com/mindwell/mindwell-api/internal/domain"
)

// Sorting is the stores' contract, so these tests insert out of order with
// explicit timestamps.

func TestResourceStoreOrdering(t *testing.T) {
	ctx := context.Background()
	store := memory.NewResourceStore()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		err := store.CreateResource(ctx, &domain.Resource{
			ID:        id,
			Category:  "general",
			Timestamp: base.Add(time.Duration(2-i) * time.Minute),
		})
		require.NoError(t, err)
	}

	out, err := store.ListResources(ctx, "general")
	require.NoError(t, err)
	require.Len(t, out, 3)

	// Newest first: "a" got the latest timestamp.
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
	assert.Equal(t, "c", out[2].ID)
}

func TestMoodStoreOrderingAndLimit(t *testing.T) {
	ctx := context.Background()
	store := memory.NewMoodStore()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		err := store.AppendMoodEntry(ctx, &domain.MoodEntry{
			ID:        id,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	out, err := store.ListMoodEntries(ctx, 2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "new", out[0].ID)
	assert.Equal(t, "mid", out[1].ID)

	all, err := store.ListMoodEntries(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestConversationStoreTranscriptOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.NewConversationStore()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Inserted newest first; the listing must flip them.
	require.NoError(t, store.AppendTurn(ctx, &domain.ConversationTurn{
		ID: "t2", SessionID: "s1", Timestamp: base.Add(time.Minute),
	}))
	require.NoError(t, store.AppendTurn(ctx, &domain.ConversationTurn{
		ID: "t1", SessionID: "s1", Timestamp: base,
	}))
	require.NoError(t, store.AppendTurn(ctx, &domain.ConversationTurn{
		ID: "other", SessionID: "s2", Timestamp: base,
	}))

	out, err := store.ListTurnsBySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "t1", out[0].ID)
	assert.Equal(t, "t2", out[1].ID)
}
