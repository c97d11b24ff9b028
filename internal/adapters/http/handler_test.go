package httpadapter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/mindwell/mindwell-api/internal/adapters/http"
	"github.com/mindwell/mindwell-api/internal/adapters/llm"
	"github.com/mindwell/mindwell-api/internal/adapters/storage/memory"
	"github.com/mindwell/mindwell-api/internal/app/chat"
	"github.com/mindwell/mindwell-api/internal/app/mood"
	"github.com/mindwell/mindwell-api/internal/app/resources"
)

func newTestServer(t *testing.T) (http.Handler, *resources.Service) {
	t.Helper()

	resourceSvc := resources.NewService(memory.NewResourceStore())
	moodSvc := mood.NewService(memory.NewMoodStore())
	chatSvc := chat.NewService(llm.NewMockClient(), memory.NewConversationStore())

	return httpadapter.NewServer(resourceSvc, moodSvc, chatSvc), resourceSvc
}

func doJSON(t *testing.T, srv http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	decode(t, w, &resp)
	assert.Equal(t, "healthy", resp["status"])
	assert.NotEmpty(t, resp["service"])
}

func TestChatFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/chat", `{"message":"I feel anxious today"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var first struct {
		Response  string `json:"response"`
		SessionID string `json:"session_id"`
	}
	decode(t, w, &first)
	require.NotEmpty(t, first.SessionID)
	require.NotEmpty(t, first.Response)

	w = doJSON(t, srv, http.MethodPost, "/api/chat",
		`{"message":"It got worse tonight","session_id":"`+first.SessionID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var second struct {
		SessionID string `json:"session_id"`
	}
	decode(t, w, &second)
	assert.Equal(t, first.SessionID, second.SessionID)

	w = doJSON(t, srv, http.MethodGet, "/api/chat/history/"+first.SessionID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var history struct {
		Conversations []struct {
			ID          string    `json:"id"`
			SessionID   string    `json:"session_id"`
			UserMessage string    `json:"user_message"`
			AIResponse  string    `json:"ai_response"`
			Timestamp   time.Time `json:"timestamp"`
		} `json:"conversations"`
	}
	decode(t, w, &history)
	require.Len(t, history.Conversations, 2)

	// Transcript order: oldest first.
	assert.Equal(t, "I feel anxious today", history.Conversations[0].UserMessage)
	assert.Equal(t, "It got worse tonight", history.Conversations[1].UserMessage)
	for _, c := range history.Conversations {
		assert.Equal(t, first.SessionID, c.SessionID)
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.AIResponse)
	}
}

func TestChatValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/chat", `{"message":"  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, srv, http.MethodPost, "/api/chat", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHistoryUnknownSession(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/chat/history/no-such-session", "")
	require.Equal(t, http.StatusOK, w.Code)

	var history struct {
		Conversations []json.RawMessage `json:"conversations"`
	}
	decode(t, w, &history)
	assert.NotNil(t, history.Conversations)
	assert.Empty(t, history.Conversations)
}

func TestMoodScenario(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/mood",
		`{"mood_level":7,"notes":"ok","activities":["walk"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var entry struct {
		ID         string    `json:"id"`
		MoodLevel  int       `json:"mood_level"`
		Notes      string    `json:"notes"`
		Activities []string  `json:"activities"`
		Timestamp  time.Time `json:"timestamp"`
	}
	decode(t, w, &entry)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, 7, entry.MoodLevel)
	assert.Equal(t, "ok", entry.Notes)
	assert.Equal(t, []string{"walk"}, entry.Activities)
	assert.False(t, entry.Timestamp.IsZero())
}

func TestMoodDefaults(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/mood", `{"mood_level":4}`)
	require.Equal(t, http.StatusOK, w.Code)

	var entry struct {
		Notes      string   `json:"notes"`
		Activities []string `json:"activities"`
	}
	decode(t, w, &entry)
	assert.Equal(t, "", entry.Notes)
	require.NotNil(t, entry.Activities)
	assert.Empty(t, entry.Activities)
}

func TestMoodHistoryLimit(t *testing.T) {
	srv, _ := newTestServer(t)

	doJSON(t, srv, http.MethodPost, "/api/mood", `{"mood_level":3}`)
	time.Sleep(2 * time.Millisecond)
	doJSON(t, srv, http.MethodPost, "/api/mood", `{"mood_level":9,"notes":"latest"}`)

	w := doJSON(t, srv, http.MethodGet, "/api/mood/history?limit=1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var history struct {
		MoodEntries []struct {
			MoodLevel int    `json:"mood_level"`
			Notes     string `json:"notes"`
		} `json:"mood_entries"`
	}
	decode(t, w, &history)
	require.Len(t, history.MoodEntries, 1)
	assert.Equal(t, 9, history.MoodEntries[0].MoodLevel)
	assert.Equal(t, "latest", history.MoodEntries[0].Notes)

	w = doJSON(t, srv, http.MethodGet, "/api/mood/history?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResourceRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/resources",
		`{"title":"Journaling 101","category":"coping-strategies","description":"Getting started with journaling.","content":"Write one page every evening.","url":"https://example.org/journaling"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Category  string    `json:"category"`
		URL       string    `json:"url"`
		Timestamp time.Time `json:"timestamp"`
	}
	decode(t, w, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Journaling 101", created.Title)
	assert.False(t, created.Timestamp.IsZero())

	w = doJSON(t, srv, http.MethodGet, "/api/resources?category=coping-strategies", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Resources []struct {
			ID       string `json:"id"`
			Category string `json:"category"`
		} `json:"resources"`
	}
	decode(t, w, &list)
	require.Len(t, list.Resources, 1)
	assert.Equal(t, created.ID, list.Resources[0].ID)

	w = doJSON(t, srv, http.MethodGet, "/api/resources/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	var cats struct {
		Categories []string `json:"categories"`
	}
	decode(t, w, &cats)
	assert.Contains(t, cats.Categories, "coping-strategies")
}

func TestResourceValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/resources", `{"title":"no category"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSeededResourcesOverHTTP(t *testing.T) {
	srv, resourceSvc := newTestServer(t)

	require.NoError(t, resourceSvc.SeedIfEmpty(context.Background()))

	w := doJSON(t, srv, http.MethodGet, "/api/resources", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Resources []struct {
			Category string `json:"category"`
		} `json:"resources"`
	}
	decode(t, w, &list)
	assert.Len(t, list.Resources, 4)
}

func TestCrisisResources(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/crisis-resources", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		EmergencyContacts []struct {
			Name  string `json:"name"`
			Phone string `json:"phone"`
		} `json:"emergency_contacts"`
		ImmediateSteps []string `json:"immediate_steps"`
	}
	decode(t, w, &resp)

	require.GreaterOrEqual(t, len(resp.EmergencyContacts), 3)
	require.GreaterOrEqual(t, len(resp.ImmediateSteps), 5)

	found := false
	for _, c := range resp.EmergencyContacts {
		if c.Name == "National Suicide Prevention Lifeline" && c.Phone == "988" {
			found = true
		}
	}
	assert.True(t, found, "lifeline contact missing")
}

func TestRouting(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/no-such-route", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, srv, http.MethodDelete, "/api/mood", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/chat", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
