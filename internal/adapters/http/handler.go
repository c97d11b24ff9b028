package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mindwell/mindwell-api/internal/app/chat"
	"github.com/mindwell/mindwell-api/internal/app/crisis"
	"github.com/mindwell/mindwell-api/internal/app/mood"
	"github.com/mindwell/mindwell-api/internal/app/resources"
	"github.com/mindwell/mindwell-api/internal/domain"
)

const serviceName = "Mental Health Resource API"

type Server struct {
	resources *resources.Service
	mood      *mood.Service
	chat      *chat.Service
}

func NewServer(resourceSvc *resources.Service, moodSvc *mood.Service, chatSvc *chat.Service) http.Handler {
	s := &Server{
		resources: resourceSvc,
		mood:      moodSvc,
		chat:      chatSvc,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", s.handleHealth)

	// /api/chat                      → POST: send message
	// /api/chat/history/{session_id} → GET: transcript
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/api/chat/history/", s.handleChatHistory)

	// /api/mood          → POST: log entry
	// /api/mood/history  → GET: latest entries
	mux.HandleFunc("/api/mood", s.handleMood)
	mux.HandleFunc("/api/mood/history", s.handleMoodHistory)

	// /api/resources             → GET: list (optional ?category=), POST: create
	// /api/resources/categories  → GET: distinct categories
	mux.HandleFunc("/api/resources", s.handleResources)
	mux.HandleFunc("/api/resources/categories", s.handleResourceCategories)

	mux.HandleFunc("/api/crisis-resources", s.handleCrisisResources)

	return chainMiddlewares(mux, withCORS, withRequestLogging)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type chatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

type conversationResponse struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	UserMessage string    `json:"user_message"`
	AIResponse  string    `json:"ai_response"`
	Timestamp   time.Time `json:"timestamp"`
}

type chatHistoryResponse struct {
	Conversations []conversationResponse `json:"conversations"`
}

type moodRequest struct {
	MoodLevel  int      `json:"mood_level"`
	Notes      string   `json:"notes"`
	Activities []string `json:"activities"`
}

type moodEntryResponse struct {
	ID         string    `json:"id"`
	MoodLevel  int       `json:"mood_level"`
	Notes      string    `json:"notes"`
	Activities []string  `json:"activities"`
	Timestamp  time.Time `json:"timestamp"`
}

type moodHistoryResponse struct {
	MoodEntries []moodEntryResponse `json:"mood_entries"`
}

type resourceRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url,omitempty"`
}

type resourceResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	Timestamp   time.Time `json:"timestamp"`
}

type resourceListResponse struct {
	Resources []resourceResponse `json:"resources"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

type crisisContactResponse struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

type crisisResponse struct {
	EmergencyContacts []crisisContactResponse `json:"emergency_contacts"`
	ImmediateSteps    []string                `json:"immediate_steps"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": serviceName,
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		badRequest(w, "message is required")
		return
	}

	turn, err := s.chat.Send(r.Context(), req.Message, req.SessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Response:  turn.AIResponse,
		SessionID: turn.SessionID,
	})
}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	sessionID := strings.TrimPrefix(r.URL.Path, "/api/chat/history/")
	if sessionID == "" || strings.Contains(sessionID, "/") {
		http.NotFound(w, r)
		return
	}

	turns, err := s.chat.History(r.Context(), sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]conversationResponse, 0, len(turns))
	for _, t := range turns {
		out = append(out, conversationResponse{
			ID:          t.ID,
			SessionID:   t.SessionID,
			UserMessage: t.UserMessage,
			AIResponse:  t.AIResponse,
			Timestamp:   t.Timestamp,
		})
	}

	writeJSON(w, http.StatusOK, chatHistoryResponse{Conversations: out})
}

func (s *Server) handleMood(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req moodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	entry, err := s.mood.Log(r.Context(), req.MoodLevel, req.Notes, req.Activities)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toMoodEntryResponse(entry))
}

func (s *Server) handleMoodHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	limit := mood.DefaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(w, "limit must be an integer")
			return
		}
		limit = n
	}

	entries, err := s.mood.History(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]moodEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toMoodEntryResponse(e))
	}

	writeJSON(w, http.StatusOK, moodHistoryResponse{MoodEntries: out})
}

func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListResources(w, r)
	case http.MethodPost:
		s.handleCreateResource(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleListResources(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	list, err := s.resources.List(r.Context(), category)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]resourceResponse, 0, len(list))
	for _, res := range list {
		out = append(out, toResourceResponse(res))
	}

	writeJSON(w, http.StatusOK, resourceListResponse{Resources: out})
}

func (s *Server) handleCreateResource(w http.ResponseWriter, r *http.Request) {
	var req resourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if req.Title == "" || req.Category == "" || req.Description == "" || req.Content == "" {
		badRequest(w, "title, category, description and content are required")
		return
	}

	res, err := s.resources.Create(r.Context(), resources.CreateInput{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Content:     req.Content,
		URL:         req.URL,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResourceResponse(res))
}

func (s *Server) handleResourceCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	cats, err := s.resources.Categories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if cats == nil {
		cats = []string{}
	}

	writeJSON(w, http.StatusOK, categoriesResponse{Categories: cats})
}

func (s *Server) handleCrisisResources(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	info := crisis.Info()

	contacts := make([]crisisContactResponse, 0, len(info.EmergencyContacts))
	for _, c := range info.EmergencyContacts {
		contacts = append(contacts, crisisContactResponse{
			Name:        c.Name,
			Phone:       c.Phone,
			Description: c.Description,
		})
	}

	writeJSON(w, http.StatusOK, crisisResponse{
		EmergencyContacts: contacts,
		ImmediateSteps:    info.ImmediateSteps,
	})
}

// ─────────────────────────────────────────────
// Response helpers
// ─────────────────────────────────────────────

func toMoodEntryResponse(e *domain.MoodEntry) moodEntryResponse {
	return moodEntryResponse{
		ID:         e.ID,
		MoodLevel:  e.MoodLevel,
		Notes:      e.Notes,
		Activities: e.Activities,
		Timestamp:  e.Timestamp,
	}
}

func toResourceResponse(r *domain.Resource) resourceResponse {
	return resourceResponse{
		ID:          r.ID,
		Title:       r.Title,
		Category:    r.Category,
		Description: r.Description,
		Content:     r.Content,
		URL:         r.URL,
		Timestamp:   r.Timestamp,
	}
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the boundary error kinds to status codes; everything
// else is a plain server error. The underlying message is passed through.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrUpstreamChat) {
		status = http.StatusBadGateway
	}

	writeJSON(w, status, map[string]string{
		"error": err.Error(),
	})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
