package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/warmline/warmline-backend/internal/domain"
	"github.com/warmline/warmline-backend/internal/service/suggest"
)

// suggestService defines the minimal interface needed by SuggestionHandler.
type suggestService interface {
	GetSuggestion(ctx context.Context, suggestionID uuid.UUID) (*domain.Suggestion, error)
	ListSuggestions(ctx context.Context, input suggest.ListSuggestionsInput) ([]*domain.Suggestion, int, error)
	Review(ctx context.Context, input suggest.ReviewInput) (*suggest.ReviewResult, error)
}

// SuggestionHandler serves suggestion REST endpoints.
type SuggestionHandler struct {
	svc suggestService
	log *slog.Logger
}

// NewSuggestionHandler creates a SuggestionHandler.
func NewSuggestionHandler(svc suggestService, logger *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{svc: svc, log: logger.With("handler", "suggestion")}
}

type reviewRequest struct {
	Decision   string          `json:"decision"`
	Selections map[string]bool `json:"selections"`
}

type entryResponse struct {
	FieldPath      string  `json:"field_path"`
	Action         string  `json:"action"`
	CurrentValue   any     `json:"current_value"`
	SuggestedValue any     `json:"suggested_value"`
	Confidence     float64 `json:"confidence"`
	Reasoning      string  `json:"reasoning,omitempty"`
}

type suggestionResponse struct {
	ID               string             `json:"id"`
	ArtifactID       string             `json:"artifact_id"`
	ContactID        string             `json:"contact_id"`
	Entries          []entryResponse    `json:"entries"`
	FieldPaths       []string           `json:"field_paths"`
	ConfidenceScores map[string]float64 `json:"confidence_scores"`
	Status           string             `json:"status"`
	UserSelections   map[string]bool    `json:"user_selections,omitempty"`
	Priority         string             `json:"priority"`
	CreatedAt        time.Time          `json:"created_at"`
	ViewedAt         *time.Time         `json:"viewed_at,omitempty"`
	ReviewedAt       *time.Time         `json:"reviewed_at,omitempty"`
	DismissedAt      *time.Time         `json:"dismissed_at,omitempty"`
	AppliedAt        *time.Time         `json:"applied_at,omitempty"`
}

type suggestionListResponse struct {
	Suggestions []suggestionResponse `json:"suggestions"`
	Total       int                  `json:"total"`
}

type reviewResponse struct {
	Status    string   `json:"status"`
	Applied   []string `json:"applied"`
	Conflicts []string `json:"conflicts"`
}

// Get handles GET /api/v1/suggestions/{id}.
// The first successful read marks the suggestion as viewed.
func (h *SuggestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	sugg, err := h.svc.GetSuggestion(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSuggestionResponse(sugg))
}

// List handles GET /api/v1/suggestions?contact_id=&status=&limit=&offset=.
func (h *SuggestionHandler) List(w http.ResponseWriter, r *http.Request) {
	var input suggest.ListSuggestionsInput

	if v := r.URL.Query().Get("contact_id"); v != "" {
		contactID, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid contact_id")
			return
		}
		input.ContactID = &contactID
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := domain.SuggestionStatus(v)
		input.Status = &status
	}
	input.Limit = queryInt(r, "limit")
	input.Offset = queryInt(r, "offset")

	suggestions, total, err := h.svc.ListSuggestions(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := suggestionListResponse{
		Suggestions: make([]suggestionResponse, 0, len(suggestions)),
		Total:       total,
	}
	for _, s := range suggestions {
		resp.Suggestions = append(resp.Suggestions, toSuggestionResponse(s))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Review handles POST /api/v1/suggestions/{id}/review.
func (h *SuggestionHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Review(r.Context(), suggest.ReviewInput{
		SuggestionID: id,
		Decision:     suggest.ReviewDecision(req.Decision),
		Selections:   req.Selections,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := reviewResponse{
		Status:    result.Status.String(),
		Applied:   result.AppliedPaths,
		Conflicts: result.ConflictPaths,
	}
	if resp.Applied == nil {
		resp.Applied = []string{}
	}
	if resp.Conflicts == nil {
		resp.Conflicts = []string{}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *SuggestionHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toSuggestionResponse(s *domain.Suggestion) suggestionResponse {
	entries := make([]entryResponse, 0, len(s.Entries))
	for _, e := range s.Entries {
		entries = append(entries, entryResponse{
			FieldPath:      e.FieldPath,
			Action:         e.Action.String(),
			CurrentValue:   e.CurrentValue,
			SuggestedValue: e.SuggestedValue,
			Confidence:     e.Confidence,
			Reasoning:      e.Reasoning,
		})
	}

	return suggestionResponse{
		ID:               s.ID.String(),
		ArtifactID:       s.ArtifactID.String(),
		ContactID:        s.ContactID.String(),
		Entries:          entries,
		FieldPaths:       s.FieldPaths,
		ConfidenceScores: s.ConfidenceScores,
		Status:           s.Status.String(),
		UserSelections:   s.UserSelections,
		Priority:         s.Priority.String(),
		CreatedAt:        s.CreatedAt,
		ViewedAt:         s.ViewedAt,
		ReviewedAt:       s.ReviewedAt,
		DismissedAt:      s.DismissedAt,
		AppliedAt:        s.AppliedAt,
	}
}
