package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/warmline/warmline-backend/internal/domain"
	"github.com/warmline/warmline-backend/internal/service/pipeline"
)

// pipelineService defines the minimal interface needed by ArtifactHandler.
type pipelineService interface {
	Ingest(ctx context.Context, input pipeline.IngestInput) (*domain.Artifact, error)
	GetArtifact(ctx context.Context, artifactID uuid.UUID) (*domain.Artifact, error)
	ListArtifacts(ctx context.Context, input pipeline.ListArtifactsInput) ([]*domain.Artifact, int, error)
	RequestParse(ctx context.Context, artifactID uuid.UUID) error
	Reprocess(ctx context.Context, artifactID uuid.UUID) error
	StartTranscription(ctx context.Context, artifactID uuid.UUID) error
	CompleteTranscription(ctx context.Context, input pipeline.CompleteTranscriptionInput) error
	FailTranscription(ctx context.Context, input pipeline.FailTranscriptionInput) error
}

// ArtifactHandler serves artifact REST endpoints.
type ArtifactHandler struct {
	svc pipelineService
	log *slog.Logger
}

// NewArtifactHandler creates an ArtifactHandler.
func NewArtifactHandler(svc pipelineService, logger *slog.Logger) *ArtifactHandler {
	return &ArtifactHandler{svc: svc, log: logger.With("handler", "artifact")}
}

type ingestRequest struct {
	ContactID string            `json:"contact_id"`
	Type      string            `json:"type"`
	Content   string            `json:"content"`
	Metadata  map[string]string `json:"metadata"`
}

type transcriptionCompleteRequest struct {
	TranscriptText string `json:"transcript_text"`
}

type transcriptionFailedRequest struct {
	Error string `json:"error"`
}

type artifactResponse struct {
	ID                  string            `json:"id"`
	ContactID           string            `json:"contact_id"`
	Type                string            `json:"type"`
	Content             string            `json:"content"`
	Metadata            map[string]string `json:"metadata,omitempty"`
	TranscriptionStatus string            `json:"transcription_status"`
	ParsingStatus       string            `json:"parsing_status"`
	TranscriptionError  *string           `json:"transcription_error,omitempty"`
	ParseError          *string           `json:"parse_error,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

type artifactListResponse struct {
	Artifacts []artifactResponse `json:"artifacts"`
	Total     int                `json:"total"`
}

// Ingest handles POST /api/v1/artifacts.
func (h *ArtifactHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contactID, err := uuid.Parse(req.ContactID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid contact_id")
		return
	}

	artifact, err := h.svc.Ingest(r.Context(), pipeline.IngestInput{
		ContactID: contactID,
		Type:      domain.ArtifactType(req.Type),
		Content:   req.Content,
		Metadata:  req.Metadata,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toArtifactResponse(artifact))
}

// Get handles GET /api/v1/artifacts/{id}.
func (h *ArtifactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	artifact, err := h.svc.GetArtifact(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toArtifactResponse(artifact))
}

// List handles GET /api/v1/artifacts?contact_id=&status=&limit=&offset=.
func (h *ArtifactHandler) List(w http.ResponseWriter, r *http.Request) {
	var input pipeline.ListArtifactsInput

	if v := r.URL.Query().Get("contact_id"); v != "" {
		contactID, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid contact_id")
			return
		}
		input.ContactID = &contactID
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := domain.ProcessingStatus(v)
		input.ParsingStatus = &status
	}
	input.Limit = queryInt(r, "limit")
	input.Offset = queryInt(r, "offset")

	artifacts, total, err := h.svc.ListArtifacts(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := artifactListResponse{
		Artifacts: make([]artifactResponse, 0, len(artifacts)),
		Total:     total,
	}
	for _, a := range artifacts {
		resp.Artifacts = append(resp.Artifacts, toArtifactResponse(a))
	}

	writeJSON(w, http.StatusOK, resp)
}

// RequestParse handles POST /api/v1/artifacts/{id}/parse.
func (h *ArtifactHandler) RequestParse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.RequestParse(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"artifact_id": id.String()})
}

// Reprocess handles POST /api/v1/artifacts/{id}/reprocess.
func (h *ArtifactHandler) Reprocess(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.Reprocess(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"artifact_id": id.String()})
}

// TranscriptionStarted handles POST /api/v1/artifacts/{id}/transcription-started.
// Called by the transcription worker when it picks up a voice memo.
func (h *ArtifactHandler) TranscriptionStarted(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.StartTranscription(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"artifact_id": id.String()})
}

// TranscriptionComplete handles POST /api/v1/artifacts/{id}/transcription-complete.
// Called by the transcription worker with the finished transcript.
func (h *ArtifactHandler) TranscriptionComplete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req transcriptionCompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.CompleteTranscription(r.Context(), pipeline.CompleteTranscriptionInput{
		ArtifactID: id,
		Transcript: req.TranscriptText,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"artifact_id": id.String()})
}

// TranscriptionFailed handles POST /api/v1/artifacts/{id}/transcription-failed.
func (h *ArtifactHandler) TranscriptionFailed(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req transcriptionFailedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.FailTranscription(r.Context(), pipeline.FailTranscriptionInput{
		ArtifactID: id,
		Reason:     req.Error,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"artifact_id": id.String()})
}

func (h *ArtifactHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
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

func toArtifactResponse(a *domain.Artifact) artifactResponse {
	return artifactResponse{
		ID:                  a.ID.String(),
		ContactID:           a.ContactID.String(),
		Type:                a.Type.String(),
		Content:             a.Content,
		Metadata:            a.Metadata,
		TranscriptionStatus: a.TranscriptionStatus.String(),
		ParsingStatus:       a.ParsingStatus.String(),
		TranscriptionError:  a.TranscriptionError,
		ParseError:          a.ParseError,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

func parseIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(r *http.Request, key string) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
