package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/warmline/warmline-backend/internal/domain"
	"github.com/warmline/warmline-backend/pkg/ctxutil"
)

// Ingest captures a new artifact for a contact. Types that need
// transcription start with transcription pending and parsing untouched;
// everything else enters the parsing queue immediately.
func (s *Service) Ingest(ctx context.Context, input IngestInput) (*domain.Artifact, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Ownership check doubles as an existence check.
	if _, err := s.contacts.GetForUser(ctx, userID, input.ContactID); err != nil {
		return nil, fmt.Errorf("resolve contact: %w", err)
	}

	a := &domain.Artifact{
		ID:                  uuid.New(),
		ContactID:           input.ContactID,
		UserID:              userID,
		Type:                input.Type,
		Content:             strings.TrimSpace(input.Content),
		Metadata:            input.Metadata,
		TranscriptionStatus: domain.ProcessingStatusNone,
		ParsingStatus:       domain.ProcessingStatusNone,
	}
	if input.Type.RequiresTranscription() {
		a.TranscriptionStatus = domain.ProcessingStatusPending
	} else {
		a.ParsingStatus = domain.ProcessingStatusPending
	}

	created, err := s.artifacts.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create artifact: %w", err)
	}

	if created.ParsingStatus == domain.ProcessingStatusPending {
		s.notifier.NotifyParseRequested(created.ID)
	}

	s.log.InfoContext(ctx, "artifact ingested",
		slog.String("user_id", userID.String()),
		slog.String("artifact_id", created.ID.String()),
		slog.String("type", created.Type.String()),
		slog.String("transcription_status", created.TranscriptionStatus.String()),
		slog.String("parsing_status", created.ParsingStatus.String()),
	)

	return created, nil
}

// GetArtifact returns one of the caller's artifacts.
func (s *Service) GetArtifact(ctx context.Context, artifactID uuid.UUID) (*domain.Artifact, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if artifactID == uuid.Nil {
		return nil, domain.NewValidationError("artifact_id", "required")
	}

	a, err := s.artifacts.GetForUser(ctx, userID, artifactID)
	if err != nil {
		return nil, fmt.Errorf("get artifact: %w", err)
	}
	return a, nil
}

// ListArtifacts returns the caller's artifacts, newest first, with the
// total count for pagination.
func (s *Service) ListArtifacts(ctx context.Context, input ListArtifactsInput) ([]*domain.Artifact, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	artifacts, total, err := s.artifacts.List(ctx, userID, domain.ArtifactFilter{
		ContactID:     input.ContactID,
		ParsingStatus: input.ParsingStatus,
		Limit:         limit,
		Offset:        input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list artifacts: %w", err)
	}
	return artifacts, total, nil
}
