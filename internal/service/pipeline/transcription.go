package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/warmline/warmline-backend/internal/domain"
)

// Transcription transitions are driven by the external transcription
// worker, not an end user, so they look artifacts up without user scoping.

// StartTranscription marks an artifact as being transcribed. Only a
// pending transcription can be started; a lost race returns
// domain.ErrConflict.
func (s *Service) StartTranscription(ctx context.Context, artifactID uuid.UUID) error {
	if artifactID == uuid.Nil {
		return domain.NewValidationError("artifact_id", "required")
	}

	err := s.artifacts.UpdateTranscriptionStatus(ctx, artifactID,
		[]domain.ProcessingStatus{domain.ProcessingStatusPending},
		domain.ProcessingStatusProcessing, nil, nil)
	if err != nil {
		return fmt.Errorf("start transcription: %w", err)
	}

	s.log.InfoContext(ctx, "transcription started",
		slog.String("artifact_id", artifactID.String()))
	return nil
}

// CompleteTranscription stores the transcript as the artifact content,
// marks transcription completed, and moves the artifact into the parsing
// queue. Accepts both pending and processing so workers that never
// reported a start still land their result.
func (s *Service) CompleteTranscription(ctx context.Context, input CompleteTranscriptionInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.artifacts.UpdateTranscriptionStatus(ctx, input.ArtifactID,
		[]domain.ProcessingStatus{domain.ProcessingStatusPending, domain.ProcessingStatusProcessing},
		domain.ProcessingStatusCompleted, &input.Transcript, nil)
	if err != nil {
		return fmt.Errorf("complete transcription: %w", err)
	}

	err = s.artifacts.UpdateParsingStatus(ctx, input.ArtifactID,
		[]domain.ProcessingStatus{domain.ProcessingStatusNone, domain.ProcessingStatusFailed},
		domain.ProcessingStatusPending, nil)
	switch {
	case err == nil:
		s.notifier.NotifyParseRequested(input.ArtifactID)
	case errors.Is(err, domain.ErrConflict):
		// Parsing was already queued or claimed, so the completion
		// stands and nothing more needs to happen.
		s.log.InfoContext(ctx, "parsing already queued",
			slog.String("artifact_id", input.ArtifactID.String()))
	default:
		return fmt.Errorf("queue parsing: %w", err)
	}

	s.log.InfoContext(ctx, "transcription completed",
		slog.String("artifact_id", input.ArtifactID.String()))
	return nil
}

// FailTranscription records a transcription failure. The artifact stays
// retriable: a later CompleteTranscription is rejected (failed is not an
// accepted prior state), but re-ingestion flows can reset it.
func (s *Service) FailTranscription(ctx context.Context, input FailTranscriptionInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	reason := input.Reason
	if reason == "" {
		reason = "transcription failed"
	}

	err := s.artifacts.UpdateTranscriptionStatus(ctx, input.ArtifactID,
		[]domain.ProcessingStatus{domain.ProcessingStatusPending, domain.ProcessingStatusProcessing},
		domain.ProcessingStatusFailed, nil, &reason)
	if err != nil {
		return fmt.Errorf("fail transcription: %w", err)
	}

	s.log.WarnContext(ctx, "transcription failed",
		slog.String("artifact_id", input.ArtifactID.String()),
		slog.String("reason", reason))
	return nil
}
