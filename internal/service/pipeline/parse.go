package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/warmline/warmline-backend/internal/domain"
	"github.com/warmline/warmline-backend/pkg/ctxutil"
)

// RequestParse queues an eligible artifact for parsing. The conditional
// update accepts only none and failed as prior states, so two concurrent
// requests can both succeed at most once; the loser gets
// domain.ErrConflict.
func (s *Service) RequestParse(ctx context.Context, artifactID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if artifactID == uuid.Nil {
		return domain.NewValidationError("artifact_id", "required")
	}

	a, err := s.artifacts.GetForUser(ctx, userID, artifactID)
	if err != nil {
		return fmt.Errorf("get artifact: %w", err)
	}
	if !a.ParseEligible() {
		return domain.NewValidationError("artifact_id",
			fmt.Sprintf("transcription is %s, artifact cannot be parsed yet", a.TranscriptionStatus))
	}

	err = s.artifacts.UpdateParsingStatus(ctx, artifactID,
		[]domain.ProcessingStatus{domain.ProcessingStatusNone, domain.ProcessingStatusFailed},
		domain.ProcessingStatusPending, nil)
	if err != nil {
		return fmt.Errorf("queue parsing: %w", err)
	}

	s.notifier.NotifyParseRequested(artifactID)

	s.log.InfoContext(ctx, "parse requested",
		slog.String("user_id", userID.String()),
		slog.String("artifact_id", artifactID.String()))
	return nil
}

// Reprocess re-queues a previously parsed or failed artifact. A completed
// parse may be redone, but not while an open suggestion from the earlier
// run is still awaiting review.
func (s *Service) Reprocess(ctx context.Context, artifactID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if artifactID == uuid.Nil {
		return domain.NewValidationError("artifact_id", "required")
	}

	a, err := s.artifacts.GetForUser(ctx, userID, artifactID)
	if err != nil {
		return fmt.Errorf("get artifact: %w", err)
	}
	if !a.ParseEligible() {
		return domain.NewValidationError("artifact_id",
			fmt.Sprintf("transcription is %s, artifact cannot be parsed yet", a.TranscriptionStatus))
	}

	open, err := s.suggestions.HasOpenForArtifact(ctx, artifactID)
	if err != nil {
		return fmt.Errorf("check open suggestions: %w", err)
	}
	if open {
		return fmt.Errorf("artifact %s has an unreviewed suggestion: %w", artifactID, domain.ErrConflict)
	}

	err = s.artifacts.UpdateParsingStatus(ctx, artifactID,
		[]domain.ProcessingStatus{
			domain.ProcessingStatusNone,
			domain.ProcessingStatusFailed,
			domain.ProcessingStatusCompleted,
		},
		domain.ProcessingStatusPending, nil)
	if err != nil {
		return fmt.Errorf("queue parsing: %w", err)
	}

	s.notifier.NotifyParseRequested(artifactID)

	s.log.InfoContext(ctx, "artifact requeued for parsing",
		slog.String("user_id", userID.String()),
		slog.String("artifact_id", artifactID.String()))
	return nil
}
