package suggest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/warmline/warmline-backend/internal/domain"
	"github.com/warmline/warmline-backend/internal/reconcile"
)

// Generate parses one queued artifact into a suggestion record. It first
// claims the artifact by moving ai_parsing_status from pending to
// processing, so concurrent workers dispatched for the same artifact
// collapse to a single run; the losers get domain.ErrConflict.
//
// The suggestion insert and the completed transition commit together. Any
// failure after the claim marks the parse failed with the cause, leaving
// the artifact retriable.
func (s *Service) Generate(ctx context.Context, artifactID uuid.UUID) error {
	err := s.artifacts.UpdateParsingStatus(ctx, artifactID,
		[]domain.ProcessingStatus{domain.ProcessingStatusPending},
		domain.ProcessingStatusProcessing, nil)
	if err != nil {
		return fmt.Errorf("claim artifact: %w", err)
	}

	artifact, err := s.artifacts.Get(ctx, artifactID)
	if err != nil {
		return s.failParse(ctx, artifactID, fmt.Errorf("get artifact: %w", err))
	}
	contact, err := s.contacts.Get(ctx, artifact.ContactID)
	if err != nil {
		return s.failParse(ctx, artifactID, fmt.Errorf("get contact: %w", err))
	}

	entries, err := s.intel.ProposeUpdates(ctx, artifact, contact)
	if err != nil {
		return s.failParse(ctx, artifactID, fmt.Errorf("propose updates: %w", err))
	}

	if len(entries) > s.maxEntries {
		s.log.WarnContext(ctx, "truncating proposed entries",
			slog.String("artifact_id", artifactID.String()),
			slog.Int("proposed", len(entries)),
			slog.Int("kept", s.maxEntries),
		)
		entries = entries[:s.maxEntries]
	}

	// Snapshot the live value of every touched path. The snapshot is what
	// the merge later checks against, so a profile edit between generation
	// and approval is caught as a conflict instead of silently overwritten.
	for i := range entries {
		v, ok, err := reconcile.Lookup(contact.Profile, entries[i].FieldPath)
		if err != nil {
			return s.failParse(ctx, artifactID,
				fmt.Errorf("snapshot %q: %w", entries[i].FieldPath, err))
		}
		if ok {
			entries[i].CurrentValue = v
		}
	}

	if len(entries) == 0 {
		err := s.artifacts.UpdateParsingStatus(ctx, artifactID,
			[]domain.ProcessingStatus{domain.ProcessingStatusProcessing},
			domain.ProcessingStatusCompleted, nil)
		if err != nil {
			return fmt.Errorf("complete parsing: %w", err)
		}
		parsesTotal.WithLabelValues("completed").Inc()
		s.log.InfoContext(ctx, "parse produced no suggestions",
			slog.String("artifact_id", artifactID.String()))
		return nil
	}

	sugg := &domain.Suggestion{
		ID:               uuid.New(),
		ArtifactID:       artifactID,
		ContactID:        artifact.ContactID,
		UserID:           artifact.UserID,
		Entries:          entries,
		FieldPaths:       domain.ProjectFieldPaths(entries),
		ConfidenceScores: domain.ProjectConfidenceScores(entries),
		Status:           domain.SuggestionStatusPending,
		Priority:         domain.DerivePriority(entries),
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.suggestions.Create(ctx, sugg); err != nil {
			return fmt.Errorf("create suggestion: %w", err)
		}
		return s.artifacts.UpdateParsingStatus(ctx, artifactID,
			[]domain.ProcessingStatus{domain.ProcessingStatusProcessing},
			domain.ProcessingStatusCompleted, nil)
	})
	if err != nil {
		return s.failParse(ctx, artifactID, err)
	}

	parsesTotal.WithLabelValues("completed").Inc()
	s.log.InfoContext(ctx, "suggestion generated",
		slog.String("artifact_id", artifactID.String()),
		slog.String("suggestion_id", sugg.ID.String()),
		slog.Int("entries", len(entries)),
		slog.String("priority", sugg.Priority.String()),
	)
	return nil
}

// failParse records the cause on the artifact and returns it. The write is
// best effort: when it loses its own race the original cause still wins.
func (s *Service) failParse(ctx context.Context, artifactID uuid.UUID, cause error) error {
	parsesTotal.WithLabelValues("failed").Inc()
	msg := cause.Error()
	err := s.artifacts.UpdateParsingStatus(ctx, artifactID,
		[]domain.ProcessingStatus{domain.ProcessingStatusProcessing},
		domain.ProcessingStatusFailed, &msg)
	if err != nil {
		s.log.ErrorContext(ctx, "recording parse failure failed",
			slog.String("artifact_id", artifactID.String()),
			slog.String("error", err.Error()),
		)
	}
	return cause
}
