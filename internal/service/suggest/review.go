package suggest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/warmline/warmline-backend/internal/domain"
	"github.com/warmline/warmline-backend/internal/reconcile"
	"github.com/warmline/warmline-backend/pkg/ctxutil"
)

// ReviewResult reports what a review did. Contact is the updated contact
// when at least one field was applied, nil otherwise.
type ReviewResult struct {
	Status        domain.SuggestionStatus
	AppliedPaths  []string
	ConflictPaths []string
	Contact       *domain.Contact
}

// Review settles a pending suggestion. Reject and skip never touch the
// contact. Approve applies the selected entries one by one: entries whose
// snapshot no longer matches the live profile are reported as conflicts
// and skipped, the rest are merged and written in a single transaction
// together with the ledger update. The record ends up approved only when
// every entry was selected and applied; anything less is partial.
func (s *Service) Review(ctx context.Context, input ReviewInput) (*ReviewResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sugg, err := s.suggestions.GetForUser(ctx, userID, input.SuggestionID)
	if err != nil {
		return nil, fmt.Errorf("get suggestion: %w", err)
	}
	if sugg.Status.Terminal() {
		return nil, fmt.Errorf("suggestion %s is already %s: %w",
			sugg.ID, sugg.Status, domain.ErrConflict)
	}

	now := time.Now().UTC()

	switch input.Decision {
	case DecisionReject:
		return s.dismiss(ctx, sugg, domain.SuggestionStatusRejected, now)
	case DecisionSkip:
		return s.dismiss(ctx, sugg, domain.SuggestionStatusSkipped, now)
	}
	return s.approve(ctx, userID, sugg, input.Selections, now)
}

// dismiss closes the record without touching the contact. Skipped records
// additionally carry dismissed_at so they can be resurfaced later.
func (s *Service) dismiss(ctx context.Context, sugg *domain.Suggestion, status domain.SuggestionStatus, now time.Time) (*ReviewResult, error) {
	selections := make(map[string]bool, len(sugg.FieldPaths))
	for _, p := range sugg.FieldPaths {
		selections[p] = false
	}

	outcome := domain.ReviewOutcome{
		Status:     status,
		Selections: selections,
		ReviewedAt: now,
	}
	if status == domain.SuggestionStatusSkipped {
		outcome.DismissedAt = &now
	}

	err := s.suggestions.FinishReview(ctx, sugg.ID, outcome)
	if err != nil {
		return nil, fmt.Errorf("finish review: %w", err)
	}

	reviewsTotal.WithLabelValues(status.String()).Inc()
	s.log.InfoContext(ctx, "suggestion dismissed",
		slog.String("suggestion_id", sugg.ID.String()),
		slog.String("status", status.String()),
	)
	return &ReviewResult{Status: status}, nil
}

func (s *Service) approve(ctx context.Context, userID uuid.UUID, sugg *domain.Suggestion, selections map[string]bool, now time.Time) (*ReviewResult, error) {
	known := make(map[string]bool, len(sugg.FieldPaths))
	for _, p := range sugg.FieldPaths {
		known[p] = true
	}
	for p := range selections {
		if !known[p] {
			return nil, domain.NewValidationError("selections",
				fmt.Sprintf("unknown field path %q", p))
		}
	}

	// Paths missing from the selections map default to accepted; only an
	// explicit false deselects.
	selected := func(path string) bool {
		v, ok := selections[path]
		if !ok {
			return true
		}
		return v
	}

	var result ReviewResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		contact, err := s.contacts.GetForUser(ctx, userID, sugg.ContactID)
		if err != nil {
			return fmt.Errorf("get contact: %w", err)
		}

		profile := contact.Profile
		applied := make(map[string]bool)
		conflicted := make(map[string]bool)
		allSelected := true

		for _, e := range sugg.Entries {
			if !selected(e.FieldPath) {
				allSelected = false
				continue
			}
			merged, err := reconcile.Merge(profile, reconcile.Instruction{
				Path:     e.FieldPath,
				Action:   e.Action,
				Snapshot: e.CurrentValue,
				NewValue: e.SuggestedValue,
			})
			switch {
			case err == nil:
				profile = merged
				applied[e.FieldPath] = true
			case errors.Is(err, domain.ErrMergeConflict),
				errors.Is(err, domain.ErrPathNotFound),
				errors.Is(err, domain.ErrAlreadyExists):
				conflicted[e.FieldPath] = true
			default:
				return fmt.Errorf("apply %q: %w", e.FieldPath, err)
			}
		}

		for _, p := range sugg.FieldPaths {
			if applied[p] {
				result.AppliedPaths = append(result.AppliedPaths, p)
			}
			if conflicted[p] {
				result.ConflictPaths = append(result.ConflictPaths, p)
			}
		}

		result.Status = domain.SuggestionStatusPartial
		if allSelected && len(result.ConflictPaths) == 0 && len(result.AppliedPaths) > 0 {
			result.Status = domain.SuggestionStatusApproved
		}

		effective := make(map[string]bool, len(sugg.FieldPaths))
		for _, p := range sugg.FieldPaths {
			effective[p] = selected(p)
		}

		var appliedAt *time.Time
		if len(result.AppliedPaths) > 0 {
			appliedAt = &now
		}

		err = s.suggestions.FinishReview(ctx, sugg.ID, domain.ReviewOutcome{
			Status:     result.Status,
			Selections: effective,
			ReviewedAt: now,
			AppliedAt:  appliedAt,
		})
		if err != nil {
			return fmt.Errorf("finish review: %w", err)
		}

		if len(result.AppliedPaths) > 0 {
			if err := s.contacts.UpdateProfile(ctx, contact.ID, profile); err != nil {
				return fmt.Errorf("update profile: %w", err)
			}
			contact.Profile = profile
			result.Contact = contact
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	reviewsTotal.WithLabelValues(result.Status.String()).Inc()
	s.log.InfoContext(ctx, "suggestion reviewed",
		slog.String("suggestion_id", sugg.ID.String()),
		slog.String("status", result.Status.String()),
		slog.Int("applied", len(result.AppliedPaths)),
		slog.Int("conflicts", len(result.ConflictPaths)),
	)
	return &result, nil
}
