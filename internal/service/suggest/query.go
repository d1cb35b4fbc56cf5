package suggest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/warmline/warmline-backend/internal/domain"
	"github.com/warmline/warmline-backend/pkg/ctxutil"
)

// GetSuggestion returns one of the caller's suggestions and records the
// first time it was looked at.
func (s *Service) GetSuggestion(ctx context.Context, suggestionID uuid.UUID) (*domain.Suggestion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if suggestionID == uuid.Nil {
		return nil, domain.NewValidationError("suggestion_id", "required")
	}

	sugg, err := s.suggestions.GetForUser(ctx, userID, suggestionID)
	if err != nil {
		return nil, fmt.Errorf("get suggestion: %w", err)
	}

	if sugg.ViewedAt == nil {
		if err := s.suggestions.MarkViewed(ctx, suggestionID); err != nil {
			// Not worth failing the read over.
			s.log.WarnContext(ctx, "mark viewed failed",
				slog.String("suggestion_id", suggestionID.String()),
				slog.String("error", err.Error()),
			)
		} else {
			now := time.Now().UTC()
			sugg.ViewedAt = &now
		}
	}

	return sugg, nil
}

// ListSuggestions returns the caller's suggestions, newest first, with the
// total count for pagination.
func (s *Service) ListSuggestions(ctx context.Context, input ListSuggestionsInput) ([]*domain.Suggestion, int, error) {
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

	suggestions, total, err := s.suggestions.List(ctx, userID, domain.SuggestionFilter{
		ContactID: input.ContactID,
		Status:    input.Status,
		Limit:     limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list suggestions: %w", err)
	}
	return suggestions, total, nil
}
