package suggest

import (
	"github.com/google/uuid"

	"github.com/warmline/warmline-backend/internal/domain"
)

// ReviewDecision is the user's verdict on a suggestion record.
type ReviewDecision string

const (
	DecisionApprove ReviewDecision = "approve"
	DecisionReject  ReviewDecision = "reject"
	DecisionSkip    ReviewDecision = "skip"
)

func (d ReviewDecision) IsValid() bool {
	switch d {
	case DecisionApprove, DecisionReject, DecisionSkip:
		return true
	}
	return false
}

// ReviewInput holds the parameters for reviewing a suggestion.
// Selections maps field paths to whether the user accepted them; paths not
// named in the map default to accepted, so a nil or empty map on approve
// means every field was accepted.
type ReviewInput struct {
	SuggestionID uuid.UUID
	Decision     ReviewDecision
	Selections   map[string]bool
}

// Validate checks all fields and collects all errors.
func (i ReviewInput) Validate() error {
	var errs []domain.FieldError
	if i.SuggestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "suggestion_id", Message: "required"})
	}
	if !i.Decision.IsValid() {
		errs = append(errs, domain.FieldError{Field: "decision", Message: "must be approve, reject or skip"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListSuggestionsInput holds the parameters for listing suggestions.
type ListSuggestionsInput struct {
	ContactID *uuid.UUID
	Status    *domain.SuggestionStatus
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i ListSuggestionsInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
