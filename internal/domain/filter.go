package domain

import (
	"time"

	"github.com/google/uuid"
)

// ArtifactFilter narrows artifact listings. Nil fields are ignored.
type ArtifactFilter struct {
	ContactID     *uuid.UUID
	ParsingStatus *ProcessingStatus
	Limit         int
	Offset        int
}

// SuggestionFilter narrows suggestion listings. Nil fields are ignored.
type SuggestionFilter struct {
	ContactID *uuid.UUID
	Status    *SuggestionStatus
	Limit     int
	Offset    int
}

// ReviewOutcome carries the fields written alongside a suggestion's
// terminal status transition.
type ReviewOutcome struct {
	Status      SuggestionStatus
	Selections  map[string]bool
	ReviewedAt  time.Time
	DismissedAt *time.Time
	AppliedAt   *time.Time
}
