package domain

import (
	"time"

	"github.com/google/uuid"
)

// SuggestionAction is the kind of edit a suggestion entry proposes.
type SuggestionAction string

const (
	SuggestionActionAdd    SuggestionAction = "add"
	SuggestionActionUpdate SuggestionAction = "update"
	SuggestionActionRemove SuggestionAction = "remove"
)

func (a SuggestionAction) String() string { return string(a) }

func (a SuggestionAction) IsValid() bool {
	switch a {
	case SuggestionActionAdd, SuggestionActionUpdate, SuggestionActionRemove:
		return true
	}
	return false
}

// SuggestionStatus is the review lifecycle state of a suggestion record.
type SuggestionStatus string

const (
	SuggestionStatusPending  SuggestionStatus = "pending"
	SuggestionStatusApproved SuggestionStatus = "approved"
	SuggestionStatusRejected SuggestionStatus = "rejected"
	SuggestionStatusPartial  SuggestionStatus = "partial"
	SuggestionStatusSkipped  SuggestionStatus = "skipped"
)

func (s SuggestionStatus) String() string { return string(s) }

func (s SuggestionStatus) IsValid() bool {
	switch s {
	case SuggestionStatusPending, SuggestionStatusApproved, SuggestionStatusRejected,
		SuggestionStatusPartial, SuggestionStatusSkipped:
		return true
	}
	return false
}

// Terminal reports whether the record can no longer be reviewed.
func (s SuggestionStatus) Terminal() bool {
	return s != SuggestionStatusPending
}

// SuggestionPriority ranks a record for the review queue.
type SuggestionPriority string

const (
	SuggestionPriorityHigh   SuggestionPriority = "high"
	SuggestionPriorityMedium SuggestionPriority = "medium"
	SuggestionPriorityLow    SuggestionPriority = "low"
)

func (p SuggestionPriority) String() string { return string(p) }

func (p SuggestionPriority) IsValid() bool {
	switch p {
	case SuggestionPriorityHigh, SuggestionPriorityMedium, SuggestionPriorityLow:
		return true
	}
	return false
}

// SuggestionEntry is one candidate field-level edit to a contact profile.
// CurrentValue is the value observed at generation time and is used later
// for divergence detection at apply time.
type SuggestionEntry struct {
	FieldPath      string           `json:"field_path"`
	Action         SuggestionAction `json:"action"`
	CurrentValue   any              `json:"current_value"`
	SuggestedValue any              `json:"suggested_value"`
	Confidence     float64          `json:"confidence"`
	Reasoning      string           `json:"reasoning,omitempty"`
}

// Suggestion is a batch of candidate field-level edits to a contact,
// derived from one artifact. Entries and their snapshots are immutable
// after creation; only Status, UserSelections, and the timestamp fields
// mutate, and only until a terminal state is reached.
type Suggestion struct {
	ID               uuid.UUID
	ArtifactID       uuid.UUID
	ContactID        uuid.UUID
	UserID           uuid.UUID
	Entries          []SuggestionEntry
	FieldPaths       []string
	ConfidenceScores map[string]float64
	Status           SuggestionStatus
	UserSelections   map[string]bool
	Priority         SuggestionPriority
	CreatedAt        time.Time
	ViewedAt         *time.Time
	ReviewedAt       *time.Time
	DismissedAt      *time.Time
	AppliedAt        *time.Time
}

// ProjectFieldPaths returns the deduplicated, first-seen-order list of the
// entries' field paths.
func ProjectFieldPaths(entries []SuggestionEntry) []string {
	seen := make(map[string]struct{}, len(entries))
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.FieldPath]; ok {
			continue
		}
		seen[e.FieldPath] = struct{}{}
		paths = append(paths, e.FieldPath)
	}
	return paths
}

// ProjectConfidenceScores returns the highest confidence per field path.
func ProjectConfidenceScores(entries []SuggestionEntry) map[string]float64 {
	scores := make(map[string]float64, len(entries))
	for _, e := range entries {
		if cur, ok := scores[e.FieldPath]; !ok || e.Confidence > cur {
			scores[e.FieldPath] = e.Confidence
		}
	}
	return scores
}

// DerivePriority ranks a suggestion by its entry confidences: high if any
// entry is at or above 0.9, low if every entry is below 0.5, else medium.
func DerivePriority(entries []SuggestionEntry) SuggestionPriority {
	if len(entries) == 0 {
		return SuggestionPriorityLow
	}
	allLow := true
	for _, e := range entries {
		if e.Confidence >= 0.9 {
			return SuggestionPriorityHigh
		}
		if e.Confidence >= 0.5 {
			allLow = false
		}
	}
	if allLow {
		return SuggestionPriorityLow
	}
	return SuggestionPriorityMedium
}
