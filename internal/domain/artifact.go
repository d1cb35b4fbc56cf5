package domain

import (
	"time"

	"github.com/google/uuid"
)

// ArtifactType classifies a captured unit of relationship content.
type ArtifactType string

const (
	ArtifactTypeVoiceMemo       ArtifactType = "voice_memo"
	ArtifactTypeEmail           ArtifactType = "email"
	ArtifactTypeMeeting         ArtifactType = "meeting"
	ArtifactTypeNote            ArtifactType = "note"
	ArtifactTypeCalendarEvent   ArtifactType = "calendar_event"
	ArtifactTypeLinkedInProfile ArtifactType = "linkedin_profile"
)

func (t ArtifactType) String() string { return string(t) }

func (t ArtifactType) IsValid() bool {
	switch t {
	case ArtifactTypeVoiceMemo, ArtifactTypeEmail, ArtifactTypeMeeting,
		ArtifactTypeNote, ArtifactTypeCalendarEvent, ArtifactTypeLinkedInProfile:
		return true
	}
	return false
}

// RequiresTranscription reports whether artifacts of this type must pass
// through the transcription stage before they can be parsed.
func (t ArtifactType) RequiresTranscription() bool {
	return t == ArtifactTypeVoiceMemo
}

// ProcessingStatus is the state of one processing stage (transcription or
// parsing) of an artifact.
type ProcessingStatus string

const (
	ProcessingStatusNone       ProcessingStatus = "none"
	ProcessingStatusPending    ProcessingStatus = "pending"
	ProcessingStatusProcessing ProcessingStatus = "processing"
	ProcessingStatusCompleted  ProcessingStatus = "completed"
	ProcessingStatusFailed     ProcessingStatus = "failed"
)

func (s ProcessingStatus) String() string { return string(s) }

func (s ProcessingStatus) IsValid() bool {
	switch s {
	case ProcessingStatusNone, ProcessingStatusPending, ProcessingStatusProcessing,
		ProcessingStatusCompleted, ProcessingStatusFailed:
		return true
	}
	return false
}

// InFlight reports whether the stage is currently claimed by an operation.
func (s ProcessingStatus) InFlight() bool {
	return s == ProcessingStatusPending || s == ProcessingStatusProcessing
}

// Artifact is a captured unit of relationship-relevant content tied to a
// contact. Rows are created by the ingestion path and mutated only through
// the orchestrator's status transitions; they are never deleted in normal
// operation.
type Artifact struct {
	ID                  uuid.UUID
	ContactID           uuid.UUID
	UserID              uuid.UUID
	Type                ArtifactType
	Content             string
	Metadata            map[string]string
	TranscriptionStatus ProcessingStatus
	ParsingStatus       ProcessingStatus
	TranscriptionError  *string
	ParseError          *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ParseEligible reports whether the artifact satisfies the invariant for
// entering parsing: either its type needs no transcription, or the
// transcription has completed.
func (a *Artifact) ParseEligible() bool {
	if !a.Type.RequiresTranscription() {
		return true
	}
	return a.TranscriptionStatus == ProcessingStatusCompleted
}
