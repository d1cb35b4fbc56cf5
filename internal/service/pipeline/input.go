package pipeline

import (
	"strings"

	"github.com/google/uuid"

	"github.com/warmline/warmline-backend/internal/domain"
)

// IngestInput holds the parameters for capturing a new artifact.
type IngestInput struct {
	ContactID uuid.UUID
	Type      domain.ArtifactType
	Content   string
	Metadata  map[string]string
}

// Validate checks all fields and collects all errors. Content is optional
// for types that go through transcription: the transcript fills it later.
func (i IngestInput) Validate() error {
	var errs []domain.FieldError

	if i.ContactID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "contact_id", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown artifact type"})
	}

	content := strings.TrimSpace(i.Content)
	if content == "" && i.Type.IsValid() && !i.Type.RequiresTranscription() {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(content) > MaxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 100000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListArtifactsInput holds the parameters for listing artifacts.
type ListArtifactsInput struct {
	ContactID     *uuid.UUID
	ParsingStatus *domain.ProcessingStatus
	Limit         int
	Offset        int
}

// Validate checks all fields and collects all errors.
func (i ListArtifactsInput) Validate() error {
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
	if i.ParsingStatus != nil && !i.ParsingStatus.IsValid() {
		errs = append(errs, domain.FieldError{Field: "parsing_status", Message: "unknown status"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CompleteTranscriptionInput holds the parameters for recording a finished
// transcription.
type CompleteTranscriptionInput struct {
	ArtifactID uuid.UUID
	Transcript string
}

// Validate checks all fields and collects all errors.
func (i CompleteTranscriptionInput) Validate() error {
	var errs []domain.FieldError
	if i.ArtifactID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "artifact_id", Message: "required"})
	}
	if strings.TrimSpace(i.Transcript) == "" {
		errs = append(errs, domain.FieldError{Field: "transcript", Message: "required"})
	}
	if len(i.Transcript) > MaxContentLength {
		errs = append(errs, domain.FieldError{Field: "transcript", Message: "max 100000 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// FailTranscriptionInput holds the parameters for recording a failed
// transcription.
type FailTranscriptionInput struct {
	ArtifactID uuid.UUID
	Reason     string
}

// Validate checks all fields and collects all errors.
func (i FailTranscriptionInput) Validate() error {
	if i.ArtifactID == uuid.Nil {
		return domain.NewValidationError("artifact_id", "required")
	}
	return nil
}
