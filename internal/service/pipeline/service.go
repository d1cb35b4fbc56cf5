// Package pipeline implements artifact ingestion and the processing
// orchestrator: the status transitions that move an artifact through
// transcription and into parsing. All transitions are conditional
// updates on the artifact row; a lost race surfaces as
// domain.ErrConflict and is never retried here.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/warmline/warmline-backend/internal/domain"
)

const (
	DefaultLimit     = 50
	MaxLimit         = 200
	MaxContentLength = 100_000
)

type artifactRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Artifact, error)
	GetForUser(ctx context.Context, userID, id uuid.UUID) (*domain.Artifact, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.ArtifactFilter) ([]*domain.Artifact, int, error)
	Create(ctx context.Context, a *domain.Artifact) (*domain.Artifact, error)
	UpdateTranscriptionStatus(ctx context.Context, id uuid.UUID, expected []domain.ProcessingStatus, to domain.ProcessingStatus, transcript, errMsg *string) error
	UpdateParsingStatus(ctx context.Context, id uuid.UUID, expected []domain.ProcessingStatus, to domain.ProcessingStatus, errMsg *string) error
}

type contactRepo interface {
	GetForUser(ctx context.Context, userID, id uuid.UUID) (*domain.Contact, error)
}

type suggestionRepo interface {
	HasOpenForArtifact(ctx context.Context, artifactID uuid.UUID) (bool, error)
}

// ParseNotifier is told about every artifact that has legitimately entered
// the parsing queue (ai_parsing_status just moved to pending). The call
// must not block: implementations hand the ID to a background worker.
type ParseNotifier interface {
	NotifyParseRequested(artifactID uuid.UUID)
}

// Service provides artifact ingestion and processing orchestration.
type Service struct {
	artifacts   artifactRepo
	contacts    contactRepo
	suggestions suggestionRepo
	notifier    ParseNotifier
	log         *slog.Logger
}

// NewService creates a new pipeline service.
func NewService(
	log *slog.Logger,
	artifacts artifactRepo,
	contacts contactRepo,
	suggestions suggestionRepo,
	notifier ParseNotifier,
) *Service {
	return &Service{
		artifacts:   artifacts,
		contacts:    contacts,
		suggestions: suggestions,
		notifier:    notifier,
		log:         log.With("service", "pipeline"),
	}
}
