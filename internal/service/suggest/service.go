// Package suggest implements suggestion generation and the review ledger.
// Generation runs in the background after an artifact enters the parsing
// queue; review applies the approved subset of a suggestion to the contact
// profile through the reconciliation rules.
package suggest

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/warmline/warmline-backend/internal/domain"
)

const (
	DefaultLimit      = 50
	MaxLimit          = 200
	DefaultMaxEntries = 50
)

type artifactRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Artifact, error)
	UpdateParsingStatus(ctx context.Context, id uuid.UUID, expected []domain.ProcessingStatus, to domain.ProcessingStatus, errMsg *string) error
}

type contactRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	GetForUser(ctx context.Context, userID, id uuid.UUID) (*domain.Contact, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, profile map[string]any) error
}

type suggestionRepo interface {
	GetForUser(ctx context.Context, userID, id uuid.UUID) (*domain.Suggestion, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SuggestionFilter) ([]*domain.Suggestion, int, error)
	Create(ctx context.Context, s *domain.Suggestion) (*domain.Suggestion, error)
	MarkViewed(ctx context.Context, id uuid.UUID) error
	FinishReview(ctx context.Context, id uuid.UUID, outcome domain.ReviewOutcome) error
}

// intelligence proposes profile updates from a parsed artifact.
type intelligence interface {
	ProposeUpdates(ctx context.Context, artifact *domain.Artifact, contact *domain.Contact) ([]domain.SuggestionEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides suggestion generation and review operations.
type Service struct {
	artifacts   artifactRepo
	contacts    contactRepo
	suggestions suggestionRepo
	intel       intelligence
	tx          txManager
	maxEntries  int
	log         *slog.Logger
}

// NewService creates a new suggest service. maxEntries caps the entries
// kept per suggestion record; zero means DefaultMaxEntries.
func NewService(
	log *slog.Logger,
	artifacts artifactRepo,
	contacts contactRepo,
	suggestions suggestionRepo,
	intel intelligence,
	tx txManager,
	maxEntries int,
) *Service {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Service{
		artifacts:   artifacts,
		contacts:    contacts,
		suggestions: suggestions,
		intel:       intel,
		tx:          tx,
		maxEntries:  maxEntries,
		log:         log.With("service", "suggest"),
	}
}
