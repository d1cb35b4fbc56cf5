// Package suggestion implements the suggestion ledger repository using
// PostgreSQL. Entries are immutable after insert; review outcomes are
// written through a conditional update that requires the record to still
// be pending.
package suggestion

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/warmline/warmline-backend/internal/adapter/postgres"
	"github.com/warmline/warmline-backend/internal/domain"
)

// Repo provides suggestion persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new suggestion repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const suggestionColumns = `id, artifact_id, contact_id, user_id, entries, field_paths,
	confidence_scores, status, user_selections, priority,
	created_at, viewed_at, reviewed_at, dismissed_at, applied_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getSuggestionSQL = `SELECT ` + suggestionColumns + ` FROM suggestions WHERE id = $1`

// Get returns a suggestion by primary key, without user scoping.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (*domain.Suggestion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSuggestion(q.QueryRow(ctx, getSuggestionSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "suggestion", id)
	}
	return s, nil
}

const getSuggestionForUserSQL = `SELECT ` + suggestionColumns + ` FROM suggestions WHERE id = $1 AND user_id = $2`

// GetForUser returns a suggestion by primary key scoped to its owner.
func (r *Repo) GetForUser(ctx context.Context, userID, id uuid.UUID) (*domain.Suggestion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSuggestion(q.QueryRow(ctx, getSuggestionForUserSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "suggestion", id)
	}
	return s, nil
}

const hasOpenForArtifactSQL = `
SELECT EXISTS (SELECT 1 FROM suggestions WHERE artifact_id = $1 AND status = 'pending')`

// HasOpenForArtifact reports whether the artifact already has a pending
// suggestion record.
func (r *Repo) HasOpenForArtifact(ctx context.Context, artifactID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, hasOpenForArtifactSQL, artifactID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check open suggestion for artifact %s: %w", artifactID, err)
	}
	return exists, nil
}

// List returns a user's suggestions ordered by created_at DESC, with the
// total count for pagination.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.SuggestionFilter) ([]*domain.Suggestion, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{sq.Eq{"user_id": userID}}
	if filter.ContactID != nil {
		where = append(where, sq.Eq{"contact_id": *filter.ContactID})
	}
	if filter.Status != nil {
		where = append(where, sq.Eq{"status": filter.Status.String()})
	}

	countSQL, countArgs, err := sq.Select("COUNT(*)").From("suggestions").
		Where(where).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count suggestions: %w", err)
	}

	listSQL, listArgs, err := sq.Select(suggestionColumns).From("suggestions").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list suggestions: %w", err)
	}
	defer rows.Close()

	var suggestions []*domain.Suggestion
	for rows.Next() {
		s, err := scanSuggestion(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan suggestion: %w", err)
		}
		suggestions = append(suggestions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list suggestions: %w", err)
	}

	return suggestions, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createSuggestionSQL = `
INSERT INTO suggestions (id, artifact_id, contact_id, user_id, entries, field_paths,
	confidence_scores, status, user_selections, priority, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
RETURNING ` + suggestionColumns

// Create inserts a new suggestion record. A partial unique index on
// (artifact_id) WHERE status = 'pending' enforces at most one open record
// per artifact; violations map to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, s *domain.Suggestion) (*domain.Suggestion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	entries, err := json.Marshal(s.Entries)
	if err != nil {
		return nil, fmt.Errorf("encode entries: %w", err)
	}
	scores, err := json.Marshal(s.ConfidenceScores)
	if err != nil {
		return nil, fmt.Errorf("encode confidence_scores: %w", err)
	}
	selections, err := json.Marshal(s.UserSelections)
	if err != nil {
		return nil, fmt.Errorf("encode user_selections: %w", err)
	}

	row := q.QueryRow(ctx, createSuggestionSQL,
		s.ID, s.ArtifactID, s.ContactID, s.UserID, entries, s.FieldPaths,
		scores, s.Status.String(), selections, s.Priority.String(),
	)
	created, err := scanSuggestion(row)
	if err != nil {
		return nil, postgres.MapError(err, "suggestion", s.ID)
	}
	return created, nil
}

const markViewedSQL = `
UPDATE suggestions SET viewed_at = now() WHERE id = $1 AND viewed_at IS NULL`

// MarkViewed sets viewed_at on first view. Idempotent: later calls are
// no-ops. Returns domain.ErrNotFound for unknown IDs.
func (r *Repo) MarkViewed(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, markViewedSQL, id)
	if err != nil {
		return postgres.MapError(err, "suggestion", id)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM suggestions WHERE id = $1)`, id).Scan(&exists); err != nil {
			return postgres.MapError(err, "suggestion", id)
		}
		if !exists {
			return fmt.Errorf("suggestion %s: %w", id, domain.ErrNotFound)
		}
	}
	return nil
}

const finishReviewSQL = `
UPDATE suggestions
SET status = $2,
	user_selections = $3,
	reviewed_at = $4,
	dismissed_at = $5,
	applied_at = $6
WHERE id = $1 AND status = 'pending'`

// FinishReview conditionally moves a pending record to its terminal review
// state. Returns domain.ErrConflict when the record is already terminal,
// domain.ErrNotFound when it is missing.
func (r *Repo) FinishReview(ctx context.Context, id uuid.UUID, outcome domain.ReviewOutcome) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	selections, err := json.Marshal(outcome.Selections)
	if err != nil {
		return fmt.Errorf("encode user_selections: %w", err)
	}

	tag, err := q.Exec(ctx, finishReviewSQL,
		id, outcome.Status.String(), selections, outcome.ReviewedAt,
		postgres.PtrToPgTime(outcome.DismissedAt), postgres.PtrToPgTime(outcome.AppliedAt),
	)
	if err != nil {
		return postgres.MapError(err, "suggestion", id)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM suggestions WHERE id = $1)`, id).Scan(&exists); err != nil {
			return postgres.MapError(err, "suggestion", id)
		}
		if !exists {
			return fmt.Errorf("suggestion %s: %w", id, domain.ErrNotFound)
		}
		return fmt.Errorf("suggestion %s: %w", id, domain.ErrConflict)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSuggestion(row rowScanner) (*domain.Suggestion, error) {
	var (
		s           domain.Suggestion
		entries     []byte
		scores      []byte
		selections  []byte
		status      string
		priority    string
		viewedAt    pgtype.Timestamptz
		reviewedAt  pgtype.Timestamptz
		dismissedAt pgtype.Timestamptz
		appliedAt   pgtype.Timestamptz
	)

	err := row.Scan(
		&s.ID, &s.ArtifactID, &s.ContactID, &s.UserID, &entries, &s.FieldPaths,
		&scores, &status, &selections, &priority,
		&s.CreatedAt, &viewedAt, &reviewedAt, &dismissedAt, &appliedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(entries, &s.Entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	if err := json.Unmarshal(scores, &s.ConfidenceScores); err != nil {
		return nil, fmt.Errorf("decode confidence_scores: %w", err)
	}
	if err := json.Unmarshal(selections, &s.UserSelections); err != nil {
		return nil, fmt.Errorf("decode user_selections: %w", err)
	}

	s.Status = domain.SuggestionStatus(status)
	s.Priority = domain.SuggestionPriority(priority)
	s.ViewedAt = postgres.PgTimeToPtr(viewedAt)
	s.ReviewedAt = postgres.PgTimeToPtr(reviewedAt)
	s.DismissedAt = postgres.PgTimeToPtr(dismissedAt)
	s.AppliedAt = postgres.PgTimeToPtr(appliedAt)

	return &s, nil
}
