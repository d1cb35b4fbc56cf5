// Package artifact implements the artifact repository using PostgreSQL.
// Status transitions go through conditional updates: the new status is
// written only when the stored status still matches one of the expected
// prior values, which is the pipeline's sole concurrency-control mechanism.
package artifact

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

// Repo provides artifact persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new artifact repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const artifactColumns = `id, contact_id, user_id, type, content, metadata,
	transcription_status, ai_parsing_status, transcription_error, parse_error,
	created_at, updated_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getArtifactSQL = `SELECT ` + artifactColumns + ` FROM artifacts WHERE id = $1`

// Get returns an artifact by primary key, without user scoping. Used by
// pipeline internals and webhook paths where no acting user is present.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (*domain.Artifact, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanArtifact(q.QueryRow(ctx, getArtifactSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "artifact", id)
	}
	return a, nil
}

const getArtifactForUserSQL = `SELECT ` + artifactColumns + ` FROM artifacts WHERE id = $1 AND user_id = $2`

// GetForUser returns an artifact by primary key scoped to its owner.
// Returns domain.ErrNotFound if the artifact belongs to another user.
func (r *Repo) GetForUser(ctx context.Context, userID, id uuid.UUID) (*domain.Artifact, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanArtifact(q.QueryRow(ctx, getArtifactForUserSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "artifact", id)
	}
	return a, nil
}

// List returns a user's artifacts ordered by created_at DESC, with the
// total count for pagination.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.ArtifactFilter) ([]*domain.Artifact, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{sq.Eq{"user_id": userID}}
	if filter.ContactID != nil {
		where = append(where, sq.Eq{"contact_id": *filter.ContactID})
	}
	if filter.ParsingStatus != nil {
		where = append(where, sq.Eq{"ai_parsing_status": filter.ParsingStatus.String()})
	}

	countSQL, countArgs, err := sq.Select("COUNT(*)").From("artifacts").
		Where(where).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count artifacts: %w", err)
	}

	listSQL, listArgs, err := sq.Select(artifactColumns).From("artifacts").
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
		return nil, 0, fmt.Errorf("list artifacts: %w", err)
	}
	defer rows.Close()

	var artifacts []*domain.Artifact
	for rows.Next() {
		a, err := scanArtifact(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan artifact: %w", err)
		}
		artifacts = append(artifacts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list artifacts: %w", err)
	}

	return artifacts, total, nil
}

const listFailedParseSQL = `SELECT ` + artifactColumns + `
FROM artifacts
WHERE ai_parsing_status = 'failed'
ORDER BY updated_at ASC
LIMIT $1`

// ListFailedParse returns artifacts whose last parse run failed, oldest
// first, without user scoping. Used by the operational reparse tool.
func (r *Repo) ListFailedParse(ctx context.Context, limit int) ([]*domain.Artifact, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listFailedParseSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list failed artifacts: %w", err)
	}
	defer rows.Close()

	var artifacts []*domain.Artifact
	for rows.Next() {
		a, err := scanArtifact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artifact: %w", err)
		}
		artifacts = append(artifacts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list failed artifacts: %w", err)
	}

	return artifacts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createArtifactSQL = `
INSERT INTO artifacts (id, contact_id, user_id, type, content, metadata,
	transcription_status, ai_parsing_status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
RETURNING ` + artifactColumns

// Create inserts a new artifact and returns the persisted row.
func (r *Repo) Create(ctx context.Context, a *domain.Artifact) (*domain.Artifact, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	meta, err := json.Marshal(a.Metadata)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}

	row := q.QueryRow(ctx, createArtifactSQL,
		a.ID, a.ContactID, a.UserID, a.Type.String(), a.Content, meta,
		a.TranscriptionStatus.String(), a.ParsingStatus.String(),
	)
	created, err := scanArtifact(row)
	if err != nil {
		return nil, postgres.MapError(err, "artifact", a.ID)
	}
	return created, nil
}

const casTranscriptionSQL = `
UPDATE artifacts
SET transcription_status = $2,
	content = COALESCE($3, content),
	transcription_error = $4,
	updated_at = now()
WHERE id = $1 AND transcription_status = ANY($5)`

// UpdateTranscriptionStatus conditionally moves transcription_status to the
// given value when the stored status is one of expected. transcript, when
// non-nil, replaces the artifact content; errMsg records the upstream
// failure (nil clears it). Returns domain.ErrConflict when the precondition
// no longer holds, domain.ErrNotFound when the artifact is missing.
func (r *Repo) UpdateTranscriptionStatus(ctx context.Context, id uuid.UUID, expected []domain.ProcessingStatus, to domain.ProcessingStatus, transcript, errMsg *string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, casTranscriptionSQL,
		id, to.String(), postgres.PtrToPgText(transcript), postgres.PtrToPgText(errMsg), statusStrings(expected),
	)
	if err != nil {
		return postgres.MapError(err, "artifact", id)
	}
	if tag.RowsAffected() == 0 {
		return r.resolveConditionFailure(ctx, id)
	}
	return nil
}

const casParsingSQL = `
UPDATE artifacts
SET ai_parsing_status = $2,
	parse_error = $3,
	updated_at = now()
WHERE id = $1 AND ai_parsing_status = ANY($4)`

// UpdateParsingStatus conditionally moves ai_parsing_status to the given
// value when the stored status is one of expected. Same error contract as
// UpdateTranscriptionStatus.
func (r *Repo) UpdateParsingStatus(ctx context.Context, id uuid.UUID, expected []domain.ProcessingStatus, to domain.ProcessingStatus, errMsg *string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, casParsingSQL,
		id, to.String(), postgres.PtrToPgText(errMsg), statusStrings(expected),
	)
	if err != nil {
		return postgres.MapError(err, "artifact", id)
	}
	if tag.RowsAffected() == 0 {
		return r.resolveConditionFailure(ctx, id)
	}
	return nil
}

// resolveConditionFailure tells a missing row apart from a lost CAS race.
func (r *Repo) resolveConditionFailure(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM artifacts WHERE id = $1)`, id).Scan(&exists); err != nil {
		return postgres.MapError(err, "artifact", id)
	}
	if !exists {
		return fmt.Errorf("artifact %s: %w", id, domain.ErrNotFound)
	}
	return fmt.Errorf("artifact %s: %w", id, domain.ErrConflict)
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArtifact(row rowScanner) (*domain.Artifact, error) {
	var (
		a         domain.Artifact
		typ       string
		meta      []byte
		trStatus  string
		parStatus string
		trErr     pgtype.Text
		parseErr  pgtype.Text
	)

	err := row.Scan(
		&a.ID, &a.ContactID, &a.UserID, &typ, &a.Content, &meta,
		&trStatus, &parStatus, &trErr, &parseErr,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &a.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata: %w", err)
		}
	}

	a.Type = domain.ArtifactType(typ)
	a.TranscriptionStatus = domain.ProcessingStatus(trStatus)
	a.ParsingStatus = domain.ProcessingStatus(parStatus)
	a.TranscriptionError = postgres.PgTextToPtr(trErr)
	a.ParseError = postgres.PgTextToPtr(parseErr)

	return &a, nil
}

func statusStrings(statuses []domain.ProcessingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
