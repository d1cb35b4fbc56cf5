// Package contact implements the contact repository using PostgreSQL.
// The profile document is written only from the review transaction; the
// pipeline's field-level snapshot checks are the concurrency mechanism,
// so the write itself is unconditional.
package contact

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/warmline/warmline-backend/internal/adapter/postgres"
	"github.com/warmline/warmline-backend/internal/domain"
)

// Repo provides contact persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contact repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const contactColumns = `id, user_id, display_name, profile, created_at, updated_at`

const getContactSQL = `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

// Get returns a contact by primary key, without user scoping. Used by the
// generation path, which runs without an acting user.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanContact(q.QueryRow(ctx, getContactSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "contact", id)
	}
	return c, nil
}

const getContactForUserSQL = `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1 AND user_id = $2`

// GetForUser returns a contact by primary key scoped to its owner.
func (r *Repo) GetForUser(ctx context.Context, userID, id uuid.UUID) (*domain.Contact, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanContact(q.QueryRow(ctx, getContactForUserSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "contact", id)
	}
	return c, nil
}

const createContactSQL = `
INSERT INTO contacts (id, user_id, display_name, profile, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
RETURNING ` + contactColumns

// Create inserts a new contact and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	profile, err := json.Marshal(c.Profile)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}

	created, err := scanContact(q.QueryRow(ctx, createContactSQL, c.ID, c.UserID, c.DisplayName, profile))
	if err != nil {
		return nil, postgres.MapError(err, "contact", c.ID)
	}
	return created, nil
}

const updateProfileSQL = `
UPDATE contacts SET profile = $2, updated_at = now() WHERE id = $1`

// UpdateProfile replaces the profile document. Must be called inside the
// review transaction.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, profile map[string]any) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	tag, err := q.Exec(ctx, updateProfileSQL, id, raw)
	if err != nil {
		return postgres.MapError(err, "contact", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("contact %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var (
		c       domain.Contact
		profile []byte
	)

	err := row.Scan(&c.ID, &c.UserID, &c.DisplayName, &profile, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if len(profile) > 0 {
		if err := json.Unmarshal(profile, &c.Profile); err != nil {
			return nil, fmt.Errorf("decode profile: %w", err)
		}
	}
	if c.Profile == nil {
		c.Profile = map[string]any{}
	}

	return &c, nil
}
