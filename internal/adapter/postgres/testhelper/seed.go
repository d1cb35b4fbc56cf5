package testhelper

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/warmline/warmline-backend/internal/domain"
)

// SeedContact creates a contact with the given profile document.
func SeedContact(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, profile map[string]any) domain.Contact {
	t.Helper()
	ctx := context.Background()

	if profile == nil {
		profile = map[string]any{}
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		t.Fatalf("seed contact: encode profile: %v", err)
	}

	c := domain.Contact{
		ID:          uuid.New(),
		UserID:      userID,
		DisplayName: "Test Contact " + uuid.New().String()[:8],
		Profile:     profile,
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO contacts (id, user_id, display_name, profile) VALUES ($1, $2, $3, $4)`,
		c.ID, c.UserID, c.DisplayName, raw,
	)
	if err != nil {
		t.Fatalf("seed contact: %v", err)
	}

	return c
}

// SeedArtifact creates an artifact in the given processing states.
func SeedArtifact(t *testing.T, pool *pgxpool.Pool, userID, contactID uuid.UUID, typ domain.ArtifactType, trStatus, parStatus domain.ProcessingStatus) domain.Artifact {
	t.Helper()
	ctx := context.Background()

	a := domain.Artifact{
		ID:                  uuid.New(),
		ContactID:           contactID,
		UserID:              userID,
		Type:                typ,
		Content:             "seeded content",
		TranscriptionStatus: trStatus,
		ParsingStatus:       parStatus,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO artifacts (id, contact_id, user_id, type, content, transcription_status, ai_parsing_status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.ContactID, a.UserID, a.Type.String(), a.Content,
		a.TranscriptionStatus.String(), a.ParsingStatus.String(),
	)
	if err != nil {
		t.Fatalf("seed artifact: %v", err)
	}

	return a
}
