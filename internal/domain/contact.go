package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contact is the aggregate the pipeline ultimately feeds. Profile is a
// nested JSON document (objects, arrays, scalars) addressed via dot/index
// field paths such as "family_members.0.name". It is mutated exclusively
// through the reconciliation merge path; any other writer races with the
// pipeline, which is why merges validate against generation-time snapshots.
type Contact struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	DisplayName string
	Profile     map[string]any
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
