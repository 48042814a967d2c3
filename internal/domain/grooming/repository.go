package grooming

import (
	"context"

	"github.com/google/uuid"
)

// GroomingRepository defines persistence operations for grooming visit
// records.
type GroomingRepository interface {
	Save(ctx context.Context, record *Record) error
	FindByID(ctx context.Context, id uuid.UUID) (*Record, error)

	// FindByPetID returns all records for a pet ordered by grooming date
	// descending (most recent visit first).
	FindByPetID(ctx context.Context, petID uuid.UUID) ([]*Record, error)

	Update(ctx context.Context, record *Record) error

	// Delete removes the record. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
