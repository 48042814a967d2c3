package pet

import (
	"context"

	"github.com/google/uuid"
)

// PetRepository defines persistence operations for pet profiles.
type PetRepository interface {
	Save(ctx context.Context, pet *Pet) error
	FindByID(ctx context.Context, id uuid.UUID) (*Pet, error)

	// FindAll returns every profile ordered by most recently updated first.
	FindAll(ctx context.Context) ([]*Pet, error)

	// Search matches term as a case-insensitive substring of the pet name,
	// customer name or record number. Callers must not pass a blank term;
	// an empty pattern matches everything.
	Search(ctx context.Context, term string) ([]*Pet, error)

	Update(ctx context.Context, pet *Pet) error

	// Delete removes the profile and all of its grooming records in a
	// single atomic unit. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error

	// RecordNumberExists reports whether any profile carries the given
	// record number. Blank input always yields false.
	RecordNumberExists(ctx context.Context, value string) (bool, error)

	// DistinctRecordNumbers returns every non-blank record number in
	// ascending order.
	DistinctRecordNumbers(ctx context.Context) ([]string, error)
}
