package grooming

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/golden-fur/grooming-records/internal/domain"
)

// Record is the aggregate root for a single grooming visit. A record is
// exclusively owned by a pet profile and never outlives it.
type Record struct {
	id           uuid.UUID
	petID        uuid.UUID
	groomingDate time.Time
	size         string
	groomer      string
	hairStyle    string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewRecord creates a new grooming visit record with validated fields.
func NewRecord(petID uuid.UUID, groomingDate time.Time, size, groomer, hairStyle string) (*Record, error) {
	if petID == uuid.Nil {
		return nil, domain.NewValidationError("pet ID is required")
	}
	if err := validateVisit(groomingDate, size, groomer); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Record{
		id:           uuid.New(),
		petID:        petID,
		groomingDate: groomingDate,
		size:         strings.TrimSpace(size),
		groomer:      strings.TrimSpace(groomer),
		hairStyle:    strings.TrimSpace(hairStyle),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds a Record from persistence data (no validation).
func Reconstruct(
	id, petID uuid.UUID,
	groomingDate time.Time,
	size, groomer, hairStyle string,
	createdAt, updatedAt time.Time,
) *Record {
	return &Record{
		id:           id,
		petID:        petID,
		groomingDate: groomingDate,
		size:         size,
		groomer:      groomer,
		hairStyle:    hairStyle,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// --- Getters ---

func (r *Record) ID() uuid.UUID           { return r.id }
func (r *Record) PetID() uuid.UUID        { return r.petID }
func (r *Record) GroomingDate() time.Time { return r.groomingDate }
func (r *Record) Size() string            { return r.size }
func (r *Record) Groomer() string         { return r.groomer }
func (r *Record) HairStyle() string       { return r.hairStyle }
func (r *Record) CreatedAt() time.Time    { return r.createdAt }
func (r *Record) UpdatedAt() time.Time    { return r.updatedAt }

// --- Behavior ---

// Update replaces the visit fields and refreshes the updated-at
// timestamp. Identifiers are immutable; a record cannot be moved to a
// different pet.
func (r *Record) Update(groomingDate time.Time, size, groomer, hairStyle string) error {
	if err := validateVisit(groomingDate, size, groomer); err != nil {
		return err
	}

	r.groomingDate = groomingDate
	r.size = strings.TrimSpace(size)
	r.groomer = strings.TrimSpace(groomer)
	r.hairStyle = strings.TrimSpace(hairStyle)
	r.updatedAt = time.Now().UTC()
	return nil
}

func validateVisit(groomingDate time.Time, size, groomer string) error {
	if groomingDate.IsZero() {
		return domain.NewValidationError("grooming date is required")
	}
	if strings.TrimSpace(size) == "" {
		return domain.NewValidationError("size is required")
	}
	if strings.TrimSpace(groomer) == "" {
		return domain.NewValidationError("groomer is required")
	}
	return nil
}
