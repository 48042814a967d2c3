package pet

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/golden-fur/grooming-records/internal/domain"
)

// Pet is the aggregate root for a customer's animal profile.
//
// The record number is a business-assigned tag printed on the physical
// customer card. It is required but deliberately not unique: the salon
// reuses numbers for reissued tags, so duplicate checking stays advisory
// (see Repository.RecordNumberExists).
type Pet struct {
	id            uuid.UUID
	petName       string
	breed         string
	customerName  string
	email         string
	contactNumber string
	recordNumber  string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewPet creates a new pet profile with validated fields.
func NewPet(petName, breed, customerName, email, contactNumber, recordNumber string) (*Pet, error) {
	if err := validateFields(petName, breed, customerName, recordNumber); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Pet{
		id:            uuid.New(),
		petName:       strings.TrimSpace(petName),
		breed:         strings.TrimSpace(breed),
		customerName:  strings.TrimSpace(customerName),
		email:         strings.TrimSpace(email),
		contactNumber: strings.TrimSpace(contactNumber),
		recordNumber:  strings.TrimSpace(recordNumber),
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Reconstruct rebuilds a Pet from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	petName, breed, customerName, email, contactNumber, recordNumber string,
	createdAt, updatedAt time.Time,
) *Pet {
	return &Pet{
		id:            id,
		petName:       petName,
		breed:         breed,
		customerName:  customerName,
		email:         email,
		contactNumber: contactNumber,
		recordNumber:  recordNumber,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// --- Getters ---

func (p *Pet) ID() uuid.UUID         { return p.id }
func (p *Pet) PetName() string       { return p.petName }
func (p *Pet) Breed() string         { return p.breed }
func (p *Pet) CustomerName() string  { return p.customerName }
func (p *Pet) Email() string         { return p.email }
func (p *Pet) ContactNumber() string { return p.contactNumber }
func (p *Pet) RecordNumber() string  { return p.recordNumber }
func (p *Pet) CreatedAt() time.Time  { return p.createdAt }
func (p *Pet) UpdatedAt() time.Time  { return p.updatedAt }

// --- Behavior ---

// Update replaces every mutable field and refreshes the updated-at
// timestamp. The profile is left untouched when validation fails.
func (p *Pet) Update(petName, breed, customerName, email, contactNumber, recordNumber string) error {
	if err := validateFields(petName, breed, customerName, recordNumber); err != nil {
		return err
	}

	p.petName = strings.TrimSpace(petName)
	p.breed = strings.TrimSpace(breed)
	p.customerName = strings.TrimSpace(customerName)
	p.email = strings.TrimSpace(email)
	p.contactNumber = strings.TrimSpace(contactNumber)
	p.recordNumber = strings.TrimSpace(recordNumber)
	p.updatedAt = time.Now().UTC()
	return nil
}

func validateFields(petName, breed, customerName, recordNumber string) error {
	if strings.TrimSpace(petName) == "" {
		return domain.NewValidationError("pet name is required")
	}
	if strings.TrimSpace(breed) == "" {
		return domain.NewValidationError("breed is required")
	}
	if strings.TrimSpace(customerName) == "" {
		return domain.NewValidationError("customer name is required")
	}
	if strings.TrimSpace(recordNumber) == "" {
		return domain.NewValidationError("record number is required")
	}
	return nil
}
