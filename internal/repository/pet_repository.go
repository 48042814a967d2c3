package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/golden-fur/grooming-records/internal/domain"
	petDomain "github.com/golden-fur/grooming-records/internal/domain/pet"
)

// PetModel is the GORM model for the pets table.
type PetModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	PetName       string    `gorm:"type:varchar(100);not null"`
	Breed         string    `gorm:"type:varchar(100);not null"`
	CustomerName  string    `gorm:"type:varchar(100);not null"`
	Email         string    `gorm:"type:varchar(255)"`
	ContactNumber string    `gorm:"type:varchar(30)"`
	RecordNumber  string    `gorm:"type:varchar(50);not null;index"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (PetModel) TableName() string { return "pets" }

// petColumns are the mutable columns replaced on every update.
var petColumns = []string{
	"pet_name", "breed", "customer_name",
	"email", "contact_number", "record_number", "updated_at",
}

// GormPetRepository implements PetRepository using GORM.
type GormPetRepository struct {
	db *gorm.DB
}

// NewGormPetRepository creates a new GormPetRepository.
func NewGormPetRepository(db *gorm.DB) *GormPetRepository {
	return &GormPetRepository{db: db}
}

// Save persists a new pet profile.
func (r *GormPetRepository) Save(ctx context.Context, p *petDomain.Pet) error {
	model := toPetModel(p)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.NewStorageError("save pet", err)
	}
	return nil
}

// FindByID retrieves a pet profile by its unique identifier.
func (r *GormPetRepository) FindByID(ctx context.Context, id uuid.UUID) (*petDomain.Pet, error) {
	var model PetModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Pet", id.String())
		}
		return nil, domain.NewStorageError("find pet", err)
	}
	return toPetDomain(&model), nil
}

// FindAll returns every pet profile, most recently updated first.
func (r *GormPetRepository) FindAll(ctx context.Context) ([]*petDomain.Pet, error) {
	var models []PetModel
	if err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Find(&models).Error; err != nil {
		return nil, domain.NewStorageError("list pets", err)
	}
	return toPetDomainSlice(models), nil
}

// Search returns pets whose name, customer name or record number contains
// term as a case-insensitive substring, most recently updated first.
func (r *GormPetRepository) Search(ctx context.Context, term string) ([]*petDomain.Pet, error) {
	pattern := "%" + strings.ToLower(term) + "%"

	var models []PetModel
	if err := r.db.WithContext(ctx).
		Where(
			"LOWER(pet_name) LIKE ? OR LOWER(customer_name) LIKE ? OR LOWER(record_number) LIKE ?",
			pattern, pattern, pattern,
		).
		Order("updated_at DESC").
		Find(&models).Error; err != nil {
		return nil, domain.NewStorageError("search pets", err)
	}
	return toPetDomainSlice(models), nil
}

// Update replaces all mutable columns of an existing pet profile.
func (r *GormPetRepository) Update(ctx context.Context, p *petDomain.Pet) error {
	model := toPetModel(p)

	result := r.db.WithContext(ctx).
		Model(&PetModel{}).
		Where("id = ?", model.ID).
		Select(petColumns).
		Updates(&model)

	if result.Error != nil {
		return domain.NewStorageError("update pet", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Pet", p.ID().String())
	}
	return nil
}

// Delete removes a pet profile and all of its grooming records in one
// transaction. Deleting a missing id is a no-op, not an error.
func (r *GormPetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pet_id = ?", id).Delete(&GroomingModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&PetModel{}).Error
	})
	if err != nil {
		return domain.NewStorageError("delete pet", err)
	}
	return nil
}

// RecordNumberExists reports whether any profile carries the given record
// number. Blank input always yields false.
func (r *GormPetRepository) RecordNumberExists(ctx context.Context, value string) (bool, error) {
	if strings.TrimSpace(value) == "" {
		return false, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&PetModel{}).
		Where("record_number = ?", value).
		Count(&count).Error; err != nil {
		return false, domain.NewStorageError("check record number", err)
	}
	return count > 0, nil
}

// DistinctRecordNumbers returns every non-blank record number in ascending
// order.
func (r *GormPetRepository) DistinctRecordNumbers(ctx context.Context) ([]string, error) {
	var numbers []string
	if err := r.db.WithContext(ctx).
		Model(&PetModel{}).
		Distinct("record_number").
		Where("record_number <> ''").
		Order("record_number ASC").
		Pluck("record_number", &numbers).Error; err != nil {
		return nil, domain.NewStorageError("list record numbers", err)
	}
	return numbers, nil
}

// --- Conversions ---

func toPetModel(p *petDomain.Pet) PetModel {
	return PetModel{
		ID:            p.ID(),
		PetName:       p.PetName(),
		Breed:         p.Breed(),
		CustomerName:  p.CustomerName(),
		Email:         p.Email(),
		ContactNumber: p.ContactNumber(),
		RecordNumber:  p.RecordNumber(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func toPetDomain(m *PetModel) *petDomain.Pet {
	return petDomain.Reconstruct(
		m.ID,
		m.PetName, m.Breed, m.CustomerName,
		m.Email, m.ContactNumber, m.RecordNumber,
		m.CreatedAt, m.UpdatedAt,
	)
}

func toPetDomainSlice(models []PetModel) []*petDomain.Pet {
	pets := make([]*petDomain.Pet, len(models))
	for i, m := range models {
		pets[i] = toPetDomain(&m)
	}
	return pets
}
