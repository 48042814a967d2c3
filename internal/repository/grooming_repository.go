package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/golden-fur/grooming-records/internal/domain"
	groomingDomain "github.com/golden-fur/grooming-records/internal/domain/grooming"
)

// GroomingModel is the GORM model for the grooming_records table. The
// pet_id foreign key carries ON DELETE CASCADE in the migrated schema;
// the cascade itself is performed transactionally by GormPetRepository
// so the behavior does not depend on the SQLite foreign_keys pragma.
type GroomingModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PetID        uuid.UUID `gorm:"type:uuid;not null;index"`
	GroomingDate time.Time `gorm:"type:date;not null"`
	Size         string    `gorm:"type:varchar(50);not null"`
	Groomer      string    `gorm:"type:varchar(100);not null"`
	HairStyle    string    `gorm:"type:varchar(100)"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (GroomingModel) TableName() string { return "grooming_records" }

// groomingColumns are the mutable columns replaced on every update.
var groomingColumns = []string{
	"grooming_date", "size", "groomer", "hair_style", "updated_at",
}

// GormGroomingRepository implements GroomingRepository using GORM.
type GormGroomingRepository struct {
	db *gorm.DB
}

// NewGormGroomingRepository creates a new GormGroomingRepository.
func NewGormGroomingRepository(db *gorm.DB) *GormGroomingRepository {
	return &GormGroomingRepository{db: db}
}

// Save persists a new grooming record.
func (r *GormGroomingRepository) Save(ctx context.Context, record *groomingDomain.Record) error {
	model := toGroomingModel(record)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.NewStorageError("save grooming record", err)
	}
	return nil
}

// FindByID retrieves a grooming record by its unique identifier.
func (r *GormGroomingRepository) FindByID(ctx context.Context, id uuid.UUID) (*groomingDomain.Record, error) {
	var model GroomingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("GroomingRecord", id.String())
		}
		return nil, domain.NewStorageError("find grooming record", err)
	}
	return toGroomingDomain(&model), nil
}

// FindByPetID returns all grooming records for a pet, most recent visit
// first.
func (r *GormGroomingRepository) FindByPetID(ctx context.Context, petID uuid.UUID) ([]*groomingDomain.Record, error) {
	var models []GroomingModel
	if err := r.db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Order("grooming_date DESC").
		Find(&models).Error; err != nil {
		return nil, domain.NewStorageError("list grooming records", err)
	}

	records := make([]*groomingDomain.Record, len(models))
	for i, m := range models {
		records[i] = toGroomingDomain(&m)
	}
	return records, nil
}

// Update replaces the visit columns of an existing grooming record.
func (r *GormGroomingRepository) Update(ctx context.Context, record *groomingDomain.Record) error {
	model := toGroomingModel(record)

	result := r.db.WithContext(ctx).
		Model(&GroomingModel{}).
		Where("id = ?", model.ID).
		Select(groomingColumns).
		Updates(&model)

	if result.Error != nil {
		return domain.NewStorageError("update grooming record", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("GroomingRecord", record.ID().String())
	}
	return nil
}

// Delete removes a grooming record. Deleting a missing id is a no-op.
func (r *GormGroomingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&GroomingModel{}).Error; err != nil {
		return domain.NewStorageError("delete grooming record", err)
	}
	return nil
}

// --- Conversions ---

func toGroomingModel(record *groomingDomain.Record) GroomingModel {
	return GroomingModel{
		ID:           record.ID(),
		PetID:        record.PetID(),
		GroomingDate: record.GroomingDate(),
		Size:         record.Size(),
		Groomer:      record.Groomer(),
		HairStyle:    record.HairStyle(),
		CreatedAt:    record.CreatedAt(),
		UpdatedAt:    record.UpdatedAt(),
	}
}

func toGroomingDomain(m *GroomingModel) *groomingDomain.Record {
	return groomingDomain.Reconstruct(
		m.ID,
		m.PetID,
		m.GroomingDate,
		m.Size,
		m.Groomer,
		m.HairStyle,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
