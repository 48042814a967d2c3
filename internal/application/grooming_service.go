package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/golden-fur/grooming-records/internal/domain"
	groomingDomain "github.com/golden-fur/grooming-records/internal/domain/grooming"
	petDomain "github.com/golden-fur/grooming-records/internal/domain/pet"
)

// groomingDateLayout is the wire format for visit dates.
const groomingDateLayout = "2006-01-02"

// CreateGroomingRecordRequest is the request DTO for recording a visit.
type CreateGroomingRecordRequest struct {
	PetID        uuid.UUID `json:"pet_id" binding:"required"`
	GroomingDate string    `json:"grooming_date" binding:"required"`
	Size         string    `json:"size" binding:"required"`
	Groomer      string    `json:"groomer" binding:"required"`
	HairStyle    string    `json:"hair_style"`
}

// UpdateGroomingRecordRequest is the request DTO for updating a visit.
// All visit fields are replaced; the owning pet cannot change.
type UpdateGroomingRecordRequest struct {
	GroomingDate string `json:"grooming_date" binding:"required"`
	Size         string `json:"size" binding:"required"`
	Groomer      string `json:"groomer" binding:"required"`
	HairStyle    string `json:"hair_style"`
}

// GroomingRecordDTO is the API response representation of a grooming
// visit.
type GroomingRecordDTO struct {
	ID           uuid.UUID `json:"id"`
	PetID        uuid.UUID `json:"pet_id"`
	GroomingDate string    `json:"grooming_date"`
	Size         string    `json:"size"`
	Groomer      string    `json:"groomer"`
	HairStyle    string    `json:"hair_style,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GroomingService implements use cases for grooming visit records.
type GroomingService struct {
	records groomingDomain.GroomingRepository
	pets    petDomain.PetRepository
	logger  *zap.Logger
}

// NewGroomingService creates a new GroomingService.
func NewGroomingService(
	records groomingDomain.GroomingRepository,
	pets petDomain.PetRepository,
	logger *zap.Logger,
) *GroomingService {
	return &GroomingService{records: records, pets: pets, logger: logger}
}

// CreateRecord records a grooming visit for an existing pet. The owning
// pet is resolved before any write so a record never references a
// missing profile.
func (s *GroomingService) CreateRecord(ctx context.Context, req CreateGroomingRecordRequest) (*GroomingRecordDTO, error) {
	date, err := parseGroomingDate(req.GroomingDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.pets.FindByID(ctx, req.PetID); err != nil {
		return nil, err
	}

	record, err := groomingDomain.NewRecord(req.PetID, date, req.Size, req.Groomer, req.HairStyle)
	if err != nil {
		return nil, err
	}

	if err := s.records.Save(ctx, record); err != nil {
		s.logger.Error("failed to create grooming record", zap.Error(err))
		return nil, err
	}

	s.logger.Info("grooming record created",
		zap.String("record_id", record.ID().String()),
		zap.String("pet_id", req.PetID.String()),
	)
	result := toGroomingRecordDTO(record)
	return &result, nil
}

// UpdateRecord replaces the visit fields of an existing grooming record.
func (s *GroomingService) UpdateRecord(ctx context.Context, recordID uuid.UUID, req UpdateGroomingRecordRequest) (*GroomingRecordDTO, error) {
	date, err := parseGroomingDate(req.GroomingDate)
	if err != nil {
		return nil, err
	}

	record, err := s.records.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if err := record.Update(date, req.Size, req.Groomer, req.HairStyle); err != nil {
		return nil, err
	}

	if err := s.records.Update(ctx, record); err != nil {
		s.logger.Error("failed to update grooming record", zap.Error(err))
		return nil, err
	}

	s.logger.Info("grooming record updated", zap.String("record_id", recordID.String()))
	result := toGroomingRecordDTO(record)
	return &result, nil
}

// DeleteRecord removes a grooming visit. Deleting a missing id succeeds
// without effect.
func (s *GroomingService) DeleteRecord(ctx context.Context, recordID uuid.UUID) error {
	if err := s.records.Delete(ctx, recordID); err != nil {
		s.logger.Error("failed to delete grooming record", zap.Error(err))
		return err
	}

	s.logger.Info("grooming record deleted", zap.String("record_id", recordID.String()))
	return nil
}

// ListByPet returns the grooming history for a pet, most recent visit
// first. The pet is resolved first so a missing id yields NotFound
// rather than an empty history.
func (s *GroomingService) ListByPet(ctx context.Context, petID uuid.UUID) ([]GroomingRecordDTO, error) {
	if _, err := s.pets.FindByID(ctx, petID); err != nil {
		return nil, err
	}

	records, err := s.records.FindByPetID(ctx, petID)
	if err != nil {
		return nil, err
	}

	dtos := make([]GroomingRecordDTO, len(records))
	for i, record := range records {
		dtos[i] = toGroomingRecordDTO(record)
	}
	return dtos, nil
}

func parseGroomingDate(value string) (time.Time, error) {
	date, err := time.Parse(groomingDateLayout, value)
	if err != nil {
		return time.Time{}, domain.NewValidationError("grooming date must be YYYY-MM-DD")
	}
	return date, nil
}

func toGroomingRecordDTO(record *groomingDomain.Record) GroomingRecordDTO {
	return GroomingRecordDTO{
		ID:           record.ID(),
		PetID:        record.PetID(),
		GroomingDate: record.GroomingDate().Format(groomingDateLayout),
		Size:         record.Size(),
		Groomer:      record.Groomer(),
		HairStyle:    record.HairStyle(),
		CreatedAt:    record.CreatedAt(),
		UpdatedAt:    record.UpdatedAt(),
	}
}
