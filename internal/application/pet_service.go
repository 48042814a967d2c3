package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	groomingDomain "github.com/golden-fur/grooming-records/internal/domain/grooming"
	petDomain "github.com/golden-fur/grooming-records/internal/domain/pet"
)

// CreatePetRequest is the request DTO for creating a pet profile.
type CreatePetRequest struct {
	PetName       string `json:"pet_name" binding:"required"`
	Breed         string `json:"breed" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	RecordNumber  string `json:"record_number" binding:"required"`
}

// UpdatePetRequest is the request DTO for updating a pet profile. Every
// mutable field is replaced; this is a full update, not a patch.
type UpdatePetRequest struct {
	PetName       string `json:"pet_name" binding:"required"`
	Breed         string `json:"breed" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	RecordNumber  string `json:"record_number" binding:"required"`
}

// PetDTO is the API response representation of a pet profile.
type PetDTO struct {
	ID            uuid.UUID `json:"id"`
	PetName       string    `json:"pet_name"`
	Breed         string    `json:"breed"`
	CustomerName  string    `json:"customer_name"`
	Email         string    `json:"email,omitempty"`
	ContactNumber string    `json:"contact_number,omitempty"`
	RecordNumber  string    `json:"record_number"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PetWithHistoryDTO is a pet profile with its grooming history attached,
// most recent visit first.
type PetWithHistoryDTO struct {
	PetDTO
	Records []GroomingRecordDTO `json:"records"`
}

// PetService implements use cases for pet profile management. Read
// operations compose the profile with its grooming history so the
// presentation layer renders a card from a single response.
type PetService struct {
	pets     petDomain.PetRepository
	grooming groomingDomain.GroomingRepository
	logger   *zap.Logger
}

// NewPetService creates a new PetService.
func NewPetService(
	pets petDomain.PetRepository,
	grooming groomingDomain.GroomingRepository,
	logger *zap.Logger,
) *PetService {
	return &PetService{pets: pets, grooming: grooming, logger: logger}
}

// CreatePet creates a new pet profile. No history is attached; a new
// profile has none.
func (s *PetService) CreatePet(ctx context.Context, req CreatePetRequest) (*PetDTO, error) {
	p, err := petDomain.NewPet(
		req.PetName, req.Breed, req.CustomerName,
		req.Email, req.ContactNumber, req.RecordNumber,
	)
	if err != nil {
		return nil, err
	}

	if err := s.pets.Save(ctx, p); err != nil {
		s.logger.Error("failed to create pet", zap.Error(err))
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}

	s.logger.Info("pet profile created",
		zap.String("pet_id", p.ID().String()),
		zap.String("record_number", p.RecordNumber()),
	)
	result := toPetDTO(p)
	return &result, nil
}

// UpdatePet replaces every mutable field of an existing pet profile.
func (s *PetService) UpdatePet(ctx context.Context, petID uuid.UUID, req UpdatePetRequest) (*PetDTO, error) {
	p, err := s.pets.FindByID(ctx, petID)
	if err != nil {
		return nil, err
	}

	if err := p.Update(
		req.PetName, req.Breed, req.CustomerName,
		req.Email, req.ContactNumber, req.RecordNumber,
	); err != nil {
		return nil, err
	}

	if err := s.pets.Update(ctx, p); err != nil {
		s.logger.Error("failed to update pet", zap.Error(err))
		return nil, err
	}

	s.logger.Info("pet profile updated", zap.String("pet_id", petID.String()))
	result := toPetDTO(p)
	return &result, nil
}

// DeletePet removes a pet profile and its entire grooming history in one
// atomic unit. Deleting a missing id succeeds without effect.
func (s *PetService) DeletePet(ctx context.Context, petID uuid.UUID) error {
	if err := s.pets.Delete(ctx, petID); err != nil {
		s.logger.Error("failed to delete pet", zap.Error(err))
		return err
	}

	s.logger.Info("pet profile deleted", zap.String("pet_id", petID.String()))
	return nil
}

// GetPet returns a single pet profile with its grooming history.
func (s *PetService) GetPet(ctx context.Context, petID uuid.UUID) (*PetWithHistoryDTO, error) {
	p, err := s.pets.FindByID(ctx, petID)
	if err != nil {
		return nil, err
	}

	result, err := s.attachHistory(ctx, p)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListPets returns every pet profile with history, most recently updated
// first.
func (s *PetService) ListPets(ctx context.Context) ([]PetWithHistoryDTO, error) {
	pets, err := s.pets.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.attachHistoryAll(ctx, pets)
}

// SearchPets returns matching pet profiles with history, most recently
// updated first. The term must not be blank; the HTTP boundary routes
// blank terms to ListPets instead.
func (s *PetService) SearchPets(ctx context.Context, term string) ([]PetWithHistoryDTO, error) {
	pets, err := s.pets.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return s.attachHistoryAll(ctx, pets)
}

// RecordNumberExists reports whether the record number is already in use.
// The check is advisory: the store never enforces uniqueness, the
// presentation layer decides whether to warn and proceed.
func (s *PetService) RecordNumberExists(ctx context.Context, value string) (bool, error) {
	return s.pets.RecordNumberExists(ctx, value)
}

// GetRecordNumbers returns every known record number for duplicate
// suggestions. This feed is advisory only, so a storage failure degrades
// to an empty list instead of propagating.
func (s *PetService) GetRecordNumbers(ctx context.Context) []string {
	numbers, err := s.pets.DistinctRecordNumbers(ctx)
	if err != nil {
		s.logger.Warn("failed to list record numbers, returning empty set", zap.Error(err))
		return []string{}
	}
	if numbers == nil {
		numbers = []string{}
	}
	return numbers
}

func (s *PetService) attachHistory(ctx context.Context, p *petDomain.Pet) (PetWithHistoryDTO, error) {
	records, err := s.grooming.FindByPetID(ctx, p.ID())
	if err != nil {
		return PetWithHistoryDTO{}, fmt.Errorf("failed to load grooming history: %w", err)
	}

	dtos := make([]GroomingRecordDTO, len(records))
	for i, record := range records {
		dtos[i] = toGroomingRecordDTO(record)
	}
	return PetWithHistoryDTO{PetDTO: toPetDTO(p), Records: dtos}, nil
}

func (s *PetService) attachHistoryAll(ctx context.Context, pets []*petDomain.Pet) ([]PetWithHistoryDTO, error) {
	results := make([]PetWithHistoryDTO, len(pets))
	for i, p := range pets {
		result, err := s.attachHistory(ctx, p)
		if err != nil {
			return nil, err
		}
		results[i] = result
	}
	return results, nil
}

func toPetDTO(p *petDomain.Pet) PetDTO {
	return PetDTO{
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
