package handler

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/golden-fur/grooming-records/internal/domain"
	groomingDomain "github.com/golden-fur/grooming-records/internal/domain/grooming"
	petDomain "github.com/golden-fur/grooming-records/internal/domain/pet"
)

// memPetRepo is an in-memory PetRepository backing handler tests. It
// counts Search calls so tests can assert the blank-query routing.
type memPetRepo struct {
	pets        map[uuid.UUID]*petDomain.Pet
	searchTerms []string
}

func newMemPetRepo() *memPetRepo {
	return &memPetRepo{pets: map[uuid.UUID]*petDomain.Pet{}}
}

func (m *memPetRepo) Save(_ context.Context, p *petDomain.Pet) error {
	m.pets[p.ID()] = p
	return nil
}

func (m *memPetRepo) FindByID(_ context.Context, id uuid.UUID) (*petDomain.Pet, error) {
	p, ok := m.pets[id]
	if !ok {
		return nil, domain.NewNotFoundError("Pet", id.String())
	}
	return p, nil
}

func (m *memPetRepo) FindAll(_ context.Context) ([]*petDomain.Pet, error) {
	return m.sorted(func(*petDomain.Pet) bool { return true }), nil
}

func (m *memPetRepo) Search(_ context.Context, term string) ([]*petDomain.Pet, error) {
	m.searchTerms = append(m.searchTerms, term)
	needle := strings.ToLower(term)
	return m.sorted(func(p *petDomain.Pet) bool {
		return strings.Contains(strings.ToLower(p.PetName()), needle) ||
			strings.Contains(strings.ToLower(p.CustomerName()), needle) ||
			strings.Contains(strings.ToLower(p.RecordNumber()), needle)
	}), nil
}

func (m *memPetRepo) Update(_ context.Context, p *petDomain.Pet) error {
	if _, ok := m.pets[p.ID()]; !ok {
		return domain.NewNotFoundError("Pet", p.ID().String())
	}
	m.pets[p.ID()] = p
	return nil
}

func (m *memPetRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.pets, id)
	return nil
}

func (m *memPetRepo) RecordNumberExists(_ context.Context, value string) (bool, error) {
	if strings.TrimSpace(value) == "" {
		return false, nil
	}
	for _, p := range m.pets {
		if p.RecordNumber() == value {
			return true, nil
		}
	}
	return false, nil
}

func (m *memPetRepo) DistinctRecordNumbers(_ context.Context) ([]string, error) {
	seen := map[string]struct{}{}
	var numbers []string
	for _, p := range m.pets {
		if _, ok := seen[p.RecordNumber()]; ok {
			continue
		}
		seen[p.RecordNumber()] = struct{}{}
		numbers = append(numbers, p.RecordNumber())
	}
	sort.Strings(numbers)
	return numbers, nil
}

func (m *memPetRepo) sorted(match func(*petDomain.Pet) bool) []*petDomain.Pet {
	var out []*petDomain.Pet
	for _, p := range m.pets {
		if match(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt().After(out[j].UpdatedAt())
	})
	return out
}

// memGroomingRepo is an in-memory GroomingRepository backing handler tests.
type memGroomingRepo struct {
	records map[uuid.UUID]*groomingDomain.Record
}

func newMemGroomingRepo() *memGroomingRepo {
	return &memGroomingRepo{records: map[uuid.UUID]*groomingDomain.Record{}}
}

func (m *memGroomingRepo) Save(_ context.Context, r *groomingDomain.Record) error {
	m.records[r.ID()] = r
	return nil
}

func (m *memGroomingRepo) FindByID(_ context.Context, id uuid.UUID) (*groomingDomain.Record, error) {
	r, ok := m.records[id]
	if !ok {
		return nil, domain.NewNotFoundError("GroomingRecord", id.String())
	}
	return r, nil
}

func (m *memGroomingRepo) FindByPetID(_ context.Context, petID uuid.UUID) ([]*groomingDomain.Record, error) {
	var out []*groomingDomain.Record
	for _, r := range m.records {
		if r.PetID() == petID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GroomingDate().After(out[j].GroomingDate())
	})
	return out, nil
}

func (m *memGroomingRepo) Update(_ context.Context, r *groomingDomain.Record) error {
	if _, ok := m.records[r.ID()]; !ok {
		return domain.NewNotFoundError("GroomingRecord", r.ID().String())
	}
	m.records[r.ID()] = r
	return nil
}

func (m *memGroomingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.records, id)
	return nil
}
