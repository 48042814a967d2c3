package application

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/golden-fur/grooming-records/internal/domain"
	groomingDomain "github.com/golden-fur/grooming-records/internal/domain/grooming"
	petDomain "github.com/golden-fur/grooming-records/internal/domain/pet"
)

func newUUID() uuid.UUID { return uuid.New() }

// fakePetRepo is an in-memory PetRepository for service tests. It hands
// out copies so callers never share state with the store.
type fakePetRepo struct {
	pets        map[uuid.UUID]*petDomain.Pet
	searchTerms []string
	distinctErr error
}

func newFakePetRepo() *fakePetRepo {
	return &fakePetRepo{pets: map[uuid.UUID]*petDomain.Pet{}}
}

func copyPet(p *petDomain.Pet) *petDomain.Pet {
	return petDomain.Reconstruct(
		p.ID(),
		p.PetName(), p.Breed(), p.CustomerName(),
		p.Email(), p.ContactNumber(), p.RecordNumber(),
		p.CreatedAt(), p.UpdatedAt(),
	)
}

func (f *fakePetRepo) Save(_ context.Context, p *petDomain.Pet) error {
	f.pets[p.ID()] = copyPet(p)
	return nil
}

func (f *fakePetRepo) FindByID(_ context.Context, id uuid.UUID) (*petDomain.Pet, error) {
	p, ok := f.pets[id]
	if !ok {
		return nil, domain.NewNotFoundError("Pet", id.String())
	}
	return copyPet(p), nil
}

func (f *fakePetRepo) FindAll(_ context.Context) ([]*petDomain.Pet, error) {
	return f.sorted(func(*petDomain.Pet) bool { return true }), nil
}

func (f *fakePetRepo) Search(_ context.Context, term string) ([]*petDomain.Pet, error) {
	f.searchTerms = append(f.searchTerms, term)
	needle := strings.ToLower(term)
	return f.sorted(func(p *petDomain.Pet) bool {
		return strings.Contains(strings.ToLower(p.PetName()), needle) ||
			strings.Contains(strings.ToLower(p.CustomerName()), needle) ||
			strings.Contains(strings.ToLower(p.RecordNumber()), needle)
	}), nil
}

func (f *fakePetRepo) Update(_ context.Context, p *petDomain.Pet) error {
	if _, ok := f.pets[p.ID()]; !ok {
		return domain.NewNotFoundError("Pet", p.ID().String())
	}
	f.pets[p.ID()] = copyPet(p)
	return nil
}

func (f *fakePetRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.pets, id)
	return nil
}

func (f *fakePetRepo) RecordNumberExists(_ context.Context, value string) (bool, error) {
	if strings.TrimSpace(value) == "" {
		return false, nil
	}
	for _, p := range f.pets {
		if p.RecordNumber() == value {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePetRepo) DistinctRecordNumbers(_ context.Context) ([]string, error) {
	if f.distinctErr != nil {
		return nil, f.distinctErr
	}
	seen := map[string]struct{}{}
	var numbers []string
	for _, p := range f.pets {
		if _, ok := seen[p.RecordNumber()]; ok {
			continue
		}
		seen[p.RecordNumber()] = struct{}{}
		numbers = append(numbers, p.RecordNumber())
	}
	sort.Strings(numbers)
	return numbers, nil
}

func (f *fakePetRepo) sorted(match func(*petDomain.Pet) bool) []*petDomain.Pet {
	var out []*petDomain.Pet
	for _, p := range f.pets {
		if match(p) {
			out = append(out, copyPet(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt().After(out[j].UpdatedAt())
	})
	return out
}

// fakeGroomingRepo is an in-memory GroomingRepository for service tests.
type fakeGroomingRepo struct {
	records map[uuid.UUID]*groomingDomain.Record
}

func newFakeGroomingRepo() *fakeGroomingRepo {
	return &fakeGroomingRepo{records: map[uuid.UUID]*groomingDomain.Record{}}
}

func copyRecord(r *groomingDomain.Record) *groomingDomain.Record {
	return groomingDomain.Reconstruct(
		r.ID(), r.PetID(),
		r.GroomingDate(),
		r.Size(), r.Groomer(), r.HairStyle(),
		r.CreatedAt(), r.UpdatedAt(),
	)
}

func (f *fakeGroomingRepo) Save(_ context.Context, r *groomingDomain.Record) error {
	f.records[r.ID()] = copyRecord(r)
	return nil
}

func (f *fakeGroomingRepo) FindByID(_ context.Context, id uuid.UUID) (*groomingDomain.Record, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, domain.NewNotFoundError("GroomingRecord", id.String())
	}
	return copyRecord(r), nil
}

func (f *fakeGroomingRepo) FindByPetID(_ context.Context, petID uuid.UUID) ([]*groomingDomain.Record, error) {
	var out []*groomingDomain.Record
	for _, r := range f.records {
		if r.PetID() == petID {
			out = append(out, copyRecord(r))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GroomingDate().After(out[j].GroomingDate())
	})
	return out, nil
}

func (f *fakeGroomingRepo) Update(_ context.Context, r *groomingDomain.Record) error {
	if _, ok := f.records[r.ID()]; !ok {
		return domain.NewNotFoundError("GroomingRecord", r.ID().String())
	}
	f.records[r.ID()] = copyRecord(r)
	return nil
}

func (f *fakeGroomingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.records, id)
	return nil
}
