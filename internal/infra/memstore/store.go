// Package memstore is the in-memory object store. It is populated once and
// never mutated afterwards.
package memstore

import (
	"fmt"
	"iter"
	"slices"

	"github.com/aalvaropc/querylab/internal/domain"
	"github.com/aalvaropc/querylab/internal/ports"
	"github.com/aalvaropc/querylab/internal/query"
)

// BuiltinSource names the data source of a store built with New.
const BuiltinSource = "builtin"

type Store struct {
	people     []domain.Person
	hairColors []domain.HairColor
	ratings    []domain.MpaaRating
	source     string
}

var _ ports.ObjectStore = (*Store)(nil)

// New returns a store holding the built-in dataset.
func New() *Store {
	ds := builtinDataset()
	return &Store{
		people:     ds.People,
		hairColors: ds.HairColors,
		ratings:    ds.MpaaRatings,
		source:     BuiltinSource,
	}
}

// FromDataset builds a store from ds. IDs must be unique within each collection
// and rating codes must be unique.
func FromDataset(ds domain.Dataset, source string) (*Store, error) {
	if err := validate(ds); err != nil {
		return nil, &domain.OpError{
			Op:   "memstore.from_dataset",
			Kind: domain.KindInvalidConfig,
			Path: source,
			Err:  err,
		}
	}
	return &Store{
		people:     clonePeople(ds.People),
		hairColors: slices.Clone(ds.HairColors),
		ratings:    slices.Clone(ds.MpaaRatings),
		source:     source,
	}, nil
}

// People yields copies; writing through a yielded person's optional fields
// does not reach the store.
func (s *Store) People() iter.Seq[domain.Person] {
	return query.Select(query.From(s.people), domain.Person.Clone)
}

func (s *Store) HairColors() iter.Seq[domain.HairColor]   { return query.From(s.hairColors) }
func (s *Store) MpaaRatings() iter.Seq[domain.MpaaRating] { return query.From(s.ratings) }

// Source is BuiltinSource or the path the dataset was loaded from.
func (s *Store) Source() string { return s.source }

func (s *Store) HairColor(id *int) (domain.HairColor, error) {
	if id == nil {
		return domain.HairColor{}, &domain.OpError{
			Op:   "memstore.hair_color",
			Kind: domain.KindInvalidKey,
			Err:  fmt.Errorf("hair color id is unset: %w", domain.ErrInvalidKey),
		}
	}

	hc, ok := query.FirstOrDefault(s.HairColors(), func(h domain.HairColor) bool { return h.ID == *id })
	if !ok {
		return domain.HairColor{}, &domain.OpError{
			Op:   "memstore.hair_color",
			Kind: domain.KindInvalidKey,
			Err:  fmt.Errorf("hair color id %d: %w", *id, domain.ErrInvalidKey),
		}
	}
	return hc, nil
}

func (s *Store) Snapshot() domain.Dataset {
	return domain.Dataset{
		People:      clonePeople(s.people),
		HairColors:  slices.Clone(s.hairColors),
		MpaaRatings: slices.Clone(s.ratings),
	}
}

func clonePeople(in []domain.Person) []domain.Person {
	return query.ToSlice(query.Select(query.From(in), domain.Person.Clone))
}

func validate(ds domain.Dataset) error {
	seen := map[int]bool{}
	for i, p := range ds.People {
		if seen[p.ID] {
			return fmt.Errorf("field people[%d].id: duplicate id %d: %w", i, p.ID, domain.ErrInvalidConfig)
		}
		seen[p.ID] = true
	}

	seen = map[int]bool{}
	for i, h := range ds.HairColors {
		if seen[h.ID] {
			return fmt.Errorf("field hair_colors[%d].id: duplicate id %d: %w", i, h.ID, domain.ErrInvalidConfig)
		}
		seen[h.ID] = true
	}

	codes := map[string]bool{}
	for i, r := range ds.MpaaRatings {
		if codes[r.Code] {
			return fmt.Errorf("field mpaa_ratings[%d].code: duplicate code %q: %w", i, r.Code, domain.ErrInvalidConfig)
		}
		codes[r.Code] = true
	}
	return nil
}
