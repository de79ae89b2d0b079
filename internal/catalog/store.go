package catalog

import (
	"errors"
	"fmt"

	"github.com/ytget/places-guide/internal/model"
)

// Validation errors returned by New
var (
	ErrNoCategories      = errors.New("no categories")
	ErrDuplicateCategory = errors.New("duplicate category")
	ErrInvalidID         = errors.New("place id must be positive")
	ErrDuplicateID       = errors.New("duplicate place id")
	ErrUnknownCategory   = errors.New("unknown category")
)

// Store is an immutable, in-memory catalog of places
type Store struct {
	categories []string
	places     []model.Place
	byID       map[int]int // place id -> index in places
	known      map[string]struct{}
}

// New validates the seed data and builds a store. Categories keep the given
// order; places keep insertion order.
func New(categories []string, places []model.Place) (*Store, error) {
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	s := &Store{
		categories: make([]string, 0, len(categories)),
		places:     make([]model.Place, 0, len(places)),
		byID:       make(map[int]int, len(places)),
		known:      make(map[string]struct{}, len(categories)),
	}

	for _, c := range categories {
		if _, dup := s.known[c]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, c)
		}
		s.known[c] = struct{}{}
		s.categories = append(s.categories, c)
	}

	for _, p := range places {
		if p.ID <= 0 {
			return nil, fmt.Errorf("%w: %d (%s)", ErrInvalidID, p.ID, p.Name)
		}
		if _, dup := s.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		if _, ok := s.known[p.Category]; !ok {
			return nil, fmt.Errorf("%w: place %d uses %q", ErrUnknownCategory, p.ID, p.Category)
		}
		s.byID[p.ID] = len(s.places)
		s.places = append(s.places, p)
	}

	return s, nil
}

// Default returns a store built from the compiled-in seed data
func Default() *Store {
	s, err := New(SeedCategories(), SeedPlaces())
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid seed data: %v", err))
	}
	return s
}

// Categories returns the known category names in their fixed order
func (s *Store) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// PlacesByCategory returns every place of category in insertion order.
// Unknown or empty categories yield an empty, non-nil slice.
func (s *Store) PlacesByCategory(category string) []model.Place {
	out := make([]model.Place, 0)
	if !s.HasCategory(category) {
		return out
	}
	for _, p := range s.places {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// PlaceByID returns the place with the given id, or false if there is none
func (s *Store) PlaceByID(id int) (model.Place, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return model.Place{}, false
	}
	return s.places[idx], true
}

// HasCategory reports whether category is one of the enumerated names
func (s *Store) HasCategory(category string) bool {
	_, ok := s.known[category]
	return ok
}

// Len returns the number of places in the catalog
func (s *Store) Len() int {
	return len(s.places)
}
