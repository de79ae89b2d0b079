package flow

import (
	"testing"

	"github.com/ytget/places-guide/internal/catalog"
	"github.com/ytget/places-guide/internal/model"
)

// countingCatalog wraps a store and counts list queries
type countingCatalog struct {
	*catalog.Store
	listCalls int
}

func (c *countingCatalog) PlacesByCategory(category string) []model.Place {
	c.listCalls++
	return c.Store.PlacesByCategory(category)
}

func TestCategoryFlow(t *testing.T) {
	f := NewCategoryFlow(catalog.Default())

	if len(f.State().Categories) != 0 {
		t.Error("Expected empty state before activation")
	}

	f.Activate()

	categories := f.State().Categories
	if len(categories) != 3 {
		t.Fatalf("Expected 3 categories, got %d", len(categories))
	}

	intent := f.Select(categories[1])
	expected := model.Push(model.PlaceListScreen("Парки"))
	if intent != expected {
		t.Errorf("Select() = %s, expected %s", intent, expected)
	}
}

func TestPlaceListFlow_Restaurants(t *testing.T) {
	f := NewPlaceListFlow(catalog.Default())
	f.Activate("Рестораны")

	state := f.State()
	if state.Category != "Рестораны" {
		t.Errorf("Expected category 'Рестораны', got '%s'", state.Category)
	}

	if len(state.Places) != 1 {
		t.Fatalf("Expected exactly one place, got %d", len(state.Places))
	}

	place := state.Places[0]
	if place.Name != "Ресторан Ramiro" || place.Rating != 4.7 {
		t.Errorf("Expected 'Ресторан Ramiro' rated 4.7, got '%s' rated %v", place.Name, place.Rating)
	}

	if place.ImageRef != catalog.ImageRamiro {
		t.Errorf("Expected image %s, got %s", catalog.ImageRamiro, place.ImageRef)
	}

	intent := f.Select(place.ID)
	if intent != model.Push(model.PlaceDetailScreen(3)) {
		t.Errorf("Select() = %s, expected push details/3", intent)
	}
}

func TestPlaceListFlow_EmptyCategory(t *testing.T) {
	f := NewPlaceListFlow(catalog.Default())
	f.Activate("Unknown")

	state := f.State()
	if !state.Empty() {
		t.Errorf("Expected empty list, got %d places", len(state.Places))
	}
}

func TestPlaceListFlow_NoRefetchForSameCategory(t *testing.T) {
	cat := &countingCatalog{Store: catalog.Default()}
	f := NewPlaceListFlow(cat)

	f.Activate("Парки")
	f.Activate("Парки")
	if cat.listCalls != 1 {
		t.Errorf("Expected 1 query for repeated activation, got %d", cat.listCalls)
	}

	f.Activate("Рестораны")
	if cat.listCalls != 2 {
		t.Errorf("Expected a new query for another category, got %d calls", cat.listCalls)
	}
}

func TestPlaceDetailFlow(t *testing.T) {
	tests := []struct {
		id       int
		found    bool
		expected string
	}{
		{1, true, "Башня Белен"},
		{2, true, "Парк Эдуарда VII"},
		{3, true, "Ресторан Ramiro"},
		{999, false, ""},
		{0, false, ""},
		{InvalidPlaceID, false, ""},
	}

	f := NewPlaceDetailFlow(catalog.Default())
	for _, test := range tests {
		f.Activate(test.id)
		state := f.State()

		if state.RequestedID != test.id {
			t.Errorf("Activate(%d): RequestedID = %d", test.id, state.RequestedID)
		}
		if state.Found != test.found {
			t.Errorf("Activate(%d): Found = %v, expected %v", test.id, state.Found, test.found)
		}
		if state.Detail.Name != test.expected {
			t.Errorf("Activate(%d): Name = '%s', expected '%s'", test.id, state.Detail.Name, test.expected)
		}
	}

	if f.Back() != model.Pop() {
		t.Error("Back() should return a pop intent")
	}
}

func TestParsePlaceID(t *testing.T) {
	tests := []struct {
		raw      string
		expected int
	}{
		{"2", 2},
		{" 3 ", 3},
		{"abc", InvalidPlaceID},
		{"", InvalidPlaceID},
		{"1.5", InvalidPlaceID},
	}

	for _, test := range tests {
		result := ParsePlaceID(test.raw)
		if result != test.expected {
			t.Errorf("ParsePlaceID(%q) = %d, expected %d", test.raw, result, test.expected)
		}
	}
}

func TestRatingText(t *testing.T) {
	tests := []struct {
		rating   float32
		expected string
	}{
		{4.7, "Рейтинг: 4.7"},
		{0, "Рейтинг: 0.0"},
		{5, "Рейтинг: 5.0"},
	}

	for _, test := range tests {
		if result := RatingText(test.rating); result != test.expected {
			t.Errorf("RatingText(%v) = %s, expected %s", test.rating, result, test.expected)
		}
	}
}
