package flow

import "github.com/ytget/places-guide/internal/model"

// PlaceSummary is what a list row shows for a place
type PlaceSummary struct {
	ID       int
	Name     string
	Rating   float32
	ImageRef string
}

// PlaceListState is the render snapshot of the place list screen.
// An empty Places slice is a valid state.
type PlaceListState struct {
	Category string
	Places   []PlaceSummary
}

// Empty reports whether the category has no places
func (s PlaceListState) Empty() bool {
	return len(s.Places) == 0
}

// PlaceListFlow presents the places of one category
type PlaceListFlow struct {
	catalog Catalog
	state   PlaceListState
	loaded  bool
}

// NewPlaceListFlow creates a place list flow
func NewPlaceListFlow(catalog Catalog) *PlaceListFlow {
	return &PlaceListFlow{catalog: catalog}
}

// Activate loads the places of category. The catalog is static, so activating
// again with the same category keeps the current snapshot.
func (f *PlaceListFlow) Activate(category string) {
	if f.loaded && f.state.Category == category {
		return
	}

	places := f.catalog.PlacesByCategory(category)
	summaries := make([]PlaceSummary, 0, len(places))
	for _, p := range places {
		summaries = append(summaries, PlaceSummary{
			ID:       p.ID,
			Name:     p.Name,
			Rating:   p.Rating,
			ImageRef: p.ImageRef,
		})
	}

	f.state = PlaceListState{Category: category, Places: summaries}
	f.loaded = true
}

// State returns the current render snapshot
func (f *PlaceListFlow) State() PlaceListState {
	return f.state
}

// Select turns a chosen place into a navigation intent
func (f *PlaceListFlow) Select(id int) model.Intent {
	return model.Push(model.PlaceDetailScreen(id))
}
