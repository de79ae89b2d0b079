package flow

import (
	"strconv"
	"strings"

	"github.com/ytget/places-guide/internal/model"
)

// InvalidPlaceID is used for identifiers that could not be parsed
const InvalidPlaceID = -1

// PlaceDetail is the full information shown for a place
type PlaceDetail struct {
	ID          int
	Name        string
	Rating      float32
	Description string
	ImageRef    string
}

// PlaceDetailState is the render snapshot of the detail screen.
// Detail is meaningful only when Found is true.
type PlaceDetailState struct {
	RequestedID int
	Found       bool
	Detail      PlaceDetail
}

// PlaceDetailFlow presents a single place or a not-found state
type PlaceDetailFlow struct {
	catalog Catalog
	state   PlaceDetailState
}

// NewPlaceDetailFlow creates a place detail flow
func NewPlaceDetailFlow(catalog Catalog) *PlaceDetailFlow {
	return &PlaceDetailFlow{catalog: catalog}
}

// Activate looks up place id; absent or non-positive ids yield not-found
func (f *PlaceDetailFlow) Activate(id int) {
	f.state = PlaceDetailState{RequestedID: id}
	if id <= 0 {
		return
	}

	p, ok := f.catalog.PlaceByID(id)
	if !ok {
		return
	}

	f.state.Found = true
	f.state.Detail = PlaceDetail{
		ID:          p.ID,
		Name:        p.Name,
		Rating:      p.Rating,
		Description: p.Description,
		ImageRef:    p.ImageRef,
	}
}

// State returns the current render snapshot
func (f *PlaceDetailFlow) State() PlaceDetailState {
	return f.state
}

// Back returns the only intent this screen can emit
func (f *PlaceDetailFlow) Back() model.Intent {
	return model.Pop()
}

// ParsePlaceID converts a raw identifier from a routing layer, returning
// InvalidPlaceID when it is malformed so the screen renders not-found.
func ParsePlaceID(raw string) int {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return InvalidPlaceID
	}
	return id
}
