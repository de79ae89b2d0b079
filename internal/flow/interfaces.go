package flow

import (
	"github.com/ytget/places-guide/internal/model"
)

// Catalog defines the read-only queries the flows need.
type Catalog interface {
	Categories() []string
	PlacesByCategory(category string) []model.Place
	PlaceByID(id int) (model.Place, bool)
}
