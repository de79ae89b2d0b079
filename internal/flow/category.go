package flow

import "github.com/ytget/places-guide/internal/model"

// CategoryState is the render snapshot of the category list screen
type CategoryState struct {
	Categories []string
}

// CategoryFlow presents the set of categories
type CategoryFlow struct {
	catalog Catalog
	state   CategoryState
}

// NewCategoryFlow creates a category selection flow
func NewCategoryFlow(catalog Catalog) *CategoryFlow {
	return &CategoryFlow{catalog: catalog}
}

// Activate reads the category list from the catalog
func (f *CategoryFlow) Activate() {
	f.state = CategoryState{Categories: f.catalog.Categories()}
}

// State returns the current render snapshot
func (f *CategoryFlow) State() CategoryState {
	return f.state
}

// Select turns a chosen category into a navigation intent
func (f *CategoryFlow) Select(category string) model.Intent {
	return model.Push(model.PlaceListScreen(category))
}
