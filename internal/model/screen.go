package model

import (
	"fmt"
	"strconv"
)

// ScreenKind identifies one of the navigable views
type ScreenKind int

const (
	// ScreenCategoryList is the root screen listing all categories
	ScreenCategoryList ScreenKind = iota

	// ScreenPlaceList lists places of one category
	ScreenPlaceList

	// ScreenPlaceDetail shows a single place
	ScreenPlaceDetail
)

// String returns the route name of the screen kind
func (k ScreenKind) String() string {
	switch k {
	case ScreenCategoryList:
		return "categories"
	case ScreenPlaceList:
		return "places"
	case ScreenPlaceDetail:
		return "details"
	default:
		return "unknown"
	}
}

// Screen is a tagged variant: Category is meaningful only for
// ScreenPlaceList, PlaceID only for ScreenPlaceDetail.
type Screen struct {
	Kind     ScreenKind
	Category string
	PlaceID  int
}

// CategoryListScreen returns the root screen
func CategoryListScreen() Screen {
	return Screen{Kind: ScreenCategoryList}
}

// PlaceListScreen returns the screen listing places of category
func PlaceListScreen(category string) Screen {
	return Screen{Kind: ScreenPlaceList, Category: category}
}

// PlaceDetailScreen returns the detail screen for place id
func PlaceDetailScreen(id int) Screen {
	return Screen{Kind: ScreenPlaceDetail, PlaceID: id}
}

// String renders a route-like label, used for logging only
func (s Screen) String() string {
	switch s.Kind {
	case ScreenPlaceList:
		return fmt.Sprintf("%s/%s", s.Kind, s.Category)
	case ScreenPlaceDetail:
		return s.Kind.String() + "/" + strconv.Itoa(s.PlaceID)
	default:
		return s.Kind.String()
	}
}
