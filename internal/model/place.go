package model

import "fmt"

// Place is a single catalog entry representing a point of interest
type Place struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageRef    string  `json:"image_ref"` // resolved by the rendering layer
	Rating      float32 `json:"rating"`    // 0.0 to 5.0, not enforced
}

// RatingString returns the rating with one decimal, e.g. "4.7"
func (p Place) RatingString() string {
	return fmt.Sprintf("%.1f", p.Rating)
}
