package model

import "testing"

func TestPlace_RatingString(t *testing.T) {
	tests := []struct {
		rating   float32
		expected string
	}{
		{0, "0.0"},
		{4.7, "4.7"},
		{4.5, "4.5"},
		{5, "5.0"},
	}

	for _, test := range tests {
		place := Place{Rating: test.rating}
		result := place.RatingString()
		if result != test.expected {
			t.Errorf("RatingString() with Rating=%v = %s, expected %s", test.rating, result, test.expected)
		}
	}
}
