package model

import "testing"

func TestScreen_String(t *testing.T) {
	tests := []struct {
		screen   Screen
		expected string
	}{
		{CategoryListScreen(), "categories"},
		{PlaceListScreen("Парки"), "places/Парки"},
		{PlaceDetailScreen(2), "details/2"},
		{Screen{Kind: ScreenKind(42)}, "unknown"},
	}

	for _, test := range tests {
		result := test.screen.String()
		if result != test.expected {
			t.Errorf("Screen(%+v).String() = %s, expected %s", test.screen, result, test.expected)
		}
	}
}

func TestScreen_Equality(t *testing.T) {
	if PlaceListScreen("Парки") != PlaceListScreen("Парки") {
		t.Error("Expected equal place list screens to compare equal")
	}

	if PlaceDetailScreen(1) == PlaceDetailScreen(2) {
		t.Error("Expected detail screens with different ids to differ")
	}
}

func TestIntent_String(t *testing.T) {
	if got := Push(PlaceDetailScreen(3)).String(); got != "push details/3" {
		t.Errorf("Push intent String() = %s, expected 'push details/3'", got)
	}

	if got := Pop().String(); got != "pop" {
		t.Errorf("Pop intent String() = %s, expected 'pop'", got)
	}
}
