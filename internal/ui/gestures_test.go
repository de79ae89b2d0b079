package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

func touchAt(x, y float32) *mobile.TouchEvent {
	return &mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestGestureHandler(t *testing.T) {
	tests := []struct {
		name     string
		from, to fyne.Position
		expected bool
	}{
		{"tap", fyne.NewPos(10, 10), fyne.NewPos(12, 11), false},
		{"swipe right", fyne.NewPos(10, 100), fyne.NewPos(200, 110), true},
		{"swipe left", fyne.NewPos(200, 100), fyne.NewPos(10, 90), false},
		{"scroll down", fyne.NewPos(100, 10), fyne.NewPos(110, 200), false},
		{"diagonal mostly vertical", fyne.NewPos(0, 0), fyne.NewPos(60, 120), false},
		{"short right drag", fyne.NewPos(0, 0), fyne.NewPos(30, 0), false},
	}

	for _, test := range tests {
		fired := false
		gh := NewGestureHandler(func() { fired = true })

		gh.TouchDown(touchAt(test.from.X, test.from.Y))
		gh.TouchUp(touchAt(test.to.X, test.to.Y))

		if fired != test.expected {
			t.Errorf("%s: expected back swipe %v, got %v", test.name, test.expected, fired)
		}
	}
}

func TestGestureHandler_CancelAndStrayTouchUp(t *testing.T) {
	count := 0
	gh := NewGestureHandler(func() { count++ })

	gh.TouchUp(touchAt(100, 0))

	gh.TouchDown(touchAt(0, 0))
	gh.TouchCancel(touchAt(0, 0))
	gh.TouchUp(touchAt(100, 0))

	if count != 0 {
		t.Errorf("Expected no back swipes, got %d", count)
	}
}

func TestSwipeArea_ForwardsTouches(t *testing.T) {
	fired := false
	sa := NewSwipeArea(nil, func() { fired = true })

	sa.TouchDown(touchAt(0, 50))
	sa.TouchUp(touchAt(150, 50))

	if !fired {
		t.Error("Expected a right swipe to be reported")
	}
}
