package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// DefaultSwipeThreshold is the horizontal travel that counts as a swipe
const DefaultSwipeThreshold float32 = 50.0

// GestureHandler turns a touch down/up pair into a back swipe: a mostly
// horizontal movement to the right. Taps and vertical drags are left to the
// content underneath.
type GestureHandler struct {
	onSwipeBack func()

	touching      bool
	touchStartPos fyne.Position

	swipeThreshold float32
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onSwipeBack func()) *GestureHandler {
	return &GestureHandler{
		onSwipeBack:    onSwipeBack,
		swipeThreshold: DefaultSwipeThreshold,
	}
}

// TouchDown records where a touch started
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touching = true
	gh.touchStartPos = event.Position
}

// TouchUp fires the back callback when the finished touch was a right swipe
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if !gh.touching {
		return
	}
	gh.touching = false

	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y
	if isSwipeBack(dx, dy, gh.swipeThreshold) && gh.onSwipeBack != nil {
		gh.onSwipeBack()
	}
}

// TouchCancel forgets the current touch
func (gh *GestureHandler) TouchCancel(*mobile.TouchEvent) {
	gh.touching = false
}

func isSwipeBack(dx, dy, threshold float32) bool {
	if dy < 0 {
		dy = -dy
	}
	return dx >= threshold && dx > dy
}

// SwipeArea wraps content and reports back swipes made on it
type SwipeArea struct {
	widget.BaseWidget

	content fyne.CanvasObject
	handler *GestureHandler
}

// NewSwipeArea creates a swipe-aware container around content
func NewSwipeArea(content fyne.CanvasObject, onSwipeBack func()) *SwipeArea {
	sa := &SwipeArea{
		content: content,
		handler: NewGestureHandler(onSwipeBack),
	}
	sa.ExtendBaseWidget(sa)
	return sa
}

// CreateRenderer implements fyne.Widget
func (sa *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sa.content)
}

// TouchDown implements mobile.Touchable
func (sa *SwipeArea) TouchDown(event *mobile.TouchEvent) {
	sa.handler.TouchDown(event)
}

// TouchUp implements mobile.Touchable
func (sa *SwipeArea) TouchUp(event *mobile.TouchEvent) {
	sa.handler.TouchUp(event)
}

// TouchCancel implements mobile.Touchable
func (sa *SwipeArea) TouchCancel(event *mobile.TouchEvent) {
	sa.handler.TouchCancel(event)
}
