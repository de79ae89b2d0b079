package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI picks sizes depending on the device the app runs on
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// ThumbnailSize returns the side of a list row image
func (m *MobileUI) ThumbnailSize() float32 {
	if m.IsMobileDevice() {
		return MobileThumbnailSize
	}
	return ThumbnailSize
}

// DetailImageHeight returns the height of the image on the detail screen
func (m *MobileUI) DetailImageHeight() float32 {
	if m.IsMobileDevice() {
		return MobileDetailImageHeight
	}
	return DetailImageHeight
}

// RowHeight returns a row height that is never below the touch target minimum
func (m *MobileUI) RowHeight(content float32) float32 {
	if content < MinTouchTargetSize {
		return MinTouchTargetSize
	}
	return content
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}
