package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAssetsDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetAssetsDirectory()
	if dir == "" {
		t.Error("Assets directory should not be empty")
	}

	// Default is written back
	if app.Preferences().String(KeyAssetsDir) != dir {
		t.Error("Default assets directory should be stored in preferences")
	}

	// Test setting custom value
	customDir := "/custom/assets"
	settings.SetAssetsDirectory(customDir)

	retrievedDir := settings.GetAssetsDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected assets directory %s, got %s", customDir, retrievedDir)
	}
}

func TestCompactTheme(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetCompactTheme() != DefaultCompactTheme {
		t.Errorf("Expected default compact theme %v", DefaultCompactTheme)
	}

	settings.SetCompactTheme(false)
	if settings.GetCompactTheme() {
		t.Error("Expected compact theme to be disabled")
	}
}

func TestWindowSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	w, h := settings.GetWindowSize()
	if w != DefaultWindowWidth || h != DefaultWindowHeight {
		t.Errorf("Expected default size %dx%d, got %dx%d", DefaultWindowWidth, DefaultWindowHeight, w, h)
	}

	// Test setting custom value
	settings.SetWindowSize(800, 600)
	w, h = settings.GetWindowSize()
	if w != 800 || h != 600 {
		t.Errorf("Expected size 800x600, got %dx%d", w, h)
	}

	// Test boundary values
	settings.SetWindowSize(10, 10000)
	w, h = settings.GetWindowSize()
	if w != MinWindowSize {
		t.Errorf("Width should be clamped to minimum %d, got %d", MinWindowSize, w)
	}
	if h != MaxWindowSize {
		t.Errorf("Height should be clamped to maximum %d, got %d", MaxWindowSize, h)
	}
}
