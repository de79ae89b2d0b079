package config

import (
	"log"

	"fyne.io/fyne/v2"

	"github.com/ytget/places-guide/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAssetsDir    = "assets_directory"
	KeyCompactTheme = "compact_theme"
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
)

// Default values
const (
	DefaultAssetsDir    = "assets"
	DefaultCompactTheme = true
	DefaultWindowWidth  = 420
	DefaultWindowHeight = 720
)

// Window size limits
const (
	MinWindowSize = 320
	MaxWindowSize = 4096
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAssetsDirectory returns the directory place images are loaded from
func (s *Settings) GetAssetsDirectory() string {
	dir := s.app.Preferences().String(KeyAssetsDir)
	if dir == "" {
		defaultDir, err := platform.DefaultAssetsDir()
		if err != nil {
			log.Printf("Falling back to relative assets dir: %v", err)
			defaultDir = DefaultAssetsDir
		}
		s.SetAssetsDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetAssetsDirectory sets the assets directory
func (s *Settings) SetAssetsDirectory(dir string) {
	s.app.Preferences().SetString(KeyAssetsDir, dir)
}

// GetCompactTheme returns whether the compact theme is enabled
func (s *Settings) GetCompactTheme() bool {
	return s.app.Preferences().BoolWithFallback(KeyCompactTheme, DefaultCompactTheme)
}

// SetCompactTheme enables or disables the compact theme
func (s *Settings) SetCompactTheme(compact bool) {
	s.app.Preferences().SetBool(KeyCompactTheme, compact)
}

// GetWindowSize returns the configured window size
func (s *Settings) GetWindowSize() (width, height int) {
	width = s.app.Preferences().Int(KeyWindowWidth)
	height = s.app.Preferences().Int(KeyWindowHeight)
	if width <= 0 || height <= 0 {
		s.SetWindowSize(DefaultWindowWidth, DefaultWindowHeight)
		return DefaultWindowWidth, DefaultWindowHeight
	}
	return width, height
}

// SetWindowSize sets the window size, clamping each side to sane limits
func (s *Settings) SetWindowSize(width, height int) {
	s.app.Preferences().SetInt(KeyWindowWidth, clamp(width))
	s.app.Preferences().SetInt(KeyWindowHeight, clamp(height))
}

func clamp(v int) int {
	if v < MinWindowSize {
		return MinWindowSize
	}
	if v > MaxWindowSize {
		return MaxWindowSize
	}
	return v
}
