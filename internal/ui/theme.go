package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// GuideTheme is the app theme: Lisbon tram yellow and azulejo blue on top of
// the default theme, with an optional compact size set.
type GuideTheme struct {
	compact bool
}

// NewGuideTheme creates the theme; compact reduces paddings and text sizes
func NewGuideTheme(compact bool) fyne.Theme {
	return &GuideTheme{compact: compact}
}

// Color returns theme colors
func (t *GuideTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 21, G: 83, B: 160, A: 255} // Azulejo blue
	case theme.ColorNameFocus, theme.ColorNameSelection:
		return color.RGBA{R: 246, G: 190, B: 0, A: 96} // Tram yellow, translucent
	case theme.ColorNameWarning:
		return color.RGBA{R: 246, G: 190, B: 0, A: 255} // Tram yellow for ratings
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 20, G: 24, B: 31, A: 255}
		}
		return color.RGBA{R: 252, G: 250, B: 245, A: 255} // Limestone white
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *GuideTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *GuideTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes, reduced when compact
func (t *GuideTheme) Size(name fyne.ThemeSizeName) float32 {
	if !t.compact {
		return theme.DefaultTheme().Size(name)
	}

	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
