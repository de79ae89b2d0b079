package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/places-guide/internal/config"
	"github.com/ytget/places-guide/internal/flow"
	"github.com/ytget/places-guide/internal/model"
	"github.com/ytget/places-guide/internal/nav"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	router   *nav.Router
	settings *config.Settings
	images   *ImageLoader
	mobile   *MobileUI

	backBtn    *widget.Button
	titleLabel *widget.Label
	content    *fyne.Container

	current flow.Render
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, router *nav.Router, settings *config.Settings, images *ImageLoader) *RootUI {
	ui := &RootUI{
		window:   window,
		app:      app,
		router:   router,
		settings: settings,
		images:   images,
		mobile:   NewMobileUI(app),
	}

	app.Settings().SetTheme(NewGuideTheme(settings.GetCompactTheme()))

	ui.setupUI()

	// Router callbacks may come from any goroutine
	router.OnRender(func(render flow.Render) {
		fyne.Do(func() {
			ui.show(render)
		})
	})

	ui.show(router.Render())
	log.Printf("UI setup completed, images from %s", images.Directory())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.backBtn = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), ui.onBack)
	ui.backBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.titleLabel.Truncation = fyne.TextTruncateEllipsis

	topBar := container.NewBorder(nil, nil, ui.backBtn, settingsBtn, ui.titleLabel)

	ui.content = container.NewStack()

	swipe := NewSwipeArea(ui.content, ui.onSwipeBack)

	top := container.NewVBox(topBar, widget.NewSeparator())

	ui.window.SetContent(container.NewBorder(
		top,   // top
		nil,   // bottom
		nil,   // left
		nil,   // right
		swipe, // center - current screen
	))

	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(TitleSettings, ui.onShowSettings)
	ui.window.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu(TextFile, settingsItem)))
}

// show displays render unless the screen already holds a newer snapshot or
// the same back stack entry
func (ui *RootUI) show(render flow.Render) {
	if ui.current.Supersedes(render) {
		log.Printf("Dropped stale render of %s (seq %d, showing %d)", render.Screen, render.Seq, ui.current.Seq)
		return
	}
	if render.EntryID == ui.current.EntryID {
		ui.current = render
		return
	}
	ui.rebuild(render)
}

// rebuild replaces the visible screen with the one described by render
func (ui *RootUI) rebuild(render flow.Render) {
	var view fyne.CanvasObject
	switch render.Screen.Kind {
	case model.ScreenCategoryList:
		ui.titleLabel.SetText(flow.TitleCategories)
		view = ui.categoryView(render.Categories)
	case model.ScreenPlaceList:
		ui.titleLabel.SetText(render.PlaceList.Category)
		view = ui.placeListView(render.PlaceList)
	case model.ScreenPlaceDetail:
		if render.Detail.Found {
			ui.titleLabel.SetText(render.Detail.Detail.Name)
		} else {
			ui.titleLabel.SetText(flow.TextNotFound)
		}
		view = ui.detailView(render.Detail)
	default:
		log.Printf("No view for screen %s", render.Screen)
		return
	}
	ui.current = render

	if render.CanGoBack {
		ui.backBtn.Show()
	} else {
		ui.backBtn.Hide()
	}

	ui.content.Objects = []fyne.CanvasObject{view}
	ui.content.Refresh()
}

// onBack handles the back button
func (ui *RootUI) onBack() {
	ui.router.GoBack()
}

// onSwipeBack handles a right swipe over the content
func (ui *RootUI) onSwipeBack() {
	ui.router.GoBack()
}

// onTypedKey maps Escape and the Android back key to back navigation
func (ui *RootUI) onTypedKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeyEscape, mobile.KeyBack:
		ui.router.GoBack()
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	dlg := NewSettingsDialog(ui.settings, ui.window, ui.applySettings)
	dlg.Show()
}

// applySettings re-reads settings after the dialog saved them
func (ui *RootUI) applySettings() {
	ui.images.SetDirectory(ui.settings.GetAssetsDirectory())
	ui.app.Settings().SetTheme(NewGuideTheme(ui.settings.GetCompactTheme()))
	ui.rebuild(ui.router.Render())
}
