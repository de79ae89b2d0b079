package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/places-guide/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	assetsDirEntry *widget.Entry
	compactCheck   *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.assetsDirEntry = widget.NewEntry()
	sd.assetsDirEntry.SetPlaceHolder(TextAssetsDir)

	browseDirBtn := widget.NewButton(TextBrowse, sd.onBrowseDirectory)
	assetsDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.assetsDirEntry)

	sd.compactCheck = widget.NewCheck(TextCompact, nil)

	form := container.NewVBox(
		widget.NewLabel(TextAssetsDir+":"),
		assetsDirRow,
		widget.NewSeparator(),
		sd.compactCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		TitleSettings,
		TextSave,
		TextCancel,
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.assetsDirEntry.SetText(sd.settings.GetAssetsDirectory())
	sd.compactCheck.SetChecked(sd.settings.GetCompactTheme())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.assetsDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := sd.assetsDirEntry.Text; dir != "" {
		sd.settings.SetAssetsDirectory(dir)
	}
	sd.settings.SetCompactTheme(sd.compactCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(TitleSettings, TextSaved, sd.window)
}
