package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconStar     = "★"
)

// Screen texts
const (
	TitleSettings = "Настройки"
	TextFile      = "Файл"
	TextSave      = "Сохранить"
	TextCancel    = "Отмена"
	TextBrowse    = "Обзор"
	TextAssetsDir = "Папка с изображениями"
	TextCompact   = "Компактная тема"
	TextSaved     = "Настройки сохранены"
)

// Layout sizing
const (
	ThumbnailSize     float32 = 80
	DetailImageHeight float32 = 200

	// Mobile-specific sizing
	MobileThumbnailSize     float32 = 96
	MobileDetailImageHeight float32 = 240

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 260
)
