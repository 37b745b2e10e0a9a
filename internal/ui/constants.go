package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPrev     = "◀"
	IconNext     = "▶"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Layout sizing (calendar grid / dialogs)
const (
	GridColumns = 7

	DayCellMinWidth  float32 = 96
	DayCellMinHeight float32 = 84
	BadgeHeight      float32 = 16

	WindowMinWidth  float32 = 760
	WindowMinHeight float32 = 620

	EventDialogWidth  float32 = 440
	EventDialogHeight float32 = 520

	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 380

	DayPopupWidth  float32 = 380
	DayPopupHeight float32 = 420
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 90
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)
