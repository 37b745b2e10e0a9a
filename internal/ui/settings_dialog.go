package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/pocketcal/pocketcal/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	colorSelect        *widget.Select
	maxEventsEntry     *widget.Entry
	upcomingLimitEntry *widget.Entry
	confirmCheck       *widget.Check
	languageSelect     *widget.Select

	// Called after settings were saved
	onSaved func()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
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
	// Default event color selection
	sd.colorSelect = widget.NewSelect(sd.settings.GetColorOptions(), nil)

	// Event count ceiling
	sd.maxEventsEntry = widget.NewEntry()
	sd.maxEventsEntry.SetPlaceHolder("100-100000")

	// Upcoming list limit
	sd.upcomingLimitEntry = widget.NewEntry()
	sd.upcomingLimitEntry.SetPlaceHolder("1-100")

	// Delete confirmation toggle
	sd.confirmCheck = widget.NewCheck(sd.localization.GetText(KeyConfirmDeletes), nil)

	// Language selection
	languageOptions := []string{}
	languageLabels := sd.settings.GetLanguageOptions()
	for code := range languageLabels {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDefaultColor)+":"),
		sd.colorSelect,

		widget.NewLabel(sd.localization.GetText(KeyMaxEvents)+":"),
		sd.maxEventsEntry,

		widget.NewLabel(sd.localization.GetText(KeyUpcomingLimit)+":"),
		sd.upcomingLimitEntry,

		sd.confirmCheck,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.colorSelect.SetSelected(sd.settings.GetDefaultEventColor())
	sd.maxEventsEntry.SetText(strconv.Itoa(sd.settings.GetMaxEvents()))
	sd.upcomingLimitEntry.SetText(strconv.Itoa(sd.settings.GetUpcomingLimit()))
	sd.confirmCheck.SetChecked(sd.settings.GetConfirmDeletes())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Save default event color
	if sd.colorSelect.Selected != "" {
		sd.settings.SetDefaultEventColor(sd.colorSelect.Selected)
	}

	// Validate and save event ceiling
	if sd.maxEventsEntry.Text != "" {
		if maxEvents, err := strconv.Atoi(sd.maxEventsEntry.Text); err == nil {
			sd.settings.SetMaxEvents(maxEvents)
		}
	}

	// Validate and save upcoming limit
	if sd.upcomingLimitEntry.Text != "" {
		if limit, err := strconv.Atoi(sd.upcomingLimitEntry.Text); err == nil {
			sd.settings.SetUpcomingLimit(limit)
		}
	}

	// Save delete confirmation toggle
	sd.settings.SetConfirmDeletes(sd.confirmCheck.Checked)

	// Save language
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
