package ui

import (
	"fmt"
	"io"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/pocketcal/pocketcal/internal/calendar"
	"github.com/pocketcal/pocketcal/internal/config"
	"github.com/pocketcal/pocketcal/internal/events"
	"github.com/pocketcal/pocketcal/internal/model"
)

// Weekday column headers, Sunday first to match the grid layout.
var weekdayHeaders = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// CalendarUI represents the main UI structure
type CalendarUI struct {
	window       fyne.Window
	service      events.Repository
	settings     *config.Settings
	localization *Localization

	cursor *calendar.Cursor

	// UI components
	monthLabel  *widget.Label
	prevBtn     *widget.Button
	nextBtn     *widget.Button
	todayBtn    *widget.Button
	upcomingBtn *widget.Button
	addBtn      *widget.Button
	searchEntry *widget.Entry
	gridBox     *fyne.Container
	statsLabel  *widget.Label

	eventDialog    *EventDialog
	settingsDialog *SettingsDialog
}

// NewCalendarUI creates and initializes the main UI
func NewCalendarUI(window fyne.Window, app fyne.App, service events.Repository) *CalendarUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &CalendarUI{
		window:       window,
		service:      service,
		settings:     settings,
		localization: localization,
		cursor:       calendar.NewCursor(time.Now()),
	}

	log.Printf("CalendarUI initialized with event repository: %v", ui.service != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *CalendarUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Event form dialog wired to the repository
	ui.eventDialog = NewEventDialog(ui.window, ui.settings, ui.localization)
	ui.eventDialog.SetCallbacks(
		func(input events.EventInput) error {
			_, err := ui.service.Create(input)
			return err
		},
		func(id string, update events.EventUpdate) error {
			_, err := ui.service.Update(id, update)
			return err
		},
		func() {
			ui.refreshCalendar()
			ui.showToast(ui.localization.GetText(KeyEventSaved))
		},
	)

	// Settings dialog; saved settings may change language or limits
	ui.settingsDialog = NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		ui.refreshCalendar()
	})

	// Navigation header
	ui.prevBtn = widget.NewButton(IconPrev, ui.onPreviousMonth)
	ui.nextBtn = widget.NewButton(IconNext, ui.onNextMonth)
	ui.todayBtn = widget.NewButton(ui.localization.GetText(KeyToday), ui.onGoToToday)
	ui.upcomingBtn = widget.NewButton(ui.localization.GetText(KeyUpcoming), ui.onShowUpcoming)
	ui.addBtn = widget.NewButton(ui.localization.GetText(KeyAddEvent), ui.onAddEvent)
	ui.addBtn.Importance = widget.HighImportance

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.monthLabel = widget.NewLabel("")
	ui.monthLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.monthLabel.Alignment = fyne.TextAlignCenter

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearch))
	ui.searchEntry.OnSubmitted = ui.onSearch

	nav := container.NewHBox(ui.prevBtn, ui.monthLabel, ui.nextBtn, ui.todayBtn, ui.upcomingBtn)
	header := container.NewBorder(nil, nil, nav, container.NewHBox(ui.addBtn, settingsBtn), ui.searchEntry)

	// Weekday row
	weekdayRow := container.NewGridWithColumns(GridColumns)
	for _, name := range weekdayHeaders {
		label := widget.NewLabel(name)
		label.Alignment = fyne.TextAlignCenter
		weekdayRow.Add(label)
	}

	// Month grid, populated by refreshCalendar
	ui.gridBox = container.NewGridWithColumns(GridColumns)

	// Stats footer
	ui.statsLabel = widget.NewLabel("")

	content := container.NewBorder(
		container.NewVBox(header, weekdayRow), // top
		ui.statsLabel,                         // bottom
		nil,                                   // left
		nil,                                   // right
		container.NewVScroll(ui.gridBox),      // center
	)

	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowMinWidth, WindowMinHeight))

	ui.refreshCalendar()

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *CalendarUI) createMenu() {
	exportJSONItem := fyne.NewMenuItem(ui.localization.GetText(KeyExportJSON), ui.onExportJSON)
	exportICSItem := fyne.NewMenuItem(ui.localization.GetText(KeyExportICS), ui.onExportICS)
	importItem := fyne.NewMenuItem(ui.localization.GetText(KeyImportJSON), ui.onImportJSON)
	sampleItem := fyne.NewMenuItem(ui.localization.GetText(KeySampleEvents), ui.onAddSampleEvents)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	deleteAllItem := fyne.NewMenuItem(ui.localization.GetText(KeyDeleteAll), ui.onDeleteAll)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile),
			importItem,
			exportJSONItem,
			exportICSItem,
			fyne.NewMenuItemSeparator(),
			sampleItem,
			fyne.NewMenuItemSeparator(),
			settingsItem,
		),
		fyne.NewMenu(ui.localization.GetText(KeyEdit), deleteAllItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *CalendarUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *CalendarUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.todayBtn.SetText(ui.localization.GetText(KeyToday))
	ui.upcomingBtn.SetText(ui.localization.GetText(KeyUpcoming))
	ui.addBtn.SetText(ui.localization.GetText(KeyAddEvent))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearch))
	ui.refreshStats()
}

// refreshCalendar rebuilds the month grid from the current cursor position
func (ui *CalendarUI) refreshCalendar() {
	now := time.Now()
	monthEvents := ui.service.GetByMonth(ui.cursor.Year, ui.cursor.Month)
	grid := calendar.BuildMonthGrid(ui.cursor.Year, ui.cursor.Month, now, monthEvents)

	ui.monthLabel.SetText(grid.Title())

	ui.gridBox.Objects = nil
	for i := range grid.Cells {
		cell := NewDayCell(grid.Cells[i])
		cell.SetCallbacks(ui.onDayTap, ui.onEventTap)
		ui.gridBox.Add(cell)
	}
	ui.gridBox.Refresh()

	ui.refreshStats()

	log.Printf("Calendar refreshed: %s, %d events in view", grid.Title(), len(monthEvents))
}

// refreshStats updates the footer with repository statistics
func (ui *CalendarUI) refreshStats() {
	stats := ui.service.Stats()
	ui.statsLabel.SetText(fmt.Sprintf("Total: %d%sUpcoming: %d%sPast: %d%sToday: %d",
		stats.Total, MiddleDotSeparator,
		stats.Upcoming, MiddleDotSeparator,
		stats.Past, MiddleDotSeparator,
		stats.Today))
}

// Navigation handlers

func (ui *CalendarUI) onPreviousMonth() {
	ui.cursor.Previous()
	ui.refreshCalendar()
}

func (ui *CalendarUI) onNextMonth() {
	ui.cursor.Next()
	ui.refreshCalendar()
}

func (ui *CalendarUI) onGoToToday() {
	ui.cursor.GoToToday(time.Now())
	ui.refreshCalendar()
}

// onAddEvent opens the event form pre-filled with today's date
func (ui *CalendarUI) onAddEvent() {
	now := time.Now()
	ui.eventDialog.ShowAdd(calendar.FormatDate(now.Year(), now.Month(), now.Day()))
}

// onDayTap shows the event list for a day, or the add form when empty
func (ui *CalendarUI) onDayTap(date string) {
	dayEvents := ui.service.GetByDate(date)
	if len(dayEvents) == 0 {
		ui.eventDialog.ShowAdd(date)
		return
	}
	ui.showDayPopup(date, dayEvents)
}

// onEventTap opens the edit form for an event badge
func (ui *CalendarUI) onEventTap(event model.Event) {
	ui.eventDialog.ShowEdit(event)
}

// showDayPopup lists every event of the day with edit and delete actions
func (ui *CalendarUI) showDayPopup(date string, dayEvents []model.Event) {
	list := container.NewVBox()

	var popup dialog.Dialog

	for _, event := range dayEvents {
		ev := event // Capture for closure

		title := widget.NewLabel(ev.Tooltip())
		title.Wrapping = fyne.TextWrapWord

		editBtn := widget.NewButton(ui.localization.GetText(KeyEdit), func() {
			popup.Hide()
			ui.eventDialog.ShowEdit(ev)
		})
		deleteBtn := widget.NewButton(ui.localization.GetText(KeyDelete), func() {
			popup.Hide()
			ui.confirmAndDelete(ev)
		})
		deleteBtn.Importance = widget.DangerImportance

		row := container.NewBorder(nil, nil, nil, container.NewHBox(editBtn, deleteBtn), title)
		list.Add(row)
		list.Add(widget.NewSeparator())
	}

	addBtn := widget.NewButton(ui.localization.GetText(KeyAddEvent), func() {
		popup.Hide()
		ui.eventDialog.ShowAdd(date)
	})
	addBtn.Importance = widget.HighImportance
	list.Add(addBtn)

	popup = dialog.NewCustom(date, ui.localization.GetText(KeyClose), container.NewVScroll(list), ui.window)
	popup.Resize(fyne.NewSize(DayPopupWidth, DayPopupHeight))
	popup.Show()
}

// confirmAndDelete deletes an event, asking first when configured to
func (ui *CalendarUI) confirmAndDelete(event model.Event) {
	remove := func() {
		if err := ui.service.Delete(event.ID); err != nil {
			log.Printf("Error deleting event %s: %v", event.ID, err)
			dialog.ShowError(err, ui.window)
			return
		}
		ui.refreshCalendar()
		ui.showToast(ui.localization.GetText(KeyEventDeleted))
	}

	if !ui.settings.GetConfirmDeletes() {
		remove()
		return
	}

	dialog.ShowConfirm(
		ui.localization.GetText(KeyDeleteEvent),
		ui.localization.GetText(KeyConfirmDelete),
		func(confirmed bool) {
			if confirmed {
				remove()
			}
		},
		ui.window,
	)
}

// onDeleteAll clears the repository after confirmation
func (ui *CalendarUI) onDeleteAll() {
	dialog.ShowConfirm(
		ui.localization.GetText(KeyDeleteAll),
		ui.localization.GetText(KeyConfirmClearAll),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := ui.service.DeleteAll(); err != nil {
				log.Printf("Error deleting all events: %v", err)
				dialog.ShowError(err, ui.window)
				return
			}
			ui.refreshCalendar()
			ui.showToast(ui.localization.GetText(KeyAllDeleted))
		},
		ui.window,
	)
}

// onSearch shows events whose titles match the query
func (ui *CalendarUI) onSearch(query string) {
	matches := ui.service.SearchByTitle(query)
	log.Printf("Search for %q matched %d events", query, len(matches))

	list := container.NewVBox()
	if len(matches) == 0 {
		list.Add(widget.NewLabel(ui.localization.GetText(KeyNoEvents)))
	}

	var popup dialog.Dialog
	for _, event := range matches {
		ev := event // Capture for closure
		btn := widget.NewButton(ev.Date+MiddleDotSeparator+ev.Title, func() {
			popup.Hide()
			ui.eventDialog.ShowEdit(ev)
		})
		btn.Alignment = widget.ButtonAlignLeading
		list.Add(btn)
	}

	popup = dialog.NewCustom(ui.localization.GetText(KeySearch), ui.localization.GetText(KeyClose),
		container.NewVScroll(list), ui.window)
	popup.Resize(fyne.NewSize(DayPopupWidth, DayPopupHeight))
	popup.Show()
}

// onShowUpcoming lists the next events, capped by the configured limit
func (ui *CalendarUI) onShowUpcoming() {
	upcoming := ui.service.Upcoming(ui.settings.GetUpcomingLimit())

	list := container.NewVBox()
	if len(upcoming) == 0 {
		list.Add(widget.NewLabel(ui.localization.GetText(KeyNoEvents)))
	}

	var popup dialog.Dialog
	for _, event := range upcoming {
		ev := event // Capture for closure
		btn := widget.NewButton(ev.Date+MiddleDotSeparator+ev.Title, func() {
			popup.Hide()
			ui.eventDialog.ShowEdit(ev)
		})
		btn.Alignment = widget.ButtonAlignLeading
		list.Add(btn)
	}

	popup = dialog.NewCustom(ui.localization.GetText(KeyUpcoming), ui.localization.GetText(KeyClose),
		container.NewVScroll(list), ui.window)
	popup.Resize(fyne.NewSize(DayPopupWidth, DayPopupHeight))
	popup.Show()
}

// onShowSettings shows the settings dialog
func (ui *CalendarUI) onShowSettings() {
	ui.settingsDialog.Show()
}

// ShowStorageWarning tells the user that events will not persist this
// session. Called once at startup when the preference store probe fails.
func (ui *CalendarUI) ShowStorageWarning() {
	log.Printf("Showing storage warning to user")
	dialog.ShowInformation(
		ui.localization.GetText(KeyAppTitle),
		ui.localization.GetText(KeyStorageWarning),
		ui.window,
	)
}

// Import / export handlers

// onExportJSON saves the repository as a pretty-printed JSON file
func (ui *CalendarUI) onExportJSON() {
	data, err := ui.service.ExportJSON()
	if err != nil {
		log.Printf("JSON export failed: %v", err)
		dialog.ShowInformation(ui.localization.GetText(KeyExportFailed), err.Error(), ui.window)
		return
	}
	ui.saveToFile("events.json", data)
}

// onExportICS saves the repository as an iCalendar file
func (ui *CalendarUI) onExportICS() {
	data, err := ui.service.ExportICS()
	if err != nil {
		log.Printf("ICS export failed: %v", err)
		dialog.ShowInformation(ui.localization.GetText(KeyExportFailed), err.Error(), ui.window)
		return
	}
	ui.saveToFile("events.ics", data)
}

// saveToFile prompts for a destination and writes the payload
func (ui *CalendarUI) saveToFile(filename string, data []byte) {
	fileSave := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		if _, err := writer.Write(data); err != nil {
			log.Printf("Error writing export file: %v", err)
			dialog.ShowInformation(ui.localization.GetText(KeyExportFailed), err.Error(), ui.window)
			return
		}
		log.Printf("Exported %d bytes to %s", len(data), writer.URI().String())
	}, ui.window)

	fileSave.SetFileName(filename)
	fileSave.Show()
}

// onImportJSON loads events from a JSON file chosen by the user
func (ui *CalendarUI) onImportJSON() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		data, err := io.ReadAll(reader)
		if err != nil {
			log.Printf("Error reading import file: %v", err)
			dialog.ShowInformation(ui.localization.GetText(KeyImportFailed), err.Error(), ui.window)
			return
		}

		result, err := ui.service.ImportJSON(data)
		if err != nil {
			log.Printf("Import failed: %v", err)
			dialog.ShowInformation(ui.localization.GetText(KeyImportFailed), err.Error(), ui.window)
			return
		}

		for _, diag := range result.Skipped {
			log.Printf("Import skipped %s", diag)
		}

		ui.refreshCalendar()
		ui.showToast(fmt.Sprintf(ui.localization.GetText(KeyImportSummary), result.Imported, result.Total))
	}, ui.window)
}

// sampleEvents builds the demonstration events relative to the given day,
// one per palette color.
func sampleEvents(now time.Time) []events.EventInput {
	day := func(offset int) string {
		d := now.AddDate(0, 0, offset)
		return calendar.FormatDate(d.Year(), d.Month(), d.Day())
	}

	return []events.EventInput{
		{Title: "Team Meeting", Date: day(0), StartTime: "10:00", EndTime: "11:00",
			Description: "Weekly team sync", Color: "#3b82f6"},
		{Title: "Lunch with Sarah", Date: day(1), StartTime: "12:30", EndTime: "13:30",
			Color: "#10b981"},
		{Title: "Project Deadline", Date: day(7), Description: "Submit final deliverables",
			Color: "#ef4444"},
		{Title: "Doctor Appointment", Date: day(3), StartTime: "15:00",
			Color: "#f59e0b"},
		{Title: "Birthday Party", Date: day(5), StartTime: "19:00",
			Description: "Don't forget the gift!", Color: "#ec4899"},
	}
}

// onAddSampleEvents seeds the calendar with a few demonstration events
func (ui *CalendarUI) onAddSampleEvents() {
	samples := sampleEvents(time.Now())

	added := 0
	for _, input := range samples {
		if _, err := ui.service.Create(input); err != nil {
			log.Printf("Failed to add sample event %q: %v", input.Title, err)
			continue
		}
		added++
	}

	ui.refreshCalendar()
	ui.showToast(fmt.Sprintf("%d sample events added", added))
}

// showToast shows a transient in-app notification in the top-right corner
func (ui *CalendarUI) showToast(message string) {
	label := widget.NewLabel(message)
	label.Alignment = fyne.TextAlignCenter

	toast := widget.NewPopUp(container.NewPadded(label), ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toast.Resize(toastSize)
	toast.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toast.Show()

	// Auto-hide after configured time
	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(func() {
			toast.Hide()
		})
	}()
}
