package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/pocketcal/pocketcal/internal/config"
	"github.com/pocketcal/pocketcal/internal/events"
	"github.com/pocketcal/pocketcal/internal/model"
	"github.com/pocketcal/pocketcal/internal/validate"
)

// EventDialog represents the add/edit event form dialog
type EventDialog struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	dialog       *dialog.ConfirmDialog
	form         fyne.CanvasObject

	// When editing, the event being edited; nil when adding
	editing *model.Event

	// UI components
	titleEntry       *widget.Entry
	dateEntry        *widget.Entry
	startTimeEntry   *widget.Entry
	endTimeEntry     *widget.Entry
	descriptionEntry *widget.Entry
	colorSelect      *widget.Select

	// Per-field error labels
	errorLabels map[string]*widget.Label

	// Callbacks
	onCreate func(input events.EventInput) error
	onUpdate func(id string, update events.EventUpdate) error
	onSaved  func()
}

// NewEventDialog creates a new event form dialog
func NewEventDialog(window fyne.Window, settings *config.Settings, localization *Localization) *EventDialog {
	ed := &EventDialog{
		window:       window,
		settings:     settings,
		localization: localization,
		errorLabels:  make(map[string]*widget.Label),
	}

	ed.createUI()
	return ed
}

// SetCallbacks sets the persistence callbacks
func (ed *EventDialog) SetCallbacks(
	onCreate func(input events.EventInput) error,
	onUpdate func(id string, update events.EventUpdate) error,
	onSaved func(),
) {
	ed.onCreate = onCreate
	ed.onUpdate = onUpdate
	ed.onSaved = onSaved
}

// ShowAdd displays the dialog for creating an event on the given date
func (ed *EventDialog) ShowAdd(date string) {
	ed.editing = nil
	ed.clearErrors()

	ed.titleEntry.SetText("")
	ed.dateEntry.SetText(date)
	ed.startTimeEntry.SetText("")
	ed.endTimeEntry.SetText("")
	ed.descriptionEntry.SetText("")
	ed.colorSelect.SetSelected(ed.settings.GetDefaultEventColor())

	ed.showDialog()
}

// ShowEdit displays the dialog pre-filled from an existing event
func (ed *EventDialog) ShowEdit(event model.Event) {
	ed.editing = &event
	ed.clearErrors()

	ed.titleEntry.SetText(event.Title)
	ed.dateEntry.SetText(event.Date)
	ed.startTimeEntry.SetText(event.StartTime)
	ed.endTimeEntry.SetText(event.EndTime)
	ed.descriptionEntry.SetText(event.Description)
	ed.colorSelect.SetSelected(event.BadgeColor())

	ed.showDialog()
}

// dialogTitle returns the heading matching the current mode
func (ed *EventDialog) dialogTitle() string {
	if ed.editing != nil {
		return ed.localization.GetText(KeyEditEvent)
	}
	return ed.localization.GetText(KeyAddEvent)
}

// showDialog builds and opens the form dialog titled for the current mode
func (ed *EventDialog) showDialog() {
	ed.dialog = dialog.NewCustomConfirm(
		ed.dialogTitle(),
		ed.localization.GetText(KeySave),
		ed.localization.GetText(KeyCancel),
		ed.form,
		ed.onSave,
		ed.window,
	)
	ed.dialog.Resize(fyne.NewSize(EventDialogWidth, EventDialogHeight))
	ed.dialog.Show()
}

// createUI creates the event form UI
func (ed *EventDialog) createUI() {
	ed.titleEntry = widget.NewEntry()
	ed.titleEntry.SetPlaceHolder(ed.localization.GetText(KeyTitle))

	ed.dateEntry = widget.NewEntry()
	ed.dateEntry.SetPlaceHolder("YYYY-MM-DD")

	ed.startTimeEntry = widget.NewEntry()
	ed.startTimeEntry.SetPlaceHolder("HH:MM")

	ed.endTimeEntry = widget.NewEntry()
	ed.endTimeEntry.SetPlaceHolder("HH:MM")

	ed.descriptionEntry = widget.NewMultiLineEntry()
	ed.descriptionEntry.Wrapping = fyne.TextWrapWord

	ed.colorSelect = widget.NewSelect(ed.settings.GetColorOptions(), nil)

	form := container.NewVBox(
		widget.NewLabel(ed.localization.GetText(KeyTitle)+":"),
		ed.titleEntry,
		ed.errorLabel("title"),

		widget.NewLabel(ed.localization.GetText(KeyDate)+":"),
		ed.dateEntry,
		ed.errorLabel("date"),

		widget.NewLabel(ed.localization.GetText(KeyStartTime)+":"),
		ed.startTimeEntry,
		ed.errorLabel("startTime"),

		widget.NewLabel(ed.localization.GetText(KeyEndTime)+":"),
		ed.endTimeEntry,
		ed.errorLabel("endTime"),

		widget.NewLabel(ed.localization.GetText(KeyDescription)+":"),
		ed.descriptionEntry,
		ed.errorLabel("description"),

		widget.NewLabel(ed.localization.GetText(KeyColor)+":"),
		ed.colorSelect,
		ed.errorLabel("color"),
	)

	ed.form = container.NewVScroll(form)
}

// errorLabel creates and registers the error label for a form field
func (ed *EventDialog) errorLabel(field string) *widget.Label {
	label := widget.NewLabel("")
	label.Importance = widget.DangerImportance
	label.Hide()
	ed.errorLabels[field] = label
	return label
}

// clearErrors hides all per-field error labels
func (ed *EventDialog) clearErrors() {
	for _, label := range ed.errorLabels {
		label.SetText("")
		label.Hide()
	}
}

// showErrors displays validation messages next to their fields
func (ed *EventDialog) showErrors(result validate.FormResult) {
	for field, message := range result.Errors {
		if label, ok := ed.errorLabels[field]; ok {
			label.SetText(message)
			label.Show()
		}
	}
}

// onSave validates the form and persists the event
func (ed *EventDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	ed.clearErrors()

	data := validate.FormData{
		Title:       ed.titleEntry.Text,
		Date:        ed.dateEntry.Text,
		StartTime:   ed.startTimeEntry.Text,
		EndTime:     ed.endTimeEntry.Text,
		Description: ed.descriptionEntry.Text,
		Color:       ed.colorSelect.Selected,
	}

	result := validate.Form(data)
	if !result.Valid {
		ed.showErrors(result)
		// Keep the form open so the user can correct the fields
		ed.dialog.Show()
		return
	}

	var err error
	if ed.editing == nil {
		err = ed.create(data)
	} else {
		err = ed.update(ed.editing.ID, data)
	}

	if err != nil {
		dialog.ShowInformation(ed.localization.GetText(KeySaveFailed), err.Error(), ed.window)
		return
	}

	if ed.onSaved != nil {
		ed.onSaved()
	}
}

// create persists a new event from the form data
func (ed *EventDialog) create(data validate.FormData) error {
	if ed.onCreate == nil {
		return nil
	}
	return ed.onCreate(events.EventInput{
		Title:       data.Title,
		Date:        data.Date,
		StartTime:   data.StartTime,
		EndTime:     data.EndTime,
		Description: data.Description,
		Color:       data.Color,
	})
}

// update persists form changes to an existing event
func (ed *EventDialog) update(id string, data validate.FormData) error {
	if ed.onUpdate == nil {
		return nil
	}
	return ed.onUpdate(id, events.EventUpdate{
		Title:       &data.Title,
		Date:        &data.Date,
		StartTime:   &data.StartTime,
		EndTime:     &data.EndTime,
		Description: &data.Description,
		Color:       &data.Color,
	})
}
