package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/pocketcal/pocketcal/internal/config"
	"github.com/pocketcal/pocketcal/internal/model"
)

func newTestEventDialog(t *testing.T) *EventDialog {
	t.Helper()

	app := test.NewApp()
	window := app.NewWindow("test")
	settings := config.NewSettings(app)
	localization := NewLocalization()

	return NewEventDialog(window, settings, localization)
}

func TestEventDialogTitle(t *testing.T) {
	ed := newTestEventDialog(t)

	ed.ShowAdd("2024-06-15")
	if got := ed.dialogTitle(); got != "Add Event" {
		t.Errorf("Expected add mode title 'Add Event', got %q", got)
	}

	ed.ShowEdit(model.Event{
		ID:    "evt-1",
		Title: "Dentist",
		Date:  "2024-06-20",
	})
	if got := ed.dialogTitle(); got != "Edit Event" {
		t.Errorf("Expected edit mode title 'Edit Event', got %q", got)
	}

	// Switching back to add mode must not keep the edit heading
	ed.ShowAdd("2024-06-15")
	if got := ed.dialogTitle(); got != "Add Event" {
		t.Errorf("Expected add mode title after editing, got %q", got)
	}
}

func TestEventDialogShowAddPrefillsDate(t *testing.T) {
	ed := newTestEventDialog(t)

	ed.ShowAdd("2024-06-15")

	if ed.dateEntry.Text != "2024-06-15" {
		t.Errorf("Expected date entry prefilled with 2024-06-15, got %q", ed.dateEntry.Text)
	}
	if ed.titleEntry.Text != "" {
		t.Errorf("Expected empty title entry, got %q", ed.titleEntry.Text)
	}
}

func TestEventDialogShowEditPrefillsFields(t *testing.T) {
	ed := newTestEventDialog(t)

	ed.ShowEdit(model.Event{
		ID:        "evt-2",
		Title:     "Standup",
		Date:      "2024-06-18",
		StartTime: "09:30",
		Color:     "#10b981",
	})

	if ed.titleEntry.Text != "Standup" {
		t.Errorf("Expected title entry 'Standup', got %q", ed.titleEntry.Text)
	}
	if ed.startTimeEntry.Text != "09:30" {
		t.Errorf("Expected start time entry '09:30', got %q", ed.startTimeEntry.Text)
	}
	if ed.colorSelect.Selected != "#10b981" {
		t.Errorf("Expected color selection #10b981, got %q", ed.colorSelect.Selected)
	}
}
