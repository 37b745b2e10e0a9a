package storage

import (
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/pocketcal/pocketcal/internal/model"
)

func sampleEvents() []model.Event {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	return []model.Event{
		{
			ID:        "ev-1",
			Title:     "Team Meeting",
			Date:      "2024-06-15",
			StartTime: "10:00",
			EndTime:   "11:00",
			Color:     "#3b82f6",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "ev-2",
			Title:     "Lunch Break",
			Date:      "2024-06-16",
			Color:     "#10b981",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func TestStore_IsAvailable(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app.Preferences())

	if !store.IsAvailable() {
		t.Error("Expected in-memory preferences store to be available")
	}

	// The probe must not leave residue behind.
	if app.Preferences().String(probeKey) != "" {
		t.Error("Availability probe left its test key in the store")
	}
}

func TestStore_NilPreferences(t *testing.T) {
	store := NewStore(nil)

	if store.IsAvailable() {
		t.Error("Expected nil-backed store to be unavailable")
	}

	if events := store.Load(); len(events) != 0 {
		t.Errorf("Expected empty load from unavailable store, got %d events", len(events))
	}

	if err := store.Save(sampleEvents()); err != ErrUnavailable {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}

	if err := store.Clear(); err != ErrUnavailable {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}

	if info := store.UsageInfo(); info.Available {
		t.Error("Expected UsageInfo.Available to be false")
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewStore(test.NewApp().Preferences())

	events := sampleEvents()
	if err := store.Save(events); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := store.Load()
	if len(loaded) != len(events) {
		t.Fatalf("Expected %d events after load, got %d", len(events), len(loaded))
	}

	for i := range events {
		if loaded[i] != events[i] {
			t.Errorf("Event %d mismatch: got %+v, expected %+v", i, loaded[i], events[i])
		}
	}

	// save(load()) followed by load() must be stable.
	if err := store.Save(store.Load()); err != nil {
		t.Fatalf("Re-save failed: %v", err)
	}
	again := store.Load()
	if len(again) != len(events) {
		t.Errorf("Expected %d events after re-save, got %d", len(events), len(again))
	}
}

func TestStore_LoadEmpty(t *testing.T) {
	store := NewStore(test.NewApp().Preferences())

	events := store.Load()
	if events == nil {
		t.Fatal("Load should return an empty slice, not nil")
	}
	if len(events) != 0 {
		t.Errorf("Expected 0 events, got %d", len(events))
	}
}

func TestStore_LoadCorruptedPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "{{{{"},
		{"json object", `{"id":"ev-1"}`},
		{"json null", "null"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := test.NewApp()
			store := NewStore(app.Preferences())
			app.Preferences().SetString(EventsKey, tc.payload)

			events := store.Load()
			if len(events) != 0 {
				t.Errorf("Expected empty result for corrupted payload, got %d events", len(events))
			}

			// Corruption self-heals: the entry is rewritten as an empty array.
			if got := app.Preferences().String(EventsKey); got != "[]" {
				t.Errorf("Expected corrupted entry to be reset to '[]', got %q", got)
			}
		})
	}
}

func TestStore_SaveNilSlice(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app.Preferences())

	if err := store.Save(nil); err != nil {
		t.Fatalf("Save(nil) failed: %v", err)
	}

	if got := app.Preferences().String(EventsKey); got != "[]" {
		t.Errorf("Expected nil slice to persist as '[]', got %q", got)
	}
}

func TestStore_SaveQuotaExceeded(t *testing.T) {
	store := NewStore(test.NewApp().Preferences())

	// A single event with an oversized description blows the byte budget
	// without needing thousands of entries.
	huge := model.Event{
		ID:          "ev-big",
		Title:       "Big",
		Date:        "2024-06-15",
		Description: strings.Repeat("x", TotalQuotaBytes),
	}

	err := store.Save([]model.Event{huge})
	if err != ErrQuotaExceeded {
		t.Errorf("Expected ErrQuotaExceeded, got %v", err)
	}
}

func TestStore_Clear(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app.Preferences())

	if err := store.Save(sampleEvents()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	if events := store.Load(); len(events) != 0 {
		t.Errorf("Expected 0 events after clear, got %d", len(events))
	}
}

func TestStore_UsageInfo(t *testing.T) {
	store := NewStore(test.NewApp().Preferences())

	info := store.UsageInfo()
	if !info.Available {
		t.Fatal("Expected store to be available")
	}
	if info.TotalBytes != TotalQuotaBytes {
		t.Errorf("Expected total %d, got %d", TotalQuotaBytes, info.TotalBytes)
	}
	if info.UsedBytes != len("[]") {
		t.Errorf("Expected empty store to use %d bytes, got %d", len("[]"), info.UsedBytes)
	}

	if err := store.Save(sampleEvents()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info = store.UsageInfo()
	if info.UsedBytes <= len("[]") {
		t.Errorf("Expected usage to grow after save, got %d bytes", info.UsedBytes)
	}
	if info.RemainingBytes != info.TotalBytes-info.UsedBytes {
		t.Errorf("Remaining bytes inconsistent: %+v", info)
	}
}
