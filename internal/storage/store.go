package storage

import (
	"encoding/json"
	"errors"
	"log"

	"fyne.io/fyne/v2"

	"github.com/pocketcal/pocketcal/internal/model"
)

// Storage keys
const (
	// EventsKey is the fixed preferences key holding the serialized event
	// collection.
	EventsKey = "calendar_events"

	// probeKey is written and removed to verify the store accepts writes.
	probeKey = "__storage_test__"
)

// TotalQuotaBytes approximates the byte budget of the backing store.
const TotalQuotaBytes = 5 * 1024 * 1024

// Sentinel errors returned by Save and Clear. Quota exhaustion is reported
// distinctly so the UI can tell the user to delete events rather than retry.
var (
	ErrUnavailable   = errors.New("storage is not available")
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// UsageInfo describes approximate store occupancy for diagnostics. It is
// never used for enforcement.
type UsageInfo struct {
	Available      bool
	UsedBytes      int
	TotalBytes     int
	RemainingBytes int
}

// Store persists the event collection as a JSON array under a fixed key in
// the app's preferences. All operations are synchronous and return explicit
// status values; nothing panics past this boundary.
type Store struct {
	prefs fyne.Preferences
}

// NewStore creates a store backed by the given preferences.
func NewStore(prefs fyne.Preferences) *Store {
	return &Store{prefs: prefs}
}

// IsAvailable probes whether the store can be written to and read from.
func (s *Store) IsAvailable() bool {
	if s.prefs == nil {
		return false
	}

	s.prefs.SetString(probeKey, probeKey)
	ok := s.prefs.String(probeKey) == probeKey
	s.prefs.RemoveValue(probeKey)
	return ok
}

// Load reads the persisted event collection. It returns an empty slice when
// the store is unavailable or nothing has been saved yet. A payload that does
// not parse as an event array is treated as corruption: the entry is reset to
// an empty array and an empty slice is returned.
func (s *Store) Load() []model.Event {
	if !s.IsAvailable() {
		log.Printf("Storage not available, returning empty event list")
		return []model.Event{}
	}

	data := s.prefs.String(EventsKey)
	if data == "" {
		return []model.Event{}
	}

	var events []model.Event
	if err := json.Unmarshal([]byte(data), &events); err != nil {
		log.Printf("Stored events are corrupted, resetting to empty array: %v", err)
		if err := s.Save([]model.Event{}); err != nil {
			log.Printf("Failed to reset corrupted storage: %v", err)
		}
		return []model.Event{}
	}

	if events == nil {
		// "null" parses cleanly but is not an array.
		log.Printf("Stored events entry is not an array, resetting to empty array")
		if err := s.Save([]model.Event{}); err != nil {
			log.Printf("Failed to reset corrupted storage: %v", err)
		}
		return []model.Event{}
	}

	return events
}

// Save serializes and writes the full event collection. A nil slice is
// persisted as an empty array so the stored payload is always a JSON array.
func (s *Store) Save(events []model.Event) error {
	if !s.IsAvailable() {
		return ErrUnavailable
	}

	if events == nil {
		events = []model.Event{}
	}

	data, err := json.Marshal(events)
	if err != nil {
		return err
	}

	if len(data) > TotalQuotaBytes {
		log.Printf("Refusing to save %d bytes of events, quota is %d", len(data), TotalQuotaBytes)
		return ErrQuotaExceeded
	}

	s.prefs.SetString(EventsKey, string(data))
	return nil
}

// Clear removes the persisted event collection.
func (s *Store) Clear() error {
	if !s.IsAvailable() {
		return ErrUnavailable
	}

	s.prefs.RemoveValue(EventsKey)
	return nil
}

// UsageInfo returns approximate quota accounting for the events entry.
func (s *Store) UsageInfo() UsageInfo {
	if !s.IsAvailable() {
		return UsageInfo{}
	}

	used := len(s.prefs.StringWithFallback(EventsKey, "[]"))
	return UsageInfo{
		Available:      true,
		UsedBytes:      used,
		TotalBytes:     TotalQuotaBytes,
		RemainingBytes: TotalQuotaBytes - used,
	}
}
