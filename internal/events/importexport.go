package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/pocketcal/pocketcal/internal/validate"
)

// Import ceilings. Oversized batches are rejected before any record is
// touched.
const (
	MaxImportBytes  = 1024 * 1024
	MaxImportEvents = 1000
)

// DefaultUntimedDuration is the event length assumed in ICS output when a
// start time is present but no end time.
const DefaultUntimedDuration = time.Hour

// Sentinel errors returned by ImportJSON.
var (
	ErrImportTooLarge = errors.New("import data too large")
	ErrImportTooMany  = errors.New("too many events in import")
)

// ImportResult reports how much of an import batch was accepted.
type ImportResult struct {
	Imported int
	Total    int
	Skipped  []string
}

// importRecord is the externally-supplied shape of one event-like entry.
// Generated fields (id, timestamps) are ignored; the repository re-stamps
// them on create.
type importRecord struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// ImportJSON accepts an array of event-like records. The batch is rejected
// wholesale when oversized; individual records are accepted after coercion
// and validation, or skipped with a diagnostic.
func (s *Service) ImportJSON(data []byte) (*ImportResult, error) {
	if len(data) > MaxImportBytes {
		return nil, ErrImportTooLarge
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid format, expected an array: %w", err)
	}

	if len(raw) > MaxImportEvents {
		return nil, ErrImportTooMany
	}

	result := &ImportResult{Total: len(raw)}
	for i, entry := range raw {
		var rec importRecord
		if err := json.Unmarshal(entry, &rec); err != nil {
			result.Skipped = append(result.Skipped, fmt.Sprintf("event %d: malformed record", i))
			continue
		}

		if validate.Sanitize(rec.Title) == "" {
			result.Skipped = append(result.Skipped, fmt.Sprintf("event %d: missing or invalid title", i))
			continue
		}
		if !validate.Date(rec.Date).Valid {
			result.Skipped = append(result.Skipped, fmt.Sprintf("event %d: invalid date format", i))
			continue
		}

		if _, err := s.Create(EventInput{
			Title:       rec.Title,
			Date:        rec.Date,
			StartTime:   rec.StartTime,
			EndTime:     rec.EndTime,
			Description: rec.Description,
			Color:       rec.Color,
		}); err != nil {
			result.Skipped = append(result.Skipped, fmt.Sprintf("event %d: %v", i, err))
			continue
		}
		result.Imported++
	}

	log.Printf("Imported %d of %d events", result.Imported, result.Total)
	return result, nil
}

// ExportJSON serializes the current full collection to pretty-printed JSON.
// Read-only; the collection is not touched.
func (s *Service) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(s.GetAll(), "", "  ")
}

// ExportICS renders the collection as an iCalendar document. Events with a
// start time become timed entries; the rest become all-day entries. Entries
// whose date fails to parse are skipped rather than aborting the export.
func (s *Service) ExportICS() ([]byte, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)

	for _, event := range s.events {
		day, err := time.ParseInLocation("2006-01-02", event.Date, time.Local)
		if err != nil {
			log.Printf("Skipping event %s in ICS export, bad date %q: %v", event.ID, event.Date, err)
			continue
		}

		ve := cal.AddEvent(event.ID)
		ve.SetCreatedTime(event.CreatedAt)
		ve.SetDtStampTime(event.UpdatedAt)
		ve.SetModifiedAt(event.UpdatedAt)
		ve.SetSummary(event.Title)
		if event.Description != "" {
			ve.SetDescription(event.Description)
		}

		start, ok := combineDateTime(day, event.StartTime)
		if !ok {
			ve.SetAllDayStartAt(day)
			ve.SetAllDayEndAt(day.AddDate(0, 0, 1))
			continue
		}

		ve.SetStartAt(start)
		if end, ok := combineDateTime(day, event.EndTime); ok && end.After(start) {
			ve.SetEndAt(end)
		} else {
			ve.SetEndAt(start.Add(DefaultUntimedDuration))
		}
	}

	return []byte(cal.Serialize()), nil
}

// combineDateTime merges an HH:MM clock string onto a calendar day.
func combineDateTime(day time.Time, clock string) (time.Time, bool) {
	if clock == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), true
}
