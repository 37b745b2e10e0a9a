package events

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pocketcal/pocketcal/internal/model"
	"github.com/pocketcal/pocketcal/internal/validate"
)

// Default limits
const (
	// DefaultMaxEvents caps the total event count when no configured
	// ceiling is supplied.
	DefaultMaxEvents = 10000

	// DefaultUpcomingLimit is the upcoming-list size when the caller asks
	// for zero or a negative limit.
	DefaultUpcomingLimit = 10
)

// Sentinel errors returned by mutating operations.
var (
	ErrMissingRequired = errors.New("title and date are required")
	ErrAtCapacity      = errors.New("maximum event limit reached")
	ErrNotFound        = errors.New("event not found")
)

// EventInput carries the fields a caller supplies when creating an event.
// Unset optional fields receive safe defaults.
type EventInput struct {
	Title       string
	Date        string
	StartTime   string
	EndTime     string
	Description string
	Color       string
}

// EventUpdate describes a partial update. A nil field leaves the stored
// value unchanged; a non-nil field replaces it, so a caller can clear an
// optional field by pointing at an empty string. Clearing Title or Date is
// invalid and rejected, since both are required.
type EventUpdate struct {
	Title       *string
	Date        *string
	StartTime   *string
	EndTime     *string
	Description *string
	Color       *string
}

// Stats partitions the collection by comparing event dates to today.
// Today's events count toward both Today and Upcoming.
type Stats struct {
	Total    int
	Upcoming int
	Past     int
	Today    int
}

// Service owns the authoritative in-memory event list and mediates every
// mutation. Each mutating call persists the full collection immediately and
// reverts the in-memory state when persistence fails, so the store and the
// list never diverge observably.
type Service struct {
	store     Store
	maxEvents int
	events    []model.Event

	// now is the clock used for timestamps and today-relative queries.
	now func() time.Time
}

// NewService creates an event service writing through the given store.
// A non-positive maxEvents selects the default ceiling.
func NewService(store Store, maxEvents int) *Service {
	if maxEvents <= 0 {
		maxEvents = DefaultMaxEvents
	}
	return &Service{
		store:     store,
		maxEvents: maxEvents,
		events:    []model.Event{},
		now:       time.Now,
	}
}

// Initialize loads the persisted collection into memory. It is idempotent
// and safe to call again; the store remains the source of truth until the
// first mutation.
func (s *Service) Initialize() []model.Event {
	s.events = s.store.Load()
	log.Printf("Loaded %d events from storage", len(s.events))
	return s.GetAll()
}

// Create validates, stamps, and appends a new event, then persists the
// collection. The appended entry is removed again if persistence fails.
func (s *Service) Create(input EventInput) (*model.Event, error) {
	title := validate.Sanitize(input.Title)
	if title == "" || input.Date == "" {
		return nil, ErrMissingRequired
	}

	if len(s.events) >= s.maxEvents {
		log.Printf("Refusing to create event, ceiling of %d reached", s.maxEvents)
		return nil, ErrAtCapacity
	}

	now := s.now()
	event := model.Event{
		ID:          generateEventID(),
		Title:       title,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Description: validate.Sanitize(input.Description),
		Color:       input.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if event.Color == "" {
		event.Color = model.DefaultColor
	}

	s.events = append(s.events, event)

	if err := s.store.Save(s.events); err != nil {
		s.events = s.events[:len(s.events)-1]
		return nil, fmt.Errorf("persist create: %w", err)
	}

	log.Printf("Event created: %s", event.ID)
	return &event, nil
}

// Update merges the supplied fields over the stored event, refreshes the
// update timestamp, and persists. The previous value is restored if
// persistence fails.
func (s *Service) Update(id string, upd EventUpdate) (*model.Event, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	backup := s.events[idx]
	merged := backup

	if upd.Title != nil {
		title := validate.Sanitize(*upd.Title)
		if title == "" {
			return nil, ErrMissingRequired
		}
		merged.Title = title
	}
	if upd.Date != nil {
		if *upd.Date == "" {
			return nil, ErrMissingRequired
		}
		merged.Date = *upd.Date
	}
	if upd.StartTime != nil {
		merged.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		merged.EndTime = *upd.EndTime
	}
	if upd.Description != nil {
		merged.Description = validate.Sanitize(*upd.Description)
	}
	if upd.Color != nil {
		merged.Color = *upd.Color
		if merged.Color == "" {
			merged.Color = model.DefaultColor
		}
	}
	merged.UpdatedAt = s.now()

	s.events[idx] = merged

	if err := s.store.Save(s.events); err != nil {
		s.events[idx] = backup
		return nil, fmt.Errorf("persist update: %w", err)
	}

	log.Printf("Event updated: %s", id)
	return &merged, nil
}

// Delete removes the event with the given id and persists. The full prior
// sequence is restored if persistence fails.
func (s *Service) Delete(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}

	backup := s.GetAll()
	s.events = append(s.events[:idx], s.events[idx+1:]...)

	if err := s.store.Save(s.events); err != nil {
		s.events = backup
		return fmt.Errorf("persist delete: %w", err)
	}

	log.Printf("Event deleted: %s", id)
	return nil
}

// DeleteAll clears the entire collection with the same rollback discipline.
func (s *Service) DeleteAll() error {
	backup := s.events
	s.events = []model.Event{}

	if err := s.store.Save(s.events); err != nil {
		s.events = backup
		return fmt.Errorf("persist delete all: %w", err)
	}

	log.Printf("All events deleted")
	return nil
}

// GetByID returns a copy of the event with the given id.
func (s *Service) GetByID(id string) (*model.Event, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, false
	}
	event := s.events[idx]
	return &event, true
}

// GetAll returns a copy of the collection in creation order. Callers never
// receive the internal slice; they re-query after every mutation.
func (s *Service) GetAll() []model.Event {
	all := make([]model.Event, len(s.events))
	copy(all, s.events)
	return all
}

// GetByDate returns the events whose date equals the given YYYY-MM-DD
// string, in current in-memory order.
func (s *Service) GetByDate(date string) []model.Event {
	var matched []model.Event
	for _, event := range s.events {
		if event.Date == date {
			matched = append(matched, event)
		}
	}
	return matched
}

// GetByMonth returns the events falling in the given month, by prefix match
// on the YYYY-MM portion of the date.
func (s *Service) GetByMonth(year int, month time.Month) []model.Event {
	prefix := fmt.Sprintf("%04d-%02d", year, int(month))

	var matched []model.Event
	for _, event := range s.events {
		if len(event.Date) >= len(prefix) && event.Date[:len(prefix)] == prefix {
			matched = append(matched, event)
		}
	}
	return matched
}

// CountByDate returns the number of events on the given date.
func (s *Service) CountByDate(date string) int {
	return len(s.GetByDate(date))
}

// SearchByTitle returns the events whose title contains the query,
// case-insensitively. An empty query yields an empty result, not the full
// collection.
func (s *Service) SearchByTitle(query string) []model.Event {
	var matched []model.Event
	for _, event := range s.events {
		if event.MatchesTitle(query) {
			matched = append(matched, event)
		}
	}
	return matched
}

// Upcoming returns events dated today or later, sorted ascending by date
// then start time (a missing start time sorts first), truncated to limit.
func (s *Service) Upcoming(limit int) []model.Event {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	today := s.todayString()
	var upcoming []model.Event
	for _, event := range s.events {
		if event.Date >= today {
			upcoming = append(upcoming, event)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].Date != upcoming[j].Date {
			return upcoming[i].Date < upcoming[j].Date
		}
		return upcoming[i].StartTime < upcoming[j].StartTime
	})

	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// Stats counts the collection relative to today. Events dated today are
// intentionally counted in both Today and Upcoming, matching the app's
// long-standing display behavior.
func (s *Service) Stats() Stats {
	today := s.todayString()

	stats := Stats{Total: len(s.events)}
	for _, event := range s.events {
		switch {
		case event.Date == today:
			stats.Today++
			stats.Upcoming++
		case event.Date > today:
			stats.Upcoming++
		default:
			stats.Past++
		}
	}
	return stats
}

func (s *Service) indexOf(id string) int {
	for i := range s.events {
		if s.events[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) todayString() string {
	return s.now().Format("2006-01-02")
}

// generateEventID generates a unique event ID.
func generateEventID() string {
	return "evt-" + uuid.NewString()
}
