package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestEvent_TimeRangeLabel(t *testing.T) {
	tests := []struct {
		startTime string
		endTime   string
		expected  string
	}{
		{"", "", ""},
		{"10:00", "11:00", "10:00 - 11:00"},
		{"10:00", "", "Starts at 10:00"},
		{"", "11:00", ""},
	}

	for _, test := range tests {
		event := &Event{StartTime: test.startTime, EndTime: test.endTime}
		result := event.TimeRangeLabel()
		if result != test.expected {
			t.Errorf("TimeRangeLabel() with start='%s', end='%s' = '%s', expected '%s'",
				test.startTime, test.endTime, result, test.expected)
		}
	}
}

func TestEvent_Tooltip(t *testing.T) {
	event := &Event{
		Title:       "Team Meeting",
		StartTime:   "10:00",
		EndTime:     "11:00",
		Description: "Weekly team sync",
	}

	tooltip := event.Tooltip()
	expected := "Team Meeting\n10:00 - 11:00\nWeekly team sync"
	if tooltip != expected {
		t.Errorf("Tooltip() = %q, expected %q", tooltip, expected)
	}
}

func TestEvent_TooltipTruncatesDescription(t *testing.T) {
	longDesc := strings.Repeat("x", 80)
	event := &Event{Title: "Long", Description: longDesc}

	tooltip := event.Tooltip()
	expected := "Long\n" + strings.Repeat("x", TooltipDescriptionLimit) + "..."
	if tooltip != expected {
		t.Errorf("Tooltip() = %q, expected %q", tooltip, expected)
	}
}

func TestEvent_MatchesTitle(t *testing.T) {
	tests := []struct {
		title    string
		query    string
		expected bool
	}{
		{"Team Meeting", "meet", true},
		{"Team Meeting", "MEET", true},
		{"Team Meeting", "lunch", false},
		{"Team Meeting", "", false},
	}

	for _, test := range tests {
		event := &Event{Title: test.title}
		result := event.MatchesTitle(test.query)
		if result != test.expected {
			t.Errorf("MatchesTitle(%q) on title %q = %v, expected %v",
				test.query, test.title, result, test.expected)
		}
	}
}

func TestEvent_BadgeColor(t *testing.T) {
	event := &Event{}
	if event.BadgeColor() != DefaultColor {
		t.Errorf("Expected default color %s, got %s", DefaultColor, event.BadgeColor())
	}

	event.Color = "#10b981"
	if event.BadgeColor() != "#10b981" {
		t.Errorf("Expected color #10b981, got %s", event.BadgeColor())
	}
}

func TestEvent_JSONRoundTrip(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	event := Event{
		ID:        "abc-123",
		Title:     "Dentist Appointment",
		Date:      "2024-06-15",
		StartTime: "14:00",
		EndTime:   "15:00",
		Color:     "#f59e0b",
		CreatedAt: now,
		UpdatedAt: now,
	}

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// Persisted field names must match the stored layout exactly.
	for _, key := range []string{`"id"`, `"title"`, `"date"`, `"startTime"`, `"endTime"`, `"description"`, `"color"`, `"createdAt"`, `"updatedAt"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("Serialized event missing field %s: %s", key, data)
		}
	}

	var decoded Event
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded != event {
		t.Errorf("Round-trip mismatch: got %+v, expected %+v", decoded, event)
	}
}
