package model

import (
	"strings"
	"time"
)

// DefaultColor is the badge color applied when an event has none.
const DefaultColor = "#3b82f6"

// TooltipDescriptionLimit is the maximum description length shown in tooltips.
const TooltipDescriptionLimit = 50

// Event represents a single dated calendar entry. Field names and JSON tags
// mirror the persisted layout, so collections round-trip through the store
// without translation.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`      // YYYY-MM-DD
	StartTime   string    `json:"startTime"` // HH:MM, optional
	EndTime     string    `json:"endTime"`   // HH:MM, optional
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TimeRangeLabel returns a human readable time range for the event, or an
// empty string when the event has no start time.
func (e *Event) TimeRangeLabel() string {
	switch {
	case e.StartTime != "" && e.EndTime != "":
		return e.StartTime + " - " + e.EndTime
	case e.StartTime != "":
		return "Starts at " + e.StartTime
	default:
		return ""
	}
}

// Tooltip composes the hover text for an event badge: title, optional time
// range, and a truncated description.
func (e *Event) Tooltip() string {
	var b strings.Builder
	b.WriteString(e.Title)

	if tr := e.TimeRangeLabel(); tr != "" {
		b.WriteString("\n")
		b.WriteString(tr)
	}

	if e.Description != "" {
		desc := e.Description
		if len(desc) > TooltipDescriptionLimit {
			desc = desc[:TooltipDescriptionLimit] + "..."
		}
		b.WriteString("\n")
		b.WriteString(desc)
	}

	return b.String()
}

// MatchesTitle reports whether the event title contains the query,
// case-insensitively. An empty query matches nothing.
func (e *Event) MatchesTitle(query string) bool {
	if query == "" {
		return false
	}
	return strings.Contains(strings.ToLower(e.Title), strings.ToLower(query))
}

// BadgeColor returns the event color, falling back to the default palette
// color when unset.
func (e *Event) BadgeColor() string {
	if e.Color == "" {
		return DefaultColor
	}
	return e.Color
}
