package calendar

import (
	"fmt"
	"time"

	"github.com/pocketcal/pocketcal/internal/model"
)

// MaxVisibleBadges is the number of event badges a day cell shows before
// collapsing the rest behind an overflow indicator.
const MaxVisibleBadges = 3

// DaysInMonth returns the number of days in the given month, correct across
// variable month lengths and leap years by calendar arithmetic.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the following month normalizes to this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the first day of the month
// (Sunday = 0 .. Saturday = 6).
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// FormatDate renders a calendar day as YYYY-MM-DD.
func FormatDate(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// Cell is one slot of the month grid: either a leading blank or a day of
// the month annotated with its events.
type Cell struct {
	Day     int // 1..31, or 0 for a leading blank
	Date    string
	IsToday bool
	Events  []model.Event
}

// Blank reports whether this is a leading filler cell before day 1.
func (c *Cell) Blank() bool {
	return c.Day == 0
}

// VisibleEvents returns the subset of events shown as badges, in the order
// the caller supplied them.
func (c *Cell) VisibleEvents() []model.Event {
	if len(c.Events) <= MaxVisibleBadges {
		return c.Events
	}
	return c.Events[:MaxVisibleBadges]
}

// OverflowCount returns how many events are hidden behind the indicator.
func (c *Cell) OverflowCount() int {
	if len(c.Events) <= MaxVisibleBadges {
		return 0
	}
	return len(c.Events) - MaxVisibleBadges
}

// OverflowLabel returns the indicator text, e.g. "+2 more", or an empty
// string when nothing is hidden.
func (c *Cell) OverflowLabel() string {
	n := c.OverflowCount()
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("+%d more", n)
}

// MonthGrid is the structural description of one rendered month: leading
// blank cells followed by one cell per day. It carries no widget state, so
// rebuilding it from unchanged inputs yields an equivalent grid.
type MonthGrid struct {
	Year          int
	Month         time.Month
	LeadingBlanks int
	Cells         []Cell
}

// Title returns the grid heading, e.g. "June 2024".
func (g *MonthGrid) Title() string {
	return fmt.Sprintf("%s %d", g.Month.String(), g.Year)
}

// DayCells returns the non-blank cells of the grid.
func (g *MonthGrid) DayCells() []Cell {
	return g.Cells[g.LeadingBlanks:]
}

// CellFor returns the cell holding the given day, or nil when the day falls
// outside the month.
func (g *MonthGrid) CellFor(day int) *Cell {
	if day < 1 || day > len(g.Cells)-g.LeadingBlanks {
		return nil
	}
	return &g.Cells[g.LeadingBlanks+day-1]
}

// BuildMonthGrid computes the grid for a month. The reference date is
// captured once, so "today" stays consistent through a render even if the
// clock ticks over mid-build. Events are matched to cells by exact date
// string and keep the order they were supplied in.
func BuildMonthGrid(year int, month time.Month, today time.Time, events []model.Event) *MonthGrid {
	byDate := make(map[string][]model.Event)
	for _, event := range events {
		byDate[event.Date] = append(byDate[event.Date], event)
	}

	todayYear, todayMonth, todayDay := today.Date()

	blanks := int(FirstWeekday(year, month))
	days := DaysInMonth(year, month)

	grid := &MonthGrid{
		Year:          year,
		Month:         month,
		LeadingBlanks: blanks,
		Cells:         make([]Cell, 0, blanks+days),
	}

	for i := 0; i < blanks; i++ {
		grid.Cells = append(grid.Cells, Cell{})
	}

	for day := 1; day <= days; day++ {
		date := FormatDate(year, month, day)
		grid.Cells = append(grid.Cells, Cell{
			Day:     day,
			Date:    date,
			IsToday: year == todayYear && month == todayMonth && day == todayDay,
			Events:  byDate[date],
		})
	}

	return grid
}
