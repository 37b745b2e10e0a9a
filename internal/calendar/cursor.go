package calendar

import "time"

// Cursor is the (year, month) navigation state of the calendar view. It has
// no terminal state; it simply tracks which month is displayed.
type Cursor struct {
	Year  int
	Month time.Month
}

// NewCursor creates a cursor positioned on the month of the given time.
func NewCursor(now time.Time) *Cursor {
	return &Cursor{Year: now.Year(), Month: now.Month()}
}

// Previous moves the cursor one month back, wrapping December of the
// previous year after January.
func (c *Cursor) Previous() {
	if c.Month == time.January {
		c.Month = time.December
		c.Year--
		return
	}
	c.Month--
}

// Next moves the cursor one month forward, wrapping January of the next
// year after December.
func (c *Cursor) Next() {
	if c.Month == time.December {
		c.Month = time.January
		c.Year++
		return
	}
	c.Month++
}

// GoToToday resets the cursor to the month of the given time.
func (c *Cursor) GoToToday(now time.Time) {
	c.Year = now.Year()
	c.Month = now.Month()
}

// GoTo positions the cursor on a specific month.
func (c *Cursor) GoTo(year int, month time.Month) {
	c.Year = year
	c.Month = month
}
