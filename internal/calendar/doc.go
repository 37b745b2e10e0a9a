package calendar

// Package calendar contains the pure month-grid computation: days-in-month
// and weekday arithmetic, cell population from an event list, badge
// overflow policy, and the month navigation cursor. Nothing here touches
// widgets or storage; the UI layer paints whatever structure this package
// produces.
