package validate

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Field length and range limits.
const (
	TitleMaxLength       = 100
	DescriptionMaxLength = 500
	SanitizeMaxLength    = 1000

	MinYear = 1900
	MaxYear = 2100
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe  = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
	colorRe = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
)

// Result is the outcome of a single field check. Warning carries a
// non-blocking note for input that is accepted but will be adjusted.
type Result struct {
	Valid   bool
	Message string
	Warning string
}

func ok() Result {
	return Result{Valid: true}
}

func fail(message string) Result {
	return Result{Message: message}
}

// Title checks the event title: required, at most 100 characters after
// trimming.
func Title(title string) Result {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return fail("Title is required")
	}
	if utf8.RuneCountInString(trimmed) > TitleMaxLength {
		return fail("Title must be 100 characters or less")
	}
	if len(trimmed) < len(title) {
		return Result{Valid: true, Warning: "Leading/trailing spaces will be removed"}
	}
	return ok()
}

// Date checks the event date: required, YYYY-MM-DD, a real calendar date,
// year between 1900 and 2100.
func Date(date string) Result {
	if date == "" {
		return fail("Date is required")
	}
	if !dateRe.MatchString(date) {
		return fail("Invalid date format (use YYYY-MM-DD)")
	}

	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fail("Invalid date")
	}
	if year := parsed.Year(); year < MinYear || year > MaxYear {
		return fail("Date must be between 1900 and 2100")
	}
	return ok()
}

// TimeFormat checks an optional HH:MM 24-hour time string. Empty is valid.
func TimeFormat(clock string) Result {
	if clock == "" {
		return ok()
	}
	if !timeRe.MatchString(clock) {
		return fail("Invalid time format (use HH:MM)")
	}
	return ok()
}

// TimeRange checks that the end time falls strictly after the start time.
// If either is empty the range is not constrained.
func TimeRange(startTime, endTime string) Result {
	if startTime == "" || endTime == "" {
		return ok()
	}

	if r := TimeFormat(startTime); !r.Valid {
		return r
	}
	if r := TimeFormat(endTime); !r.Valid {
		return r
	}

	if minutesOfDay(endTime) <= minutesOfDay(startTime) {
		return fail("End time must be after start time")
	}
	return ok()
}

// Description checks the optional description length.
func Description(description string) Result {
	if utf8.RuneCountInString(description) > DescriptionMaxLength {
		return fail("Description must be 500 characters or less")
	}
	return ok()
}

// Color checks an optional hex color string. Empty is valid and will be
// defaulted downstream.
func Color(color string) Result {
	if color == "" {
		return ok()
	}
	if !colorRe.MatchString(color) {
		return fail("Invalid color format (use #RRGGBB)")
	}
	return ok()
}

// FormData holds the raw field values of the event form.
type FormData struct {
	Title       string
	Date        string
	StartTime   string
	EndTime     string
	Description string
	Color       string
}

// FormResult aggregates per-field validation outcomes. Errors maps field
// name to the first failure message for that field.
type FormResult struct {
	Valid  bool
	Errors map[string]string
}

// Form validates the whole event form and collects per-field messages. The
// time-range rule only applies once both time fields are individually valid.
func Form(data FormData) FormResult {
	result := FormResult{Valid: true, Errors: map[string]string{}}

	record := func(field string, r Result) bool {
		if !r.Valid {
			result.Errors[field] = r.Message
			result.Valid = false
		}
		return r.Valid
	}

	record("title", Title(data.Title))
	record("date", Date(data.Date))
	startOK := record("startTime", TimeFormat(data.StartTime))
	endOK := record("endTime", TimeFormat(data.EndTime))
	if startOK && endOK {
		record("endTime", TimeRange(data.StartTime, data.EndTime))
	}
	record("description", Description(data.Description))
	record("color", Color(data.Color))

	return result
}

// Sanitize trims whitespace, strips angle brackets, and caps the length of
// user-supplied text. The repository applies it again as a second line of
// defense behind the form validation.
func Sanitize(input string) string {
	cleaned := strings.TrimSpace(input)
	cleaned = strings.ReplaceAll(cleaned, "<", "")
	cleaned = strings.ReplaceAll(cleaned, ">", "")

	runes := []rune(cleaned)
	if len(runes) > SanitizeMaxLength {
		cleaned = string(runes[:SanitizeMaxLength])
	}
	return cleaned
}

func minutesOfDay(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	hours := atoi(parts[0])
	minutes := atoi(parts[1])
	return hours*60 + minutes
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
