package validate

import (
	"strings"
	"testing"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		title string
		valid bool
	}{
		{"Team Meeting", true},
		{"", false},
		{"   ", false},
		{strings.Repeat("a", 100), true},
		{strings.Repeat("a", 101), false},
		{"Встреча команды", true},
		{strings.Repeat("я", 100), true}, // limit counts characters, not bytes
		{strings.Repeat("я", 101), false},
	}

	for _, test := range tests {
		result := Title(test.title)
		if result.Valid != test.valid {
			t.Errorf("Title(%q).Valid = %v, expected %v (%s)", test.title, result.Valid, test.valid, result.Message)
		}
	}
}

func TestTitle_WhitespaceWarning(t *testing.T) {
	result := Title("  Team Meeting  ")
	if !result.Valid {
		t.Fatalf("Expected padded title to be valid, got %s", result.Message)
	}
	if result.Warning == "" {
		t.Error("Expected a warning about leading/trailing whitespace")
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		date  string
		valid bool
	}{
		{"2024-06-15", true},
		{"2024-02-29", true},  // leap day
		{"2023-02-29", false}, // not a leap year
		{"2024-13-01", false},
		{"2024-06-31", false},
		{"", false},
		{"06/15/2024", false},
		{"2024-6-15", false},
		{"1899-12-31", false},
		{"2101-01-01", false},
		{"1900-01-01", true},
		{"2100-12-31", true},
	}

	for _, test := range tests {
		result := Date(test.date)
		if result.Valid != test.valid {
			t.Errorf("Date(%q).Valid = %v, expected %v (%s)", test.date, result.Valid, test.valid, result.Message)
		}
	}
}

func TestTimeFormat(t *testing.T) {
	tests := []struct {
		clock string
		valid bool
	}{
		{"", true},
		{"00:00", true},
		{"9:30", true},
		{"23:59", true},
		{"24:00", false},
		{"12:60", false},
		{"noon", false},
		{"12.30", false},
	}

	for _, test := range tests {
		result := TimeFormat(test.clock)
		if result.Valid != test.valid {
			t.Errorf("TimeFormat(%q).Valid = %v, expected %v", test.clock, result.Valid, test.valid)
		}
	}
}

func TestTimeRange(t *testing.T) {
	tests := []struct {
		start string
		end   string
		valid bool
	}{
		{"10:00", "11:00", true},
		{"10:00", "10:00", false},
		{"11:00", "10:00", false},
		{"", "11:00", true},
		{"10:00", "", true},
		{"", "", true},
		{"9:00", "17:30", true},
	}

	for _, test := range tests {
		result := TimeRange(test.start, test.end)
		if result.Valid != test.valid {
			t.Errorf("TimeRange(%q, %q).Valid = %v, expected %v (%s)",
				test.start, test.end, result.Valid, test.valid, result.Message)
		}
	}
}

func TestDescription(t *testing.T) {
	if !Description("").Valid {
		t.Error("Empty description should be valid")
	}
	if !Description(strings.Repeat("a", 500)).Valid {
		t.Error("500-char description should be valid")
	}
	if Description(strings.Repeat("a", 501)).Valid {
		t.Error("501-char description should be invalid")
	}
	if !Description(strings.Repeat("я", 500)).Valid {
		t.Error("500-char non-ASCII description should be valid")
	}
	if Description(strings.Repeat("я", 501)).Valid {
		t.Error("501-char non-ASCII description should be invalid")
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		color string
		valid bool
	}{
		{"", true},
		{"#3b82f6", true},
		{"#FFF", true},
		{"#fff", true},
		{"3b82f6", false},
		{"#12345", false},
		{"#gggggg", false},
		{"blue", false},
	}

	for _, test := range tests {
		result := Color(test.color)
		if result.Valid != test.valid {
			t.Errorf("Color(%q).Valid = %v, expected %v", test.color, result.Valid, test.valid)
		}
	}
}

func TestForm(t *testing.T) {
	valid := Form(FormData{
		Title:     "Team Meeting",
		Date:      "2024-06-15",
		StartTime: "10:00",
		EndTime:   "11:00",
		Color:     "#3b82f6",
	})
	if !valid.Valid {
		t.Errorf("Expected valid form, got errors: %v", valid.Errors)
	}
	if len(valid.Errors) != 0 {
		t.Errorf("Expected no errors, got %v", valid.Errors)
	}

	invalid := Form(FormData{
		Title:       "",
		Date:        "junk",
		StartTime:   "25:00",
		EndTime:     "11:00",
		Description: strings.Repeat("a", 501),
		Color:       "red",
	})
	if invalid.Valid {
		t.Error("Expected form to be invalid")
	}

	for _, field := range []string{"title", "date", "startTime", "description", "color"} {
		if invalid.Errors[field] == "" {
			t.Errorf("Expected an error message for field %q, got none (errors: %v)", field, invalid.Errors)
		}
	}
}

func TestForm_TimeRangeOnlyCheckedWhenFormatsValid(t *testing.T) {
	// Bad start format: the range rule must not also fire on endTime.
	result := Form(FormData{
		Title:     "Meeting",
		Date:      "2024-06-15",
		StartTime: "bad",
		EndTime:   "09:00",
	})
	if result.Valid {
		t.Fatal("Expected form to be invalid")
	}
	if result.Errors["endTime"] != "" {
		t.Errorf("endTime should have no error when start format is invalid, got %q", result.Errors["endTime"])
	}

	// Valid formats but inverted range: error lands on endTime.
	result = Form(FormData{
		Title:     "Meeting",
		Date:      "2024-06-15",
		StartTime: "11:00",
		EndTime:   "10:00",
	})
	if result.Errors["endTime"] == "" {
		t.Error("Expected endTime error for inverted time range")
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  hello  ", "hello"},
		{"<script>alert(1)</script>", "scriptalert(1)/script"},
		{"a < b > c", "a  b  c"},
		{"plain", "plain"},
	}

	for _, test := range tests {
		result := Sanitize(test.input)
		if result != test.expected {
			t.Errorf("Sanitize(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}

	long := Sanitize(strings.Repeat("x", 2000))
	if len(long) != SanitizeMaxLength {
		t.Errorf("Expected sanitized length %d, got %d", SanitizeMaxLength, len(long))
	}
}
