package config

import (
	"fyne.io/fyne/v2"

	"github.com/pocketcal/pocketcal/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyDefaultColor   = "default_event_color"
	KeyMaxEvents      = "max_events"
	KeyUpcomingLimit  = "upcoming_limit"
	KeyLanguage       = "app_language"
	KeyConfirmDeletes = "confirm_deletes"
)

// Default values
const (
	DefaultMaxEvents      = 10000
	DefaultUpcomingLimit  = 10
	DefaultLanguage       = "system"
	DefaultConfirmDeletes = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDefaultEventColor returns the color applied to events created without one
func (s *Settings) GetDefaultEventColor() string {
	color := s.app.Preferences().String(KeyDefaultColor)
	if color == "" {
		s.SetDefaultEventColor(model.DefaultColor)
		return model.DefaultColor
	}
	return color
}

// SetDefaultEventColor sets the default event color
func (s *Settings) SetDefaultEventColor(color string) {
	if color == "" {
		color = model.DefaultColor
	}
	s.app.Preferences().SetString(KeyDefaultColor, color)
}

// GetMaxEvents returns the event count ceiling
func (s *Settings) GetMaxEvents() int {
	value := s.app.Preferences().Int(KeyMaxEvents)
	if value <= 0 {
		s.SetMaxEvents(DefaultMaxEvents)
		return DefaultMaxEvents
	}
	return value
}

// SetMaxEvents sets the event count ceiling. The event service reads the
// ceiling once at startup, so a change takes effect on the next launch.
func (s *Settings) SetMaxEvents(count int) {
	if count < 100 {
		count = 100
	}
	if count > 100000 {
		count = 100000
	}
	s.app.Preferences().SetInt(KeyMaxEvents, count)
}

// GetUpcomingLimit returns how many events the upcoming list shows
func (s *Settings) GetUpcomingLimit() int {
	value := s.app.Preferences().Int(KeyUpcomingLimit)
	if value <= 0 {
		s.SetUpcomingLimit(DefaultUpcomingLimit)
		return DefaultUpcomingLimit
	}
	return value
}

// SetUpcomingLimit sets how many events the upcoming list shows
func (s *Settings) SetUpcomingLimit(limit int) {
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}
	s.app.Preferences().SetInt(KeyUpcomingLimit, limit)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetConfirmDeletes returns whether destructive actions ask first
func (s *Settings) GetConfirmDeletes() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDeletes, DefaultConfirmDeletes)
}

// SetConfirmDeletes sets whether destructive actions ask first
func (s *Settings) SetConfirmDeletes(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmDeletes, confirm)
}

// GetColorOptions returns the palette offered by the event form
func (s *Settings) GetColorOptions() []string {
	return []string{
		"#3b82f6", // blue
		"#10b981", // green
		"#ef4444", // red
		"#f59e0b", // amber
		"#ec4899", // pink
	}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
