package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/pocketcal/pocketcal/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDefaultEventColor(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	color := settings.GetDefaultEventColor()
	if color != model.DefaultColor {
		t.Errorf("Expected default color %s, got %s", model.DefaultColor, color)
	}

	// Test setting custom value
	settings.SetDefaultEventColor("#ec4899")

	retrievedColor := settings.GetDefaultEventColor()
	if retrievedColor != "#ec4899" {
		t.Errorf("Expected color #ec4899, got %s", retrievedColor)
	}

	// Test empty color defaults back
	settings.SetDefaultEventColor("")
	retrievedColor = settings.GetDefaultEventColor()
	if retrievedColor != model.DefaultColor {
		t.Errorf("Empty color should default to %s, got %s", model.DefaultColor, retrievedColor)
	}
}

func TestMaxEvents(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	maxEvents := settings.GetMaxEvents()
	if maxEvents != DefaultMaxEvents {
		t.Errorf("Expected default max events %d, got %d", DefaultMaxEvents, maxEvents)
	}

	// Test setting custom value
	settings.SetMaxEvents(5000)

	retrievedMax := settings.GetMaxEvents()
	if retrievedMax != 5000 {
		t.Errorf("Expected max events 5000, got %d", retrievedMax)
	}

	// Test boundary values
	settings.SetMaxEvents(0) // Should be clamped to 100
	if settings.GetMaxEvents() != 100 {
		t.Error("Max events should be clamped to minimum 100")
	}

	settings.SetMaxEvents(1000000) // Should be clamped to 100000
	if settings.GetMaxEvents() != 100000 {
		t.Error("Max events should be clamped to maximum 100000")
	}
}

func TestUpcomingLimit(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	limit := settings.GetUpcomingLimit()
	if limit != DefaultUpcomingLimit {
		t.Errorf("Expected default upcoming limit %d, got %d", DefaultUpcomingLimit, limit)
	}

	// Test setting custom value
	settings.SetUpcomingLimit(25)

	retrievedLimit := settings.GetUpcomingLimit()
	if retrievedLimit != 25 {
		t.Errorf("Expected upcoming limit 25, got %d", retrievedLimit)
	}

	// Test boundary values
	settings.SetUpcomingLimit(0) // Should be clamped to 1
	if settings.GetUpcomingLimit() != 1 {
		t.Error("Upcoming limit should be clamped to minimum 1")
	}

	settings.SetUpcomingLimit(500) // Should be clamped to 100
	if settings.GetUpcomingLimit() != 100 {
		t.Error("Upcoming limit should be clamped to maximum 100")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestConfirmDeletes(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if !settings.GetConfirmDeletes() {
		t.Error("Confirm deletes should default to true")
	}

	// Test setting custom value
	settings.SetConfirmDeletes(false)
	if settings.GetConfirmDeletes() {
		t.Error("Expected confirm deletes false after disabling")
	}
}

func TestGetColorOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetColorOptions()
	if len(options) != 5 {
		t.Fatalf("Expected 5 color options, got %d", len(options))
	}

	if options[0] != model.DefaultColor {
		t.Errorf("First color option should be the default %s, got %s", model.DefaultColor, options[0])
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
