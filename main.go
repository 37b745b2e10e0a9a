package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/pocketcal/pocketcal/internal/config"
	"github.com/pocketcal/pocketcal/internal/events"
	"github.com/pocketcal/pocketcal/internal/storage"
	"github.com/pocketcal/pocketcal/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.pocketcal.pocketcal"
	AppName = "Pocket Calendar"

	WindowWidth  = 800
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	store := storage.NewStore(myApp.Preferences())
	storageAvailable := store.IsAvailable()
	if !storageAvailable {
		log.Printf("Preference storage unavailable; events will not persist")
	}

	service := events.NewService(store, settings.GetMaxEvents())
	service.Initialize()

	stats := service.Stats()
	usage := store.UsageInfo()
	log.Printf("Loaded %d events (%d upcoming, %d past, %d today); storage %d/%d bytes",
		stats.Total, stats.Upcoming, stats.Past, stats.Today,
		usage.UsedBytes, usage.TotalBytes)

	// Create and setup UI
	calendarUI := ui.NewCalendarUI(myWindow, myApp, service)
	if !storageAvailable {
		calendarUI.ShowStorageWarning()
	}

	// Show and run
	myWindow.ShowAndRun()
}
