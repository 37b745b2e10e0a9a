package events

import (
	"time"

	"github.com/pocketcal/pocketcal/internal/model"
)

// Store is the persistence boundary the repository writes through. The
// concrete implementation lives in internal/storage; tests substitute a
// failing store to exercise rollback.
type Store interface {
	Load() []model.Event
	Save([]model.Event) error
	Clear() error
}

// Repository defines the interface for the event service.
type Repository interface {
	Initialize() []model.Event
	Create(input EventInput) (*model.Event, error)
	Update(id string, upd EventUpdate) (*model.Event, error)
	Delete(id string) error
	DeleteAll() error

	GetByID(id string) (*model.Event, bool)
	GetAll() []model.Event
	GetByDate(date string) []model.Event
	GetByMonth(year int, month time.Month) []model.Event
	CountByDate(date string) int
	SearchByTitle(query string) []model.Event
	Upcoming(limit int) []model.Event
	Stats() Stats

	ImportJSON(data []byte) (*ImportResult, error)
	ExportJSON() ([]byte, error)
	ExportICS() ([]byte, error)
}
