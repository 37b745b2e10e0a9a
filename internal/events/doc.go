package events

// Package events implements the event repository: the single owner of the
// in-memory event collection. Every create, update, and delete persists the
// full collection through the injected store and rolls the in-memory state
// back when persistence fails, keeping memory and store atomically in sync.
// The package also hosts the JSON import/export and ICS export surfaces.
