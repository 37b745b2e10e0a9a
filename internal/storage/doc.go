package storage

// Package storage adapts the app-scoped preferences store into a persistence
// layer for the event collection. Every operation is synchronous and total:
// failures come back as sentinel errors or empty results, never as panics,
// so the repository can treat persistence as a plain status-returning side
// effect and roll back uniformly.
