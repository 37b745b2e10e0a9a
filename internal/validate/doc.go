package validate

// Package validate holds the pure field and form checks applied to event
// input before it reaches the repository, plus the text sanitizer the
// repository re-applies on its own boundary.
