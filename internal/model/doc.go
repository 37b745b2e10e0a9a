package model

// Package model defines the domain data structures shared across the app:
// calendar events and their display helpers. Structures are designed for
// direct JSON persistence and for binding into the UI without copies.
