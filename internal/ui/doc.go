package ui

// Package ui contains the Fyne-based user interface for desktop and mobile.
// It renders the snapshot published by the router for the current screen and
// sends taps, swipes and the back key back to the router as user intents.
