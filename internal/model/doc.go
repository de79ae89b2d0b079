package model

// Package model defines the data structures shared across the app: catalog
// places, typed navigation screens, and navigation intents. Values are plain
// and immutable so they can be handed to any renderer without copying rules.
