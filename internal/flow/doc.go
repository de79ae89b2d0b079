package flow

// Package flow holds one state container per screen. A flow is activated with
// the parameters of its screen, queries the catalog, and exposes a plain
// render snapshot. User selections are turned into navigation intents; flows
// never mutate navigation themselves.
