//go:build headless

package main

import "github.com/ytget/places-guide/cmd/places/commands"

// Built with -tags headless: terminal commands only, no cgo or display needed.
var runGUI commands.GUIRunner
