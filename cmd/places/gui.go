//go:build !headless

package main

import (
	"github.com/ytget/places-guide/cmd/places/commands"
	"github.com/ytget/places-guide/internal/app/gui"
)

var runGUI commands.GUIRunner = gui.Run
