package main

import (
	"os"

	"github.com/ytget/places-guide/cmd/places/commands"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := commands.Execute(version, runGUI); err != nil {
		os.Exit(1)
	}
}
