package main

import (
	"log"

	"github.com/ytget/places-guide/internal/app"
	"github.com/ytget/places-guide/internal/app/gui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	log.Printf("Places Guide v%s starting...", version)

	if err := gui.Run(app.Options{Version: version}); err != nil {
		log.Fatalf("Places Guide failed: %v", err)
	}
}
