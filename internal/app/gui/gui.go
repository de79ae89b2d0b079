// Package gui runs the Fyne front-end on top of the core graph.
package gui

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"go.uber.org/fx"

	"github.com/ytget/places-guide/internal/app"
	"github.com/ytget/places-guide/internal/config"
	"github.com/ytget/places-guide/internal/ui"
)

const (
	AppID   = "com.ytget.places-guide"
	AppName = "Places Guide"
)

// Module provides the Fyne application, window and root UI
var Module = fx.Provide(
	provideFyneApp,
	config.NewSettings,
	provideImageLoader,
	provideWindow,
	ui.NewRootUI,
)

func provideFyneApp() fyne.App {
	return fyneapp.NewWithID(AppID)
}

func provideImageLoader(settings *config.Settings, opts app.Options) *ui.ImageLoader {
	dir := opts.AssetsDir
	if dir == "" {
		dir = settings.GetAssetsDirectory()
	}
	return ui.NewImageLoader(dir)
}

func provideWindow(a fyne.App, settings *config.Settings, opts app.Options) fyne.Window {
	title := AppName
	if opts.Version != "" {
		title = fmt.Sprintf("%s v%s", AppName, opts.Version)
	}

	window := a.NewWindow(title)
	width, height := settings.GetWindowSize()
	window.Resize(fyne.NewSize(float32(width), float32(height)))
	return window
}

// Run builds the graph and blocks in the Fyne event loop until the
// window is closed. It must be called from the main goroutine.
func Run(opts app.Options) error {
	var window fyne.Window
	fxApp := fx.New(
		app.Logger(opts.Verbose),
		fx.Supply(opts),
		app.CoreModule,
		Module,
		fx.Invoke(func(*ui.RootUI) {}),
		fx.Populate(&window),
	)
	if err := fxApp.Err(); err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	ctx := context.Background()
	if err := fxApp.Start(ctx); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}
	defer func() {
		if err := fxApp.Stop(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	window.ShowAndRun()
	return nil
}
