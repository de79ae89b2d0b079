package app

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/ytget/places-guide/internal/catalog"
	"github.com/ytget/places-guide/internal/flow"
	"github.com/ytget/places-guide/internal/nav"
)

// Options are the process-level knobs shared by all entry points
type Options struct {
	AssetsDir string // overrides the stored assets directory when set
	Verbose   bool
	Version   string
}

// CoreModule provides the catalog, the navigator and the router
var CoreModule = fx.Provide(
	provideCatalog,
	provideCatalogQueries,
	nav.New,
	nav.NewRouter,
)

func provideCatalog() (*catalog.Store, error) {
	return catalog.New(catalog.SeedCategories(), catalog.SeedPlaces())
}

func provideCatalogQueries(store *catalog.Store) flow.Catalog {
	return store
}

// Logger silences fx unless verbose output was requested
func Logger(verbose bool) fx.Option {
	if !verbose {
		return fx.NopLogger
	}
	return fx.WithLogger(func() fxevent.Logger {
		return &fxevent.ConsoleLogger{W: os.Stderr}
	})
}

// Core is the UI-independent part of the application
type Core struct {
	Catalog *catalog.Store
	Router  *nav.Router
}

// NewCore builds the catalog and router through the fx graph
func NewCore(opts Options) (*Core, error) {
	var core Core
	app := fx.New(
		Logger(opts.Verbose),
		CoreModule,
		fx.Populate(&core.Catalog, &core.Router),
	)
	if err := app.Err(); err != nil {
		return nil, err
	}
	return &core, nil
}
