package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ytget/places-guide/internal/app"
)

// ErrNoGUI is returned by the gui command when the binary has no front-end
var ErrNoGUI = errors.New("this build has no graphical interface, use browse")

// GUIRunner opens the graphical guide and blocks until it is closed
type GUIRunner func(app.Options) error

var opts app.Options

// Execute runs the places command line
func Execute(version string, runGUI GUIRunner) error {
	return NewRootCmd(version, runGUI).Execute()
}

// NewRootCmd builds the command tree; without a subcommand it opens the GUI.
// runGUI may be nil for terminal-only builds.
func NewRootCmd(version string, runGUI GUIRunner) *cobra.Command {
	opts = app.Options{Version: version}

	root := &cobra.Command{
		Use:     "places",
		Short:   "Browse a guide of places by category",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return openGUI(runGUI)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.AssetsDir, "assets", "", "directory with place images (default: stored setting)")
	root.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log dependency wiring")

	root.AddCommand(guiCmd(runGUI), browseCmd(), categoriesCmd(), listCmd(), showCmd())
	return root
}

// gui: open the desktop/mobile window.
func guiCmd(runGUI GUIRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the graphical guide",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return openGUI(runGUI)
		},
	}
}

func openGUI(runGUI GUIRunner) error {
	if runGUI == nil {
		return ErrNoGUI
	}
	return runGUI(opts)
}
