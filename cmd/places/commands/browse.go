package commands

import (
	"github.com/spf13/cobra"

	"github.com/ytget/places-guide/internal/app"
	"github.com/ytget/places-guide/internal/console"
)

// browse: interactive terminal navigation over stdin/stdout.
func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the guide interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			core, err := app.NewCore(opts)
			if err != nil {
				return err
			}
			session := console.NewSession(core.Router, cmd.OutOrStdout())
			return session.Run(cmd.Context(), cmd.InOrStdin())
		},
	}
}
