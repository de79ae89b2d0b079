package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/places-guide/internal/app"
	"github.com/ytget/places-guide/internal/console"
	"github.com/ytget/places-guide/internal/flow"
	"github.com/ytget/places-guide/internal/model"
)

// categories: print the category list.
func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			core, err := app.NewCore(opts)
			if err != nil {
				return err
			}
			return console.WriteRender(cmd.OutOrStdout(), core.Router.Render())
		},
	}
}

// list: print the places of one category.
func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <category>",
		Short: "List places of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderScreen(cmd, model.PlaceListScreen(args[0]))
		},
	}
}

// show: print a single place. Malformed ids render the not-found screen.
func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a place by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderScreen(cmd, model.PlaceDetailScreen(flow.ParsePlaceID(args[0])))
		},
	}
}

func renderScreen(cmd *cobra.Command, screen model.Screen) error {
	core, err := app.NewCore(opts)
	if err != nil {
		return err
	}
	if !core.Router.Dispatch(model.Push(screen)) {
		return fmt.Errorf("cannot open %s", screen)
	}
	return console.WriteRender(cmd.OutOrStdout(), core.Router.Render())
}
