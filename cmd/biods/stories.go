package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/madergk/biods/internal/preview"
	"github.com/madergk/biods/internal/tui"
)

type storiesOptions struct {
	Plain bool
}

var storiesTUIRunner = func(theme preview.Theme) error {
	return tui.Run(theme, tea.WithAltScreen())
}

func newStoriesCmd(root *rootFlags) *cobra.Command {
	opts := storiesOptions{}

	cmd := &cobra.Command{
		Use:   "stories",
		Short: "Browse the component stories styled with the project tokens",
		Long: `Stories opens an interactive catalog of the components on a terminal.
When output is redirected, or with --plain, every story is printed once.
Colours and padding come from the token document; the built-in palette is
used when the tokens cannot be loaded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}

			theme := preview.DefaultTheme()
			if prepared, err := app.Pipeline.Prepare(root.prepareRequest()); err != nil {
				app.Log.With("error", err.Error()).Warn("token theme unavailable, using the default palette")
			} else {
				theme = preview.ThemeFromTokens(prepared.Document)
			}

			out := cmd.OutOrStdout()
			if !opts.Plain && isTerminal(out) {
				return storiesTUIRunner(theme)
			}
			fmt.Fprint(out, preview.RenderAll(theme))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "Print every story instead of opening the interactive catalog")

	return cmd
}
