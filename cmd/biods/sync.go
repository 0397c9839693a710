package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madergk/biods/internal/changes"
)

func newSyncCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Show token source changes since the last commit, then rebuild",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}

			prepared, err := app.Pipeline.Prepare(root.prepareRequest())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			outcome, err := app.Pipeline.Sync(cmd.Context(), prepared)
			if outcome == nil {
				return err
			}

			printChanges(cmd, app.Styles, outcome.Changes)
			return printBuildOutcome(out, app.Styles, sourceLabel(prepared.Sources), outcome.Build, false, err)
		},
	}

	return cmd
}

func printChanges(cmd *cobra.Command, s reportStyles, summary changes.Summary) {
	out := cmd.OutOrStdout()
	if summary.Head != "" {
		fmt.Fprintln(out, s.heading.Render(fmt.Sprintf("On %s at %s", summary.Branch, summary.Head)))
	}
	if summary.Note != "" {
		fmt.Fprintln(out, s.muted.Render(summary.Note))
	}

	changed := summary.Changed()
	if len(summary.Files) > 0 && len(changed) == 0 {
		fmt.Fprintln(out, s.muted.Render("token sources unchanged"))
	}
	for _, f := range changed {
		fmt.Fprintf(out, "  %-10s %s\n", f.State, f.RepoPath)
	}
}
