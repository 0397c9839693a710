package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check the token document for structural problems",
		Long: `Validate walks the token document and reports every problem at once:
missing required categories, tokens without a value and duplicate
flattened paths are errors; missing optional categories, unexpected
shapes and unknown top-level keys are warnings.

Exits 1 when the file is missing, fails to parse or records an error.
Warnings alone never fail the run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}

			prepared, err := app.Pipeline.Prepare(root.prepareRequest(args...))
			if err != nil {
				return err
			}

			report := app.Pipeline.Validate(prepared)
			printReport(cmd.OutOrStdout(), app.Styles, sourceLabel(prepared.Sources), report)
			if !report.Passed() {
				return errReported
			}
			return nil
		},
	}

	return cmd
}

func sourceLabel(sources []string) string {
	return strings.Join(sources, ", ")
}
