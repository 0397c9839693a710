package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/madergk/biods/internal/app/pipeline"
)

type buildOptions struct {
	Check bool
	Watch bool
}

func newBuildCmd(root *rootFlags) *cobra.Command {
	opts := buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate CSS, TypeScript and JSON from the token source",
		Long: `Build validates the token document and, when it passes, writes every
configured platform file. With --check nothing is written; the command
fails when a generated file is missing or differs. With --watch the
sources are rebuilt on every change until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Check && opts.Watch {
				return fmt.Errorf("--check and --watch cannot be combined")
			}

			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			if opts.Watch {
				return runWatch(cmd, app, root)
			}
			return runBuild(cmd, app, root, opts.Check)
		},
	}

	cmd.Flags().BoolVar(&opts.Check, "check", false, "Fail when generated files are out of date instead of writing them")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Rebuild whenever a token source changes")

	return cmd
}

func newVerifyCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify generated files match the token source without writing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			return runBuild(cmd, app, root, true)
		},
	}

	return cmd
}

func runBuild(cmd *cobra.Command, app *appContext, root *rootFlags, check bool) error {
	prepared, err := app.Pipeline.Prepare(root.prepareRequest())
	if err != nil {
		return err
	}

	outcome, err := app.Pipeline.Build(cmd.Context(), pipeline.BuildRequest{Prepared: prepared, Check: check})
	return printBuildOutcome(cmd.OutOrStdout(), app.Styles, sourceLabel(prepared.Sources), outcome, check, err)
}

func runWatch(cmd *cobra.Command, app *appContext, root *rootFlags) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	if err := runBuild(cmd, app, root, false); err != nil && !errors.Is(err, errReported) {
		return err
	}
	fmt.Fprintln(out, app.Styles.muted.Render("Watching token sources, press Ctrl+C to stop"))

	return app.Pipeline.Watch(ctx, root.prepareRequest(), func(outcome *pipeline.BuildOutcome, err error) {
		if perr := printBuildOutcome(out, app.Styles, "changed sources", outcome, false, err); perr != nil && !errors.Is(perr, errReported) {
			fmt.Fprintln(out, app.Styles.failure.Render("❌ "+perr.Error()))
		}
	})
}
