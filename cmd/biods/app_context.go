package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madergk/biods/internal/app/pipeline"
	"github.com/madergk/biods/internal/logger"
)

// appContext bundles the services a command needs.
type appContext struct {
	Log      *logger.Logger
	Pipeline *pipeline.Service
	Styles   reportStyles
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}

	errOut := cmd.ErrOrStderr()
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		NoColor:       !isTerminal(errOut),
		Writer:        errOut,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &appContext{
		Log:      log,
		Pipeline: pipeline.NewService(log),
		Styles:   newReportStyles(cmd.OutOrStdout()),
	}, nil
}
