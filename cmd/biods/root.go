package main

import (
	"github.com/spf13/cobra"

	"github.com/madergk/biods/internal/app/pipeline"
)

type rootFlags struct {
	verbose    bool
	configPath string
	dir        string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "biods",
		Short:         "biods validates and builds the bio design tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Project file (defaults to biods.yaml or biods.toml in --dir)")
	cmd.PersistentFlags().StringVar(&flags.dir, "dir", ".", "Project directory")

	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newVerifyCmd(flags))
	cmd.AddCommand(newGetCmd(flags))
	cmd.AddCommand(newSyncCmd(flags))
	cmd.AddCommand(newPaginateCmd())
	cmd.AddCommand(newStoriesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) prepareRequest(sources ...string) pipeline.PrepareRequest {
	return pipeline.PrepareRequest{Dir: f.dir, ConfigPath: f.configPath, Sources: sources}
}
