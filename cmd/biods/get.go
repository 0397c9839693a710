package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madergk/biods/internal/build"
	"github.com/madergk/biods/internal/tokens"
)

type getOptions struct {
	Path    string
	Resolve bool
}

func newGetCmd(root *rootFlags) *cobra.Command {
	opts := getOptions{}

	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Print the token or group at a dotted path",
		Example: `  biods get color.primary.500
  biods get spacing --dir ./design`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]

			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}

			prepared, err := app.Pipeline.Prepare(root.prepareRequest())
			if err != nil {
				return err
			}

			node, ok := app.Pipeline.Lookup(prepared, opts.Path)
			if !ok {
				return fmt.Errorf("no token or group at %q", opts.Path)
			}

			out := cmd.OutOrStdout()
			if node.IsObject() || node.Kind == tokens.KindArray {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(node.Interface())
			}

			if opts.Resolve {
				value, err := resolveToken(prepared.Document, opts.Path)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, value)
				return nil
			}
			fmt.Fprintln(out, node.Text())
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Resolve, "resolve", false, "Expand {path} aliases in the value")

	return cmd
}

func resolveToken(doc *tokens.Document, path string) (string, error) {
	toks := tokens.Flatten(doc)
	for _, t := range toks {
		if t.Name() == path {
			return build.NewResolver(toks).Resolve(t)
		}
	}
	return "", fmt.Errorf("%q is not a token", path)
}
