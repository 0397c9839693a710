package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madergk/biods/internal/pagination"
)

type paginateOptions struct {
	Current int
	Total   int
	GoTo    int
}

func newPaginateCmd() *cobra.Command {
	opts := paginateOptions{}

	cmd := &cobra.Command{
		Use:   "paginate",
		Short: "Print the page buttons a pagination control shows",
		Long: `Paginate prints the visible window for the given state, e.g.
"1 … 4 5 6 … 10". With --go it also reports whether a request to move to
that page would be honored.`,
		Example: `  biods paginate --current 5 --total 10
  biods paginate --current 10 --total 10 --go 11`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Total < 0 {
				return fmt.Errorf("--total must not be negative, got %d", opts.Total)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, pagination.Format(pagination.Window(opts.Current, opts.Total)))

			if !cmd.Flags().Changed("go") {
				return nil
			}

			pager := pagination.NewPager(opts.Current, opts.Total)
			pager.OnPageChange(func(page int) {
				fmt.Fprintf(out, "page changed → %d\n", page)
			})
			if !pager.GoTo(opts.GoTo) {
				fmt.Fprintf(out, "request for page %d ignored\n", opts.GoTo)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Current, "current", 1, "Current page (1-based)")
	cmd.Flags().IntVar(&opts.Total, "total", 1, "Total number of pages")
	cmd.Flags().IntVar(&opts.GoTo, "go", 0, "Request a change to this page")

	return cmd
}
