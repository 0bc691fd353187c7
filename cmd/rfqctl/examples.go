package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rfq-agent/pkg/log"
)

func newExamplesCmd(logger func() log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "List popular categories and sample queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := newUseCase(logger()).Examples(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Categories:")
			for _, c := range out.Examples.Categories {
				fmt.Fprintf(w, "  %-16s %s\n", c.Name, c.Query)
			}
			fmt.Fprintln(w, "Try:")
			for _, q := range out.Examples.Queries {
				fmt.Fprintf(w, "  %s\n", q)
			}
			return nil
		},
	}
}
