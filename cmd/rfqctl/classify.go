package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rfq-agent/internal/rfq"
	"rfq-agent/pkg/log"
)

func newClassifyCmd(logger func() log.Logger) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classify <query...>",
		Short: "Show the intent and context of a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := newUseCase(logger()).Classify(cmd.Context(), rfq.ClassifyInput{Query: queryArg(args)})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out.Analysis)
			}

			a := out.Analysis
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Intent:    %s (%s)\n", a.Intent, a.IntentLabel)
			fmt.Fprintf(w, "Scores:    single=%d business=%d problem=%d quantity=%t\n",
				a.Scores.SingleProduct, a.Scores.BusinessIdea, a.Scores.ProblemGoal, a.QuantityMatch)
			fmt.Fprintf(w, "Industry:  %s\n", a.Context.Industry)
			fmt.Fprintf(w, "Location:  %s\n", a.Context.Location)
			fmt.Fprintf(w, "Budget:    %s\n", a.Context.BudgetSignal)
			fmt.Fprintf(w, "Scale:     %s\n", a.Context.Scale)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}
