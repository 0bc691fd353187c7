package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"rfq-agent/internal/model"
	"rfq-agent/internal/rfq"
	"rfq-agent/internal/worksheet"
	"rfq-agent/pkg/log"
)

type generateOptions struct {
	discard     []int
	restore     []int
	quantities  []string
	specs       []string
	dropSpecs   []string
	industry    string
	location    string
	budget      string
	scale       string
	suggestions []string
	custom      []string
	asJSON      bool
}

func newGenerateCmd(logger func() log.Logger) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate <query...>",
		Short: "Generate an RFQ and optionally edit it",
		Long: `generate runs the full pipeline for a query and prints the RFQ.

Items are addressed by their 1-based number in the generated list. They can be
discarded or restored, given a new quantity, and have specifications added or
removed. The context can be overridden, suggestions turned into items, and
custom items added as name=quantity.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := newUseCase(logger()).Submit(cmd.Context(), rfq.SubmitInput{Query: queryArg(args)})
			if err != nil {
				return err
			}

			ws := worksheet.New(out.Result)
			if err := applyEdits(ws, opts); err != nil {
				return err
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), ws.Result())
			}
			printWorksheet(cmd.OutOrStdout(), ws)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntSliceVar(&opts.discard, "discard", nil, "discard item by number (repeatable)")
	f.IntSliceVar(&opts.restore, "restore", nil, "restore a discarded item by number (repeatable)")
	f.StringArrayVar(&opts.quantities, "qty", nil, "set an item quantity as item=quantity (repeatable)")
	f.StringArrayVar(&opts.specs, "spec", nil, "add a specification as item=text (repeatable)")
	f.StringArrayVar(&opts.dropSpecs, "drop-spec", nil, "remove a specification as item=spec number (repeatable)")
	f.StringVar(&opts.industry, "set-industry", "", "override the detected industry")
	f.StringVar(&opts.location, "set-location", "", "override the detected location")
	f.StringVar(&opts.budget, "set-budget", "", "override the budget signal (low, medium, high)")
	f.StringVar(&opts.scale, "set-scale", "", "override the scale (pilot, small_business, enterprise)")
	f.StringArrayVar(&opts.suggestions, "add-suggestion", nil, "turn a related suggestion into an item (repeatable)")
	f.StringArrayVar(&opts.custom, "custom", nil, "add a custom item as name=quantity (repeatable)")
	f.BoolVar(&opts.asJSON, "json", false, "output the edited RFQ as JSON")
	return cmd
}

// applyEdits runs item edits before anything is appended so item numbers
// refer to the generated list.
func applyEdits(ws *worksheet.Worksheet, opts generateOptions) error {
	for _, n := range opts.discard {
		if err := ws.DiscardItem(n - 1); err != nil {
			return fmt.Errorf("--discard %d: %w", n, err)
		}
	}
	for _, n := range opts.restore {
		if err := ws.RestoreItem(n - 1); err != nil {
			return fmt.Errorf("--restore %d: %w", n, err)
		}
	}
	for _, q := range opts.quantities {
		if err := setQuantity(ws, q); err != nil {
			return err
		}
	}
	// Removals go first so spec numbers refer to the generated specifications.
	for _, d := range opts.dropSpecs {
		n, raw, err := parseItemArg("--drop-spec", d)
		if err != nil {
			return err
		}
		j, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("--drop-spec %q: spec number must be a number", d)
		}
		if err := ws.RemoveSpecification(n-1, j-1); err != nil {
			return fmt.Errorf("--drop-spec %q: %w", d, err)
		}
	}
	for _, s := range opts.specs {
		n, text, err := parseItemArg("--spec", s)
		if err != nil {
			return err
		}
		if err := ws.AddSpecification(n-1, text); err != nil {
			return fmt.Errorf("--spec %q: %w", s, err)
		}
	}
	if err := editContext(ws, opts); err != nil {
		return err
	}
	for _, s := range opts.suggestions {
		if !ws.AddSuggestion(s) {
			return fmt.Errorf("--add-suggestion %q: not a related suggestion", s)
		}
	}
	for _, c := range opts.custom {
		name, qty, err := parseCustom(c)
		if err != nil {
			return err
		}
		if !ws.AddCustomItem(name, qty) {
			return fmt.Errorf("--custom %q: name is required", c)
		}
	}
	return nil
}

func setQuantity(ws *worksheet.Worksheet, arg string) error {
	n, raw, err := parseItemArg("--qty", arg)
	if err != nil {
		return err
	}
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty <= 0 {
		return fmt.Errorf("--qty %q: quantity must be a positive number", arg)
	}

	item, err := ws.Item(n - 1)
	if err != nil {
		return fmt.Errorf("--qty %q: %w", arg, err)
	}
	item.Quantity = qty
	return ws.UpdateItem(n-1, item)
}

func editContext(ws *worksheet.Worksheet, opts generateOptions) error {
	c := ws.Context()
	if opts.industry != "" {
		c.Industry = opts.industry
	}
	if opts.location != "" {
		c.Location = opts.location
	}
	if opts.budget != "" {
		b := model.BudgetSignal(opts.budget)
		if b != model.BudgetLow && b != model.BudgetMedium && b != model.BudgetHigh {
			return fmt.Errorf("--set-budget %q: must be low, medium or high", opts.budget)
		}
		c.BudgetSignal = b
	}
	if opts.scale != "" {
		s := model.Scale(opts.scale)
		if s != model.ScalePilot && s != model.ScaleSmallBusiness && s != model.ScaleEnterprise {
			return fmt.Errorf("--set-scale %q: must be pilot, small_business or enterprise", opts.scale)
		}
		c.Scale = s
	}
	ws.EditContext(c)
	return nil
}

// parseItemArg reads "item=value" where item is a 1-based item number.
func parseItemArg(flag, s string) (int, string, error) {
	rawItem, value, found := strings.Cut(s, "=")
	if !found {
		return 0, "", fmt.Errorf("%s %q: expected item=value", flag, s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(rawItem))
	if err != nil {
		return 0, "", fmt.Errorf("%s %q: item must be a number", flag, s)
	}
	return n, value, nil
}

// parseCustom reads "name=qty". A missing quantity means 1.
func parseCustom(s string) (string, int, error) {
	name, rawQty, found := strings.Cut(s, "=")
	if !found {
		return name, 1, nil
	}
	qty, err := strconv.Atoi(strings.TrimSpace(rawQty))
	if err != nil {
		return "", 0, fmt.Errorf("--custom %q: quantity must be a number", s)
	}
	return name, qty, nil
}
