package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"rfq-agent/internal/model"
	"rfq-agent/internal/worksheet"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func printWorksheet(w io.Writer, ws *worksheet.Worksheet) {
	res := ws.Result()
	ctx := ws.Context()

	fmt.Fprintf(w, "%s  [%s]\n", res.Query, res.IntentLabel)
	if res.Title != "" {
		fmt.Fprintln(w, res.Title)
	}
	fmt.Fprintf(w, "%s | %s | budget %s | %s\n\n", ctx.Industry, ctx.Location, ctx.BudgetSignal, ctx.Scale)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tITEM\tQTY\tPRICE\tEXACT\tSPECIFICATIONS")
	for i, item := range ws.Items() {
		name := item.Name
		if ws.IsDiscarded(i) {
			name += " (discarded)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\n", i+1, name, item.Quantity,
			worksheet.FormatPrice(item.PriceRange), exactPrice(item.PriceRange),
			strings.Join(item.Specifications, "; "))
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%d of %d items active\n", ws.ActiveCount(), len(ws.Items()))
	if s := ws.Suggestions(); len(s) > 0 {
		fmt.Fprintf(w, "Related: %s\n", strings.Join(s, ", "))
	}
}

// exactPrice is only shown for INR; other currencies already print in full.
func exactPrice(p model.PriceRange) string {
	if p.Currency != model.CurrencyINR {
		return "-"
	}
	return worksheet.FormatPriceExact(p)
}
