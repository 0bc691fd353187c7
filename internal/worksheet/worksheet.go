// Package worksheet is the buyer's editable copy of a generated RFQ. Edits
// stay local to the worksheet and never change the generated result.
package worksheet

import (
	"errors"
	"strings"

	"rfq-agent/internal/model"
)

const (
	purposeSuggestion = "Added from suggestions"
	purposeCustom     = "Custom item added by buyer"
	specPlaceholder   = "To be specified"
	sourcingNoteAdded = "Specify your requirements to get accurate quotes from suppliers."
)

var ErrItemIndexOutOfRange = errors.New("worksheet: item index out of range")

// Worksheet is not safe for concurrent use.
type Worksheet struct {
	intent      model.Intent
	intentLabel string
	query       string
	title       string
	context     model.Context
	items       []model.LineItem
	suggestions []string
	discarded   map[int]bool
}

// New copies result into a fresh worksheet.
func New(result model.RfqResult) *Worksheet {
	r := result.Clone()
	return &Worksheet{
		intent:      r.IntentType,
		intentLabel: r.IntentLabel,
		query:       r.Query,
		title:       r.Title,
		context:     r.Context,
		items:       r.Items,
		suggestions: r.RelatedSuggestions,
		discarded:   make(map[int]bool),
	}
}

func (w *Worksheet) checkIndex(i int) error {
	if i < 0 || i >= len(w.items) {
		return ErrItemIndexOutOfRange
	}
	return nil
}

// Items returns every item, discarded ones included, in their original order.
func (w *Worksheet) Items() []model.LineItem {
	return model.CloneItems(w.items)
}

// Item returns a copy of item i.
func (w *Worksheet) Item(i int) (model.LineItem, error) {
	if err := w.checkIndex(i); err != nil {
		return model.LineItem{}, err
	}
	return w.items[i].Clone(), nil
}

// UpdateItem replaces item i.
func (w *Worksheet) UpdateItem(i int, item model.LineItem) error {
	if err := w.checkIndex(i); err != nil {
		return err
	}
	w.items[i] = item.Clone()
	return nil
}

// DiscardItem hides item i from the active list. Discarding twice is a no-op.
func (w *Worksheet) DiscardItem(i int) error {
	if err := w.checkIndex(i); err != nil {
		return err
	}
	w.discarded[i] = true
	return nil
}

// RestoreItem undoes DiscardItem.
func (w *Worksheet) RestoreItem(i int) error {
	if err := w.checkIndex(i); err != nil {
		return err
	}
	delete(w.discarded, i)
	return nil
}

func (w *Worksheet) IsDiscarded(i int) bool {
	return w.discarded[i]
}

// ActiveItems returns the items that are not discarded.
func (w *Worksheet) ActiveItems() []model.LineItem {
	out := make([]model.LineItem, 0, w.ActiveCount())
	for i, item := range w.items {
		if !w.discarded[i] {
			out = append(out, item.Clone())
		}
	}
	return out
}

func (w *Worksheet) ActiveCount() int {
	return len(w.items) - len(w.discarded)
}

// Context returns a copy of the edited context.
func (w *Worksheet) Context() model.Context {
	return w.context.Clone()
}

// EditContext replaces industry, location, budget and scale. Constraints are kept.
func (w *Worksheet) EditContext(c model.Context) {
	w.context.Industry = c.Industry
	w.context.Location = c.Location
	w.context.BudgetSignal = c.BudgetSignal
	w.context.Scale = c.Scale
}

// AddSpecification appends spec to item i. Blank specs are ignored.
func (w *Worksheet) AddSpecification(i int, spec string) error {
	if err := w.checkIndex(i); err != nil {
		return err
	}
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil
	}
	w.items[i].Specifications = append(w.items[i].Specifications, spec)
	return nil
}

// RemoveSpecification drops specification j of item i.
func (w *Worksheet) RemoveSpecification(i, j int) error {
	if err := w.checkIndex(i); err != nil {
		return err
	}
	specs := w.items[i].Specifications
	if j < 0 || j >= len(specs) {
		return ErrItemIndexOutOfRange
	}
	w.items[i].Specifications = append(specs[:j:j], specs[j+1:]...)
	return nil
}

// Suggestions returns the suggestions not yet turned into items.
func (w *Worksheet) Suggestions() []string {
	return append([]string(nil), w.suggestions...)
}

// AddSuggestion turns suggestion s into a placeholder item and removes it
// from the suggestions. It reports false when s is not a pending suggestion.
func (w *Worksheet) AddSuggestion(s string) bool {
	kept := w.suggestions[:0:0]
	found := false
	for _, existing := range w.suggestions {
		if existing == s {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return false
	}

	w.suggestions = kept
	w.items = append(w.items, placeholderItem(s, purposeSuggestion, 1))
	return true
}

// AddCustomItem appends a buyer-defined item. Blank names are ignored and a
// non-positive quantity becomes 1.
func (w *Worksheet) AddCustomItem(name string, qty int) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if qty <= 0 {
		qty = 1
	}
	w.items = append(w.items, placeholderItem(name, purposeCustom, qty))
	return true
}

func placeholderItem(name, purpose string, qty int) model.LineItem {
	return model.LineItem{
		Name:           name,
		Purpose:        purpose,
		Specifications: []string{specPlaceholder},
		Quantity:       qty,
		PriceRange:     model.PriceRange{Min: 0, Max: 0, Currency: model.CurrencyINR},
		SourcingNotes:  sourcingNoteAdded,
	}
}

// Result returns the worksheet as an RfqResult holding only active items.
func (w *Worksheet) Result() model.RfqResult {
	return model.RfqResult{
		IntentType:         w.intent,
		IntentLabel:        w.intentLabel,
		Query:              w.query,
		Context:            w.context.Clone(),
		Title:              w.title,
		Items:              w.ActiveItems(),
		RelatedSuggestions: w.Suggestions(),
	}
}
