// Package catalog holds the static knowledge tables: industries, cities and
// the product, business and problem templates. The tables are decoded once
// from the embedded catalog.yaml and shared read-only by every request.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"

	"rfq-agent/internal/model"
)

//go:embed catalog.yaml
var embedded []byte

var defaultCatalog = mustLoad(embedded)

var (
	ErrEmptyKeyword     = errors.New("catalog: template keyword is empty")
	ErrEmptyTemplate    = errors.New("catalog: template has no items")
	ErrProblemKeyword   = errors.New("catalog: problem keyword must have two space-separated words")
	ErrMissingFallbacks = errors.New("catalog: fallback templates are incomplete")
)

// Default returns the embedded catalog.
func Default() *Catalog {
	return defaultCatalog
}

func mustLoad(data []byte) *Catalog {
	c, err := Load(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Load decodes and validates a catalog document.
func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	c := &Catalog{
		DefaultImage: doc.DefaultImage,
		Cities:       make([]string, 0, len(doc.Cities)),
	}

	for _, ind := range doc.Industries {
		if ind.Keyword == "" {
			return nil, ErrEmptyKeyword
		}
		c.Industries = append(c.Industries, IndustryRule{Keyword: ind.Keyword, Industry: ind.Industry})
	}
	for _, city := range doc.Cities {
		c.Cities = append(c.Cities, strings.ToLower(city))
	}

	for _, p := range doc.Products {
		if p.Keyword == "" {
			return nil, ErrEmptyKeyword
		}
		c.Products = append(c.Products, ProductTemplate{
			Keyword: p.Keyword,
			Item:    c.toLineItem(p.Item),
		})
	}

	var err error
	if c.Businesses, err = c.toBreakdowns(doc.Businesses); err != nil {
		return nil, fmt.Errorf("businesses: %w", err)
	}
	if c.Problems, err = c.toBreakdowns(doc.Problems); err != nil {
		return nil, fmt.Errorf("problems: %w", err)
	}
	for _, p := range c.Problems {
		if len(strings.Split(p.Keyword, " ")) < 2 {
			return nil, fmt.Errorf("%w: %q", ErrProblemKeyword, p.Keyword)
		}
	}

	pf := doc.Fallbacks.Product
	c.ProductFallback = ProductFallback{
		MatchedPurpose:     pf.MatchedPurpose,
		MatchedSuggestions: pf.MatchedSuggestions,
		DefaultQuantity:    pf.DefaultQuantity,
		Item:               c.toLineItem(pf.Item),
		Suggestions:        pf.Suggestions,
	}
	c.BusinessFallback = c.toBreakdown(doc.Fallbacks.Business)
	c.ProblemFallback = c.toBreakdown(doc.Fallbacks.Problem)
	if len(c.BusinessFallback.Items) == 0 || len(c.ProblemFallback.Items) == 0 || pf.DefaultQuantity <= 0 {
		return nil, ErrMissingFallbacks
	}

	for _, cat := range doc.Examples.Categories {
		c.Examples.Categories = append(c.Examples.Categories, Category{Name: cat.Name, Query: cat.Query})
	}
	c.Examples.Queries = doc.Examples.Queries

	return c, nil
}

func (c *Catalog) toBreakdowns(docs []breakdownDoc) ([]Breakdown, error) {
	out := make([]Breakdown, 0, len(docs))
	for _, d := range docs {
		if d.Keyword == "" {
			return nil, ErrEmptyKeyword
		}
		if len(d.Items) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyTemplate, d.Keyword)
		}
		out = append(out, c.toBreakdown(d))
	}
	return out, nil
}

func (c *Catalog) toBreakdown(d breakdownDoc) Breakdown {
	b := Breakdown{
		Keyword:     d.Keyword,
		Title:       d.Title,
		Items:       make([]model.LineItem, 0, len(d.Items)),
		Suggestions: d.Suggestions,
	}
	for _, item := range d.Items {
		b.Items = append(b.Items, c.toLineItem(item))
	}
	return b
}

// toLineItem converts a document item; items without an image get the default one.
func (c *Catalog) toLineItem(d itemDoc) model.LineItem {
	image := d.Image
	if image == "" {
		image = c.DefaultImage
	}
	currency := d.PriceRange.Currency
	if currency == "" {
		currency = model.CurrencyINR
	}
	specs := d.Specifications
	if specs == nil {
		specs = []string{}
	}
	return model.LineItem{
		Name:           d.Name,
		Purpose:        d.Purpose,
		Specifications: specs,
		Quantity:       d.Quantity,
		PriceRange: model.PriceRange{
			Min:      d.PriceRange.Min,
			Max:      d.PriceRange.Max,
			Currency: currency,
		},
		SourcingNotes: d.SourcingNotes,
		Image:         image,
	}
}
