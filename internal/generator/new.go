package generator

import (
	"regexp"

	"rfq-agent/internal/catalog"
	"rfq-agent/internal/model"
)

// Generator assembles RFQ payloads from the static templates.
type Generator interface {
	Generate(intent model.Intent, query string, ctx model.Context) Output
}

// Output is a generated payload plus the template that produced it.
type Output struct {
	Result model.RfqResult
	// Matched is false when a fallback template was used.
	Matched bool
	// Keyword is the catalog keyword that matched, empty on fallback.
	Keyword string
}

// TemplateGenerator is a Generator over a static catalog. Safe for concurrent use.
type TemplateGenerator struct {
	catalog *catalog.Catalog
}

var _ Generator = (*TemplateGenerator)(nil)

var (
	quantityPattern  = regexp.MustCompile(`(?i)(\d+)\s*(pcs|pieces|units|kg|tons|meters|liters|dozen)?`)
	quantityStripper = regexp.MustCompile(`(?i)\d+\s*(pcs|pieces|units)?`)
)

// New creates a TemplateGenerator. A nil catalog means catalog.Default().
func New(c *catalog.Catalog) *TemplateGenerator {
	if c == nil {
		c = catalog.Default()
	}
	return &TemplateGenerator{catalog: c}
}
