package analyzer

import (
	"regexp"

	"rfq-agent/internal/catalog"
	"rfq-agent/internal/model"
)

// Analyzer classifies procurement queries and extracts their context.
type Analyzer interface {
	ClassifyIntent(query string) model.Intent
	ExtractContext(query string) model.Context
	Analyze(query string) Analysis
}

// QueryAnalyzer is a rule-based Analyzer over a static catalog.
// It holds no mutable state and is safe for concurrent use.
type QueryAnalyzer struct {
	catalog         *catalog.Catalog
	quantityPattern *regexp.Regexp
}

var _ Analyzer = (*QueryAnalyzer)(nil)

var quantityPattern = regexp.MustCompile(`(?i)\d+\s*(` + quantityUnits + `)`)

// New creates a QueryAnalyzer. A nil catalog means catalog.Default().
func New(c *catalog.Catalog) *QueryAnalyzer {
	if c == nil {
		c = catalog.Default()
	}
	return &QueryAnalyzer{
		catalog:         c,
		quantityPattern: quantityPattern,
	}
}
