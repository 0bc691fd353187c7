package catalog

import "rfq-agent/internal/model"

// IndustryRule maps a query keyword to an industry name.
type IndustryRule struct {
	Keyword  string
	Industry string
}

// ProductTemplate is the single catalog item returned for a product keyword.
type ProductTemplate struct {
	Keyword string
	Item    model.LineItem
}

// Breakdown is a curated checklist for a business type or a problem.
type Breakdown struct {
	Keyword     string
	Title       string
	Items       []model.LineItem
	Suggestions []string
}

// ProductFallback holds the fixed parts of single-product responses.
type ProductFallback struct {
	MatchedPurpose     string
	MatchedSuggestions []string
	DefaultQuantity    int
	Item               model.LineItem
	Suggestions        []string
}

// Category is a landing-page shortcut that pre-fills a query.
type Category struct {
	Name  string `json:"name"`
	Query string `json:"query"`
}

// Examples are the landing-page shortcuts and sample queries.
type Examples struct {
	Categories []Category `json:"categories"`
	Queries    []string   `json:"queries"`
}

// Catalog is the read-only set of knowledge tables. It is never mutated after Load.
type Catalog struct {
	DefaultImage     string
	Industries       []IndustryRule
	Cities           []string
	Products         []ProductTemplate
	Businesses       []Breakdown
	Problems         []Breakdown
	ProductFallback  ProductFallback
	BusinessFallback Breakdown
	ProblemFallback  Breakdown
	Examples         Examples
}

// --- YAML documents ---

type priceDoc struct {
	Min      int64  `yaml:"min"`
	Max      int64  `yaml:"max"`
	Currency string `yaml:"currency"`
}

type itemDoc struct {
	Name           string   `yaml:"name"`
	Purpose        string   `yaml:"purpose"`
	Specifications []string `yaml:"specifications"`
	Quantity       int      `yaml:"quantity"`
	PriceRange     priceDoc `yaml:"price_range"`
	SourcingNotes  string   `yaml:"sourcing_notes"`
	Image          string   `yaml:"image"`
}

type breakdownDoc struct {
	Keyword     string    `yaml:"keyword"`
	Title       string    `yaml:"title"`
	Items       []itemDoc `yaml:"items"`
	Suggestions []string  `yaml:"suggestions"`
}

type document struct {
	DefaultImage string `yaml:"default_image"`
	Industries   []struct {
		Keyword  string `yaml:"keyword"`
		Industry string `yaml:"industry"`
	} `yaml:"industries"`
	Cities   []string `yaml:"cities"`
	Products []struct {
		Keyword string  `yaml:"keyword"`
		Item    itemDoc `yaml:"item"`
	} `yaml:"products"`
	Businesses []breakdownDoc `yaml:"businesses"`
	Problems   []breakdownDoc `yaml:"problems"`
	Fallbacks  struct {
		Product struct {
			MatchedPurpose     string   `yaml:"matched_purpose"`
			MatchedSuggestions []string `yaml:"matched_suggestions"`
			DefaultQuantity    int      `yaml:"default_quantity"`
			Item               itemDoc  `yaml:"item"`
			Suggestions        []string `yaml:"suggestions"`
		} `yaml:"product"`
		Business breakdownDoc `yaml:"business"`
		Problem  breakdownDoc `yaml:"problem"`
	} `yaml:"fallbacks"`
	Examples struct {
		Categories []struct {
			Name  string `yaml:"name"`
			Query string `yaml:"query"`
		} `yaml:"categories"`
		Queries []string `yaml:"queries"`
	} `yaml:"examples"`
}
