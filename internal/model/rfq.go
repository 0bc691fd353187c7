package model

// Intent is the inferred category of a procurement query.
type Intent string

const (
	IntentSingleProduct Intent = "SINGLE_PRODUCT"
	IntentBusinessIdea  Intent = "BUSINESS_IDEA"
	IntentProblemGoal   Intent = "PROBLEM_GOAL"
)

// Label returns the human readable label shown next to the intent.
func (i Intent) Label() string {
	switch i {
	case IntentSingleProduct:
		return "Single Product Request"
	case IntentProblemGoal:
		return "Problem / Goal"
	default:
		return "Business Setup"
	}
}

// BudgetSignal is the coarse budget tier read from the query.
type BudgetSignal string

const (
	BudgetLow    BudgetSignal = "low"
	BudgetMedium BudgetSignal = "medium"
	BudgetHigh   BudgetSignal = "high"
)

// Scale is the coarse operating scale read from the query.
type Scale string

const (
	ScalePilot         Scale = "pilot"
	ScaleSmallBusiness Scale = "small_business"
	ScaleEnterprise    Scale = "enterprise"
)

const (
	DefaultIndustry = "General"
	DefaultLocation = "Pan India"
	CurrencyINR     = "INR"
)

// Context holds the situational signals extracted from a query.
type Context struct {
	Industry     string       `json:"industry"`
	Location     string       `json:"location"`
	BudgetSignal BudgetSignal `json:"budgetSignal"`
	Scale        Scale        `json:"scale"`
	Constraints  []string     `json:"constraints"`
}

// Clone returns a copy that shares no slices with c.
func (c Context) Clone() Context {
	out := c
	out.Constraints = append(make([]string, 0, len(c.Constraints)), c.Constraints...)
	return out
}

// PriceRange is an indicative per-unit price band.
type PriceRange struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

// LineItem is one entry of an RFQ.
type LineItem struct {
	Name           string     `json:"name"`
	Purpose        string     `json:"purpose"`
	Specifications []string   `json:"specifications"`
	Quantity       int        `json:"quantity"`
	PriceRange     PriceRange `json:"priceRange"`
	SourcingNotes  string     `json:"sourcingNotes"`
	Image          string     `json:"image,omitempty"`
	CustomNote     string     `json:"customNote,omitempty"`
}

// Clone returns a copy that shares no slices with li.
func (li LineItem) Clone() LineItem {
	out := li
	out.Specifications = append(make([]string, 0, len(li.Specifications)), li.Specifications...)
	return out
}

// CloneItems deep-copies a list of line items.
func CloneItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

// RfqResult is the full payload returned for one query.
type RfqResult struct {
	IntentType         Intent     `json:"intentType"`
	IntentLabel        string     `json:"intentLabel"`
	Query              string     `json:"query"`
	Context            Context    `json:"context"`
	Title              string     `json:"title,omitempty"`
	Items              []LineItem `json:"items"`
	RelatedSuggestions []string   `json:"relatedSuggestions"`
}

// Clone returns a deep copy of r.
func (r RfqResult) Clone() RfqResult {
	out := r
	out.Context = r.Context.Clone()
	out.Items = CloneItems(r.Items)
	out.RelatedSuggestions = append(make([]string, 0, len(r.RelatedSuggestions)), r.RelatedSuggestions...)
	return out
}
