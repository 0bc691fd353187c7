package analyzer

import "rfq-agent/internal/model"

// Scores counts the keyword hits per intent for one query.
type Scores struct {
	SingleProduct int `json:"singleProduct"`
	BusinessIdea  int `json:"businessIdea"`
	ProblemGoal   int `json:"problemGoal"`
}

// Analysis is the full output of the analyzer for one query.
type Analysis struct {
	Intent        model.Intent  `json:"intentType"`
	IntentLabel   string        `json:"intentLabel"`
	QuantityMatch bool          `json:"quantityMatch"`
	Scores        Scores        `json:"scores"`
	Context       model.Context `json:"context"`
}
