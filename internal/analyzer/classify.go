package analyzer

import (
	"strings"

	"rfq-agent/internal/model"
)

// ClassifyIntent returns exactly one intent for query. It never fails.
func (a *QueryAnalyzer) ClassifyIntent(query string) model.Intent {
	intent, _, _ := a.classify(query)
	return intent
}

// Analyze runs classification and context extraction and reports the scores
// that led to the decision.
func (a *QueryAnalyzer) Analyze(query string) Analysis {
	intent, scores, quantity := a.classify(query)
	return Analysis{
		Intent:        intent,
		IntentLabel:   intent.Label(),
		QuantityMatch: quantity,
		Scores:        scores,
		Context:       a.ExtractContext(query),
	}
}

func (a *QueryAnalyzer) classify(query string) (model.Intent, Scores, bool) {
	// A number followed by a unit wins outright.
	if a.quantityPattern.MatchString(query) {
		return model.IntentSingleProduct, Scores{}, true
	}

	lower := strings.ToLower(query)
	scores := Scores{
		SingleProduct: countContained(lower, singleProductKeywords),
		BusinessIdea:  countContained(lower, businessIdeaKeywords),
		ProblemGoal:   countContained(lower, problemGoalKeywords),
	}

	switch {
	case scores.BusinessIdea >= scores.ProblemGoal && scores.BusinessIdea > 0:
		return model.IntentBusinessIdea, scores, false
	case scores.ProblemGoal > 0:
		return model.IntentProblemGoal, scores, false
	case scores.SingleProduct > 0:
		return model.IntentSingleProduct, scores, false
	default:
		return model.IntentBusinessIdea, scores, false
	}
}

// countContained counts keywords occurring anywhere in s. No tokenisation:
// "unit" matches inside "united" and overlapping keywords each count.
func countContained(s string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			n++
		}
	}
	return n
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
