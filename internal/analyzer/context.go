package analyzer

import (
	"strings"

	"rfq-agent/internal/model"
)

// ExtractContext reads industry, location, budget and scale from query.
// Every field falls back to its default; constraints is always empty.
func (a *QueryAnalyzer) ExtractContext(query string) model.Context {
	lower := strings.ToLower(query)

	return model.Context{
		Industry:     a.industry(lower),
		Location:     a.location(lower),
		BudgetSignal: budgetSignal(lower),
		Scale:        scale(lower),
		Constraints:  []string{},
	}
}

func (a *QueryAnalyzer) industry(lower string) string {
	for _, rule := range a.catalog.Industries {
		if strings.Contains(lower, rule.Keyword) {
			return rule.Industry
		}
	}
	return model.DefaultIndustry
}

func (a *QueryAnalyzer) location(lower string) string {
	for _, city := range a.catalog.Cities {
		if strings.Contains(lower, city) {
			return capitalize(city)
		}
	}
	return model.DefaultLocation
}

func budgetSignal(lower string) model.BudgetSignal {
	switch {
	case containsAny(lower, lowBudgetCues):
		return model.BudgetLow
	case containsAny(lower, highBudgetCues):
		return model.BudgetHigh
	default:
		return model.BudgetMedium
	}
}

func scale(lower string) model.Scale {
	switch {
	case containsAny(lower, enterpriseCues):
		return model.ScaleEnterprise
	case containsAny(lower, pilotCues):
		return model.ScalePilot
	default:
		return model.ScaleSmallBusiness
	}
}

// capitalize upper-cases the first letter only: "navi mumbai" -> "Navi mumbai".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
