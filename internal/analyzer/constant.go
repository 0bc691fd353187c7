package analyzer

// quantityUnits are the unit tokens that, directly after a number, mark a
// single-product request regardless of any other keyword.
const quantityUnits = `pcs|pieces|units|kg|tons|meters|liters|dozen|hp|kw|mm|cm`

// Intent keyword sets. Matched as plain substrings of the lowercased query.
var (
	singleProductKeywords = []string{
		"buy", "purchase", "need", "looking for", "want to get", "order", "require",
		"pcs", "pieces", "units", "kg", "tons", "meters", "liters", "dozen",
	}

	businessIdeaKeywords = []string{
		"open", "start", "launch", "set up", "setup", "establish", "begin",
		"business", "shop", "store", "restaurant", "cafe", "kitchen", "factory",
		"manufacturing", "unit", "facility", "outlet", "franchise",
	}

	problemGoalKeywords = []string{
		"improve", "reduce", "solve", "fix", "optimize", "enhance", "automate",
		"package", "store", "transport", "protect", "efficiency", "solution",
	}
)

// Context cue words. Low budget is checked before high, enterprise before pilot.
var (
	lowBudgetCues  = []string{"budget", "cheap", "affordable", "low cost", "sasta"}
	highBudgetCues = []string{"premium", "high quality", "luxury", "best"}

	enterpriseCues = []string{"enterprise", "large scale", "industrial"}
	pilotCues      = []string{"pilot", "test", "trial"}
)
