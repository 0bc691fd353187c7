package generator

import (
	"strconv"
	"strings"

	"rfq-agent/internal/catalog"
	"rfq-agent/internal/model"
)

// Generate dispatches on intent. Unknown intents get the business breakdown.
func (g *TemplateGenerator) Generate(intent model.Intent, query string, ctx model.Context) Output {
	switch intent {
	case model.IntentSingleProduct:
		return g.singleProduct(query, ctx)
	case model.IntentProblemGoal:
		return g.problemSolution(query, ctx)
	default:
		return g.businessBreakdown(query, ctx)
	}
}

// GenerateSingleProductRFQ returns exactly one item: the matched product
// template, or a generic item named after the query.
func (g *TemplateGenerator) GenerateSingleProductRFQ(query string, ctx model.Context) model.RfqResult {
	return g.singleProduct(query, ctx).Result
}

// GenerateBusinessBreakdown returns the checklist of the first business type
// found in query, or the generic setup checklist.
func (g *TemplateGenerator) GenerateBusinessBreakdown(query string, ctx model.Context) model.RfqResult {
	return g.businessBreakdown(query, ctx).Result
}

// GenerateProblemSolution returns the item list of the first matching problem,
// or a single placeholder item asking for more detail.
func (g *TemplateGenerator) GenerateProblemSolution(query string, ctx model.Context) model.RfqResult {
	return g.problemSolution(query, ctx).Result
}

func (g *TemplateGenerator) singleProduct(query string, ctx model.Context) Output {
	lower := strings.ToLower(query)
	fb := g.catalog.ProductFallback

	for _, p := range g.catalog.Products {
		if !strings.Contains(lower, p.Keyword) {
			continue
		}
		item := p.Item.Clone()
		item.Purpose = fb.MatchedPurpose
		item.Quantity = parseQuantity(query, fb.DefaultQuantity)

		return Output{
			Result:  newResult(model.IntentSingleProduct, query, ctx.Clone(), "", []model.LineItem{item}, fb.MatchedSuggestions),
			Matched: true,
			Keyword: p.Keyword,
		}
	}

	item := fb.Item.Clone()
	item.Name = strings.TrimSpace(quantityStripper.ReplaceAllString(query, ""))
	return Output{
		Result: newResult(model.IntentSingleProduct, query, ctx.Clone(), "", []model.LineItem{item}, fb.Suggestions),
	}
}

func (g *TemplateGenerator) businessBreakdown(query string, ctx model.Context) Output {
	lower := strings.ToLower(query)

	for _, b := range g.catalog.Businesses {
		if !strings.Contains(lower, b.Keyword) {
			continue
		}
		// The result reports the business title as its industry. The caller's
		// context is left untouched.
		resultCtx := ctx.Clone()
		resultCtx.Industry = b.Title

		return Output{
			Result:  newResult(model.IntentBusinessIdea, query, resultCtx, b.Title, b.Items, b.Suggestions),
			Matched: true,
			Keyword: b.Keyword,
		}
	}

	return Output{Result: fromBreakdown(model.IntentBusinessIdea, query, ctx, g.catalog.BusinessFallback)}
}

func (g *TemplateGenerator) problemSolution(query string, ctx model.Context) Output {
	lower := strings.ToLower(query)

	for _, p := range g.catalog.Problems {
		if !matchesEitherWord(lower, p.Keyword) {
			continue
		}
		return Output{
			Result:  fromBreakdown(model.IntentProblemGoal, query, ctx, p),
			Matched: true,
			Keyword: p.Keyword,
		}
	}

	return Output{Result: fromBreakdown(model.IntentProblemGoal, query, ctx, g.catalog.ProblemFallback)}
}

// matchesEitherWord reports whether lower contains the first or the second
// single-space separated word of key. The full phrase is not required, so
// "storage" alone matches "cold storage".
func matchesEitherWord(lower, key string) bool {
	words := strings.Split(key, " ")
	if strings.Contains(lower, words[0]) {
		return true
	}
	return len(words) > 1 && strings.Contains(lower, words[1])
}

// parseQuantity reads the first number in query. Queries without digits, or
// with a number that does not fit an int, get def.
func parseQuantity(query string, def int) int {
	m := quantityPattern.FindStringSubmatch(query)
	if m == nil {
		return def
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return def
	}
	return n
}

func fromBreakdown(intent model.Intent, query string, ctx model.Context, b catalog.Breakdown) model.RfqResult {
	return newResult(intent, query, ctx.Clone(), b.Title, b.Items, b.Suggestions)
}

func newResult(intent model.Intent, query string, ctx model.Context, title string, items []model.LineItem, suggestions []string) model.RfqResult {
	return model.RfqResult{
		IntentType:         intent,
		IntentLabel:        intent.Label(),
		Query:              query,
		Context:            ctx,
		Title:              title,
		Items:              model.CloneItems(items),
		RelatedSuggestions: append(make([]string, 0, len(suggestions)), suggestions...),
	}
}
