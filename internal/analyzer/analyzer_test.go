package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rfq-agent/internal/model"
)

func TestClassifyIntent(t *testing.T) {
	a := New(nil)

	tests := []struct {
		name  string
		query string
		want  model.Intent
	}{
		{"quantity with unit", "500 pcs of steel bolts", model.IntentSingleProduct},
		{"quantity unit without space", "20kg basmati rice", model.IntentSingleProduct},
		{"quantity unit upper case", "Need 10 PCS", model.IntentSingleProduct},
		{"quantity beats business keywords", "open a coffee shop with 50 units of cups", model.IntentSingleProduct},
		{"horsepower unit", "5hp motor for the factory", model.IntentSingleProduct},
		{"coffee shop", "I want to open a coffee shop in Mumbai", model.IntentBusinessIdea},
		{"package fragile", "How to package fragile items safely", model.IntentProblemGoal},
		{"no keywords", "xyz", model.IntentBusinessIdea},
		{"buy only", "buy gloves", model.IntentSingleProduct},
		{"tie goes to business", "improve my shop", model.IntentBusinessIdea},
		{"problem beats business", "reduce and optimize my shop waste", model.IntentProblemGoal},
		{"store counts on both sides", "store", model.IntentBusinessIdea},
		{"unit inside united", "united", model.IntentBusinessIdea},
		{"number without unit", "Need 100 ball bearings for manufacturing", model.IntentBusinessIdea},
		{"number without unit and no business cue", "need 100 ball bearings", model.IntentSingleProduct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.ClassifyIntent(tt.query))
		})
	}
}

func TestAnalyzeReportsScores(t *testing.T) {
	a := New(nil)

	got := a.Analyze("Need 100 ball bearings for manufacturing")
	assert.False(t, got.QuantityMatch)
	assert.Equal(t, Scores{SingleProduct: 1, BusinessIdea: 1, ProblemGoal: 0}, got.Scores)
	assert.Equal(t, model.IntentBusinessIdea, got.Intent)
	assert.Equal(t, "Business Setup", got.IntentLabel)
	assert.Equal(t, "Industrial", got.Context.Industry)

	got = a.Analyze("Need 100 pcs ball bearings")
	assert.True(t, got.QuantityMatch)
	assert.Equal(t, Scores{}, got.Scores)
	assert.Equal(t, model.IntentSingleProduct, got.Intent)
}

func TestExtractContext(t *testing.T) {
	a := New(nil)

	tests := []struct {
		name  string
		query string
		want  model.Context
	}{
		{
			name:  "defaults",
			query: "xyz",
			want:  model.Context{Industry: "General", Location: "Pan India", BudgetSignal: model.BudgetMedium, Scale: model.ScaleSmallBusiness, Constraints: []string{}},
		},
		{
			name:  "coffee in mumbai",
			query: "I want to open a coffee shop in Mumbai",
			want:  model.Context{Industry: "Food & Beverage", Location: "Mumbai", BudgetSignal: model.BudgetMedium, Scale: model.ScaleSmallBusiness, Constraints: []string{}},
		},
		{
			name:  "first industry in table order wins",
			query: "restaurant and cafe",
			want:  model.Context{Industry: "Food & Beverage", Location: "Pan India", BudgetSignal: model.BudgetMedium, Scale: model.ScaleSmallBusiness, Constraints: []string{}},
		},
		{
			name:  "first city in list order wins",
			query: "warehouse in navi mumbai",
			want:  model.Context{Industry: "Logistics", Location: "Mumbai", BudgetSignal: model.BudgetMedium, Scale: model.ScaleSmallBusiness, Constraints: []string{}},
		},
		{
			name:  "low budget beats high budget",
			query: "best cheap salon in Pune",
			want:  model.Context{Industry: "Beauty & Personal Care", Location: "Pune", BudgetSignal: model.BudgetLow, Scale: model.ScaleSmallBusiness, Constraints: []string{}},
		},
		{
			name:  "high budget",
			query: "premium gym",
			want:  model.Context{Industry: "Fitness & Wellness", Location: "Pan India", BudgetSignal: model.BudgetHigh, Scale: model.ScaleSmallBusiness, Constraints: []string{}},
		},
		{
			name:  "enterprise beats pilot",
			query: "pilot for an enterprise cold storage",
			want:  model.Context{Industry: "Cold Chain / Logistics", Location: "Pan India", BudgetSignal: model.BudgetMedium, Scale: model.ScaleEnterprise, Constraints: []string{}},
		},
		{
			name:  "pilot via substring",
			query: "latest kirana shelving",
			want:  model.Context{Industry: "Retail / FMCG", Location: "Pan India", BudgetSignal: model.BudgetMedium, Scale: model.ScalePilot, Constraints: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.ExtractContext(tt.query))
		})
	}
}

func TestExtractContextNeverEmpty(t *testing.T) {
	a := New(nil)
	for _, q := range []string{"", " ", "123", "ÄÖÜ", "open a coffee shop", "Need 5 tons"} {
		c := a.ExtractContext(q)
		assert.NotEmpty(t, c.Industry, q)
		assert.NotEmpty(t, c.Location, q)
		assert.NotEmpty(t, c.BudgetSignal, q)
		assert.NotEmpty(t, c.Scale, q)
		assert.NotNil(t, c.Constraints, q)
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Navi mumbai", capitalize("navi mumbai"))
	assert.Equal(t, "", capitalize(""))
}
