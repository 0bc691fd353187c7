package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rfq-agent/internal/model"
)

func TestIntentLabel(t *testing.T) {
	assert.Equal(t, "Single Product Request", model.IntentSingleProduct.Label())
	assert.Equal(t, "Business Setup", model.IntentBusinessIdea.Label())
	assert.Equal(t, "Problem / Goal", model.IntentProblemGoal.Label())
	assert.Equal(t, "Business Setup", model.Intent("UNKNOWN").Label())
}

func TestLineItemCloneDoesNotAlias(t *testing.T) {
	orig := model.LineItem{Name: "Lockers", Specifications: []string{"Metal construction"}}
	cp := orig.Clone()
	cp.Specifications[0] = "Plastic"

	assert.Equal(t, "Metal construction", orig.Specifications[0])
}

func TestContextCloneKeepsEmptyConstraints(t *testing.T) {
	c := model.Context{Industry: model.DefaultIndustry, Constraints: []string{}}
	cp := c.Clone()
	assert.NotNil(t, cp.Constraints)
	assert.Empty(t, cp.Constraints)
}

func TestRfqResultCloneDoesNotAlias(t *testing.T) {
	orig := model.RfqResult{
		IntentType:         model.IntentBusinessIdea,
		Context:            model.Context{Constraints: []string{}},
		Items:              []model.LineItem{{Name: "Lockers", Specifications: []string{"Metal construction"}}},
		RelatedSuggestions: []string{"Fire NOC"},
	}
	cp := orig.Clone()
	cp.Items[0].Name = "Benches"
	cp.Items[0].Specifications[0] = "Wood"
	cp.RelatedSuggestions[0] = "GST Registration"

	assert.Equal(t, "Lockers", orig.Items[0].Name)
	assert.Equal(t, "Metal construction", orig.Items[0].Specifications[0])
	assert.Equal(t, "Fire NOC", orig.RelatedSuggestions[0])
}
