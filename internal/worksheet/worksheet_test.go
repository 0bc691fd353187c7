package worksheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfq-agent/internal/model"
)

func newTestResult() model.RfqResult {
	return model.RfqResult{
		IntentType:  model.IntentBusinessIdea,
		IntentLabel: model.IntentBusinessIdea.Label(),
		Query:       "set up a gym",
		Title:       "Gym / Fitness Center Setup",
		Context: model.Context{
			Industry:     "Gym / Fitness Center Setup",
			Location:     model.DefaultLocation,
			BudgetSignal: model.BudgetMedium,
			Scale:        model.ScaleSmallBusiness,
			Constraints:  []string{},
		},
		Items: []model.LineItem{
			{Name: "Commercial Treadmills", Specifications: []string{"3-4 HP motor"}, Quantity: 4},
			{Name: "Lockers", Specifications: []string{"Metal construction", "Digital lock"}, Quantity: 20},
		},
		RelatedSuggestions: []string{"Music System", "CCTV Cameras"},
	}
}

func TestNewCopiesResult(t *testing.T) {
	res := newTestResult()
	w := New(res)

	require.NoError(t, w.AddSpecification(0, "Incline"))
	res.Items[1].Name = "changed"

	assert.Equal(t, []string{"3-4 HP motor"}, res.Items[0].Specifications)
	item, err := w.Item(1)
	require.NoError(t, err)
	assert.Equal(t, "Lockers", item.Name)
}

func TestDiscardAndRestore(t *testing.T) {
	w := New(newTestResult())

	require.NoError(t, w.DiscardItem(0))
	require.NoError(t, w.DiscardItem(0))
	assert.True(t, w.IsDiscarded(0))
	assert.Equal(t, 1, w.ActiveCount())
	require.Len(t, w.ActiveItems(), 1)
	assert.Equal(t, "Lockers", w.ActiveItems()[0].Name)
	assert.Len(t, w.Items(), 2)

	require.NoError(t, w.RestoreItem(0))
	assert.False(t, w.IsDiscarded(0))
	assert.Equal(t, 2, w.ActiveCount())
}

func TestIndexErrors(t *testing.T) {
	w := New(newTestResult())

	assert.ErrorIs(t, w.DiscardItem(2), ErrItemIndexOutOfRange)
	assert.ErrorIs(t, w.RestoreItem(-1), ErrItemIndexOutOfRange)
	assert.ErrorIs(t, w.UpdateItem(5, model.LineItem{}), ErrItemIndexOutOfRange)
	assert.ErrorIs(t, w.AddSpecification(9, "x"), ErrItemIndexOutOfRange)
	assert.ErrorIs(t, w.RemoveSpecification(0, 3), ErrItemIndexOutOfRange)
	_, err := w.Item(2)
	assert.ErrorIs(t, err, ErrItemIndexOutOfRange)
}

func TestUpdateItem(t *testing.T) {
	w := New(newTestResult())
	updated := model.LineItem{Name: "Lockers (steel)", Specifications: []string{"Steel"}, Quantity: 30, CustomNote: "Need by March"}

	require.NoError(t, w.UpdateItem(1, updated))
	updated.Specifications[0] = "changed"

	item, _ := w.Item(1)
	assert.Equal(t, "Lockers (steel)", item.Name)
	assert.Equal(t, 30, item.Quantity)
	assert.Equal(t, []string{"Steel"}, item.Specifications)
	assert.Equal(t, "Need by March", item.CustomNote)
}

func TestSpecifications(t *testing.T) {
	w := New(newTestResult())

	require.NoError(t, w.AddSpecification(1, "  Ventilated  "))
	require.NoError(t, w.AddSpecification(1, "   "))
	item, _ := w.Item(1)
	assert.Equal(t, []string{"Metal construction", "Digital lock", "Ventilated"}, item.Specifications)

	require.NoError(t, w.RemoveSpecification(1, 0))
	item, _ = w.Item(1)
	assert.Equal(t, []string{"Digital lock", "Ventilated"}, item.Specifications)
}

func TestEditContextKeepsConstraints(t *testing.T) {
	res := newTestResult()
	res.Context.Constraints = []string{"delivery within a week"}
	w := New(res)

	w.EditContext(model.Context{Industry: "Fitness", Location: "Pune", BudgetSignal: model.BudgetHigh, Scale: model.ScaleEnterprise})

	got := w.Context()
	assert.Equal(t, "Fitness", got.Industry)
	assert.Equal(t, "Pune", got.Location)
	assert.Equal(t, model.BudgetHigh, got.BudgetSignal)
	assert.Equal(t, model.ScaleEnterprise, got.Scale)
	assert.Equal(t, []string{"delivery within a week"}, got.Constraints)
}

func TestAddSuggestion(t *testing.T) {
	w := New(newTestResult())

	assert.True(t, w.AddSuggestion("CCTV Cameras"))
	assert.False(t, w.AddSuggestion("CCTV Cameras"))
	assert.Equal(t, []string{"Music System"}, w.Suggestions())

	items := w.Items()
	require.Len(t, items, 3)
	assert.Equal(t, model.LineItem{
		Name:           "CCTV Cameras",
		Purpose:        "Added from suggestions",
		Specifications: []string{"To be specified"},
		Quantity:       1,
		PriceRange:     model.PriceRange{Min: 0, Max: 0, Currency: model.CurrencyINR},
		SourcingNotes:  "Specify your requirements to get accurate quotes from suppliers.",
	}, items[2])
}

func TestAddCustomItem(t *testing.T) {
	w := New(newTestResult())

	assert.False(t, w.AddCustomItem("   ", 5))
	assert.True(t, w.AddCustomItem("  Yoga Mats ", 25))
	assert.True(t, w.AddCustomItem("Towels", 0))

	items := w.Items()
	require.Len(t, items, 4)
	assert.Equal(t, "Yoga Mats", items[2].Name)
	assert.Equal(t, 25, items[2].Quantity)
	assert.Equal(t, "Custom item added by buyer", items[2].Purpose)
	assert.Equal(t, 1, items[3].Quantity)
}

func TestResultHoldsActiveItems(t *testing.T) {
	w := New(newTestResult())
	require.NoError(t, w.DiscardItem(0))
	w.AddSuggestion("Music System")

	res := w.Result()
	assert.Equal(t, "set up a gym", res.Query)
	assert.Equal(t, "Gym / Fitness Center Setup", res.Title)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Lockers", res.Items[0].Name)
	assert.Equal(t, "Music System", res.Items[1].Name)
	assert.Equal(t, []string{"CCTV Cameras"}, res.RelatedSuggestions)
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name string
		in   model.PriceRange
		want string
	}{
		{"small", model.PriceRange{Min: 40, Max: 999, Currency: "INR"}, "₹40 - ₹999"},
		{"thousands", model.PriceRange{Min: 1000, Max: 4000, Currency: "INR"}, "₹1.0K - ₹4.0K"},
		{"lakhs", model.PriceRange{Min: 150000, Max: 800000, Currency: "INR"}, "₹1.5 L - ₹8.0 L"},
		{"crores", model.PriceRange{Min: 5000000, Max: 25000000, Currency: "INR"}, "₹50.0 L - ₹2.5 Cr"},
		{"half rounds up", model.PriceRange{Min: 1250, Max: 125000, Currency: "INR"}, "₹1.3K - ₹1.3 L"},
		{"zero", model.PriceRange{Min: 0, Max: 0, Currency: "INR"}, "₹0 - ₹0"},
		{"other currency", model.PriceRange{Min: 1200, Max: 150000, Currency: "USD"}, "USD 1,200 - USD 1,50,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.in))
		})
	}
}

func TestFormatPriceRoundsStoredQuotient(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{1150, "₹1.1K"},
		{1250, "₹1.3K"},
		{2650, "₹2.6K"},
		{4050, "₹4.0K"},
		{8150, "₹8.2K"},
		{115000, "₹1.1 L"},
		{125000, "₹1.3 L"},
		{15000000, "₹1.5 Cr"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, compactINR(tt.in))
		})
	}
}

func TestFormatPriceExact(t *testing.T) {
	assert.Equal(t, "₹40 - ₹4,000", FormatPriceExact(model.PriceRange{Min: 40, Max: 4000}))
	assert.Equal(t, "₹1,00,000 - ₹12,34,567", FormatPriceExact(model.PriceRange{Min: 100000, Max: 1234567}))
	assert.Equal(t, "₹1,50,00,000 - ₹1,50,00,000", FormatPriceExact(model.PriceRange{Min: 15000000, Max: 15000000}))
}

func TestGroupIndian(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		123456:   "1,23,456",
		-1234567: "-12,34,567",
	}
	for in, want := range cases {
		assert.Equal(t, want, groupIndian(in), in)
	}
}
