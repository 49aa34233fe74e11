package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framehouse/estimate-cli/internal/model"
)

func demoCompetitor() model.OfferRecord {
	return model.OfferRecord{
		Price:               2450000,
		Delivery:            150000,
		Weight:              12000,
		Thickness:           150,
		InsulationThickness: 150,
		Energy:              "C",
		InstallationTime:    14,
		Complexity:          model.ComplexityMedium,
		StructureType:       model.StructureFrame,
		FoundationType:      model.FoundationStrip,
		WindBarrier:         true,
		Waterproofing:       true,
		WeatherDependent:    true,
	}
}

func demoOur() model.OfferRecord {
	return model.OfferRecord{
		Price:                2180000,
		Delivery:             95000,
		Weight:               10500,
		Thickness:            200,
		InsulationThickness:  200,
		Energy:               "A+",
		InstallationTime:     10,
		Complexity:           model.ComplexityEasy,
		StructureType:        model.StructurePrefab,
		FoundationType:       model.FoundationSlab,
		VaporBarrier:         true,
		WindBarrier:          true,
		FullInsulation:       true,
		FactoryPrep:          true,
		FoundationInsulation: true,
		Waterproofing:        true,
		Impregnation:         true,
		Eco:                  true,
		FireProtection:       true,
	}
}

func TestWeightSum(t *testing.T) {
	// 17 weighted criteria sum to 1.00; the two inverted flags add flat
	// 0.02 bonuses each.
	assert.InDelta(t, 1.04, WeightSum(), 1e-9)
}

func TestScorePairDemoRegression(t *testing.T) {
	comp, ours := ScorePair(demoCompetitor(), demoOur())

	assert.Equal(t, 4.7, comp.Total)
	assert.Equal(t, 9.0, ours.Total)
	assert.Equal(t, model.WinnerOur, Winner(comp, ours))

	// Spot-check sub-scores on both sides of the pair normalization.
	assert.InDelta(t, 5.0, comp.PerCriterion["price"], 1e-9)
	assert.InDelta(t, 6.102040816, ours.PerCriterion["price"], 1e-6)
	assert.InDelta(t, 4.0, comp.PerCriterion["energy"], 1e-9)
	assert.InDelta(t, 9.0, ours.PerCriterion["energy"], 1e-9)
	assert.InDelta(t, 10.0, ours.PerCriterion["thickness"], 1e-9)
	assert.InDelta(t, 0.0, comp.PerCriterion["weatherDependent"], 1e-9)
	assert.InDelta(t, 10.0, ours.PerCriterion["weatherDependent"], 1e-9)
	assert.InDelta(t, 10.0, comp.PerCriterion["craneNeeded"], 1e-9)
}

func TestScorePairIdenticalRecordsTie(t *testing.T) {
	rec := demoOur()
	comp, ours := ScorePair(rec, rec)

	assert.Equal(t, comp.Total, ours.Total)
	assert.Equal(t, model.WinnerOur, Winner(comp, ours), "equal totals go to our side")
}

func TestScorePairBothZeroNeutral(t *testing.T) {
	comp, ours := ScorePair(model.OfferRecord{}, model.OfferRecord{})

	assert.InDelta(t, 5.0, comp.PerCriterion["weight"], 1e-9)
	assert.InDelta(t, 5.0, ours.PerCriterion["weight"], 1e-9)
	assert.InDelta(t, 5.0, comp.PerCriterion["energy"], 1e-9, "missing class falls back to neutral")
}

func TestRowsWinners(t *testing.T) {
	rows := Rows(demoCompetitor(), demoOur(), false)

	byName := make(map[string]model.CriterionResult, len(rows))
	for _, r := range rows {
		byName[r.Criterion] = r
	}

	assert.Equal(t, model.WinnerOur, byName["price"].Winner, "lower price wins")
	assert.Equal(t, model.WinnerOur, byName["thickness"].Winner, "thicker wall wins")
	assert.Equal(t, model.WinnerOur, byName["energy"].Winner)
	assert.Equal(t, model.WinnerTie, byName["windBarrier"].Winner, "both true")
	assert.Equal(t, model.WinnerTie, byName["craneNeeded"].Winner, "both false, inverted")
	assert.Equal(t, model.WinnerOur, byName["weatherDependent"].Winner, "not depending on weather wins")
}

func TestRowsBothZeroIsTie(t *testing.T) {
	rows := Rows(model.OfferRecord{}, model.OfferRecord{}, false)
	for _, r := range rows {
		assert.Equal(t, model.WinnerTie, r.Winner, r.Criterion)
	}
}

func TestRowsCurrencyMismatch(t *testing.T) {
	comp := demoCompetitor()
	ours := demoOur()
	comp.Currency, ours.Currency = "RUB", "EUR"

	rows := Rows(comp, ours, true)

	var price, delivery, weight model.CriterionResult
	for _, r := range rows {
		switch r.Criterion {
		case "price":
			price = r
		case "delivery":
			delivery = r
		case "weight":
			weight = r
		}
	}
	require.NotEmpty(t, price.Criterion)

	assert.True(t, price.NotComparable)
	assert.Equal(t, model.WinnerTie, price.Winner)
	assert.True(t, delivery.NotComparable)
	assert.False(t, weight.NotComparable, "weight is not currency-denominated")
	assert.Equal(t, model.WinnerOur, weight.Winner)
}
