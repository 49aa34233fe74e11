// Package scorer computes weighted composite scores and per-criterion
// winners for a competitor/our pair of canonical offer records.
package scorer

import (
	"math"

	"github.com/framehouse/estimate-cli/internal/model"
	"github.com/framehouse/estimate-cli/internal/normalize"
)

type kind int

const (
	numericLower kind = iota // lower raw value is better
	numericHigher
	ordinal
	boolean
	booleanInverted // flag negated before scoring, false is better
)

// criterion binds a weight and a value accessor to one comparison row.
// money marks currency-denominated rows whose raw deltas stop being
// comparable when the two records carry different currencies.
type criterion struct {
	name   string
	weight float64
	kind   kind
	money  bool

	num   func(model.OfferRecord) float64
	key   func(model.OfferRecord) string
	table map[string]float64
	flag  func(model.OfferRecord) bool
}

// The weights sum to 1.00 plus two flat 0.02 bonuses for the inverted
// weather/crane flags. The total is intentionally not re-normalized, so a
// perfect record tops out slightly above 10.
var criteria = []criterion{
	{name: "price", weight: 0.20, kind: numericLower, money: true,
		num: func(r model.OfferRecord) float64 { return r.Price }},
	{name: "delivery", weight: 0.05, kind: numericLower, money: true,
		num: func(r model.OfferRecord) float64 { return r.Delivery }},
	{name: "weight", weight: 0.05, kind: numericLower,
		num: func(r model.OfferRecord) float64 { return r.Weight }},
	{name: "thickness", weight: 0.08, kind: numericHigher,
		num: func(r model.OfferRecord) float64 { return r.Thickness }},
	{name: "insulationThickness", weight: 0.07, kind: numericHigher,
		num: func(r model.OfferRecord) float64 { return r.InsulationThickness }},
	{name: "energy", weight: 0.15, kind: ordinal, table: normalize.EnergyScores,
		key: func(r model.OfferRecord) string { return r.Energy }},
	{name: "installationTime", weight: 0.10, kind: numericLower,
		num: func(r model.OfferRecord) float64 { return r.InstallationTime }},
	{name: "complexity", weight: 0.05, kind: ordinal, table: normalize.ComplexityScores,
		key: func(r model.OfferRecord) string { return string(r.Complexity) }},
	{name: "impregnation", weight: 0.03, kind: boolean,
		flag: func(r model.OfferRecord) bool { return r.Impregnation }},
	{name: "eco", weight: 0.03, kind: boolean,
		flag: func(r model.OfferRecord) bool { return r.Eco }},
	{name: "fireProtection", weight: 0.03, kind: boolean,
		flag: func(r model.OfferRecord) bool { return r.FireProtection }},
	{name: "vaporBarrier", weight: 0.02, kind: boolean,
		flag: func(r model.OfferRecord) bool { return r.VaporBarrier }},
	{name: "windBarrier", weight: 0.02, kind: boolean,
		flag: func(r model.OfferRecord) bool { return r.WindBarrier }},
	{name: "fullInsulation", weight: 0.03, kind: boolean,
		flag: func(r model.OfferRecord) bool { return r.FullInsulation }},
	{name: "factoryPrep", weight: 0.03, kind: boolean,
		flag: func(r model.OfferRecord) bool { return r.FactoryPrep }},
	{name: "foundationInsulation", weight: 0.03, kind: boolean,
		flag: func(r model.OfferRecord) bool { return r.FoundationInsulation }},
	{name: "waterproofing", weight: 0.03, kind: boolean,
		flag: func(r model.OfferRecord) bool { return r.Waterproofing }},
	{name: "weatherDependent", weight: 0.02, kind: booleanInverted,
		flag: func(r model.OfferRecord) bool { return r.WeatherDependent }},
	{name: "craneNeeded", weight: 0.02, kind: booleanInverted,
		flag: func(r model.OfferRecord) bool { return r.CraneNeeded }},
}

// WeightSum returns the sum of all criterion weights, bonuses included.
func WeightSum() float64 {
	var sum float64
	for _, c := range criteria {
		sum += c.weight
	}
	return sum
}

// ScorePair computes both sides' weighted totals in one pass. Numeric
// sub-scores normalize against the pair maximum, so scoring is inherently
// a two-record operation; neither side is scored in isolation.
func ScorePair(competitor, our model.OfferRecord) (model.ScoreResult, model.ScoreResult) {
	comp := model.ScoreResult{PerCriterion: make(map[string]float64, len(criteria))}
	ours := model.ScoreResult{PerCriterion: make(map[string]float64, len(criteria))}

	for _, c := range criteria {
		var cs, os float64
		switch c.kind {
		case numericLower, numericHigher:
			ceiling := math.Max(c.num(competitor), c.num(our))
			higher := c.kind == numericHigher
			cs = normalize.Relative(c.num(competitor), ceiling, higher)
			os = normalize.Relative(c.num(our), ceiling, higher)
		case ordinal:
			cs = normalize.Ordinal(c.key(competitor), c.table)
			os = normalize.Ordinal(c.key(our), c.table)
		case boolean:
			cs = normalize.BoolScore(c.flag(competitor))
			os = normalize.BoolScore(c.flag(our))
		case booleanInverted:
			cs = normalize.BoolScore(!c.flag(competitor))
			os = normalize.BoolScore(!c.flag(our))
		}
		comp.PerCriterion[c.name] = cs
		ours.PerCriterion[c.name] = os
		comp.Total += cs * c.weight
		ours.Total += os * c.weight
	}

	comp.Total = round1(comp.Total)
	ours.Total = round1(ours.Total)
	return comp, ours
}

// Winner applies the tie-break policy: equal totals go to our side.
func Winner(competitor, our model.ScoreResult) model.Winner {
	if our.Total >= competitor.Total {
		return model.WinnerOur
	}
	return model.WinnerCompetitor
}

// Rows builds the per-criterion detail table. Winners compare raw values in
// each field's own direction, independent of the weighted totals.
// currencyMismatch marks money rows as not comparable instead of producing
// a cross-currency verdict.
func Rows(competitor, our model.OfferRecord, currencyMismatch bool) []model.CriterionResult {
	rows := make([]model.CriterionResult, 0, len(criteria))
	for _, c := range criteria {
		row := model.CriterionResult{Criterion: c.name}
		switch c.kind {
		case numericLower, numericHigher:
			cv, ov := c.num(competitor), c.num(our)
			row.CompetitorValue, row.OurValue = cv, ov
			if c.money && currencyMismatch {
				row.NotComparable = true
				row.Winner = model.WinnerTie
				break
			}
			row.Winner = numericWinner(cv, ov, c.kind == numericHigher)
		case ordinal:
			ck, ok := c.key(competitor), c.key(our)
			row.CompetitorValue, row.OurValue = ck, ok
			row.Winner = numericWinner(normalize.Ordinal(ck, c.table), normalize.Ordinal(ok, c.table), true)
		case boolean:
			cf, of := c.flag(competitor), c.flag(our)
			row.CompetitorValue, row.OurValue = cf, of
			row.Winner = boolWinner(cf, of)
		case booleanInverted:
			cf, of := c.flag(competitor), c.flag(our)
			row.CompetitorValue, row.OurValue = cf, of
			row.Winner = boolWinner(!cf, !of)
		}
		rows = append(rows, row)
	}
	return rows
}

// numericWinner compares raw values in the better-direction. Two zeros are
// equal, not unknown.
func numericWinner(competitor, our float64, higherBetter bool) model.Winner {
	if competitor == our {
		return model.WinnerTie
	}
	ourWins := our > competitor
	if !higherBetter {
		ourWins = !ourWins
	}
	if ourWins {
		return model.WinnerOur
	}
	return model.WinnerCompetitor
}

func boolWinner(competitor, our bool) model.Winner {
	switch {
	case competitor == our:
		return model.WinnerTie
	case our:
		return model.WinnerOur
	default:
		return model.WinnerCompetitor
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
