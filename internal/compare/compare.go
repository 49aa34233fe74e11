// Package compare drives one end-to-end comparison: validation, pair
// scoring, summary deltas and rule-based recommendations.
package compare

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/framehouse/estimate-cli/internal/model"
	"github.com/framehouse/estimate-cli/internal/scorer"
)

// ValidationError reports a required field missing on one side. It aborts
// the comparison before any score is computed.
type ValidationError struct {
	Side  model.Side
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("compare: %s offer: required field %q is missing or zero", e.Side, e.Field)
}

// Validate checks the three fields a record needs to be comparable.
func Validate(side model.Side, rec model.OfferRecord) error {
	switch {
	case rec.Price <= 0:
		return &ValidationError{Side: side, Field: "price"}
	case rec.Energy == "":
		return &ValidationError{Side: side, Field: "energy"}
	case rec.InstallationTime <= 0:
		return &ValidationError{Side: side, Field: "installationTime"}
	}
	return nil
}

// energyRank orders energy classes best-first for class-step deltas. The
// ladder is distinct from the scoring table, which weights classes
// unevenly.
var energyRank = map[string]int{
	"A++": 0,
	"A+":  1,
	"A":   2,
	"B":   3,
	"C":   4,
	"D":   5,
	"E":   6,
}

// Run validates both records, scores the pair and derives the summary.
// Records are treated as immutable once scoring begins; a new comparison
// takes two fresh records.
func Run(competitor, our model.OfferRecord) (model.Comparison, error) {
	if err := Validate(model.SideCompetitor, competitor); err != nil {
		return model.Comparison{}, err
	}
	if err := Validate(model.SideOur, our); err != nil {
		return model.Comparison{}, err
	}

	mismatch := competitor.Currency != "" && our.Currency != "" &&
		competitor.Currency != our.Currency
	if mismatch {
		zap.L().Warn("compare: records carry different currencies, monetary rows are not comparable",
			zap.String("competitor", competitor.Currency),
			zap.String("our", our.Currency))
	}

	compScore, ourScore := scorer.ScorePair(competitor, our)

	result := model.Comparison{
		CompetitorScore:  compScore,
		OurScore:         ourScore,
		Winner:           scorer.Winner(compScore, ourScore),
		Rows:             scorer.Rows(competitor, our, mismatch),
		Deltas:           deltas(competitor, our, mismatch),
		CurrencyMismatch: mismatch,
	}
	result.Recommendations = recommend(competitor, our, result.Deltas)
	return result, nil
}

// deltas are oriented so positive values favor our side.
func deltas(competitor, our model.OfferRecord, mismatch bool) model.Deltas {
	d := model.Deltas{
		PriceComparable:  !mismatch,
		InstallationDays: competitor.InstallationTime - our.InstallationTime,
	}
	if !mismatch {
		d.Price = competitor.Price - our.Price
		d.Currency = firstNonEmpty(competitor.Currency, our.Currency)
	}
	cr, cok := energyRank[competitor.Energy]
	or, ook := energyRank[our.Energy]
	if cok && ook {
		d.EnergySteps = cr - or
	}
	return d
}

// recommend emits rule-based takeaways. Each rule fires only when its
// comparative condition holds; with nothing to say a generic entry keeps
// the list non-empty.
func recommend(competitor, our model.OfferRecord, d model.Deltas) []model.Recommendation {
	var recs []model.Recommendation

	if d.PriceComparable && d.Price > 0 {
		recs = append(recs, model.Recommendation{
			Kind: "positive", Key: "cheaper",
			Args: map[string]any{"amount": d.Price, "currency": d.Currency},
		})
	}
	if d.PriceComparable && d.Price < 0 {
		recs = append(recs, model.Recommendation{
			Kind: "warning", Key: "more_expensive",
			Args: map[string]any{"amount": -d.Price, "currency": d.Currency},
		})
	}
	if d.InstallationDays > 0 {
		recs = append(recs, model.Recommendation{
			Kind: "positive", Key: "faster",
			Args: map[string]any{"days": d.InstallationDays},
		})
	}
	if d.EnergySteps > 0 {
		recs = append(recs, model.Recommendation{
			Kind: "positive", Key: "energy_better",
			Args: map[string]any{"steps": d.EnergySteps},
		})
	}
	if competitor.WeatherDependent && !our.WeatherDependent {
		recs = append(recs, model.Recommendation{Kind: "positive", Key: "all_season"})
	}
	if competitor.CraneNeeded && !our.CraneNeeded {
		recs = append(recs, model.Recommendation{Kind: "positive", Key: "no_crane"})
	}

	if len(recs) == 0 {
		recs = append(recs, model.Recommendation{Kind: "info", Key: "generic"})
	}
	return recs
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
