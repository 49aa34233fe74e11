package model

// Winner designates which side won a comparison or a single criterion.
type Winner string

const (
	WinnerCompetitor Winner = "competitor"
	WinnerOur        Winner = "our"
	WinnerTie        Winner = "tie"
)

// CriterionResult is one row of the per-criterion breakdown. Values are raw
// field values (not normalized scores); the winner is decided in the
// criterion's own better-direction.
type CriterionResult struct {
	Criterion       string  `json:"criterion"`
	CompetitorValue any     `json:"competitor_value"`
	OurValue        any     `json:"our_value"`
	Winner          Winner  `json:"winner"`
	NotComparable   bool    `json:"not_comparable,omitempty"` // currency mismatch on monetary rows
}

// ScoreResult is the weighted composite score for one side.
type ScoreResult struct {
	Total        float64            `json:"total"` // one decimal, typically 0..10
	PerCriterion map[string]float64 `json:"per_criterion"` // normalized 0..10 sub-scores
}

// Deltas summarizes the headline differences between the two offers,
// oriented so positive values favor our side.
type Deltas struct {
	Price            float64 `json:"price"`             // competitor - our, in Currency
	Currency         string  `json:"currency,omitempty"`
	PriceComparable  bool    `json:"price_comparable"`  // false when currencies differ
	InstallationDays float64 `json:"installation_days"` // competitor - our
	EnergySteps      int     `json:"energy_steps"`      // our ordinal - competitor ordinal
}

// Recommendation is one rule-based takeaway for the sales conversation.
type Recommendation struct {
	Kind string `json:"kind"` // "positive", "warning", "info"
	Key  string `json:"key"`  // i18n key
	Args map[string]any `json:"args,omitempty"`
}

// Comparison is the full outcome of one end-to-end comparison.
type Comparison struct {
	CompetitorScore  ScoreResult       `json:"competitor_score"`
	OurScore         ScoreResult       `json:"our_score"`
	Winner           Winner            `json:"winner"`
	Rows             []CriterionResult `json:"rows"`
	Deltas           Deltas            `json:"deltas"`
	Recommendations  []Recommendation  `json:"recommendations"`
	CurrencyMismatch bool              `json:"currency_mismatch,omitempty"`
}
