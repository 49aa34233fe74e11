package normalize

// The ordinal tables below are contractual: scores feed directly into the
// weighted totals, so any change shifts every comparison ever produced.

// EnergyScores maps energy efficiency classes (higher class is better).
var EnergyScores = map[string]float64{
	"A++": 10,
	"A+":  9,
	"A":   8,
	"B":   6,
	"C":   4,
	"D":   2,
	"E":   1,
}

// ComplexityScores maps installation complexity (easier is better).
var ComplexityScores = map[string]float64{
	"easy":   10,
	"medium": 6,
	"hard":   3,
}

// StructureScores maps structure types (prefab builds fastest and most
// predictably).
var StructureScores = map[string]float64{
	"prefab":   10,
	"clt":      9,
	"frame":    8,
	"aerated":  6,
	"brick":    4,
	"concrete": 3,
}

// FoundationScores maps foundation types by reliability.
var FoundationScores = map[string]float64{
	"slab":     10,
	"basement": 9,
	"strip":    7,
	"pile":     6,
	"screw":    5,
}

// InsulationScores maps insulation materials by thermal performance.
var InsulationScores = map[string]float64{
	"pir":     10,
	"xps":     9,
	"basalt":  8,
	"mineral": 7,
	"eps":     6,
	"eco":     7,
}
