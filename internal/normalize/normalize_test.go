package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelative_Bounds(t *testing.T) {
	// Any non-negative value against a positive ceiling stays in [0, 10].
	values := []float64{0, 0.1, 1, 50, 99.9, 100, 150, 1000}
	for _, v := range values {
		for _, dir := range []bool{true, false} {
			got := Relative(v, 100, dir)
			assert.GreaterOrEqual(t, got, 0.0, "value %v dir %v", v, dir)
			assert.LessOrEqual(t, got, 10.0, "value %v dir %v", v, dir)
		}
	}
}

func TestRelative_ZeroPairNeutral(t *testing.T) {
	assert.Equal(t, 5.0, Relative(0, 0, true))
	assert.Equal(t, 5.0, Relative(0, 0, false))
	assert.Equal(t, 5.0, Relative(123, 0, true))
	assert.Equal(t, 5.0, Relative(123, -1, false))
}

func TestRelative_HigherIsBetter(t *testing.T) {
	assert.Equal(t, 10.0, Relative(200, 200, true))
	assert.Equal(t, 5.0, Relative(100, 200, true))
	assert.Equal(t, 0.0, Relative(0, 200, true))
}

func TestRelative_LowerIsBetterOffset(t *testing.T) {
	// The best of the pair (value == ceiling) lands at the offset, not 10.
	assert.Equal(t, 5.0, Relative(200, 200, false))
	// Half the ceiling scores 10 after the +5 offset and clamp.
	assert.Equal(t, 10.0, Relative(100, 200, false))
	// Zero scores the clamped maximum.
	assert.Equal(t, 10.0, Relative(0, 200, false))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(17, 0, 10))
	assert.Equal(t, 7.5, Clamp(7.5, 0, 10))
	assert.Equal(t, 0.0, Clamp(0, 0, 10))
	assert.Equal(t, 10.0, Clamp(10, 0, 10))
}

func TestOrdinal_Tables(t *testing.T) {
	cases := []struct {
		table map[string]float64
		want  map[string]float64
	}{
		{EnergyScores, map[string]float64{"A++": 10, "A+": 9, "A": 8, "B": 6, "C": 4, "D": 2, "E": 1}},
		{ComplexityScores, map[string]float64{"easy": 10, "medium": 6, "hard": 3}},
		{StructureScores, map[string]float64{"prefab": 10, "clt": 9, "frame": 8, "aerated": 6, "brick": 4, "concrete": 3}},
		{FoundationScores, map[string]float64{"slab": 10, "basement": 9, "strip": 7, "pile": 6, "screw": 5}},
		{InsulationScores, map[string]float64{"pir": 10, "xps": 9, "basalt": 8, "mineral": 7, "eps": 6, "eco": 7}},
	}
	for _, tc := range cases {
		assert.Equal(t, len(tc.want), len(tc.table))
		for k, want := range tc.want {
			assert.Equal(t, want, Ordinal(k, tc.table), "key %s", k)
		}
	}
}

func TestOrdinal_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, 5.0, Ordinal("F", EnergyScores))
	assert.Equal(t, 5.0, Ordinal("", ComplexityScores))
}

func TestBoolScore(t *testing.T) {
	assert.Equal(t, 10.0, BoolScore(true))
	assert.Equal(t, 0.0, BoolScore(false))
}
