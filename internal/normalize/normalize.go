// Package normalize converts raw criterion values onto a common 0-10 scale.
package normalize

// lowOffset shifts lower-is-better scores up before clamping so the worse
// of two values does not automatically bottom out at 0; only a value at
// twice the pair ceiling does. Changing it changes every historical total.
const lowOffset = 5

// Clamp bounds x to [lo, hi] inclusive.
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Relative scores value against the pair ceiling maxOfPair on a 0-10
// scale. A non-positive ceiling means neither side reported the field, so
// the result is the neutral midpoint 5.
func Relative(value, maxOfPair float64, higherIsBetter bool) float64 {
	if maxOfPair <= 0 {
		return 5
	}
	if higherIsBetter {
		return Clamp(value/maxOfPair*10, 0, 10)
	}
	return Clamp((1-value/maxOfPair)*10+lowOffset, 0, 10)
}

// Ordinal looks up key in a fixed ordinal table, returning the neutral
// fallback 5 for unknown or empty keys.
func Ordinal(key string, table map[string]float64) float64 {
	if s, ok := table[key]; ok {
		return s
	}
	return 5
}

// BoolScore maps a feature flag to the scale extremes.
func BoolScore(flag bool) float64 {
	if flag {
		return 10
	}
	return 0
}
