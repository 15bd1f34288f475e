package stats

import "math"

// Derived batting/pitching metrics computed once at submission time.
//
// Both functions follow the same guard: if either input is zero, the metric is
// not computed and ok is false, meaning "leave the field as the user typed it".
// Zero is treated the same as absent. A pitcher with 0 innings
// pitched must not produce an ERA, which also rules out division by zero.

// BattingAvg returns hits/atBats rounded to 3 decimal places.
func BattingAvg(hits, atBats float64) (avg float64, ok bool) {
	if hits == 0 || atBats == 0 {
		return 0, false
	}
	return round(hits/atBats, 3), true
}

// ERA returns (earnedRuns*9)/inningsPitched rounded to 2 decimal places.
func ERA(earnedRuns, inningsPitched float64) (era float64, ok bool) {
	if earnedRuns == 0 || inningsPitched == 0 {
		return 0, false
	}
	return round(earnedRuns*9/inningsPitched, 2), true
}

func round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
