package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds half away from zero to the given number of decimal places.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// PercentChange returns (current-previous)/previous*100 rounded to places, 0 when previous is 0.
func PercentChange(current, previous float64, places int32) float64 {
	if previous == 0 {
		return 0
	}
	cur := decimal.NewFromFloat(current)
	prev := decimal.NewFromFloat(previous)
	return cur.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(places).InexactFloat64()
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
