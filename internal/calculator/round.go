package calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundCents rounds v to 2 decimal places, half away from zero, using the
// shortest decimal representation of v (so 2.675 becomes 2.68).
// Non-finite values are returned unchanged.
func RoundCents(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
