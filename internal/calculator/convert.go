package calculator

import (
	"fmt"
	"math"

	"GrowthCalc/internal/model"
)

// MaxYears is the largest horizon in years whose month count fits in an int.
const MaxYears = math.MaxInt / monthsPerYear

// PercentToRate converts a percentage (8.5) to a fractional rate (0.085).
func PercentToRate(percent float64) float64 {
	return percent / 100
}

// YearsToMonths converts a horizon in whole years to months. It fails for
// negative horizons and for horizons beyond MaxYears.
func YearsToMonths(years int) (int, error) {
	if years < 0 {
		return 0, &InvalidInputError{Field: "years", Reason: "must be >= 0"}
	}
	if years > MaxYears {
		return 0, &InvalidInputError{Field: "years", Reason: fmt.Sprintf("must be <= %d", MaxYears)}
	}
	return years * monthsPerYear, nil
}

// GrowthMultiplier returns TotalValue / TotalContributions.
// ok is false when there is nothing contributed to divide by.
func GrowthMultiplier(r model.ProjectionResult) (multiplier float64, ok bool) {
	if r.TotalContributions <= 0 {
		return 0, false
	}
	return r.TotalValue / r.TotalContributions, true
}
