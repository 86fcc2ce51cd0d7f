package calculator

import (
	"fmt"
	"math"

	"GrowthCalc/internal/model"
)

const monthsPerYear = 12

// maxYearlyPrealloc bounds the capacity hint for the yearly slice so absurd
// horizons grow on demand instead of reserving memory up front.
const maxYearlyPrealloc = 1200

// InvalidInputError reports a ProjectionInput that violates its constraints.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid projection input: %s %s", e.Field, e.Reason)
}

// Validate checks the non-negativity and finiteness constraints of in.
func Validate(in model.ProjectionInput) error {
	if err := checkAmount("initialBalance", in.InitialBalance); err != nil {
		return err
	}
	if err := checkAmount("monthlyContribution", in.MonthlyContribution); err != nil {
		return err
	}
	if math.IsNaN(in.AnnualRate) || math.IsInf(in.AnnualRate, 0) {
		return &InvalidInputError{Field: "annualRate", Reason: "must be finite"}
	}
	if in.TotalMonths < 0 {
		return &InvalidInputError{Field: "totalMonths", Reason: "must be >= 0"}
	}
	return nil
}

func checkAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidInputError{Field: field, Reason: "must be finite"}
	}
	if v < 0 {
		return &InvalidInputError{Field: field, Reason: "must be >= 0"}
	}
	return nil
}

// Project compounds the initial balance monthly at AnnualRate/12, adding the
// monthly contribution after each month's growth, and returns a yearly
// breakdown. The initial balance counts as a contribution.
//
// Two behaviours are contractual and must not be "fixed":
//   - The very last month of the horizon is compounded but receives no
//     contribution, so contributions run one month behind compounding.
//   - Yearly Contributions stay at full precision while TotalValue and Gain
//     are rounded to cents. Growth-multiplier displays divide the former
//     into the latter.
func Project(in model.ProjectionInput) (model.ProjectionResult, error) {
	if err := Validate(in); err != nil {
		return model.ProjectionResult{}, err
	}

	monthlyRate := in.AnnualRate / monthsPerYear
	balance := in.InitialBalance
	contributions := in.InitialBalance

	years := in.TotalMonths / monthsPerYear
	if in.TotalMonths%monthsPerYear != 0 {
		years++
	}
	yearly := make([]model.YearSummary, 0, min(years, maxYearlyPrealloc))

	elapsed := 0
	for year := 1; year <= years; year++ {
		monthsInYear := min(monthsPerYear, in.TotalMonths-elapsed)
		for m := 0; m < monthsInYear; m++ {
			balance *= 1 + monthlyRate
			elapsed++
			// Contract: no trailing contribution after the final month.
			if elapsed < in.TotalMonths {
				balance += in.MonthlyContribution
				contributions += in.MonthlyContribution
			}
		}

		yearly = append(yearly, model.YearSummary{
			Year:          year,
			Contributions: contributions, // contract: unrounded
			TotalValue:    RoundCents(balance),
			Gain:          RoundCents(balance - contributions),
		})
	}

	return model.ProjectionResult{
		TotalValue:         RoundCents(balance),
		TotalContributions: RoundCents(contributions),
		TotalGain:          RoundCents(balance - contributions),
		Yearly:             yearly,
	}, nil
}
