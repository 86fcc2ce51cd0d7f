package report

import (
	"golang.org/x/text/language"

	"GrowthCalc/internal/calculator"
	"GrowthCalc/internal/i18n"
	"GrowthCalc/internal/model"
)

// ChartSeries is chart-ready data for plotting total value against
// contributions per year.
type ChartSeries struct {
	Title         string    `json:"title"`
	Labels        []string  `json:"labels"`
	TotalValue    []float64 `json:"totalValue"`
	Contributions []float64 `json:"contributions"`
}

// Series builds localized chart data. Contributions are rounded here for
// display only; the projection itself keeps them at full precision.
func Series(result model.ProjectionResult, tag language.Tag) ChartSeries {
	p := i18n.Printer(tag)
	s := ChartSeries{
		Title:         p.Sprintf(i18n.KeyChartTitle),
		Labels:        make([]string, len(result.Yearly)),
		TotalValue:    make([]float64, len(result.Yearly)),
		Contributions: make([]float64, len(result.Yearly)),
	}
	for i, y := range result.Yearly {
		s.Labels[i] = p.Sprintf(i18n.KeyYearLabel, y.Year)
		s.TotalValue[i] = calculator.RoundCents(y.TotalValue)
		s.Contributions[i] = calculator.RoundCents(y.Contributions)
	}
	return s
}
