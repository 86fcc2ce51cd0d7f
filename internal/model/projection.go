package model

// ProjectionInput describes a savings plan to be projected forward.
type ProjectionInput struct {
	InitialBalance      float64 `json:"initialBalance"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	AnnualRate          float64 `json:"annualRate"` // fractional, 0.085 = 8.5%
	TotalMonths         int     `json:"totalMonths"`
}

// YearSummary is the running snapshot taken after each block of 12 months.
type YearSummary struct {
	Year          int     `json:"year"`
	Contributions float64 `json:"contributions"` // not rounded
	TotalValue    float64 `json:"totalValue"`
	Gain          float64 `json:"gain"`
}

// ProjectionResult is the output of the projection engine.
type ProjectionResult struct {
	TotalValue         float64       `json:"totalValue"`
	TotalContributions float64       `json:"totalContributions"`
	TotalGain          float64       `json:"totalGain"`
	Yearly             []YearSummary `json:"yearlyBreakdown"`
}
