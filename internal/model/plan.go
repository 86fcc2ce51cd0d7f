package model

import "time"

// Plan is the saved set of calculator form values.
type Plan struct {
	InitialInvestment float64   `json:"initial_investment"`
	MonthlyInvestment float64   `json:"monthly_investment"`
	ReturnRate        float64   `json:"return_rate"` // percent, 8.5 = 8.5%
	Years             int       `json:"years"`
	Locale            string    `json:"locale"`
	UpdatedAt         time.Time `json:"updated_at"`
}
