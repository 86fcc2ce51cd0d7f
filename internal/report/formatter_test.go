package report

import (
	"strings"
	"testing"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"GrowthCalc/internal/i18n"
	"GrowthCalc/internal/model"
)

func sampleResult() model.ProjectionResult {
	return model.ProjectionResult{
		TotalValue:         26245.03,
		TotalContributions: 24000,
		TotalGain:          2245.03,
		Yearly: []model.YearSummary{
			{Year: 1, Contributions: 13000, TotalValue: 13567.11, Gain: 567.11},
			{Year: 2, Contributions: 24000, TotalValue: 26245.03, Gain: 2245.03},
		},
	}
}

func TestTable_English(t *testing.T) {
	out := Table(sampleResult(), language.English, currency.EUR)
	for _, want := range []string{"Investment projection", "Year", "Contributions", "Total value", "Growth multiplier: 1.1x"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected table to contain %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "€") < 6 {
		t.Errorf("expected currency symbols for each amount:\n%s", out)
	}
}

func TestTable_Serbian(t *testing.T) {
	out := Table(sampleResult(), i18n.Serbian, currency.EUR)
	for _, want := range []string{"Projekcija investicije", "Godina", "Uplate", "Multiplikator rasta"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected table to contain %q:\n%s", want, out)
		}
	}
}

func TestTable_Empty(t *testing.T) {
	out := Table(model.ProjectionResult{TotalValue: 500, TotalContributions: 500, Yearly: []model.YearSummary{}}, language.English, currency.EUR)
	if !strings.Contains(out, "zero-year horizon") {
		t.Errorf("expected empty-horizon note:\n%s", out)
	}
}

func TestMultiplierLabel(t *testing.T) {
	if got := MultiplierLabel(model.ProjectionResult{}); got != "—" {
		t.Errorf("expected dash, got %q", got)
	}
	if got := MultiplierLabel(model.ProjectionResult{TotalValue: 30, TotalContributions: 10}); got != "3.0x" {
		t.Errorf("expected 3.0x, got %q", got)
	}
}

func TestTelegramReport_Milestones(t *testing.T) {
	yearly := make([]model.YearSummary, 12)
	for i := range yearly {
		yearly[i] = model.YearSummary{Year: i + 1, TotalValue: float64(i+1) * 100}
	}
	plan := model.Plan{InitialInvestment: 1000, MonthlyInvestment: 100, ReturnRate: 8.5, Years: 12}
	out := TelegramReport(plan, model.ProjectionResult{Yearly: yearly}, language.English, currency.EUR)
	for _, want := range []string{"Year 5:", "Year 10:", "Year 12:", "8.50%"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected report to contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Year 3:") {
		t.Errorf("expected non-milestone years to be skipped:\n%s", out)
	}
}

func TestSeries(t *testing.T) {
	res := sampleResult()
	res.Yearly[0].Contributions = 1000.005
	s := Series(res, language.English)
	if len(s.Labels) != 2 || s.Labels[1] != "Year 2" {
		t.Fatalf("unexpected labels: %v", s.Labels)
	}
	if s.Contributions[0] != 1000.01 {
		t.Errorf("expected rounded contributions 1000.01, got %v", s.Contributions[0])
	}
	if s.TotalValue[1] != 26245.03 {
		t.Errorf("expected 26245.03, got %v", s.TotalValue[1])
	}
	if s.Title != "Portfolio growth" {
		t.Errorf("unexpected title %q", s.Title)
	}
}

func TestTelegramReport_LocalizedGain(t *testing.T) {
	plan := model.Plan{InitialInvestment: 1000, MonthlyInvestment: 1000, ReturnRate: 8.5, Years: 2}
	sr := TelegramReport(plan, sampleResult(), i18n.Serbian, currency.EUR)
	if !strings.Contains(sr, "(+2") || !strings.Contains(sr, "245,03 €)") {
		t.Errorf("expected Serbian-formatted gain:\n%s", sr)
	}
	en := TelegramReport(plan, sampleResult(), language.English, currency.EUR)
	if !strings.Contains(en, "(+€2,245.03)") {
		t.Errorf("expected English-formatted gain:\n%s", en)
	}
	loss := model.ProjectionResult{Yearly: []model.YearSummary{{Year: 1, TotalValue: 900, Gain: -100}}}
	if out := TelegramReport(plan, loss, language.English, currency.EUR); !strings.Contains(out, "(-€100.00)") {
		t.Errorf("expected signed loss:\n%s", out)
	}
}
