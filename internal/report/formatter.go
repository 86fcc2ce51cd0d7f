package report

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"GrowthCalc/internal/calculator"
	"GrowthCalc/internal/i18n"
	"GrowthCalc/internal/model"
)

// Table renders the yearly breakdown and totals as an aligned text table.
func Table(result model.ProjectionResult, tag language.Tag, unit currency.Unit) string {
	p := i18n.Printer(tag)
	money := func(v float64) string { return i18n.FormatCurrency(tag, unit, v) }

	var b strings.Builder
	b.WriteString(p.Sprintf(i18n.KeyReportTitle) + "\n\n")

	if len(result.Yearly) == 0 {
		b.WriteString(p.Sprintf(i18n.KeyNoProjection) + "\n")
	} else {
		w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
			p.Sprintf(i18n.KeyYear), p.Sprintf(i18n.KeyContributions),
			p.Sprintf(i18n.KeyTotalValue), p.Sprintf(i18n.KeyGain))
		for _, y := range result.Yearly {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n", y.Year, money(y.Contributions), money(y.TotalValue), money(y.Gain))
		}
		w.Flush()
		b.WriteString("\n")
	}

	writeTotals(&b, result, tag, unit)
	return b.String()
}

// TelegramReport formats a plan and its projection as an HTML bot message.
func TelegramReport(plan model.Plan, result model.ProjectionResult, tag language.Tag, unit currency.Unit) string {
	p := i18n.Printer(tag)
	money := func(v float64) string { return i18n.FormatCurrency(tag, unit, v) }

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📈 <b>%s</b> | %s\n\n", p.Sprintf(i18n.KeyReportTitle), time.Now().Format("2006-01-02")))
	b.WriteString(PlanSummary(plan, tag, unit))
	b.WriteString("\n")

	// Milestones only; the full table is too long for a chat message.
	for _, y := range result.Yearly {
		if y.Year%5 != 0 && y.Year != len(result.Yearly) {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s: %s (%s)\n", p.Sprintf(i18n.KeyYearLabel, y.Year), money(y.TotalValue), signedMoney(tag, unit, y.Gain)))
	}
	if len(result.Yearly) > 0 {
		b.WriteString("\n")
	}

	writeTotals(&b, result, tag, unit)
	return b.String()
}

// PlanSummary lists the saved form values, one per line.
func PlanSummary(plan model.Plan, tag language.Tag, unit currency.Unit) string {
	p := i18n.Printer(tag)
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s: %s\n", p.Sprintf(i18n.KeyInitialInvestment), i18n.FormatCurrency(tag, unit, plan.InitialInvestment)))
	b.WriteString(fmt.Sprintf("%s: %s\n", p.Sprintf(i18n.KeyMonthlyInvestment), i18n.FormatCurrency(tag, unit, plan.MonthlyInvestment)))
	b.WriteString(fmt.Sprintf("%s: %.2f%%\n", p.Sprintf(i18n.KeyReturnRate), plan.ReturnRate))
	b.WriteString(fmt.Sprintf("%s: %d\n", p.Sprintf(i18n.KeyYears), plan.Years))
	return b.String()
}

// signedMoney formats amount with an explicit leading sign.
func signedMoney(tag language.Tag, unit currency.Unit, amount float64) string {
	if amount < 0 {
		return "-" + i18n.FormatCurrency(tag, unit, math.Abs(amount))
	}
	return "+" + i18n.FormatCurrency(tag, unit, amount)
}

func writeTotals(b *strings.Builder, result model.ProjectionResult, tag language.Tag, unit currency.Unit) {
	p := i18n.Printer(tag)
	b.WriteString(fmt.Sprintf("%s: %s\n", p.Sprintf(i18n.KeyTotalContributions), i18n.FormatCurrency(tag, unit, result.TotalContributions)))
	b.WriteString(fmt.Sprintf("%s: %s\n", p.Sprintf(i18n.KeyTotalValue), i18n.FormatCurrency(tag, unit, result.TotalValue)))
	b.WriteString(fmt.Sprintf("%s: %s\n", p.Sprintf(i18n.KeyTotalGain), i18n.FormatCurrency(tag, unit, result.TotalGain)))
	b.WriteString(fmt.Sprintf("%s: %s\n", p.Sprintf(i18n.KeyGrowthMultiplier), MultiplierLabel(result)))
}

// MultiplierLabel renders the growth multiplier to one decimal, or a dash when
// nothing was contributed.
func MultiplierLabel(result model.ProjectionResult) string {
	m, ok := calculator.GrowthMultiplier(result)
	if !ok {
		return "—"
	}
	return fmt.Sprintf("%.1fx", m)
}
