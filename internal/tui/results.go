package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/christopherklint97/freelancecalc/internal/calc"
	"github.com/christopherklint97/freelancecalc/internal/currency"
	"github.com/christopherklint97/freelancecalc/internal/estimate"
)

// renderResults draws the live results panel for one calculation.
func renderResults(r calc.Result, f *currency.Formatter) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Your Rates"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Minimum rate   %s %s\n", bigNumberStyle.Render(f.Format(float64(r.Rate.MinimumHourlyRate))), dimStyle.Render("/hr"))
	fmt.Fprintf(&sb, "Target rate    %s %s\n", bigNumberStyle.Render(f.Format(float64(r.Rate.TargetHourlyRate))), dimStyle.Render("/hr"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Project hours  %s\n", bigNumberStyle.Render(humanize.Comma(int64(r.Project.TotalHours))))
	fmt.Fprintf(&sb, "Project total  %s\n", bigNumberStyle.Render(f.Format(float64(r.Project.TotalPrice))))
	fmt.Fprintf(&sb, "Complexity     %s\n", renderMeter(r.Project.Complexity))
	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render("Breakdown"))
	sb.WriteString("\n")
	sb.WriteString(renderBreakdown(r, f))

	return boxStyle.Render(sb.String())
}

func renderBreakdown(r calc.Result, f *currency.Formatter) string {
	rows := [][2]string{
		{"Income target", f.Format(r.Rate.AnnualIncomeTarget)},
		{"Annual expenses", f.Deduction(r.Rate.AnnualExpenses)},
		{"Tax reserve", f.Deduction(math.Ceil(r.Rate.TaxReserve))},
		{"Working weeks", humanize.Ftoa(r.Rate.WorkingWeeksPerYear)},
		{"Billable hours / year", humanize.Commaf(r.Rate.AnnualBillableHours)},
		{"Experience", "×" + humanize.Ftoa(r.Rate.ExperienceMultiplier)},
	}

	var sb strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&sb, "%-22s %12s\n", row[0], row[1])
	}
	return dimStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// renderMeter draws one bar per level, lit up to the current level.
func renderMeter(c estimate.Complexity) string {
	style := meterStyle(c.Tier)
	var sb strings.Builder
	for i := 0; i < estimate.MaxLevel; i++ {
		if c.Active(i) {
			sb.WriteString(style.Render("▮"))
		} else {
			sb.WriteString(dimStyle.Render("▯"))
		}
	}
	fmt.Fprintf(&sb, " %s", dimStyle.Render(string(c.Tier)))
	return sb.String()
}
