package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/christopherklint97/freelancecalc/internal/calc"
	"github.com/christopherklint97/freelancecalc/internal/currency"
	"github.com/christopherklint97/freelancecalc/internal/estimate"
)

func printHumanReadable(w io.Writer, res calc.Result, f *currency.Formatter) {
	r := res.Rate
	p := res.Project

	fmt.Fprintf(w, "HOURLY RATE\n")
	fmt.Fprintf(w, "===========\n\n")
	fmt.Fprintf(w, "  %-28s %12s\n", "Minimum Hourly Rate", f.Format(float64(r.MinimumHourlyRate)))
	fmt.Fprintf(w, "  %-28s %12s   (%.2fx experience)\n\n", "Target Hourly Rate", f.Format(float64(r.TargetHourlyRate)), r.ExperienceMultiplier)

	fmt.Fprintf(w, "ANNUAL BREAKDOWN\n")
	fmt.Fprintf(w, "  %-28s %12s\n", "Working Weeks", f.Number(r.WorkingWeeksPerYear))
	fmt.Fprintf(w, "  %-28s %12s\n", "Billable Hours", f.Number(r.AnnualBillableHours))
	fmt.Fprintf(w, "  %-28s %12s\n", "Income Target", f.Format(r.AnnualIncomeTarget))
	fmt.Fprintf(w, "  %-28s %12s\n", "Business Expenses", f.Format(r.AnnualExpenses))
	fmt.Fprintf(w, "  %-28s %12s\n", "Tax Reserve", f.Format(math.Ceil(r.TaxReserve)))
	fmt.Fprintf(w, "  ---\n")
	fmt.Fprintf(w, "  %-28s %12s\n\n", "Total Needed", f.Format(r.TotalNeeded))

	fmt.Fprintf(w, "PROJECT ESTIMATE\n")
	fmt.Fprintf(w, "  %-28s %12s\n", "Project Type", p.ProjectLabel)
	fmt.Fprintf(w, "  %-28s %12d hrs\n", "Base Hours", p.BaseHours)
	if len(p.Features) > 0 {
		fmt.Fprintf(w, "  %-28s %12d hrs   (%s)\n", "Feature Hours", p.FeatureHours, strings.Join(p.Features, ", "))
	}
	if p.ComplexityMultiplier != 1 {
		fmt.Fprintf(w, "  %-28s %11.2fx\n", "Complexity", p.ComplexityMultiplier)
	}
	fmt.Fprintf(w, "  %-28s %12d hrs\n", "Total Hours", p.TotalHours)
	fmt.Fprintf(w, "  %-28s %12s\n", "Hourly Rate", f.Format(float64(p.HourlyRate)))
	fmt.Fprintf(w, "  ---\n")
	fmt.Fprintf(w, "  %-28s %12s\n\n", "Project Total", f.Format(float64(p.TotalPrice)))

	var meter strings.Builder
	for i := 0; i < estimate.MaxLevel; i++ {
		if p.Complexity.Active(i) {
			meter.WriteByte('#')
		} else {
			meter.WriteByte('.')
		}
	}
	fmt.Fprintf(w, "Complexity: %s (%s)\n", meter.String(), p.Complexity.Tier)
}
