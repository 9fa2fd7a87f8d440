// Package calc runs the full rate-and-project calculation for one snapshot
// of inputs.
package calc

import (
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/christopherklint97/freelancecalc/internal/estimate"
	"github.com/christopherklint97/freelancecalc/internal/rate"
)

// Inputs is everything the environment collects from its input surface.
type Inputs struct {
	AnnualIncomeTarget   float64  `json:"annual_income_target"`
	BillableHoursPerWeek float64  `json:"billable_hours_per_week"`
	WeeksOffPerYear      float64  `json:"weeks_off_per_year"`
	MonthlyExpenses      float64  `json:"monthly_expenses"`
	ExperienceMultiplier float64  `json:"experience_multiplier"`
	ComplexityMultiplier float64  `json:"complexity_multiplier"`
	ProjectType          string   `json:"project_type"`
	Features             []string `json:"features"`
}

// DefaultInputs returns the inputs an empty form stands for.
func DefaultInputs() Inputs {
	return Inputs{
		BillableHoursPerWeek: rate.DefaultBillableHoursPerWeek,
		WeeksOffPerYear:      rate.DefaultWeeksOffPerYear,
		ExperienceMultiplier: rate.DefaultExperienceMultiplier,
		ComplexityMultiplier: estimate.DefaultComplexityMultiplier,
		ProjectType:          estimate.CustomProjectType,
	}
}

// Result pairs the rate breakdown with the project estimate priced at the
// target rate.
type Result struct {
	Rate    rate.Result       `json:"rate"`
	Project estimate.Estimate `json:"project"`
}

// Pipeline holds the configuration shared by every run.
type Pipeline struct {
	rateCfg   rate.Config
	estimator *estimate.Estimator
	logger    *slog.Logger
}

func New(rateCfg rate.Config, tables *estimate.Tables, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{
		rateCfg:   rateCfg,
		estimator: estimate.New(tables),
		logger:    logger,
	}
}

func (p *Pipeline) Tables() *estimate.Tables {
	return p.estimator.Tables()
}

// Run computes rates, then prices the project at the target rate. Identical
// inputs always produce identical results.
func (p *Pipeline) Run(in Inputs) Result {
	r := rate.Compute(rate.Params{
		AnnualIncomeTarget:   in.AnnualIncomeTarget,
		BillableHoursPerWeek: in.BillableHoursPerWeek,
		WeeksOffPerYear:      in.WeeksOffPerYear,
		MonthlyExpenses:      in.MonthlyExpenses,
		ExperienceMultiplier: in.ExperienceMultiplier,
	}, p.rateCfg)

	est := p.estimator.Estimate(estimate.Request{
		ProjectType:          in.ProjectType,
		Features:             in.Features,
		ComplexityMultiplier: in.ComplexityMultiplier,
		HourlyRate:           r.TargetHourlyRate,
	})

	p.logger.Debug("recalculated",
		"min_rate", r.MinimumHourlyRate,
		"target_rate", r.TargetHourlyRate,
		"project_type", est.ProjectType,
		"total_hours", est.TotalHours,
		"total_price", est.TotalPrice,
		"complexity", est.Complexity.Level,
	)

	return Result{Rate: r, Project: est}
}

// ParseNumber coerces form text to a number. Empty, unparsable and
// non-finite text yields def. A leading numeric prefix is accepted, so
// "30 hrs" reads as 30.
func ParseNumber(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	s = strings.ReplaceAll(s, ",", "")
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return finiteOr(v, def)
	}
	end := numericPrefix(s)
	if end == 0 {
		return def
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return def
	}
	return finiteOr(v, def)
}

// numericPrefix returns the length of the longest leading decimal number.
func numericPrefix(s string) int {
	end, digits, dot := 0, false, false
	for i, r := range s {
		switch {
		case (r == '-' || r == '+') && i == 0:
		case r >= '0' && r <= '9':
			digits = true
			end = i + 1
		case r == '.' && !dot:
			dot = true
		default:
			if !digits {
				return 0
			}
			return end
		}
	}
	if !digits {
		return 0
	}
	return end
}

func finiteOr(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}
