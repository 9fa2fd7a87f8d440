// Package rate turns an income goal and working-time assumptions into the
// hourly rate a freelancer needs to charge.
package rate

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	DefaultTaxRate      = 0.25
	DefaultWeeksPerYear = 52

	DefaultBillableHoursPerWeek = 30
	DefaultWeeksOffPerYear      = 5
	DefaultExperienceMultiplier = 1
)

var (
	decimalTwelve = decimal.NewFromInt(12)
	maxWholeUnits = decimal.NewFromInt(math.MaxInt64)
)

// Config holds the fixed constants of the rate calculation. They come from
// the config file, never from per-run input.
type Config struct {
	// TaxRate is the fraction of the income target reserved for tax (default: 0.25)
	TaxRate float64

	// WeeksPerYear is the calendar length the weeks off are taken from (default: 52)
	WeeksPerYear int
}

// DefaultConfig returns the standard 25% tax reserve over a 52 week year.
func DefaultConfig() Config {
	return Config{
		TaxRate:      DefaultTaxRate,
		WeeksPerYear: DefaultWeeksPerYear,
	}
}

// Params are the income and working-time inputs.
type Params struct {
	AnnualIncomeTarget   float64
	BillableHoursPerWeek float64
	WeeksOffPerYear      float64
	MonthlyExpenses      float64
	ExperienceMultiplier float64
}

// Result is the rate breakdown. Both hourly rates are whole currency units,
// always rounded up.
type Result struct {
	WorkingWeeksPerYear  float64 `json:"working_weeks_per_year"`
	AnnualBillableHours  float64 `json:"annual_billable_hours"`
	AnnualIncomeTarget   float64 `json:"annual_income_target"`
	AnnualExpenses       float64 `json:"annual_expenses"`
	TaxReserve           float64 `json:"tax_reserve"`
	TotalNeeded          float64 `json:"total_needed"`
	ExperienceMultiplier float64 `json:"experience_multiplier"`
	MinimumHourlyRate    int64   `json:"minimum_hourly_rate"`
	TargetHourlyRate     int64   `json:"target_hourly_rate"`
}

// Normalize replaces out-of-domain values with their defaults. Weeks off that
// would leave no working time are clamped to WeeksPerYear-1; fractional
// values below the year, such as 51.5 of 52, are kept.
func (p Params) Normalize(cfg Config) Params {
	weeksPerYear := float64(cfg.normalize().WeeksPerYear)

	if !nonNegative(p.AnnualIncomeTarget) {
		p.AnnualIncomeTarget = 0
	}
	if !positive(p.BillableHoursPerWeek) {
		p.BillableHoursPerWeek = DefaultBillableHoursPerWeek
	}
	if !nonNegative(p.WeeksOffPerYear) {
		p.WeeksOffPerYear = DefaultWeeksOffPerYear
	}
	if p.WeeksOffPerYear >= weeksPerYear {
		p.WeeksOffPerYear = weeksPerYear - 1
	}
	if !nonNegative(p.MonthlyExpenses) {
		p.MonthlyExpenses = 0
	}
	if !positive(p.ExperienceMultiplier) {
		p.ExperienceMultiplier = DefaultExperienceMultiplier
	}
	return p
}

// Compute calculates minimum and target hourly rates. It never fails:
// parameters are normalized first, so the hours denominator is always positive.
func Compute(p Params, cfg Config) Result {
	cfg = cfg.normalize()
	p = p.Normalize(cfg)

	workingWeeks := decimal.NewFromInt(int64(cfg.WeeksPerYear)).Sub(decimal.NewFromFloat(p.WeeksOffPerYear))
	annualHours := workingWeeks.Mul(decimal.NewFromFloat(p.BillableHoursPerWeek))

	income := decimal.NewFromFloat(p.AnnualIncomeTarget)
	annualExpenses := decimal.NewFromFloat(p.MonthlyExpenses).Mul(decimalTwelve)
	taxReserve := income.Mul(decimal.NewFromFloat(cfg.TaxRate))
	totalNeeded := income.Add(annualExpenses).Add(taxReserve)

	minRate := totalNeeded.Div(annualHours).Ceil()
	targetRate := minRate.Mul(decimal.NewFromFloat(p.ExperienceMultiplier)).Ceil()

	return Result{
		WorkingWeeksPerYear:  workingWeeks.InexactFloat64(),
		AnnualBillableHours:  annualHours.InexactFloat64(),
		AnnualIncomeTarget:   p.AnnualIncomeTarget,
		AnnualExpenses:       annualExpenses.InexactFloat64(),
		TaxReserve:           taxReserve.InexactFloat64(),
		TotalNeeded:          totalNeeded.InexactFloat64(),
		ExperienceMultiplier: p.ExperienceMultiplier,
		MinimumHourlyRate:    WholeUnits(minRate),
		TargetHourlyRate:     WholeUnits(targetRate),
	}
}

// WholeUnits truncates d to an int64, saturating at math.MaxInt64 and 0.
func WholeUnits(d decimal.Decimal) int64 {
	switch {
	case d.IsNegative():
		return 0
	case d.GreaterThan(maxWholeUnits):
		return math.MaxInt64
	}
	return d.IntPart()
}

func (c Config) normalize() Config {
	if !nonNegative(c.TaxRate) {
		c.TaxRate = DefaultTaxRate
	}
	if c.WeeksPerYear < 2 {
		c.WeeksPerYear = DefaultWeeksPerYear
	}
	return c
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// nonNegative is false for NaN as well as negative and infinite values.
func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
