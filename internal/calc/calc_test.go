package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christopherklint97/freelancecalc/internal/estimate"
	"github.com/christopherklint97/freelancecalc/internal/rate"
)

func newTestPipeline() *Pipeline {
	return New(rate.DefaultConfig(), estimate.DefaultTables(), nil)
}

func TestRunReferenceProject(t *testing.T) {
	p := newTestPipeline()

	in := DefaultInputs()
	in.AnnualIncomeTarget = 50000
	in.ProjectType = "landing"

	got := p.Run(in)

	assert.Equal(t, int64(45), got.Rate.MinimumHourlyRate)
	assert.Equal(t, int64(45), got.Rate.TargetHourlyRate)
	assert.Equal(t, 12, got.Project.TotalHours)
	assert.Equal(t, int64(540), got.Project.TotalPrice)
	assert.Equal(t, got.Rate.TargetHourlyRate, got.Project.HourlyRate)

	in.ComplexityMultiplier = 1.5
	got = p.Run(in)
	assert.Equal(t, 18, got.Project.TotalHours)
	assert.Equal(t, int64(810), got.Project.TotalPrice)
}

func TestRunUsesTargetRate(t *testing.T) {
	p := newTestPipeline()

	in := DefaultInputs()
	in.AnnualIncomeTarget = 50000
	in.ExperienceMultiplier = 1.5
	in.ProjectType = "webapp"
	in.Features = []string{"auth"}

	got := p.Run(in)

	require.Equal(t, int64(68), got.Rate.TargetHourlyRate) // ceil(45 * 1.5)
	assert.Equal(t, 96, got.Project.TotalHours)
	assert.Equal(t, int64(96*68), got.Project.TotalPrice)
	assert.Equal(t, 5, got.Project.Complexity.Level)
	assert.Equal(t, estimate.TierHigh, got.Project.Complexity.Tier)
}

func TestRunIdempotent(t *testing.T) {
	p := newTestPipeline()
	in := Inputs{
		AnnualIncomeTarget:   72000,
		BillableHoursPerWeek: 28,
		WeeksOffPerYear:      7,
		MonthlyExpenses:      350,
		ExperienceMultiplier: 1.2,
		ComplexityMultiplier: 1.3,
		ProjectType:          "ecommerce",
		Features:             []string{"payments", "seo"},
	}

	assert.Equal(t, p.Run(in), p.Run(in))
}

func TestRunHugeIncomeNeverGoesNegative(t *testing.T) {
	p := newTestPipeline()

	in := DefaultInputs()
	in.AnnualIncomeTarget = ParseNumber("1e20", 0)
	in.ProjectType = "webapp"
	in.ComplexityMultiplier = 2

	got := p.Run(in)

	assert.Positive(t, got.Rate.MinimumHourlyRate)
	assert.Equal(t, 160, got.Project.TotalHours)
	assert.Equal(t, int64(math.MaxInt64), got.Project.TotalPrice)

	in.AnnualIncomeTarget = 1e24
	got = p.Run(in)
	assert.Equal(t, int64(math.MaxInt64), got.Rate.MinimumHourlyRate)
	assert.Equal(t, int64(math.MaxInt64), got.Project.TotalPrice)
}

func TestRunZeroValueInputs(t *testing.T) {
	p := newTestPipeline()

	got := p.Run(Inputs{})

	assert.Equal(t, int64(0), got.Rate.TargetHourlyRate)
	assert.Equal(t, estimate.DefaultBaseHours, got.Project.BaseHours)
	assert.Equal(t, int64(0), got.Project.TotalPrice)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		def  float64
		want float64
	}{
		{"", 30, 30},
		{"   ", 30, 30},
		{"42", 30, 42},
		{" 42.5 ", 0, 42.5},
		{"50,000", 0, 50000},
		{"30 hrs", 0, 30},
		{"1.5x", 1, 1.5},
		{".5", 1, 0.5},
		{"-3", 5, -3},
		{"abc", 5, 5},
		{"-", 5, 5},
		{"NaN", 1, 1},
		{"Inf", 1, 1},
		{"1e3", 0, 1000},
		{"0", 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumber(tt.in, tt.def))
		})
	}
}
