package rate

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TaxRate != 0.25 {
		t.Errorf("Expected tax rate 0.25, got %.2f", cfg.TaxRate)
	}
	if cfg.WeeksPerYear != 52 {
		t.Errorf("Expected 52 weeks per year, got %d", cfg.WeeksPerYear)
	}
}

func TestComputeIncomeOnly(t *testing.T) {
	got := Compute(Params{
		AnnualIncomeTarget:   50000,
		BillableHoursPerWeek: 30,
		WeeksOffPerYear:      5,
		MonthlyExpenses:      0,
		ExperienceMultiplier: 1,
	}, DefaultConfig())

	assert.Equal(t, 47.0, got.WorkingWeeksPerYear)
	assert.Equal(t, 1410.0, got.AnnualBillableHours)
	assert.Equal(t, 0.0, got.AnnualExpenses)
	assert.Equal(t, 12500.0, got.TaxReserve)
	assert.Equal(t, 62500.0, got.TotalNeeded)
	assert.Equal(t, int64(45), got.MinimumHourlyRate)
	assert.Equal(t, int64(45), got.TargetHourlyRate)
}

func TestComputeWithExpensesAndExperience(t *testing.T) {
	got := Compute(Params{
		AnnualIncomeTarget:   60000,
		BillableHoursPerWeek: 25,
		WeeksOffPerYear:      6,
		MonthlyExpenses:      500,
		ExperienceMultiplier: 1.5,
	}, DefaultConfig())

	// (60000 + 6000 + 15000) / (46 * 25) = 81000 / 1150 = 70.43 -> 71
	assert.Equal(t, 6000.0, got.AnnualExpenses)
	assert.Equal(t, 15000.0, got.TaxReserve)
	assert.Equal(t, 1150.0, got.AnnualBillableHours)
	assert.Equal(t, int64(71), got.MinimumHourlyRate)
	// 71 * 1.5 = 106.5 -> 107
	assert.Equal(t, int64(107), got.TargetHourlyRate)
}

func TestComputeCeilingIsExact(t *testing.T) {
	// 40 * 1.1 is 44.000000000000004 in binary floating point.
	got := Compute(Params{
		AnnualIncomeTarget:   32000,
		BillableHoursPerWeek: 40,
		WeeksOffPerYear:      2,
		ExperienceMultiplier: 1.1,
	}, Config{TaxRate: 0, WeeksPerYear: 52})

	require.Equal(t, int64(16), got.MinimumHourlyRate)
	assert.Equal(t, int64(18), got.TargetHourlyRate) // 17.6 -> 18

	got = Compute(Params{
		AnnualIncomeTarget:   80000,
		BillableHoursPerWeek: 40,
		WeeksOffPerYear:      2,
		ExperienceMultiplier: 1.1,
	}, Config{TaxRate: 0, WeeksPerYear: 52})

	require.Equal(t, int64(40), got.MinimumHourlyRate)
	assert.Equal(t, int64(44), got.TargetHourlyRate)
}

func TestComputeZeroIncome(t *testing.T) {
	got := Compute(Params{}, DefaultConfig())

	assert.Equal(t, int64(0), got.MinimumHourlyRate)
	assert.Equal(t, int64(0), got.TargetHourlyRate)
	assert.Equal(t, 52.0, got.WorkingWeeksPerYear, "zero weeks off is a valid input")
	assert.Equal(t, 1560.0, got.AnnualBillableHours, "billable hours should default to 30")
	assert.Equal(t, 1.0, got.ExperienceMultiplier)
}

func TestNormalize(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		in   Params
		want Params
	}{
		{
			name: "valid values pass through",
			in:   Params{AnnualIncomeTarget: 1, BillableHoursPerWeek: 20, WeeksOffPerYear: 0, MonthlyExpenses: 3, ExperienceMultiplier: 1.2},
			want: Params{AnnualIncomeTarget: 1, BillableHoursPerWeek: 20, WeeksOffPerYear: 0, MonthlyExpenses: 3, ExperienceMultiplier: 1.2},
		},
		{
			name: "negatives fall back to defaults",
			in:   Params{AnnualIncomeTarget: -1, BillableHoursPerWeek: -20, WeeksOffPerYear: -3, MonthlyExpenses: -3, ExperienceMultiplier: -1},
			want: Params{AnnualIncomeTarget: 0, BillableHoursPerWeek: 30, WeeksOffPerYear: 5, MonthlyExpenses: 0, ExperienceMultiplier: 1},
		},
		{
			name: "non-finite values fall back to defaults",
			in:   Params{AnnualIncomeTarget: math.NaN(), BillableHoursPerWeek: math.Inf(1), WeeksOffPerYear: math.NaN(), MonthlyExpenses: math.Inf(1), ExperienceMultiplier: math.NaN()},
			want: Params{AnnualIncomeTarget: 0, BillableHoursPerWeek: 30, WeeksOffPerYear: 5, MonthlyExpenses: 0, ExperienceMultiplier: 1},
		},
		{
			name: "weeks off clamped to leave one working week",
			in:   Params{BillableHoursPerWeek: 30, WeeksOffPerYear: 60, ExperienceMultiplier: 1},
			want: Params{BillableHoursPerWeek: 30, WeeksOffPerYear: 51, ExperienceMultiplier: 1},
		},
		{
			name: "fractional weeks off below the year are kept",
			in:   Params{BillableHoursPerWeek: 30, WeeksOffPerYear: 51.5, ExperienceMultiplier: 1},
			want: Params{BillableHoursPerWeek: 30, WeeksOffPerYear: 51.5, ExperienceMultiplier: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize(cfg))
		})
	}
}

func TestComputeFullYearOffDoesNotDivideByZero(t *testing.T) {
	got := Compute(Params{
		AnnualIncomeTarget:   52000,
		BillableHoursPerWeek: 40,
		WeeksOffPerYear:      52,
		ExperienceMultiplier: 1,
	}, DefaultConfig())

	assert.Equal(t, 1.0, got.WorkingWeeksPerYear)
	assert.Equal(t, 40.0, got.AnnualBillableHours)
	// (52000 + 13000) / 40 = 1625
	assert.Equal(t, int64(1625), got.MinimumHourlyRate)
}

func TestComputeProperties(t *testing.T) {
	cfg := DefaultConfig()
	incomes := []float64{0, 1, 999, 50000, 123456.78}
	hours := []float64{1, 7.5, 30, 60}
	weeksOff := []float64{0, 5, 12.5, 51}
	multipliers := []float64{1, 1.1, 1.25, 1.5, 2}

	for _, income := range incomes {
		for _, h := range hours {
			for _, w := range weeksOff {
				for _, m := range multipliers {
					p := Params{
						AnnualIncomeTarget:   income,
						BillableHoursPerWeek: h,
						WeeksOffPerYear:      w,
						MonthlyExpenses:      250,
						ExperienceMultiplier: m,
					}
					got := Compute(p, cfg)
					if got.MinimumHourlyRate < 0 || got.TargetHourlyRate < 0 {
						t.Fatalf("negative rate for %+v: %+v", p, got)
					}
					if got.TargetHourlyRate < got.MinimumHourlyRate {
						t.Fatalf("target below minimum for %+v: %+v", p, got)
					}
					if again := Compute(p, cfg); again != got {
						t.Fatalf("Compute not deterministic for %+v", p)
					}
				}
			}
		}
	}
}

func TestComputeHalfWorkingWeek(t *testing.T) {
	got := Compute(Params{
		AnnualIncomeTarget:   4000,
		BillableHoursPerWeek: 40,
		WeeksOffPerYear:      51.5,
		ExperienceMultiplier: 1,
	}, DefaultConfig())

	assert.Equal(t, 0.5, got.WorkingWeeksPerYear)
	assert.Equal(t, 20.0, got.AnnualBillableHours)
	// (4000 + 1000) / 20 = 250
	assert.Equal(t, int64(250), got.MinimumHourlyRate)
}

func TestComputeHugeIncomeSaturates(t *testing.T) {
	got := Compute(Params{
		AnnualIncomeTarget:   1e24,
		BillableHoursPerWeek: 30,
		WeeksOffPerYear:      5,
		ExperienceMultiplier: 1.5,
	}, DefaultConfig())

	assert.Equal(t, int64(math.MaxInt64), got.MinimumHourlyRate)
	assert.Equal(t, int64(math.MaxInt64), got.TargetHourlyRate)

	got = Compute(Params{
		AnnualIncomeTarget:   1e20,
		BillableHoursPerWeek: 30,
		WeeksOffPerYear:      5,
		ExperienceMultiplier: 1,
	}, DefaultConfig())
	assert.Positive(t, got.MinimumHourlyRate)
	assert.Equal(t, got.MinimumHourlyRate, got.TargetHourlyRate)
}

func TestWholeUnits(t *testing.T) {
	assert.Equal(t, int64(42), WholeUnits(decimal.NewFromFloat(42.9)))
	assert.Equal(t, int64(0), WholeUnits(decimal.NewFromInt(-5)))
	assert.Equal(t, int64(math.MaxInt64), WholeUnits(decimal.NewFromFloat(1e30)))
}

func TestComputeInvalidConfigFallsBack(t *testing.T) {
	got := Compute(Params{AnnualIncomeTarget: 50000, BillableHoursPerWeek: 30, WeeksOffPerYear: 5, ExperienceMultiplier: 1},
		Config{TaxRate: -1, WeeksPerYear: 0})

	assert.Equal(t, int64(45), got.MinimumHourlyRate)
}
