package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/christopherklint97/freelancecalc/internal/calc"
	"github.com/christopherklint97/freelancecalc/internal/currency"
	"github.com/christopherklint97/freelancecalc/internal/estimate"
	"github.com/christopherklint97/freelancecalc/internal/rate"
)

type Config struct {
	Defaults      DefaultsConfig         `toml:"defaults"`
	Rates         RatesConfig            `toml:"rates"`
	Currency      CurrencyConfig         `toml:"currency"`
	Notifications NotifyConfig           `toml:"notifications"`
	ProjectTypes  []estimate.ProjectType `toml:"project_types" validate:"dive"`
	Features      []estimate.Feature     `toml:"features" validate:"dive"`
}

// DefaultsConfig pre-fills the calculator form.
type DefaultsConfig struct {
	AnnualIncomeTarget   float64 `toml:"annual_income_target" validate:"gte=0"`
	BillableHoursPerWeek float64 `toml:"billable_hours_per_week" validate:"gt=0,lte=168"`
	WeeksOffPerYear      float64 `toml:"weeks_off_per_year" validate:"gte=0"`
	MonthlyExpenses      float64 `toml:"monthly_expenses" validate:"gte=0"`
	ExperienceMultiplier float64 `toml:"experience_multiplier" validate:"gt=0"`
	ComplexityMultiplier float64 `toml:"complexity_multiplier" validate:"gt=0"`
	ProjectType          string  `toml:"project_type"`
}

type RatesConfig struct {
	TaxRate      float64 `toml:"tax_rate" validate:"gte=0,lt=1"`
	WeeksPerYear int     `toml:"weeks_per_year" validate:"gte=2"`
}

type CurrencyConfig struct {
	Symbol string `toml:"symbol" validate:"required"`
	Locale string `toml:"locale" validate:"required,bcp47_language_tag"`
}

type NotifyConfig struct {
	Enabled bool `toml:"enabled"`
}

func DefaultConfig() Config {
	in := calc.DefaultInputs()
	rc := rate.DefaultConfig()
	return Config{
		Defaults: DefaultsConfig{
			AnnualIncomeTarget:   in.AnnualIncomeTarget,
			BillableHoursPerWeek: in.BillableHoursPerWeek,
			WeeksOffPerYear:      in.WeeksOffPerYear,
			MonthlyExpenses:      in.MonthlyExpenses,
			ExperienceMultiplier: in.ExperienceMultiplier,
			ComplexityMultiplier: in.ComplexityMultiplier,
			ProjectType:          in.ProjectType,
		},
		Rates: RatesConfig{
			TaxRate:      rc.TaxRate,
			WeeksPerYear: rc.WeeksPerYear,
		},
		Currency: CurrencyConfig{
			Symbol: currency.DefaultSymbol,
			Locale: currency.DefaultLocale,
		},
		Notifications: NotifyConfig{
			Enabled: false,
		},
		ProjectTypes: estimate.DefaultProjectTypes(),
		Features:     estimate.DefaultFeatures(),
	}
}

func ConfigDir() (string, error) {
	if v := os.Getenv("FREELANCECALC_CONFIG_DIR"); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "freelancecalc"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. A missing file yields the defaults.
// Tables given in the file replace the default tables entirely.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > 0 {
		cfg.ProjectTypes, cfg.Features = nil, nil
		cfg.Defaults.ProjectType = ""
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
		if cfg.ProjectTypes == nil {
			cfg.ProjectTypes = estimate.DefaultProjectTypes()
		}
		if cfg.Features == nil {
			cfg.Features = estimate.DefaultFeatures()
		}
		if cfg.Defaults.ProjectType == "" {
			cfg.Defaults.ProjectType = defaultProjectType(cfg.ProjectTypes)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("FREELANCECALC_CURRENCY_SYMBOL"); v != "" {
		cfg.Currency.Symbol = v
	}
	if v := os.Getenv("FREELANCECALC_LOCALE"); v != "" {
		cfg.Currency.Locale = v
	}
	if v := os.Getenv("FREELANCECALC_TAX_RATE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing FREELANCECALC_TAX_RATE: %w", err)
		}
		cfg.Rates.TaxRate = f
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field ranges and that the tables are usable.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Defaults.WeeksOffPerYear >= float64(c.Rates.WeeksPerYear) {
		return fmt.Errorf("invalid config: weeks_off_per_year (%g) must be below weeks_per_year (%d)",
			c.Defaults.WeeksOffPerYear, c.Rates.WeeksPerYear)
	}
	if len(c.ProjectTypes) == 0 {
		return errors.New("invalid config: at least one project type is required")
	}
	if !c.Tables().HasProjectType(c.Defaults.ProjectType) {
		return fmt.Errorf("invalid config: default project_type %q is not in project_types", c.Defaults.ProjectType)
	}
	return nil
}

// defaultProjectType picks the custom type when the table has one, otherwise
// the first entry.
func defaultProjectType(types []estimate.ProjectType) string {
	for _, pt := range types {
		if pt.Key == estimate.CustomProjectType {
			return pt.Key
		}
	}
	if len(types) == 0 {
		return estimate.CustomProjectType
	}
	return types[0].Key
}

// Tables builds the estimator lookup tables.
func (c *Config) Tables() *estimate.Tables {
	return estimate.NewTables(c.ProjectTypes, c.Features)
}

func (c *Config) RateConfig() rate.Config {
	return rate.Config{TaxRate: c.Rates.TaxRate, WeeksPerYear: c.Rates.WeeksPerYear}
}

func (c *Config) Formatter() *currency.Formatter {
	return currency.New(c.Currency.Symbol, c.Currency.Locale)
}

// Inputs returns the configured form defaults.
func (c *Config) Inputs() calc.Inputs {
	d := c.Defaults
	return calc.Inputs{
		AnnualIncomeTarget:   d.AnnualIncomeTarget,
		BillableHoursPerWeek: d.BillableHoursPerWeek,
		WeeksOffPerYear:      d.WeeksOffPerYear,
		MonthlyExpenses:      d.MonthlyExpenses,
		ExperienceMultiplier: d.ExperienceMultiplier,
		ComplexityMultiplier: d.ComplexityMultiplier,
		ProjectType:          d.ProjectType,
	}
}

func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// WriteDefault writes the default config to path unless a file is there.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("creating config directory: %w", err)
	}
	out, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return false, fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return false, fmt.Errorf("writing default config: %w", err)
	}
	return true, nil
}
