package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tj/go-naturaldate"

	"github.com/christopherklint97/freelancecalc/internal/calc"
	"github.com/christopherklint97/freelancecalc/internal/config"
	"github.com/christopherklint97/freelancecalc/internal/notify"
	"github.com/christopherklint97/freelancecalc/internal/quote"
)

// Numeric inputs are taken as text and coerced the same way the
// interactive form does, so junk falls back to the field default.
func addInputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("income", "", "Annual income target")
	f.String("hours", "", "Billable hours per week")
	f.String("weeks-off", "", "Weeks off per year")
	f.String("expenses", "", "Monthly business expenses")
	f.String("experience", "", "Experience multiplier (1 = mid-level)")
	f.String("complexity", "", "Project complexity multiplier")
	f.StringP("type", "t", "", "Project type key (see 'freelancecalc types')")
	f.StringSlice("feature", nil, "Feature key to include (repeatable)")
}

// inputsFromFlags starts from the configured defaults and applies the flags
// the user set.
func inputsFromFlags(flags *pflag.FlagSet, cfg *config.Config) calc.Inputs {
	in := cfg.Inputs()
	fallback := calc.DefaultInputs()

	number := func(name string, dst *float64, def float64) {
		if flags.Changed(name) {
			v, _ := flags.GetString(name)
			*dst = calc.ParseNumber(v, def)
		}
	}
	number("income", &in.AnnualIncomeTarget, fallback.AnnualIncomeTarget)
	number("hours", &in.BillableHoursPerWeek, fallback.BillableHoursPerWeek)
	number("weeks-off", &in.WeeksOffPerYear, fallback.WeeksOffPerYear)
	number("expenses", &in.MonthlyExpenses, fallback.MonthlyExpenses)
	number("experience", &in.ExperienceMultiplier, fallback.ExperienceMultiplier)
	number("complexity", &in.ComplexityMultiplier, fallback.ComplexityMultiplier)

	if flags.Changed("type") {
		in.ProjectType, _ = flags.GetString("type")
	}
	if flags.Changed("feature") {
		in.Features, _ = flags.GetStringSlice("feature")
	}
	return in
}

func runCalc(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "human" && format != "json" {
		return fmt.Errorf("unknown format %q (must be human or json)", format)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	in := inputsFromFlags(cmd.Flags(), cfg)
	warnUnknownKeys(cmd.ErrOrStderr(), cfg, in)
	result := newPipeline(cfg, logger).Run(in)

	if format == "json" {
		return printJSON(cmd.OutOrStdout(), result)
	}
	printHumanReadable(cmd.OutOrStdout(), result, cfg.Formatter())
	return nil
}

func runQuote(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q (must be text or json)", format)
	}
	dateExpr, _ := cmd.Flags().GetString("date")
	doCopy, _ := cmd.Flags().GetBool("copy")

	date, err := parseQuoteDate(dateExpr, time.Now())
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()
	formatter := cfg.Formatter()

	in := inputsFromFlags(cmd.Flags(), cfg)
	warnUnknownKeys(cmd.ErrOrStderr(), cfg, in)
	snapshot := quote.Take(newPipeline(cfg, logger).Run(in))

	out := cmd.OutOrStdout()
	if format == "json" {
		if err := printJSON(out, quote.Render(snapshot, date, formatter)); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(out, "%s\n\n%s\n", date.Format(quote.DateLayout), quote.Text(snapshot, formatter))
	}

	if doCopy {
		copier := quote.NewCopier(quote.SystemClipboard(), formatter, logger)
		if _, err := copier.Copy(snapshot); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
			return nil
		}
		notify.New(cfg.Notifications.Enabled, logger).Send("freelancecalc", "Quote copied to clipboard")
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied!")
	}
	return nil
}

// parseQuoteDate reads natural-language dates such as "next friday".
// An empty expression means today.
func parseQuoteDate(expr string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(expr) == "" {
		return now, nil
	}
	t, err := naturaldate.Parse(expr, now, naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing quote date %q: %w", expr, err)
	}
	return t, nil
}

// warnUnknownKeys tells the user about keys that will silently use fallbacks.
func warnUnknownKeys(w io.Writer, cfg *config.Config, in calc.Inputs) {
	tables := cfg.Tables()
	if !tables.HasProjectType(in.ProjectType) {
		fmt.Fprintf(w, "Warning: unknown project type %q, estimating as %s\n", in.ProjectType, tables.Label(in.ProjectType))
	}
	for _, f := range in.Features {
		if !tables.HasFeature(f) {
			fmt.Fprintf(w, "Warning: unknown feature %q ignored\n", f)
		}
	}
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
