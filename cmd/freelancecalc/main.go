package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/christopherklint97/freelancecalc/internal/calc"
	"github.com/christopherklint97/freelancecalc/internal/config"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "freelancecalc",
	Short: "Freelance rate calculator and project quote generator",
	Long:  "freelancecalc works out the hourly rate you need from your income goal, prices projects at that rate, and produces quotes you can paste to clients.",
	RunE:  runTUI,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive calculator",
	RunE:  runTUI,
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate rates and a project estimate",
	RunE:  runCalc,
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Generate a project quote",
	RunE:  runQuote,
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List project types and features",
	RunE:  runTypes,
}

var schemaCmd = &cobra.Command{
	Use:       "schema [result|quote|inputs]",
	Short:     "Print the JSON Schema of command output",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"result", "quote", "inputs"},
	RunE:      runSchema,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Open config file in your editor",
	RunE:  runConfig,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	addInputFlags(calcCmd)
	calcCmd.Flags().String("format", "human", "Output format: human or json")

	addInputFlags(quoteCmd)
	quoteCmd.Flags().String("format", "text", "Output format: text or json")
	quoteCmd.Flags().String("date", "", `Quote date, e.g. "today" or "next monday" (default today)`)
	quoteCmd.Flags().Bool("copy", false, "Copy the quote to the clipboard")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newPipeline(cfg *config.Config, logger *slog.Logger) *calc.Pipeline {
	return calc.New(cfg.RateConfig(), cfg.Tables(), logger)
}
