package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/christopherklint97/freelancecalc/internal/notify"
	"github.com/christopherklint97/freelancecalc/internal/quote"
	"github.com/christopherklint97/freelancecalc/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go out with --verbose.
	logger := newLogger()
	if !verbose {
		logger = discardLogger()
	}
	formatter := cfg.Formatter()

	app := tui.NewApp(tui.Options{
		Pipeline:  newPipeline(cfg, logger),
		Formatter: formatter,
		Copier:    quote.NewCopier(quote.SystemClipboard(), formatter, logger),
		Notifier:  notify.New(cfg.Notifications.Enabled, logger),
		Defaults:  cfg.Inputs(),
		Logger:    logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	if s, ok := app.Snapshot(); ok {
		fmt.Println(quote.Text(s, formatter))
	}
	return nil
}
