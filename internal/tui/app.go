package tui

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/christopherklint97/freelancecalc/internal/calc"
	"github.com/christopherklint97/freelancecalc/internal/currency"
	"github.com/christopherklint97/freelancecalc/internal/notify"
	"github.com/christopherklint97/freelancecalc/internal/quote"
)

type viewState int

const (
	formView viewState = iota
	quoteView
)

type Options struct {
	Pipeline  *calc.Pipeline
	Formatter *currency.Formatter
	Copier    *quote.Copier
	Notifier  *notify.Notifier
	Defaults  calc.Inputs
	Now       func() time.Time
	Logger    *slog.Logger
}

// App is the interactive calculator. Every input change re-runs the
// pipeline; ctrl+g freezes the current result into a quote.
type App struct {
	state  viewState
	form   formModel
	modal  quoteModel
	result calc.Result
	quotes quote.Holder

	pipeline  *calc.Pipeline
	formatter *currency.Formatter
	copier    *quote.Copier
	notifier  *notify.Notifier
	now       func() time.Time
	logger    *slog.Logger
}

func NewApp(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Formatter == nil {
		opts.Formatter = currency.Default()
	}
	if opts.Copier == nil {
		opts.Copier = quote.NewCopier(nil, opts.Formatter, opts.Logger)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	a := &App{
		state:     formView,
		form:      newFormModel(opts.Defaults, opts.Pipeline.Tables()),
		pipeline:  opts.Pipeline,
		formatter: opts.Formatter,
		copier:    opts.Copier,
		notifier:  opts.Notifier,
		now:       opts.Now,
		logger:    opts.Logger,
	}
	a.recalculate()
	return a
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	case copyResultMsg:
		return a.handleCopyResult(msg)
	case clearFeedbackMsg:
		a.modal = a.modal.clearFeedback(msg)
		return a, nil
	}

	switch a.state {
	case formView:
		return a.updateForm(msg)
	case quoteView:
		return a.updateQuote(msg)
	}
	return a, nil
}

func (a *App) View() string {
	if a.state == quoteView {
		return a.modal.View()
	}

	header := titleStyle.Render("freelancecalc: Rate & Project Calculator")
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		boxStyle.Render(a.form.View()),
		"  ",
		renderResults(a.result, a.formatter),
	)
	help := helpStyle.Render("Tab: next field • ←/→: change option • Space: toggle feature • Ctrl+G: generate quote • Esc: quit")
	return header + "\n" + body + "\n" + help
}

// Result returns the calculation for the current inputs.
func (a *App) Result() calc.Result {
	return a.result
}

// Snapshot returns the last generated quote, if any.
func (a *App) Snapshot() (quote.Snapshot, bool) {
	return a.quotes.Current()
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return a, tea.Quit
		case "ctrl+g":
			a.generateQuote()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	a.recalculate()
	return a, cmd
}

func (a *App) updateQuote(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q":
			a.state = formView
		case "c":
			return a, a.copyQuote(a.modal.snapshot)
		}
	}
	return a, nil
}

func (a *App) recalculate() {
	a.result = a.pipeline.Run(a.form.Inputs())
}

func (a *App) generateQuote() {
	s := a.quotes.Generate(a.result)
	a.modal = newQuoteModel(s, quote.Render(s, a.now(), a.formatter))
	a.state = quoteView
	a.logger.Debug("generated quote", "project", s.ProjectLabel, "total", s.TotalPrice())
}

func (a *App) copyQuote(s quote.Snapshot) tea.Cmd {
	return func() tea.Msg {
		_, err := a.copier.Copy(s)
		if err == nil {
			a.notifier.Send("freelancecalc", "Quote copied to clipboard")
		}
		return copyResultMsg{err: err}
	}
}

func (a *App) handleCopyResult(msg copyResultMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.modal, cmd = a.modal.withFeedback(msg.err)
	return a, cmd
}
