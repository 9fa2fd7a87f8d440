package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/christopherklint97/freelancecalc/internal/quote"
)

const feedbackDuration = 2 * time.Second

type copyResultMsg struct {
	err error
}

type clearFeedbackMsg struct {
	seq int
}

// quoteModel is the quote dialog for one generated snapshot.
type quoteModel struct {
	snapshot quote.Snapshot
	doc      quote.Document
	feedback string
	failed   bool
	seq      int
}

func newQuoteModel(s quote.Snapshot, doc quote.Document) quoteModel {
	return quoteModel{snapshot: s, doc: doc}
}

// withFeedback shows a transient copy result and schedules its removal.
func (m quoteModel) withFeedback(err error) (quoteModel, tea.Cmd) {
	m.seq++
	m.failed = err != nil
	m.feedback = "Copied!"
	if m.failed {
		m.feedback = "Copy failed"
	}
	seq := m.seq
	return m, tea.Tick(feedbackDuration, func(time.Time) tea.Msg {
		return clearFeedbackMsg{seq: seq}
	})
}

func (m quoteModel) clearFeedback(msg clearFeedbackMsg) quoteModel {
	if msg.seq == m.seq {
		m.feedback = ""
		m.failed = false
	}
	return m
}

func (m quoteModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(m.doc.Title))
	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render(m.doc.Date))
	sb.WriteString("\n")

	for _, l := range m.doc.Lines {
		fmt.Fprintf(&sb, "%-28s %s\n", l.Description, l.Detail)
	}
	sb.WriteString(dimStyle.Render(strings.Repeat("─", 44)))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%-28s %s\n", "Total", bigNumberStyle.Render(m.doc.Total))

	copyLabel := "[c]opy to clipboard"
	switch {
	case m.feedback != "" && m.failed:
		copyLabel = errorStyle.Render(m.feedback)
	case m.feedback != "":
		copyLabel = successStyle.Render(m.feedback)
	}
	sb.WriteString(helpStyle.Render(copyLabel + " • Esc: close"))

	return modalStyle.Render(sb.String())
}
