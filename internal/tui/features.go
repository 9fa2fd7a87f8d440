package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/christopherklint97/freelancecalc/internal/estimate"
)

const featuresVisible = 8

// featuresModel is the add-on feature checklist with a type-to-filter box.
type featuresModel struct {
	features []estimate.Feature
	filtered []int // indices into features
	selected map[int]bool
	cursor   int
	filter   textinput.Model
}

func newFeaturesModel(features []estimate.Feature, preselected []string) featuresModel {
	ti := textinput.New()
	ti.Placeholder = "Filter features..."
	ti.Prompt = "/ "
	ti.Focus()

	want := make(map[string]bool, len(preselected))
	for _, k := range preselected {
		want[k] = true
	}

	m := featuresModel{
		features: features,
		selected: make(map[int]bool),
		filter:   ti,
	}
	for i, f := range features {
		m.filtered = append(m.filtered, i)
		if want[f.Key] {
			m.selected[i] = true
		}
	}
	return m
}

func (m featuresModel) Update(msg tea.KeyMsg) featuresModel {
	switch msg.String() {
	case " ":
		if len(m.filtered) > 0 {
			idx := m.filtered[m.cursor]
			if m.selected[idx] {
				delete(m.selected, idx)
			} else {
				m.selected[idx] = true
			}
		}
		return m
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m
	case "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		return m
	}

	prevFilter := m.filter.Value()
	m.filter, _ = m.filter.Update(msg)

	// Re-filter on text change
	if m.filter.Value() != prevFilter {
		m.applyFilter()
	}
	return m
}

func (m *featuresModel) applyFilter() {
	query := strings.ToLower(m.filter.Value())
	m.filtered = m.filtered[:0]
	for i, f := range m.features {
		if query == "" ||
			strings.Contains(strings.ToLower(f.Label), query) ||
			strings.Contains(strings.ToLower(f.Key), query) {
			m.filtered = append(m.filtered, i)
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

// Selected returns the keys of the checked features in table order.
func (m featuresModel) Selected() []string {
	var keys []string
	for i, f := range m.features {
		if m.selected[i] {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

func (m featuresModel) View(focused bool) string {
	var b strings.Builder

	b.WriteString("  Additional features\n")
	switch {
	case focused:
		b.WriteString("  " + m.filter.View() + "\n")
	case m.filter.Value() != "":
		// still applied while unfocused
		b.WriteString("  " + dimStyle.Render(m.filter.Prompt+m.filter.Value()) + "\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("    No features match filter"))
		b.WriteString("\n")
		return b.String()
	}

	start := 0
	if m.cursor >= featuresVisible {
		start = m.cursor - featuresVisible + 1
	}
	end := min(start+featuresVisible, len(m.filtered))

	for vi := start; vi < end; vi++ {
		idx := m.filtered[vi]
		f := m.features[idx]

		cursor := "    "
		if focused && vi == m.cursor {
			cursor = "  > "
		}

		check := "[ ]"
		if m.selected[idx] {
			check = selectedStyle.Render("[x]")
		}

		hours := dimStyle.Render(fmt.Sprintf("+%d hrs", f.Hours))
		label := fmt.Sprintf("%-20s", f.Label)
		if focused && vi == m.cursor {
			label = highlightStyle.Render(label)
		}
		fmt.Fprintf(&b, "%s%s %s %s\n", cursor, check, label, hours)
	}

	return b.String()
}
