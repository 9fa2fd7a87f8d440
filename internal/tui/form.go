package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/christopherklint97/freelancecalc/internal/calc"
	"github.com/christopherklint97/freelancecalc/internal/estimate"
)

type formField int

const (
	fieldIncome formField = iota
	fieldHours
	fieldWeeksOff
	fieldExpenses
	fieldExperience
	fieldProjectType
	fieldComplexity
	fieldFeatures
	fieldCount
)

type option struct {
	label string
	value float64
}

var experienceOptions = []option{
	{"Junior", 0.85},
	{"Mid-level", 1},
	{"Senior", 1.25},
	{"Expert", 1.5},
}

var complexityOptions = []option{
	{"Simple", 1},
	{"Moderate", 1.2},
	{"Complex", 1.5},
	{"Very complex", 2},
}

type numberInput struct {
	label string
	unit  string
	def   float64
	input textinput.Model
}

type formModel struct {
	numbers      [4]numberInput
	experience   []option
	expIdx       int
	complexity   []option
	cmplxIdx     int
	projectTypes []estimate.ProjectType
	typeIdx      int
	features     featuresModel
	focus        formField
}

func newFormModel(defaults calc.Inputs, tables *estimate.Tables) formModel {
	fallback := calc.DefaultInputs()
	m := formModel{
		numbers: [4]numberInput{
			newNumberInput("Annual income target", "", fallback.AnnualIncomeTarget, defaults.AnnualIncomeTarget, "50000"),
			newNumberInput("Billable hours / week", "hrs", fallback.BillableHoursPerWeek, defaults.BillableHoursPerWeek, ""),
			newNumberInput("Weeks off / year", "wks", fallback.WeeksOffPerYear, defaults.WeeksOffPerYear, ""),
			newNumberInput("Monthly expenses", "", fallback.MonthlyExpenses, defaults.MonthlyExpenses, "0"),
		},
		projectTypes: tables.ProjectTypes(),
		features:     newFeaturesModel(tables.Features(), defaults.Features),
	}
	m.experience, m.expIdx = optionsWith(experienceOptions, defaults.ExperienceMultiplier)
	m.complexity, m.cmplxIdx = optionsWith(complexityOptions, defaults.ComplexityMultiplier)
	for i, pt := range m.projectTypes {
		if pt.Key == defaults.ProjectType {
			m.typeIdx = i
		}
	}
	m.numbers[0].input.Focus()
	return m
}

func newNumberInput(label, unit string, def, value float64, placeholder string) numberInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 12
	ti.Width = 12
	ti.Placeholder = placeholder
	if value != 0 || placeholder == "" {
		ti.SetValue(strconv.FormatFloat(value, 'f', -1, 64))
	}
	return numberInput{label: label, unit: unit, def: def, input: ti}
}

// optionsWith returns opts with value selected, adding a custom entry when
// value is not one of the stock options.
func optionsWith(opts []option, value float64) ([]option, int) {
	for i, o := range opts {
		if o.value == value {
			return opts, i
		}
	}
	if !(value > 0) {
		for i, o := range opts {
			if o.value == 1 {
				return opts, i
			}
		}
	}
	out := append([]option{}, opts...)
	out = append(out, option{label: "Custom", value: value})
	return out, len(out) - 1
}

func (m formModel) Inputs() calc.Inputs {
	in := calc.Inputs{
		AnnualIncomeTarget:   m.number(fieldIncome),
		BillableHoursPerWeek: m.number(fieldHours),
		WeeksOffPerYear:      m.number(fieldWeeksOff),
		MonthlyExpenses:      m.number(fieldExpenses),
		ExperienceMultiplier: m.experience[m.expIdx].value,
		ComplexityMultiplier: m.complexity[m.cmplxIdx].value,
		Features:             m.features.Selected(),
	}
	if len(m.projectTypes) > 0 {
		in.ProjectType = m.projectTypes[m.typeIdx].Key
	}
	return in
}

func (m formModel) number(f formField) float64 {
	n := m.numbers[f]
	return calc.ParseNumber(n.input.Value(), n.def)
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.focus < fieldExperience {
			var cmd tea.Cmd
			m.numbers[m.focus].input, cmd = m.numbers[m.focus].input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "tab":
		return m.setFocus((m.focus + 1) % fieldCount)
	case "shift+tab":
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	}

	switch m.focus {
	case fieldExperience:
		m.expIdx = cycle(keyMsg.String(), m.expIdx, len(m.experience))
	case fieldComplexity:
		m.cmplxIdx = cycle(keyMsg.String(), m.cmplxIdx, len(m.complexity))
	case fieldProjectType:
		m.typeIdx = cycle(keyMsg.String(), m.typeIdx, len(m.projectTypes))
	case fieldFeatures:
		m.features = m.features.Update(keyMsg)
	default:
		var cmd tea.Cmd
		m.numbers[m.focus].input, cmd = m.numbers[m.focus].input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m formModel) setFocus(f formField) (formModel, tea.Cmd) {
	if m.focus < fieldExperience {
		m.numbers[m.focus].input.Blur()
	}
	m.focus = f
	if f < fieldExperience {
		return m, m.numbers[f].input.Focus()
	}
	return m, nil
}

// cycle moves a selector index with the arrow keys, wrapping at both ends.
func cycle(key string, idx, n int) int {
	if n == 0 {
		return 0
	}
	switch key {
	case "right", "l":
		return (idx + 1) % n
	case "left", "h":
		return (idx + n - 1) % n
	}
	return idx
}

func (m formModel) View() string {
	var sb strings.Builder

	for i, n := range m.numbers {
		unit := ""
		if n.unit != "" {
			unit = " " + dimStyle.Render(n.unit)
		}
		sb.WriteString(m.row(formField(i), n.label, n.input.View()+unit))
	}
	sb.WriteString(m.row(fieldExperience, "Experience", m.selector(m.experience[m.expIdx])))
	typeLabel := ""
	if len(m.projectTypes) > 0 {
		pt := m.projectTypes[m.typeIdx]
		typeLabel = fmt.Sprintf("‹ %s › %s", pt.Label, dimStyle.Render(fmt.Sprintf("%d hrs", pt.BaseHours)))
	}
	sb.WriteString(m.row(fieldProjectType, "Project type", typeLabel))
	sb.WriteString(m.row(fieldComplexity, "Complexity", m.selector(m.complexity[m.cmplxIdx])))
	sb.WriteString("\n")
	sb.WriteString(m.features.View(m.focus == fieldFeatures))

	return sb.String()
}

func (m formModel) row(f formField, label, value string) string {
	prefix := "  "
	l := fmt.Sprintf("%-22s", label)
	if m.focus == f {
		prefix = "> "
		l = highlightStyle.Render(l)
	}
	return prefix + l + " " + value + "\n"
}

func (m formModel) selector(o option) string {
	return fmt.Sprintf("‹ %s › %s", o.label, dimStyle.Render("×"+strconv.FormatFloat(o.value, 'f', -1, 64)))
}
