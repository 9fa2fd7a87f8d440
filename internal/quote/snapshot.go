// Package quote freezes a calculation into a shareable project quote.
package quote

import (
	"slices"

	"github.com/christopherklint97/freelancecalc/internal/calc"
	"github.com/christopherklint97/freelancecalc/internal/estimate"
	"github.com/christopherklint97/freelancecalc/internal/rate"
)

// Snapshot is a frozen copy of one calculation. It does not follow later
// input changes.
type Snapshot struct {
	ProjectLabel string            `json:"project_label"`
	Rate         rate.Result       `json:"rate"`
	Project      estimate.Estimate `json:"project"`
}

// Take copies result into a new Snapshot.
func Take(result calc.Result) Snapshot {
	project := result.Project
	project.Features = slices.Clone(project.Features)
	return Snapshot{
		ProjectLabel: project.ProjectLabel,
		Rate:         result.Rate,
		Project:      project,
	}
}

func (s Snapshot) HourlyRate() int64 {
	return s.Project.HourlyRate
}

func (s Snapshot) TotalPrice() int64 {
	return s.Project.TotalPrice
}

// Holder keeps the most recently generated snapshot. Generating replaces the
// previous snapshot as a whole.
type Holder struct {
	current *Snapshot
}

// Generate freezes result and makes it the current snapshot.
func (h *Holder) Generate(result calc.Result) Snapshot {
	s := Take(result)
	h.current = &s
	return s
}

// Current returns the last generated snapshot, if any.
func (h *Holder) Current() (Snapshot, bool) {
	if h.current == nil {
		return Snapshot{}, false
	}
	return *h.current, true
}
