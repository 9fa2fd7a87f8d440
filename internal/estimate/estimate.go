// Package estimate sizes a project in hours and prices it at an hourly rate.
package estimate

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/christopherklint97/freelancecalc/internal/rate"
)

const DefaultComplexityMultiplier = 1

// Request describes the project to estimate.
type Request struct {
	ProjectType          string
	Features             []string
	ComplexityMultiplier float64
	HourlyRate           int64
}

// Estimate is the sized and priced project.
type Estimate struct {
	ProjectType          string     `json:"project_type"`
	ProjectLabel         string     `json:"project_label"`
	Features             []string   `json:"features"`
	BaseHours            int        `json:"base_hours"`
	FeatureHours         int        `json:"feature_hours"`
	ComplexityMultiplier float64    `json:"complexity_multiplier"`
	TotalHours           int        `json:"total_hours"`
	HourlyRate           int64      `json:"hourly_rate"`
	TotalPrice           int64      `json:"total_price"`
	Complexity           Complexity `json:"complexity"`
}

// Estimator prices projects against a fixed set of lookup tables.
type Estimator struct {
	tables *Tables
}

// New returns an Estimator over tables, or over DefaultTables when nil.
func New(tables *Tables) *Estimator {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Estimator{tables: tables}
}

func (e *Estimator) Tables() *Tables {
	return e.tables
}

// Estimate computes total hours and price, saturating at math.MaxInt64
// rather than wrapping. It is total over its inputs:
// unknown project types cost DefaultBaseHours, unknown features cost
// nothing, and a non-positive multiplier is treated as 1.
func (e *Estimator) Estimate(req Request) Estimate {
	multiplier := req.ComplexityMultiplier
	if !(multiplier > 0) || math.IsInf(multiplier, 0) {
		multiplier = DefaultComplexityMultiplier
	}
	hourlyRate := req.HourlyRate
	if hourlyRate < 0 {
		hourlyRate = 0
	}

	baseHours := e.tables.BaseHours(req.ProjectType)
	features := e.selectedFeatures(req.Features)
	featureHours := 0
	for _, key := range features {
		featureHours += e.tables.FeatureHours(key)
	}

	totalHours := int(rate.WholeUnits(decimal.NewFromInt(int64(baseHours + featureHours)).
		Mul(decimal.NewFromFloat(multiplier)).
		Ceil()))
	totalPrice := rate.WholeUnits(decimal.NewFromInt(int64(totalHours)).
		Mul(decimal.NewFromInt(hourlyRate)))

	return Estimate{
		ProjectType:          req.ProjectType,
		ProjectLabel:         e.tables.Label(req.ProjectType),
		Features:             features,
		BaseHours:            baseHours,
		FeatureHours:         featureHours,
		ComplexityMultiplier: multiplier,
		TotalHours:           totalHours,
		HourlyRate:           hourlyRate,
		TotalPrice:           totalPrice,
		Complexity:           Classify(totalHours),
	}
}

// selectedFeatures returns the known features in keys, once each, in table
// order.
func (e *Estimator) selectedFeatures(keys []string) []string {
	if len(keys) == 0 {
		return nil
	}
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}
	var out []string
	for _, f := range e.tables.features {
		if want[f.Key] {
			out = append(out, f.Key)
		}
	}
	return out
}
