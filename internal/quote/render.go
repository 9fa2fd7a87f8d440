package quote

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/christopherklint97/freelancecalc/internal/currency"
)

// DateLayout renders quote dates as "19 October 2026".
const DateLayout = "2 January 2006"

// Line is one itemised row of a quote.
type Line struct {
	Description string `json:"description"`
	Detail      string `json:"detail"`
}

// Document is a rendered quote ready for display.
type Document struct {
	Title      string `json:"title"`
	Date       string `json:"date"`
	Lines      []Line `json:"lines"`
	Total      string `json:"total"`
	TotalPrice int64  `json:"total_price"`
}

// Render itemises a snapshot. The feature line appears only when features
// add hours, and the complexity line only when the multiplier is above 1.
func Render(s Snapshot, date time.Time, f *currency.Formatter) Document {
	if f == nil {
		f = currency.Default()
	}
	return Document{
		Title:      "Project Quote",
		Date:       date.Format(DateLayout),
		Lines:      lines(s, f),
		Total:      f.Format(float64(s.TotalPrice())),
		TotalPrice: s.TotalPrice(),
	}
}

func lines(s Snapshot, f *currency.Formatter) []Line {
	rate := f.Format(float64(s.HourlyRate()))
	out := []Line{{
		Description: s.ProjectLabel + " Development",
		Detail:      fmt.Sprintf("%d hrs × %s", s.Project.BaseHours, rate),
	}}
	if s.Project.FeatureHours > 0 {
		out = append(out, Line{
			Description: "Additional Features",
			Detail:      fmt.Sprintf("%d hrs × %s", s.Project.FeatureHours, rate),
		})
	}
	if s.Project.ComplexityMultiplier > 1 {
		out = append(out, Line{
			Description: "Complexity Adjustment",
			Detail:      "×" + formatMultiplier(s.Project.ComplexityMultiplier),
		})
	}
	return out
}

// Text renders the plain-text form of a quote used for copying.
func Text(s Snapshot, f *currency.Formatter) string {
	if f == nil {
		f = currency.Default()
	}
	var sb strings.Builder
	sb.WriteString("PROJECT QUOTE\n")
	sb.WriteString("=============\n")
	for _, l := range lines(s, f) {
		fmt.Fprintf(&sb, "%s: %s\n", l.Description, l.Detail)
	}
	sb.WriteString("--------------\n")
	fmt.Fprintf(&sb, "Total: %s", f.Format(float64(s.TotalPrice())))
	return sb.String()
}

func formatMultiplier(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}
