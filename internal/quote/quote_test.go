package quote

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christopherklint97/freelancecalc/internal/calc"
	"github.com/christopherklint97/freelancecalc/internal/currency"
	"github.com/christopherklint97/freelancecalc/internal/estimate"
	"github.com/christopherklint97/freelancecalc/internal/rate"
)

func runPipeline(in calc.Inputs) calc.Result {
	return calc.New(rate.DefaultConfig(), estimate.DefaultTables(), nil).Run(in)
}

func referenceInputs() calc.Inputs {
	in := calc.DefaultInputs()
	in.AnnualIncomeTarget = 50000
	in.ProjectType = "landing"
	return in
}

func TestTextBaseOnly(t *testing.T) {
	s := Take(runPipeline(referenceInputs()))

	want := "PROJECT QUOTE\n" +
		"=============\n" +
		"Landing Page Development: 12 hrs × £45\n" +
		"--------------\n" +
		"Total: £540"
	assert.Equal(t, want, Text(s, currency.Default()))
}

func TestTextAllLines(t *testing.T) {
	in := referenceInputs()
	in.Features = []string{"cms", "seo"}
	in.ComplexityMultiplier = 1.5
	s := Take(runPipeline(in))

	// (12 + 18) * 1.5 = 45 hours at £45
	want := "PROJECT QUOTE\n" +
		"=============\n" +
		"Landing Page Development: 12 hrs × £45\n" +
		"Additional Features: 18 hrs × £45\n" +
		"Complexity Adjustment: ×1.5\n" +
		"--------------\n" +
		"Total: £2,025"
	assert.Equal(t, want, Text(s, nil))
}

func TestRenderOmitsComplexityAtOrBelowOne(t *testing.T) {
	in := referenceInputs()
	in.ComplexityMultiplier = 0.8
	s := Take(runPipeline(in))

	doc := Render(s, time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC), currency.Default())

	require.Len(t, doc.Lines, 1)
	assert.Equal(t, "Landing Page Development", doc.Lines[0].Description)
	assert.Equal(t, "19 October 2026", doc.Date)
	assert.Equal(t, "Project Quote", doc.Title)
}

func TestRenderMatchesLiveTotal(t *testing.T) {
	f := currency.Default()
	for _, pt := range estimate.DefaultProjectTypes() {
		in := referenceInputs()
		in.ProjectType = pt.Key
		in.Features = []string{"auth", "api"}
		in.ComplexityMultiplier = 1.35
		in.ExperienceMultiplier = 1.25

		live := runPipeline(in)
		doc := Render(Take(live), time.Now(), f)

		assert.Equal(t, live.Project.TotalPrice, doc.TotalPrice, pt.Key)
		assert.Equal(t, f.Format(float64(live.Project.TotalPrice)), doc.Total, pt.Key)
		assert.Contains(t, Text(Take(live), f), "Total: "+doc.Total)
	}
}

func TestSnapshotIsFrozen(t *testing.T) {
	in := referenceInputs()
	in.Features = []string{"seo"}
	result := runPipeline(in)

	var h Holder
	_, ok := h.Current()
	require.False(t, ok)

	first := h.Generate(result)
	result.Project.Features[0] = "mutated"
	result.Project.TotalPrice = 1

	in.AnnualIncomeTarget = 90000
	_ = runPipeline(in)

	got, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, first, got)
	assert.Equal(t, []string{"seo"}, got.Project.Features)
	assert.NotEqual(t, int64(1), got.TotalPrice())

	second := h.Generate(runPipeline(in))
	got, _ = h.Current()
	assert.Equal(t, second, got)
	assert.Greater(t, got.HourlyRate(), first.HourlyRate())
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func TestCopier(t *testing.T) {
	s := Take(runPipeline(referenceInputs()))
	cb := &fakeClipboard{}

	text, err := NewCopier(cb, nil, nil).Copy(s)

	require.NoError(t, err)
	assert.Equal(t, text, cb.text)
	assert.Equal(t, Text(s, nil), cb.text)
}

func TestCopierFailure(t *testing.T) {
	s := Take(runPipeline(referenceInputs()))
	cb := &fakeClipboard{err: errors.New("no clipboard utility")}

	_, err := NewCopier(cb, nil, nil).Copy(s)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no clipboard utility")
	assert.Equal(t, int64(540), s.TotalPrice())
}
