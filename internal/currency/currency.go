// Package currency renders money amounts for display.
package currency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultSymbol = "£"
	DefaultLocale = "en-GB"
)

// Formatter prefixes a fixed currency symbol and groups digits the way the
// configured locale does. Amounts are shown without decimal places.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// New returns a Formatter for symbol and a BCP 47 locale tag. An unparsable
// tag falls back to en-GB; an empty symbol falls back to "£".
func New(symbol, locale string) *Formatter {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BritishEnglish
	}
	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}
}

// Default returns the "£" / en-GB formatter.
func Default() *Formatter {
	return New(DefaultSymbol, DefaultLocale)
}

func (f *Formatter) Symbol() string {
	return f.symbol
}

// Format renders amount rounded half away from zero. The sign is not
// special-cased: a negative amount keeps its minus after the symbol.
func (f *Formatter) Format(amount float64) string {
	return f.symbol + f.Number(amount)
}

// Number renders amount with locale grouping and no symbol. Amounts beyond
// the int64 range saturate.
func (f *Formatter) Number(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	rounded := math.Round(amount)
	switch {
	case rounded >= math.MaxInt64:
		return f.printer.Sprintf("%d", int64(math.MaxInt64))
	case rounded <= math.MinInt64:
		return f.printer.Sprintf("%d", int64(math.MinInt64))
	}
	return f.printer.Sprintf("%d", int64(rounded))
}

// Deduction renders a breakdown line that is subtracted from income,
// e.g. "-£1,200".
func (f *Formatter) Deduction(amount float64) string {
	return "-" + f.Format(math.Abs(amount))
}
