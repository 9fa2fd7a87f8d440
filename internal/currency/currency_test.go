package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	f := Default()

	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "zero", amount: 0, want: "£0"},
		{name: "small", amount: 45, want: "£45"},
		{name: "thousands", amount: 62500, want: "£62,500"},
		{name: "millions", amount: 1234567, want: "£1,234,567"},
		{name: "rounds half up", amount: 540.5, want: "£541"},
		{name: "rounds down", amount: 540.49, want: "£540"},
		{name: "negative keeps sign", amount: -1200, want: "£-1,200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.amount))
		})
	}
}

func TestFormatCustomSymbol(t *testing.T) {
	f := New("$", "en-US")
	assert.Equal(t, "$12,000", f.Format(12000))
	assert.Equal(t, "$", f.Symbol())
}

func TestNewFallbacks(t *testing.T) {
	f := New("", "not a locale!!")
	assert.Equal(t, DefaultSymbol, f.Symbol())
	assert.Equal(t, "£1,410", f.Format(1410))
}

func TestDeduction(t *testing.T) {
	f := Default()
	assert.Equal(t, "-£12,500", f.Deduction(12500))
	assert.Equal(t, "-£12,500", f.Deduction(-12500))
	assert.Equal(t, "-£0", f.Deduction(0))
}

func TestFormatSaturatesHugeAmounts(t *testing.T) {
	f := Default()

	assert.Equal(t, "£9,223,372,036,854,775,807", f.Format(1e20))
	assert.Equal(t, "£-9,223,372,036,854,775,808", f.Format(-1e20))
	assert.Equal(t, "£9,007,199,254,740,992", f.Format(1<<53))
}
