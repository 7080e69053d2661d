package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencySymbol(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"EUR", "€"},
		{"eur", "€"},
		{"USD", "$"},
		{"GBP", "£"},
		{"XYZ", "XYZ"},
	}

	for _, test := range tests {
		assert.Equalf(t, test.expected, CurrencySymbol(test.code), "symbol for %v", test.code)
	}
}

func TestFormatPriceWithoutZeros(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{450, "450"},
		{450.5, "450.5"},
		{450.55, "450.55"},
		{0, "0"},
		{99.9, "99.9"},
		{100.0, "100"},
	}

	for _, test := range tests {
		assert.Equalf(t, test.expected, FormatPriceWithoutZeros(test.amount), "format of %v", test.amount)
	}
}

func TestFormatPriceWithSymbol(t *testing.T) {
	tests := []struct {
		amount   float64
		code     string
		expected string
	}{
		{150, "EUR", "150 €"},
		{150, "USD", "$150"},
		{150, "GBP", "£150"},
		{99.5, "EUR", "99.5 €"},
		{20, "XYZ", "XYZ20"},
	}

	for _, test := range tests {
		assert.Equalf(t, test.expected, FormatPriceWithSymbol(test.amount, test.code), "format of %v %v", test.amount, test.code)
	}
}

func TestPriceAmountFor(t *testing.T) {
	assert.Equal(t, 100.0, PriceAmountFor(100.0, "EUR"))
	assert.Equal(t, 0.0, PriceAmountFor(nil, "EUR"))

	perCurrency := map[string]float64{"EUR": 100, "USD": 110}
	assert.Equal(t, 110.0, PriceAmountFor(perCurrency, "USD"))
	// missing code falls back to the first defined value
	assert.Equal(t, 100.0, PriceAmountFor(perCurrency, "GBP"))

	decoded := map[string]interface{}{"EUR": 100.0, "USD": 110.0}
	assert.Equal(t, 100.0, PriceAmountFor(decoded, "EUR"))
	assert.Equal(t, 100.0, PriceAmountFor(decoded, "CHF"))
}
