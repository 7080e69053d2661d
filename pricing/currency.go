package pricing

import (
	"sort"
	"strconv"
	"strings"
)

var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"CHF": "CHF",
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
	"PLN": "zł",
	"CZK": "Kč",
	"HUF": "Ft",
}

// Currencies conventionally written with the symbol after the amount.
// Fixed lookup, not derived from locale.
var suffixCurrencies = map[string]bool{
	"EUR": true,
	"SEK": true,
	"NOK": true,
	"DKK": true,
	"PLN": true,
	"CZK": true,
	"HUF": true,
}

// CurrencySymbol looks up the display symbol for a currency code,
// case-insensitively. Unknown codes come back unchanged.
func CurrencySymbol(code string) string {
	if symbol, ok := currencySymbols[strings.ToUpper(code)]; ok {
		return symbol
	}
	return code
}

// FormatPriceWithoutZeros renders an amount with up to two decimals,
// dropping a trailing zero fraction entirely: 450 -> "450",
// 450.5 -> "450.5", 450.55 -> "450.55".
func FormatPriceWithoutZeros(amount float64) string {
	formatted := strconv.FormatFloat(Round2(amount), 'f', 2, 64)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimSuffix(formatted, ".")
	return formatted
}

// FormatPriceWithSymbol renders "150 €" for suffix currencies and
// "$150" for prefix currencies.
func FormatPriceWithSymbol(amount float64, code string) string {
	price := FormatPriceWithoutZeros(amount)
	symbol := CurrencySymbol(code)
	if suffixCurrencies[strings.ToUpper(code)] {
		return price + " " + symbol
	}
	return symbol + price
}

// PriceAmountFor extracts a numeric amount from a value that is either
// a plain number or a per-currency mapping. A missing currency entry
// falls back to the mapping's first defined value, iterated in a stable
// order.
func PriceAmountFor(value interface{}, currency string) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case map[string]float64:
		if amount, ok := v[currency]; ok {
			return amount
		}
		for _, key := range sortedKeys(v) {
			return v[key]
		}
		return 0
	case map[string]interface{}:
		if amount, ok := v[currency].(float64); ok {
			return amount
		}
		for _, key := range sortedKeysAny(v) {
			if amount, ok := v[key].(float64); ok {
				return amount
			}
		}
		return 0
	default:
		return 0
	}
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeysAny(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
