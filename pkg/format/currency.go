// Package format renders monetary amounts for display: compact strings
// with a currency symbol (e.g., "$1.2K", "₹3.4M") and locale tags for
// grouped-digit printing.
package format

import (
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// compact magnitude steps, largest first
var magnitudes = []struct {
	value  float64
	suffix string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// CompactCurrency renders an amount with its currency symbol and a
// magnitude suffix, keeping at most one fraction digit ("$1.2K", "$999",
// "-$3M"). Unknown currency codes fall back to the code itself as prefix.
func CompactCurrency(amount int64, code string) string {
	sign := ""
	value := float64(amount)
	if value < 0 {
		sign = "-"
		value = -value
	}

	for _, m := range magnitudes {
		if value >= m.value {
			return sign + Symbol(code) + trimTrailingZero(value/m.value) + m.suffix
		}
	}
	return sign + Symbol(code) + strconv.FormatInt(int64(value), 10)
}

func trimTrailingZero(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// Symbol returns the display symbol for an ISO 4217 currency code. Codes
// without a common symbol render as the code followed by a space.
func Symbol(code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code + " "
	}
	switch unit.String() {
	case "USD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "JPY":
		return "¥"
	case "CNY":
		return "CN¥"
	case "INR":
		return "₹"
	case "KRW":
		return "₩"
	case "RUB":
		return "₽"
	case "BRL":
		return "R$"
	case "AUD":
		return "A$"
	case "CAD":
		return "CA$"
	case "MXN":
		return "MX$"
	}
	return unit.String() + " "
}

// LocaleFor derives a locale tag from a country code for number
// formatting, falling back to en-US when the region is unknown.
func LocaleFor(countryCode string) language.Tag {
	if countryCode == "" {
		return language.AmericanEnglish
	}
	tag, err := language.Parse("und-" + strings.ToUpper(countryCode))
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}
