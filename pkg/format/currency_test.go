package format

import (
	"testing"

	"golang.org/x/text/language"
)

func TestCompactCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		code     string
		expected string
	}{
		{name: "small amount", amount: 999, code: "USD", expected: "$999"},
		{name: "thousands", amount: 1200, code: "USD", expected: "$1.2K"},
		{name: "exact thousands", amount: 35000, code: "USD", expected: "$35K"},
		{name: "millions", amount: 3400000, code: "INR", expected: "₹3.4M"},
		{name: "billions", amount: 5000000000, code: "USD", expected: "$5B"},
		{name: "trillions", amount: 1200000000000, code: "USD", expected: "$1.2T"},
		{name: "negative", amount: -1500, code: "USD", expected: "-$1.5K"},
		{name: "zero", amount: 0, code: "USD", expected: "$0"},
		{name: "uncommon symbol", amount: 500, code: "NOK", expected: "NOK 500"},
		{name: "unknown code", amount: 500, code: "???", expected: "??? 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompactCurrency(tt.amount, tt.code); got != tt.expected {
				t.Errorf("CompactCurrency(%d, %q) = %q, expected %q",
					tt.amount, tt.code, got, tt.expected)
			}
		})
	}
}

func TestLocaleFor(t *testing.T) {
	if tag := LocaleFor("IN"); tag == language.AmericanEnglish {
		t.Errorf("LocaleFor(IN) fell back to en-US")
	}
	if tag := LocaleFor(""); tag != language.AmericanEnglish {
		t.Errorf("LocaleFor(\"\") = %v, expected en-US", tag)
	}
	if tag := LocaleFor("not a region"); tag != language.AmericanEnglish {
		t.Errorf("LocaleFor(invalid) = %v, expected en-US", tag)
	}
}
