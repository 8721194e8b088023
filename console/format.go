package console

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Humanize renders d rounded to places decimals with a comma every three
// integer digits: 1234567.891 -> "1,234,567.89".
func Humanize(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + frac
}

// Money renders d as currency with two decimals: "$ 1,234.50".
func Money(d decimal.Decimal, symbol string) string {
	if symbol == "" {
		return Humanize(d, 2)
	}
	return symbol + " " + Humanize(d, 2)
}
