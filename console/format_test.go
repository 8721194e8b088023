package console_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/warp/payroll-engine/console"
)

func TestHumanize(t *testing.T) {
	cases := []struct {
		in     string
		places int32
		want   string
	}{
		{"0", 2, "0.00"},
		{"999", 2, "999.00"},
		{"1000", 2, "1,000.00"},
		{"1234567.891", 2, "1,234,567.89"},
		{"100000", 0, "100,000"},
		{"-1234.5", 2, "-1,234.50"},
		{"687.325", 2, "687.33"},
		{"72.675", 3, "72.675"},
	}
	for _, tc := range cases {
		got := console.Humanize(decimal.RequireFromString(tc.in), tc.places)
		assert.Equal(t, tc.want, got, "Humanize(%s, %d)", tc.in, tc.places)
	}
}

func TestMoney(t *testing.T) {
	d := decimal.RequireFromString("1234.5")
	assert.Equal(t, "$ 1,234.50", console.Money(d, "$"))
	assert.Equal(t, "€ 1,234.50", console.Money(d, "€"))
	assert.Equal(t, "1,234.50", console.Money(d, ""))
}
