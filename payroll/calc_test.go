package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// PER-PAYMENT CALCULATION
// =============================================================================

func TestCalculator_OvertimePayment(t *testing.T) {
	// GIVEN: Rate 20.00, 45 hours worked
	// WHEN: Breaking the payment down
	// THEN: 40 regular hours, 5 overtime hours at 30.00, net 687.325

	calc := payroll.NewCalculator(payroll.DefaultRates())
	p := payment(1, employee("e-1", "20.00"), "45")

	b := calc.Breakdown(p)
	assertDecimal(t, "40", b.RegularHours, "regular hours")
	assertDecimal(t, "5", b.OvertimeHours, "overtime hours")
	assertDecimal(t, "30", b.OvertimeRate, "overtime rate")
	assertDecimal(t, "800", b.RegularPay, "regular pay")
	assertDecimal(t, "150", b.OvertimePay, "overtime pay")
	assertDecimal(t, "950", b.TotalPay, "total pay")
	assertDecimal(t, "190", b.FICA, "fica")
	assertDecimal(t, "72.675", b.SocialSecurity, "social security")
	assertDecimal(t, "262.675", b.TotalDeductions, "total deductions")
	assertDecimal(t, "687.325", b.NetPay, "net pay")
}

func TestCalculator_RegularOnlyPayment(t *testing.T) {
	// GIVEN: Rate 10.00, 40 hours worked (exactly the cap)
	// THEN: No overtime at all

	calc := payroll.NewCalculator(payroll.DefaultRates())
	p := payment(1, employee("e-1", "10.00"), "40")

	assertDecimal(t, "40", calc.RegularHours(p), "regular hours")
	assertDecimal(t, "0", calc.OvertimeHours(p), "overtime hours")
	assertDecimal(t, "0", calc.OvertimePay(p), "overtime pay")
	assertDecimal(t, "400", calc.TotalPay(p), "total pay")
	assertDecimal(t, "80", calc.FICA(p), "fica")
	assertDecimal(t, "30.6", calc.SocialSecurity(p), "social security")
	assertDecimal(t, "289.4", calc.NetPay(p), "net pay")
}

func TestCalculator_MethodsMatchBreakdown(t *testing.T) {
	calc := payroll.NewCalculator(payroll.DefaultRates())
	p := payment(1, employee("e-1", "17.35"), "47.75")
	b := calc.Breakdown(p)

	assert.True(t, calc.RegularHours(p).Equal(b.RegularHours))
	assert.True(t, calc.OvertimeHours(p).Equal(b.OvertimeHours))
	assert.True(t, calc.OvertimeRate(p).Equal(b.OvertimeRate))
	assert.True(t, calc.RegularPay(p).Equal(b.RegularPay))
	assert.True(t, calc.OvertimePay(p).Equal(b.OvertimePay))
	assert.True(t, calc.TotalPay(p).Equal(b.TotalPay))
	assert.True(t, calc.FICA(p).Equal(b.FICA))
	assert.True(t, calc.SocialSecurity(p).Equal(b.SocialSecurity))
	assert.True(t, calc.TotalDeductions(p).Equal(b.TotalDeductions))
	assert.True(t, calc.NetPay(p).Equal(b.NetPay))
}

func TestCalculator_Properties(t *testing.T) {
	// For every quarter hour in [0, 50] and a spread of rates, the split and
	// deduction identities hold exactly.

	calc := payroll.NewCalculator(payroll.DefaultRates())
	quarter := dec("0.25")
	hoursCap := dec("40")
	rates := []string{"10.00", "12.50", "19.99", "30.00"}

	for _, rate := range rates {
		emp := employee("e-1", rate)
		for h := decimal.Zero; h.LessThanOrEqual(dec("50")); h = h.Add(quarter) {
			p := payroll.NewPayment("p", emp, h, testTime)
			b := calc.Breakdown(p)

			assert.False(t, b.RegularHours.IsNegative(), "regular hours below 0 at %s", h)
			assert.True(t, b.RegularHours.LessThanOrEqual(hoursCap), "regular hours above cap at %s", h)
			assert.False(t, b.OvertimeHours.IsNegative(), "overtime hours below 0 at %s", h)
			assert.True(t, b.RegularHours.Add(b.OvertimeHours).Equal(h), "hours split at %s", h)
			assert.True(t, b.TotalDeductions.Equal(b.FICA.Add(b.SocialSecurity)), "deductions at %s", h)
			assert.True(t, b.NetPay.Equal(b.TotalPay.Sub(b.TotalDeductions)), "net pay at %s", h)
			assert.True(t, b.OvertimeRate.Equal(p.RegularRate.Mul(dec("1.5"))), "overtime rate at %s", h)
		}
	}
}

func TestCalculator_AlternateRegime(t *testing.T) {
	// GIVEN: A regime with a 35 hour cap and double-time overtime
	// WHEN: 40 hours at 10.00
	// THEN: 35 regular + 5 overtime at 20.00

	rates := payroll.DefaultRates()
	rates.RegularHoursCap = dec("35")
	rates.OvertimeMultiplier = dec("2")
	calc := payroll.NewCalculator(rates)

	p := payment(1, employee("e-1", "10.00"), "40")
	assertDecimal(t, "35", calc.RegularHours(p), "regular hours")
	assertDecimal(t, "5", calc.OvertimeHours(p), "overtime hours")
	assertDecimal(t, "100", calc.OvertimePay(p), "overtime pay")
	assertDecimal(t, "450", calc.TotalPay(p), "total pay")
}
