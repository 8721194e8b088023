/*
calc.go - Per-payment pay calculation

PURPOSE:
  Derives hours, pay and deductions from a single Payment's stored fields.
  Every function here is pure: same payment + same rates = same result.

FORMULAS (with the default regime):
  regularHours    = min(hoursWorked, 40)
  overtimeHours   = max(hoursWorked - 40, 0)
  overtimeRate    = regularRate * 1.5
  regularPay      = regularHours * regularRate
  overtimePay     = overtimeHours * overtimeRate
  totalPay        = regularPay + overtimePay
  fica            = totalPay * 0.20
  socialSecurity  = totalPay * 0.0765
  totalDeductions = fica + socialSecurity
  netPay          = totalPay - totalDeductions

EXAMPLE:
  rate 20.00, 45 hours:
    regular 40h * 20.00 = 800.00
    overtime 5h * 30.00 = 150.00
    total 950.00, fica 190.00, social security 72.675, net 687.325

No rounding happens here. Rounding is a presentation concern (console/).
*/
package payroll

import "github.com/shopspring/decimal"

// Calculator applies a rate regime to payments.
type Calculator struct {
	rates Rates
}

func NewCalculator(rates Rates) Calculator {
	return Calculator{rates: rates}
}

func (c Calculator) Rates() Rates { return c.rates }

func (c Calculator) RegularHours(p Payment) decimal.Decimal {
	return decimal.Min(p.HoursWorked, c.rates.RegularHoursCap)
}

func (c Calculator) OvertimeHours(p Payment) decimal.Decimal {
	return decimal.Max(p.HoursWorked.Sub(c.rates.RegularHoursCap), decimal.Zero)
}

func (c Calculator) OvertimeRate(p Payment) decimal.Decimal {
	return p.RegularRate.Mul(c.rates.OvertimeMultiplier)
}

func (c Calculator) RegularPay(p Payment) decimal.Decimal {
	return c.RegularHours(p).Mul(p.RegularRate)
}

func (c Calculator) OvertimePay(p Payment) decimal.Decimal {
	return c.OvertimeHours(p).Mul(c.OvertimeRate(p))
}

func (c Calculator) TotalPay(p Payment) decimal.Decimal {
	return c.RegularPay(p).Add(c.OvertimePay(p))
}

func (c Calculator) FICA(p Payment) decimal.Decimal {
	return c.TotalPay(p).Mul(c.rates.FICARate)
}

func (c Calculator) SocialSecurity(p Payment) decimal.Decimal {
	return c.TotalPay(p).Mul(c.rates.SocialSecurityRate)
}

func (c Calculator) TotalDeductions(p Payment) decimal.Decimal {
	return c.FICA(p).Add(c.SocialSecurity(p))
}

func (c Calculator) NetPay(p Payment) decimal.Decimal {
	return c.TotalPay(p).Sub(c.TotalDeductions(p))
}

// =============================================================================
// BREAKDOWN - Every derived value of one payment
// =============================================================================

// PayBreakdown is the full derivation of one payment.
type PayBreakdown struct {
	RegularHours    decimal.Decimal
	OvertimeHours   decimal.Decimal
	OvertimeRate    decimal.Decimal
	RegularPay      decimal.Decimal
	OvertimePay     decimal.Decimal
	TotalPay        decimal.Decimal
	FICA            decimal.Decimal
	SocialSecurity  decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
}

// Breakdown computes every derived value of p in one pass.
func (c Calculator) Breakdown(p Payment) PayBreakdown {
	regHours := c.RegularHours(p)
	otHours := c.OvertimeHours(p)
	otRate := c.OvertimeRate(p)
	regPay := regHours.Mul(p.RegularRate)
	otPay := otHours.Mul(otRate)
	total := regPay.Add(otPay)
	fica := total.Mul(c.rates.FICARate)
	socSec := total.Mul(c.rates.SocialSecurityRate)
	deductions := fica.Add(socSec)

	return PayBreakdown{
		RegularHours:    regHours,
		OvertimeHours:   otHours,
		OvertimeRate:    otRate,
		RegularPay:      regPay,
		OvertimePay:     otPay,
		TotalPay:        total,
		FICA:            fica,
		SocialSecurity:  socSec,
		TotalDeductions: deductions,
		NetPay:          total.Sub(deductions),
	}
}
