package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// RATES - The rate regime used by every calculation
// =============================================================================

// Rates holds the thresholds and percentages of a pay regime. It is a plain
// value owned by the Calculator, Registry and Ledger so tests can run
// alternate regimes side by side.
type Rates struct {
	// Hours up to this cap are regular; the rest are overtime.
	RegularHoursCap decimal.Decimal
	// Upper bound for hours worked in a single payment.
	MaxHoursWorked decimal.Decimal

	MinRegularRate decimal.Decimal
	MaxRegularRate decimal.Decimal

	OvertimeMultiplier decimal.Decimal
	FICARate           decimal.Decimal
	SocialSecurityRate decimal.Decimal
}

// DefaultRates returns the standard regime: 40 regular hours, 50 max,
// rates 10.00-30.00, overtime at 1.5x, FICA 20%, Social Security 7.65%.
func DefaultRates() Rates {
	return Rates{
		RegularHoursCap:    decimal.NewFromInt(40),
		MaxHoursWorked:     decimal.NewFromInt(50),
		MinRegularRate:     decimal.RequireFromString("10.00"),
		MaxRegularRate:     decimal.RequireFromString("30.00"),
		OvertimeMultiplier: decimal.RequireFromString("1.5"),
		FICARate:           decimal.RequireFromString("0.20"),
		SocialSecurityRate: decimal.RequireFromString("0.0765"),
	}
}

// Validate checks the regime is internally consistent.
func (r Rates) Validate() error {
	for _, d := range []decimal.Decimal{
		r.RegularHoursCap, r.MaxHoursWorked, r.MinRegularRate, r.MaxRegularRate,
		r.OvertimeMultiplier, r.FICARate, r.SocialSecurityRate,
	} {
		if outOfScale(d) {
			return fmt.Errorf("%w: %s has too many digits", ErrInvalidRates, formatValue(d))
		}
	}

	switch {
	case !r.RegularHoursCap.IsPositive():
		return fmt.Errorf("%w: regular hours cap must be positive", ErrInvalidRates)
	case r.MaxHoursWorked.LessThan(r.RegularHoursCap):
		return fmt.Errorf("%w: max hours worked %s below regular hours cap %s", ErrInvalidRates, r.MaxHoursWorked, r.RegularHoursCap)
	case r.MinRegularRate.IsNegative():
		return fmt.Errorf("%w: min regular rate must not be negative", ErrInvalidRates)
	case r.MaxRegularRate.LessThan(r.MinRegularRate):
		return fmt.Errorf("%w: max regular rate %s below min %s", ErrInvalidRates, r.MaxRegularRate, r.MinRegularRate)
	case r.OvertimeMultiplier.LessThan(decimal.NewFromInt(1)):
		return fmt.Errorf("%w: overtime multiplier must be at least 1", ErrInvalidRates)
	case r.FICARate.IsNegative() || r.SocialSecurityRate.IsNegative():
		return fmt.Errorf("%w: deduction rates must not be negative", ErrInvalidRates)
	case r.FICARate.Add(r.SocialSecurityRate).GreaterThan(decimal.NewFromInt(1)):
		return fmt.Errorf("%w: deductions exceed total pay", ErrInvalidRates)
	}
	return nil
}

// maxExponent bounds the decimal exponent of a validated value. Comparing
// decimals rescales both to a common exponent, so an input like 1e2000000000
// would otherwise build a two billion digit integer.
const maxExponent = 64

func outOfScale(d decimal.Decimal) bool {
	exp := d.Exponent()
	return exp > maxExponent || exp < -maxExponent
}

// ValidateRate checks rate against [MinRegularRate, MaxRegularRate].
func (r Rates) ValidateRate(rate decimal.Decimal) error {
	if outOfScale(rate) || rate.LessThan(r.MinRegularRate) || rate.GreaterThan(r.MaxRegularRate) {
		return &RangeError{
			Field: "regular rate",
			Value: rate,
			Min:   r.MinRegularRate,
			Max:   r.MaxRegularRate,
			kind:  ErrInvalidRate,
		}
	}
	return nil
}

// ValidateHours checks hours against (0, MaxHoursWorked].
func (r Rates) ValidateHours(hours decimal.Decimal) error {
	if outOfScale(hours) || !hours.IsPositive() || hours.GreaterThan(r.MaxHoursWorked) {
		return &RangeError{
			Field:        "hours worked",
			Value:        hours,
			Min:          decimal.Zero,
			Max:          r.MaxHoursWorked,
			MinExclusive: true,
			kind:         ErrInvalidHours,
		}
	}
	return nil
}
