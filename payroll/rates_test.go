package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/payroll"
)

func TestDefaultRates_Valid(t *testing.T) {
	assert.NoError(t, payroll.DefaultRates().Validate())
}

func TestRates_Validate_Inconsistent(t *testing.T) {
	cases := map[string]func(r *payroll.Rates){
		"zero cap":          func(r *payroll.Rates) { r.RegularHoursCap = dec("0") },
		"max below cap":     func(r *payroll.Rates) { r.MaxHoursWorked = dec("39") },
		"min rate negative": func(r *payroll.Rates) { r.MinRegularRate = dec("-1") },
		"max below min":     func(r *payroll.Rates) { r.MaxRegularRate = dec("9") },
		"multiplier below":  func(r *payroll.Rates) { r.OvertimeMultiplier = dec("0.5") },
		"negative fica":     func(r *payroll.Rates) { r.FICARate = dec("-0.1") },
		"deductions over 1": func(r *payroll.Rates) { r.FICARate = dec("0.95") },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			rates := payroll.DefaultRates()
			mutate(&rates)
			assert.ErrorIs(t, rates.Validate(), payroll.ErrInvalidRates)
		})
	}
}

func TestRates_ValidateHours_RangeError(t *testing.T) {
	err := payroll.DefaultRates().ValidateHours(dec("0"))
	require.Error(t, err)

	var rangeErr *payroll.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "hours worked", rangeErr.Field)
	assert.True(t, rangeErr.MinExclusive)
	assert.True(t, rangeErr.Max.Equal(dec("50")))
	assert.Equal(t, "hours worked 0 outside (0, 50]", err.Error())
}

func TestRates_ValidateRate_RangeError(t *testing.T) {
	err := payroll.DefaultRates().ValidateRate(dec("31"))

	var rangeErr *payroll.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "regular rate", rangeErr.Field)
	assert.False(t, rangeErr.MinExclusive)
	assert.ErrorIs(t, err, payroll.ErrInvalidRate)
	assert.NotErrorIs(t, err, payroll.ErrInvalidHours)
}

func TestRates_HugeExponentsRejected(t *testing.T) {
	// GIVEN: Values whose exponents are billions of digits away from the bounds
	// WHEN: Validating them as a rate and as hours
	// THEN: Both are rejected at once and the message stays short

	rates := payroll.DefaultRates()
	huge := decimal.New(1, 2000000000)
	tiny := decimal.New(15, -2000000000)

	err := rates.ValidateRate(huge)
	assert.ErrorIs(t, err, payroll.ErrInvalidRate)
	assert.Equal(t, "regular rate 1e2000000000 outside [10, 30]", err.Error())

	err = rates.ValidateHours(tiny)
	assert.ErrorIs(t, err, payroll.ErrInvalidHours)
	assert.Equal(t, "hours worked 15e-2000000000 outside (0, 50]", err.Error())

	rates.MaxRegularRate = huge
	assert.ErrorIs(t, rates.Validate(), payroll.ErrInvalidRates)
}

func TestRates_ManyFractionalDigitsStillCompare(t *testing.T) {
	rates := payroll.DefaultRates()
	assert.NoError(t, rates.ValidateHours(dec("33.3333333333333333")))
	assert.NoError(t, rates.ValidateRate(dec("10.000000000000000000000000000001")))
}
