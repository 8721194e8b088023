package payroll_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "%s: want %s, got %s", field, want, got)
}

var testTime = time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)

func employee(id, rate string) payroll.Employee {
	return payroll.Employee{
		ID:          payroll.EmployeeID(id),
		FirstName:   "Ada",
		LastName:    "Lovelace",
		RegularRate: dec(rate),
	}
}

func payment(n int, emp payroll.Employee, hours string) payroll.Payment {
	return payroll.NewPayment(payroll.PaymentID(fmt.Sprintf("p-%d", n)), emp, dec(hours), testTime)
}

// sequentialIDs returns a generator yielding prefix-1, prefix-2, ...
func sequentialIDs(prefix string) payroll.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }
