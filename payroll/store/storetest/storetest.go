// Package storetest checks a payroll.Store against the behavior the engine
// relies on. Each implementation's tests call Run with a constructor.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/payroll"
)

// Run executes every contract test against stores made by newStore. Each
// subtest gets a fresh store.
func Run(t *testing.T, newStore func(t *testing.T) payroll.Store) {
	tests := map[string]func(t *testing.T, s payroll.Store){
		"EmployeeRoundTrip":       employeeRoundTrip,
		"DuplicateEmployee":       duplicateEmployee,
		"MissingEmployee":         missingEmployee,
		"DeleteKeepsOrder":        deleteKeepsOrder,
		"PaymentsAppendInOrder":   paymentsAppendInOrder,
		"DuplicatePayment":        duplicatePayment,
		"PaymentsSurviveDeletion": paymentsSurviveDeletion,
		"EmptyPaymentsByEmployee": emptyPaymentsByEmployee,
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			test(t, newStore(t))
		})
	}
}

var at = time.Date(2025, time.June, 2, 15, 4, 5, 123456789, time.UTC)

func emp(id, first, rate string) payroll.Employee {
	return payroll.Employee{
		ID:          payroll.EmployeeID(id),
		FirstName:   first,
		LastName:    "Tester",
		RegularRate: decimal.RequireFromString(rate),
	}
}

func pay(id string, e payroll.Employee, hours string) payroll.Payment {
	return payroll.NewPayment(payroll.PaymentID(id), e, decimal.RequireFromString(hours), at)
}

func employeeRoundTrip(t *testing.T, s payroll.Store) {
	ctx := context.Background()
	want := emp("e-1", "Ada", "12.34")
	require.NoError(t, s.SaveEmployee(ctx, want))

	got, err := s.GetEmployee(ctx, "e-1")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.FirstName, got.FirstName)
	assert.Equal(t, want.LastName, got.LastName)
	assert.True(t, want.RegularRate.Equal(got.RegularRate))
}

func duplicateEmployee(t *testing.T, s payroll.Store) {
	ctx := context.Background()
	require.NoError(t, s.SaveEmployee(ctx, emp("e-1", "Ada", "10")))

	err := s.SaveEmployee(ctx, emp("e-1", "Bob", "11"))
	assert.ErrorIs(t, err, payroll.ErrDuplicateEmployee)

	list, err := s.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ada", list[0].FirstName)
}

func missingEmployee(t *testing.T, s payroll.Store) {
	ctx := context.Background()

	_, err := s.GetEmployee(ctx, "nobody")
	assert.ErrorIs(t, err, payroll.ErrEmployeeNotFound)
	assert.NoError(t, s.DeleteEmployee(ctx, "nobody"))
}

func deleteKeepsOrder(t *testing.T, s payroll.Store) {
	ctx := context.Background()
	for _, e := range []payroll.Employee{emp("e-1", "Ada", "10"), emp("e-2", "Bob", "10"), emp("e-3", "Cy", "10")} {
		require.NoError(t, s.SaveEmployee(ctx, e))
	}

	require.NoError(t, s.DeleteEmployee(ctx, "e-2"))

	list, err := s.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, payroll.EmployeeID("e-1"), list[0].ID)
	assert.Equal(t, payroll.EmployeeID("e-3"), list[1].ID)

	// The id can be reused once deleted.
	require.NoError(t, s.SaveEmployee(ctx, emp("e-2", "Dee", "10")))
}

func paymentsAppendInOrder(t *testing.T, s payroll.Store) {
	ctx := context.Background()
	ada, bob := emp("e-1", "Ada", "10"), emp("e-2", "Bob", "20.5")
	payments := []payroll.Payment{
		pay("p-1", bob, "40"),
		pay("p-2", ada, "12.25"),
		pay("p-3", bob, "45.5"),
	}
	for _, p := range payments {
		require.NoError(t, s.AppendPayment(ctx, p))
	}

	all, err := s.LoadPayments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, p := range payments {
		assert.Equal(t, p.ID, all[i].ID)
		assert.Equal(t, p.EmployeeID, all[i].EmployeeID)
		assert.Equal(t, p.FullName(), all[i].FullName())
		assert.True(t, p.HoursWorked.Equal(all[i].HoursWorked))
		assert.True(t, p.RegularRate.Equal(all[i].RegularRate))
		assert.True(t, p.RecordedAt.Equal(all[i].RecordedAt))
	}

	bobs, err := s.LoadPaymentsByEmployee(ctx, "e-2")
	require.NoError(t, err)
	require.Len(t, bobs, 2)
	assert.Equal(t, payroll.PaymentID("p-1"), bobs[0].ID)
	assert.Equal(t, payroll.PaymentID("p-3"), bobs[1].ID)
}

func duplicatePayment(t *testing.T, s payroll.Store) {
	ctx := context.Background()
	ada := emp("e-1", "Ada", "10")
	require.NoError(t, s.AppendPayment(ctx, pay("p-1", ada, "1")))

	err := s.AppendPayment(ctx, pay("p-1", ada, "2"))
	assert.ErrorIs(t, err, payroll.ErrDuplicatePayment)

	all, err := s.LoadPayments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func paymentsSurviveDeletion(t *testing.T, s payroll.Store) {
	ctx := context.Background()
	ada := emp("e-1", "Ada", "10")
	require.NoError(t, s.SaveEmployee(ctx, ada))
	require.NoError(t, s.AppendPayment(ctx, pay("p-1", ada, "8")))

	require.NoError(t, s.DeleteEmployee(ctx, ada.ID))

	has, err := s.HasPayments(ctx, ada.ID)
	require.NoError(t, err)
	assert.True(t, has)

	payments, err := s.LoadPaymentsByEmployee(ctx, ada.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "Ada Tester", payments[0].FullName())
}

func emptyPaymentsByEmployee(t *testing.T, s payroll.Store) {
	ctx := context.Background()

	payments, err := s.LoadPaymentsByEmployee(ctx, "e-1")
	require.NoError(t, err)
	assert.NotNil(t, payments)
	assert.Empty(t, payments)

	has, err := s.HasPayments(ctx, "e-1")
	require.NoError(t, err)
	assert.False(t, has)
}
