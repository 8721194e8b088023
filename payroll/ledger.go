/*
ledger.go - Append-only payment log

PURPOSE:
  The Ledger is the record of every payment made during the session. Reports
  are always computed by folding it; there is no running total that can drift.

CRITICAL INVARIANTS:
  1. APPEND-ONLY: no Update, no Delete.
  2. SNAPSHOT: a payment copies the employee's name and rate when recorded.
     Deleting the employee later leaves the payment untouched.
  3. ORDER: reads return payments in the order they were recorded.

SEE ALSO:
  - store.go: PaymentStore
  - report.go: folding payments into reports
*/
package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

// Ledger records payments against employees.
type Ledger struct {
	store PaymentStore
	rates Rates
	newID IDGenerator
	clock Clock
}

// LedgerOption customizes a Ledger.
type LedgerOption func(*Ledger)

// WithPaymentIDs replaces the default UUID generator.
func WithPaymentIDs(gen IDGenerator) LedgerOption {
	return func(l *Ledger) { l.newID = gen }
}

// WithClock replaces the wall clock used to stamp payments.
func WithClock(clock Clock) LedgerOption {
	return func(l *Ledger) { l.clock = clock }
}

func NewLedger(store PaymentStore, rates Rates, opts ...LedgerOption) *Ledger {
	l := &Ledger{store: store, rates: rates, newID: NewUUID, clock: realClock{}}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Record snapshots emp into a new payment for hoursWorked and appends it.
// emp must come from Registry.GetByID or Registry.Add; the Ledger does not
// look it up again. An employee without an id is rejected with an error
// wrapping ErrEmployeeNotFound. hoursWorked must be within
// (0, MaxHoursWorked].
func (l *Ledger) Record(ctx context.Context, emp Employee, hoursWorked decimal.Decimal) (Payment, error) {
	if emp.ID == "" {
		return Payment{}, &NotFoundError{ID: emp.ID}
	}
	if err := l.rates.ValidateHours(hoursWorked); err != nil {
		return Payment{}, err
	}

	p := NewPayment(PaymentID(l.newID()), emp, hoursWorked, l.clock.Now())
	if err := l.store.AppendPayment(ctx, p); err != nil {
		return Payment{}, fmt.Errorf("append payment: %w", err)
	}
	return p, nil
}

// HasPaymentsFor reports whether any payment references id.
func (l *Ledger) HasPaymentsFor(ctx context.Context, id EmployeeID) (bool, error) {
	return l.store.HasPayments(ctx, id)
}

// AllForEmployee returns the payments recorded against id, in order. An
// employee with no payments yields an empty slice, not an error.
func (l *Ledger) AllForEmployee(ctx context.Context, id EmployeeID) ([]Payment, error) {
	return l.store.LoadPaymentsByEmployee(ctx, id)
}

// All returns the whole ledger in order.
func (l *Ledger) All(ctx context.Context) ([]Payment, error) {
	return l.store.LoadPayments(ctx)
}

// Employees returns one snapshot per distinct employee id in the ledger, in
// order of first payment. It includes employees deleted from the Registry.
func (l *Ledger) Employees(ctx context.Context) ([]Employee, error) {
	payments, err := l.store.LoadPayments(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[EmployeeID]bool)
	var result []Employee
	for _, p := range payments {
		if seen[p.EmployeeID] {
			continue
		}
		seen[p.EmployeeID] = true
		result = append(result, p.Employee())
	}
	return result, nil
}
