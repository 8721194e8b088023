/*
Package payroll provides the payroll calculation engine.

PURPOSE:
  Records employees, records hours-worked payments against them, and derives
  pay, deductions and aggregate statistics (addition and average reports)
  for a single employee or for the whole company.

KEY CONCEPTS IN THIS FILE (types.go):
  - Employee: a person on the payroll with a regular hourly rate
  - Payment: an immutable record of hours worked, carrying a SNAPSHOT of the
    employee's name and rate at the time it was recorded
  - Identifiers: type-safe employee and payment ids

DESIGN PRINCIPLES:
  1. Snapshots, not references: a Payment copies the employee fields it needs,
     so deleting or changing an Employee never rewrites history
  2. Precision: all quantities are decimal.Decimal, no rounding in the engine
  3. Derived values are computed on demand (see calc.go), never stored

USAGE:
  registry := payroll.NewRegistry(store, payroll.DefaultRates())
  emp, _ := registry.Add(ctx, "Ada", "Lovelace", decimal.NewFromInt(20))

  ledger := payroll.NewLedger(store, payroll.DefaultRates())
  p, _ := ledger.Record(ctx, emp, decimal.NewFromInt(45))

  calc := payroll.NewCalculator(payroll.DefaultRates())
  calc.NetPay(p) // 687.325

SEE ALSO:
  - calc.go: per-payment pay calculation
  - report.go: addition and average reports
  - registry.go, ledger.go: in-process collections over a Store
*/
package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type EmployeeID string
type PaymentID string

// IDGenerator produces opaque unique identifiers.
type IDGenerator func() string

// NewUUID is the default IDGenerator (8-4-4-4-12 hex).
func NewUUID() string {
	return uuid.NewString()
}

// =============================================================================
// EMPLOYEE
// =============================================================================

// Employee is a person on the payroll. ID is generated at creation and never
// changes.
type Employee struct {
	ID          EmployeeID
	FirstName   string
	LastName    string
	RegularRate decimal.Decimal
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// =============================================================================
// PAYMENT - Immutable snapshot of one pay event
// =============================================================================

// Payment records hours worked by an employee. EmployeeID is a foreign
// reference, not ownership: FirstName, LastName and RegularRate are copied
// from the Employee when the payment is recorded and survive its deletion.
type Payment struct {
	ID          PaymentID
	EmployeeID  EmployeeID
	FirstName   string
	LastName    string
	HoursWorked decimal.Decimal
	RegularRate decimal.Decimal
	RecordedAt  time.Time
}

func (p Payment) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Employee reconstructs the employee as it was when the payment was recorded.
func (p Payment) Employee() Employee {
	return Employee{
		ID:          p.EmployeeID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		RegularRate: p.RegularRate,
	}
}

// NewPayment snapshots emp into a payment for hoursWorked.
func NewPayment(id PaymentID, emp Employee, hoursWorked decimal.Decimal, at time.Time) Payment {
	return Payment{
		ID:          id,
		EmployeeID:  emp.ID,
		FirstName:   emp.FirstName,
		LastName:    emp.LastName,
		HoursWorked: hoursWorked,
		RegularRate: emp.RegularRate,
		RecordedAt:  at,
	}
}

// FilterByEmployee returns the payments recorded against id, in order.
func FilterByEmployee(payments []Payment, id EmployeeID) []Payment {
	var result []Payment
	for _, p := range payments {
		if p.EmployeeID == id {
			result = append(result, p)
		}
	}
	return result
}
