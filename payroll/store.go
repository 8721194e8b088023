/*
store.go - Persistence interfaces for employees and payments

PURPOSE:
  Defines the boundary between the engine and wherever employees and
  payments live for the session. Both implementations keep everything in
  process memory:
  - payroll/store/memory.go: slices behind a RWMutex (default)
  - store/sqlite/sqlite.go: an in-memory SQLite database

APPEND-ONLY PAYMENTS:
  PaymentStore has no Update and no Delete. A recorded payment is final.
  Employees can be deleted; their payments stay.

ORDERING:
  Every list operation returns records in insertion order.
*/
package payroll

import "context"

// EmployeeStore holds employee records.
type EmployeeStore interface {
	// SaveEmployee inserts a new employee. Returns ErrDuplicateEmployee if the
	// id is already taken.
	SaveEmployee(ctx context.Context, emp Employee) error

	// GetEmployee returns ErrEmployeeNotFound if no employee has the id.
	GetEmployee(ctx context.Context, id EmployeeID) (Employee, error)

	ListEmployees(ctx context.Context) ([]Employee, error)

	// DeleteEmployee removes the employee. Absent ids are not an error.
	DeleteEmployee(ctx context.Context, id EmployeeID) error
}

// PaymentStore holds payments. Append-only.
type PaymentStore interface {
	// AppendPayment is the ONLY write operation. Returns ErrDuplicatePayment
	// if the id is already taken.
	AppendPayment(ctx context.Context, p Payment) error

	LoadPayments(ctx context.Context) ([]Payment, error)
	LoadPaymentsByEmployee(ctx context.Context, id EmployeeID) ([]Payment, error)
	HasPayments(ctx context.Context, id EmployeeID) (bool, error)
}

// Store is the full session store.
type Store interface {
	EmployeeStore
	PaymentStore
}
