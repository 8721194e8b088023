package payroll

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// maxIDAttempts bounds retries when a generated id collides with an
// existing employee.
const maxIDAttempts = 3

// Registry is the in-process collection of employees.
type Registry struct {
	store EmployeeStore
	rates Rates
	newID IDGenerator
}

// RegistryOption customizes a Registry.
type RegistryOption func(*Registry)

// WithEmployeeIDs replaces the default UUID generator.
func WithEmployeeIDs(gen IDGenerator) RegistryOption {
	return func(r *Registry) { r.newID = gen }
}

func NewRegistry(store EmployeeStore, rates Rates, opts ...RegistryOption) *Registry {
	r := &Registry{store: store, rates: rates, newID: NewUUID}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add creates and stores a new employee with a fresh id.
func (r *Registry) Add(ctx context.Context, firstName, lastName string, regularRate decimal.Decimal) (Employee, error) {
	first := strings.TrimSpace(firstName)
	last := strings.TrimSpace(lastName)
	if first == "" || last == "" {
		return Employee{}, ErrInvalidName
	}
	if err := r.rates.ValidateRate(regularRate); err != nil {
		return Employee{}, err
	}

	emp := Employee{FirstName: first, LastName: last, RegularRate: regularRate}
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		emp.ID = EmployeeID(r.newID())
		err := r.store.SaveEmployee(ctx, emp)
		if err == nil {
			return emp, nil
		}
		if !errors.Is(err, ErrDuplicateEmployee) {
			return Employee{}, fmt.Errorf("save employee: %w", err)
		}
	}
	return Employee{}, fmt.Errorf("save employee after %d attempts: %w", maxIDAttempts, ErrDuplicateEmployee)
}

// Exists reports whether an employee with id is stored.
func (r *Registry) Exists(ctx context.Context, id EmployeeID) (bool, error) {
	_, err := r.store.GetEmployee(ctx, id)
	if errors.Is(err, ErrEmployeeNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetByID returns the employee or an error wrapping ErrEmployeeNotFound.
func (r *Registry) GetByID(ctx context.Context, id EmployeeID) (Employee, error) {
	emp, err := r.store.GetEmployee(ctx, id)
	if errors.Is(err, ErrEmployeeNotFound) {
		return Employee{}, &NotFoundError{ID: id}
	}
	return emp, err
}

// DeleteByID removes the employee. Payments recorded against it are kept.
func (r *Registry) DeleteByID(ctx context.Context, id EmployeeID) error {
	return r.store.DeleteEmployee(ctx, id)
}

// List returns every employee in insertion order.
func (r *Registry) List(ctx context.Context) ([]Employee, error) {
	return r.store.ListEmployees(ctx)
}
