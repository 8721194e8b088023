/*
errors.go - Centralized error types for the payroll engine

ERROR CATEGORIES:
  1. Lookup errors - an id that matches no employee
  2. Validation errors - rate, hours or name outside the allowed bounds
  3. Aggregation errors - averaging an empty payment set
  4. Store errors - duplicate ids, driver failures (wrapped by adapters)

USAGE:
  emp, err := registry.GetByID(ctx, id)
  if errors.Is(err, payroll.ErrEmployeeNotFound) {
      // re-prompt
  }

  var rangeErr *payroll.RangeError
  if errors.As(err, &rangeErr) {
      fmt.Printf("%s must be within %s - %s\n", rangeErr.Field, rangeErr.Min, rangeErr.Max)
  }
*/
package payroll

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrEmployeeNotFound is returned when no employee has the requested id.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInvalidRange is the parent of every out-of-bounds value error.
	ErrInvalidRange = errors.New("value out of range")

	// ErrInvalidRate is returned for a regular rate outside the configured bounds.
	ErrInvalidRate = errors.New("invalid regular rate")

	// ErrInvalidHours is returned for hours worked outside (0, max hours].
	ErrInvalidHours = errors.New("invalid hours worked")

	// ErrInvalidName is returned when a first or last name is blank.
	ErrInvalidName = errors.New("invalid employee name")

	// ErrDivisionByZero is returned when averaging a report with no payments.
	ErrDivisionByZero = errors.New("cannot average an empty payment set: division by zero")

	// ErrDuplicateEmployee is returned by a store when an employee id is reused.
	ErrDuplicateEmployee = errors.New("duplicate employee id")

	// ErrDuplicatePayment is returned by a store when a payment id is reused.
	ErrDuplicatePayment = errors.New("duplicate payment id")

	// ErrInvalidRates is returned when a rate regime is inconsistent.
	ErrInvalidRates = errors.New("invalid rate configuration")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// RangeError reports a value outside [Min, Max]. When MinExclusive is set the
// lower bound itself is rejected too.
type RangeError struct {
	Field        string
	Value        decimal.Decimal
	Min          decimal.Decimal
	Max          decimal.Decimal
	MinExclusive bool

	kind error
}

func (e *RangeError) Error() string {
	open := "["
	if e.MinExclusive {
		open = "("
	}
	return fmt.Sprintf("%s %s outside %s%s, %s]", e.Field, formatValue(e.Value), open, e.Min, e.Max)
}

// formatValue renders out-of-scale values as coefficient and exponent, since
// Decimal.String would expand every digit.
func formatValue(d decimal.Decimal) string {
	if outOfScale(d) {
		return d.Coefficient().String() + "e" + strconv.Itoa(int(d.Exponent()))
	}
	return d.String()
}

// Unwrap exposes both ErrInvalidRange and the field-specific sentinel.
func (e *RangeError) Unwrap() []error {
	if e.kind == nil {
		return []error{ErrInvalidRange}
	}
	return []error{ErrInvalidRange, e.kind}
}

// NotFoundError names the id that could not be resolved.
type NotFoundError struct {
	ID EmployeeID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("employee %q not found", string(e.ID))
}

func (e *NotFoundError) Unwrap() error {
	return ErrEmployeeNotFound
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound returns true if the error indicates a missing employee.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound)
}

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrDivisionByZero)
}
