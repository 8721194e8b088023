/*
Package sqlite provides a SQLite-backed implementation of payroll.Store.

PURPOSE:
  Same contract as the in-memory store, expressed as SQL. The database is
  opened in memory-only mode: nothing is written to disk and everything is
  gone when the store is closed or the process exits.

APPEND-ONLY ENFORCEMENT:
  - No UPDATE statements on the payments table
  - No DELETE statements on the payments table
  - Deleting an employee never cascades to payments (no foreign key)

KEY TABLES:
  employees: id, names, regular rate (decimal as TEXT)
  payments:  employee snapshot + hours worked (decimals as TEXT)

ORDERING:
  Both tables carry an AUTOINCREMENT seq column; every list query orders by
  it so results come back in insertion order.

CONCURRENCY:
  A single connection is kept open (the in-memory database lives as long as
  it does) and guarded by sync.RWMutex.

USAGE:
  store, err := sqlite.New("payroll")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  registry := payroll.NewRegistry(store, payroll.DefaultRates())

SEE ALSO:
  - payroll/store.go: Interface definitions
  - payroll/store/memory.go: Slice-backed implementation
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/payroll"
)

// Store implements payroll.Store on an in-memory SQLite database.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ payroll.Store = (*Store)(nil)

// New opens a fresh in-memory database. name only distinguishes databases
// within the process; an empty name gets a random one.
func New(name string) (*Store, error) {
	if name == "" {
		name = uuid.NewString()
	}
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database. Its contents are discarded.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		regular_rate TEXT NOT NULL
	);

	-- Payments (append-only). employee_id is a plain reference, not a
	-- foreign key: payments outlive the employee row.
	CREATE TABLE IF NOT EXISTS payments (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		employee_id TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		hours_worked TEXT NOT NULL,
		regular_rate TEXT NOT NULL,
		recorded_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_payments_employee
		ON payments(employee_id, seq);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEE STORE
// =============================================================================

func (s *Store) SaveEmployee(ctx context.Context, emp payroll.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO employees (id, first_name, last_name, regular_rate) VALUES (?, ?, ?, ?)",
		string(emp.ID), emp.FirstName, emp.LastName, emp.RegularRate.String(),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return payroll.ErrDuplicateEmployee
		}
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

func (s *Store) GetEmployee(ctx context.Context, id payroll.EmployeeID) (payroll.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT id, first_name, last_name, regular_rate FROM employees WHERE id = ?",
		string(id),
	)
	emp, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return payroll.Employee{}, payroll.ErrEmployeeNotFound
	}
	return emp, err
}

func (s *Store) ListEmployees(ctx context.Context) ([]payroll.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, first_name, last_name, regular_rate FROM employees ORDER BY seq",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []payroll.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) DeleteEmployee(ctx context.Context, id payroll.EmployeeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", string(id)); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// =============================================================================
// PAYMENT STORE (append-only)
// =============================================================================

func (s *Store) AppendPayment(ctx context.Context, p payroll.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO payments
		(id, employee_id, first_name, last_name, hours_worked, regular_rate, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		string(p.ID),
		string(p.EmployeeID),
		p.FirstName,
		p.LastName,
		p.HoursWorked.String(),
		p.RegularRate.String(),
		p.RecordedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return payroll.ErrDuplicatePayment
		}
		return fmt.Errorf("failed to append payment: %w", err)
	}
	return nil
}

const paymentColumns = "id, employee_id, first_name, last_name, hours_worked, regular_rate, recorded_at"

func (s *Store) LoadPayments(ctx context.Context) ([]payroll.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryPayments(ctx, "SELECT "+paymentColumns+" FROM payments ORDER BY seq")
}

func (s *Store) LoadPaymentsByEmployee(ctx context.Context, id payroll.EmployeeID) ([]payroll.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryPayments(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE employee_id = ? ORDER BY seq",
		string(id),
	)
}

func (s *Store) HasPayments(ctx context.Context, id payroll.EmployeeID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM payments WHERE employee_id = ?",
		string(id),
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count payments: %w", err)
	}
	return count > 0, nil
}

func (s *Store) queryPayments(ctx context.Context, query string, args ...any) ([]payroll.Payment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []payroll.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// Helper functions

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row scanner) (payroll.Employee, error) {
	var (
		emp  payroll.Employee
		id   string
		rate string
	)
	if err := row.Scan(&id, &emp.FirstName, &emp.LastName, &rate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return emp, err
		}
		return emp, fmt.Errorf("failed to scan employee: %w", err)
	}
	emp.ID = payroll.EmployeeID(id)

	d, err := decimal.NewFromString(rate)
	if err != nil {
		return emp, fmt.Errorf("failed to parse regular rate %q: %w", rate, err)
	}
	emp.RegularRate = d
	return emp, nil
}

func scanPayment(row scanner) (payroll.Payment, error) {
	var (
		p                 payroll.Payment
		id, employeeID    string
		hours, rate, when string
	)
	err := row.Scan(&id, &employeeID, &p.FirstName, &p.LastName, &hours, &rate, &when)
	if err != nil {
		return p, fmt.Errorf("failed to scan payment: %w", err)
	}
	p.ID = payroll.PaymentID(id)
	p.EmployeeID = payroll.EmployeeID(employeeID)

	if p.HoursWorked, err = decimal.NewFromString(hours); err != nil {
		return p, fmt.Errorf("failed to parse hours worked %q: %w", hours, err)
	}
	if p.RegularRate, err = decimal.NewFromString(rate); err != nil {
		return p, fmt.Errorf("failed to parse regular rate %q: %w", rate, err)
	}
	if p.RecordedAt, err = time.Parse(time.RFC3339Nano, when); err != nil {
		return p, fmt.Errorf("failed to parse recorded_at %q: %w", when, err)
	}
	return p, nil
}

func isUniqueConstraintError(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
