/*
session.go - Interactive payroll menu

PURPOSE:
  Drives the engine from a line-oriented terminal. Every answer is validated
  here before it reaches the Registry or Ledger, so the engine only sees
  well-formed input. The engine validates again anyway.

MENU:
  A  Input an Employee
  B  Input a Payment for an existing Employee        (needs employees)
  C  Payroll Report for a specific Employee          (needs payments)
  D  Payroll Report for all the Employees            (needs payments)
  E  Delete an Employee                              (needs employees)
  F  Export all Payments as CSV                      (needs payments)
  X  Exit

  Gated options are neither shown nor accepted until their precondition
  holds. End of input behaves like X.

SEE ALSO:
  - prompt.go: line reading and validation
  - table.go: employees and report tables
  - export.go: CSV export
*/
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/payroll"
)

// Session is one interactive run over a Registry and Ledger.
type Session struct {
	prompt    *prompter
	out       io.Writer
	registry  *payroll.Registry
	ledger    *payroll.Ledger
	calc      payroll.Calculator
	currency  string
	chunkSize int
}

// SessionOption customizes a Session.
type SessionOption func(*Session)

// WithCurrency sets the symbol prefixed to money amounts.
func WithCurrency(symbol string) SessionOption {
	return func(s *Session) { s.currency = symbol }
}

// WithFoldChunkSize sets the chunk size of the company report fold.
func WithFoldChunkSize(n int) SessionOption {
	return func(s *Session) { s.chunkSize = n }
}

func NewSession(in io.Reader, out io.Writer, registry *payroll.Registry, ledger *payroll.Ledger, calc payroll.Calculator, opts ...SessionOption) *Session {
	s := &Session{
		prompt:    newPrompter(in, out),
		out:       out,
		registry:  registry,
		ledger:    ledger,
		calc:      calc,
		currency:  "$",
		chunkSize: payroll.DefaultFoldChunkSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type gate int

const (
	ungated gate = iota
	needsEmployees
	needsPayments
)

type menuItem struct {
	key   rune
	label string
	gate  gate
}

var menu = []menuItem{
	{'A', "Input an Employee.", ungated},
	{'B', "Input a Payment for an existing Employee.", needsEmployees},
	{'C', "Print the Payroll Report for a specific Employee.", needsPayments},
	{'D', "Print the Payroll Report for all the Employees.", needsPayments},
	{'E', "Delete an Employee.", needsEmployees},
	{'F', "Export all the Payments as CSV.", needsPayments},
	{'X', "Exit the Program.", ungated},
}

func (g gate) allows(hasEmployees, hasPayments bool) bool {
	switch g {
	case needsEmployees:
		return hasEmployees
	case needsPayments:
		return hasPayments
	}
	return true
}

// Run loops over the menu until X, end of input, or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Welcome to Payroll Pro 2.0")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		allowed, err := s.showMenu(ctx)
		if err != nil {
			return err
		}

		selection, err := s.prompt.choice("Type your selection please", allowed)
		if err == nil && selection != 'X' {
			err = s.dispatch(ctx, selection)
		}
		if errors.Is(err, io.EOF) || (err == nil && selection == 'X') {
			fmt.Fprintln(s.out, "Good bye.")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) showMenu(ctx context.Context) ([]rune, error) {
	employees, err := s.registry.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	payments, err := s.ledger.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	hasEmployees, hasPayments := len(employees) > 0, len(payments) > 0

	fmt.Fprintln(s.out)
	var allowed []rune
	for _, item := range menu {
		if !item.gate.allows(hasEmployees, hasPayments) {
			continue
		}
		allowed = append(allowed, item.key)
		fmt.Fprintf(s.out, "%c. %s\n", item.key, item.label)
	}
	fmt.Fprintln(s.out)
	return allowed, nil
}

func (s *Session) dispatch(ctx context.Context, selection rune) error {
	switch selection {
	case 'A':
		return s.addEmployee(ctx)
	case 'B':
		return s.addPayment(ctx)
	case 'C':
		return s.employeeReport(ctx)
	case 'D':
		return s.companyReport(ctx)
	case 'E':
		return s.deleteEmployee(ctx)
	case 'F':
		return s.exportPayments(ctx)
	}
	return nil
}

// =============================================================================
// ACTIONS
// =============================================================================

func (s *Session) addEmployee(ctx context.Context) error {
	rates := s.calc.Rates()

	fmt.Fprintln(s.out)
	first, err := s.prompt.text("Please type the first name of the new Employee: ")
	if err != nil {
		return err
	}
	last, err := s.prompt.text("Please type the last name of the new Employee: ")
	if err != nil {
		return err
	}
	rate, err := s.prompt.number("Please type the regular payment rate of the new Employee",
		rates.MinRegularRate, rates.MaxRegularRate, rates.ValidateRate)
	if err != nil {
		return err
	}

	emp, err := s.registry.Add(ctx, first, last, rate)
	if err != nil {
		return fmt.Errorf("add employee: %w", err)
	}
	log.Printf("employee %s added", emp.ID)
	s.prompt.say("The employee %s was added with id %s.", emp.FullName(), emp.ID)
	return nil
}

func (s *Session) addPayment(ctx context.Context) error {
	rates := s.calc.Rates()

	emp, err := s.pickEmployee(ctx, "to whom you are going to associate the payment")
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out)
	hours, err := s.prompt.number("Please type how many hours the Employee worked",
		decimal.Zero, rates.MaxHoursWorked, rates.ValidateHours)
	if err != nil {
		return err
	}

	p, err := s.ledger.Record(ctx, emp, hours)
	if err != nil {
		return fmt.Errorf("record payment: %w", err)
	}
	log.Printf("payment %s recorded for employee %s", p.ID, emp.ID)
	s.prompt.say("A payment of %s hours was recorded for %s. Net pay: %s.",
		Humanize(p.HoursWorked, 2), emp.FullName(), Money(s.calc.NetPay(p), s.currency))
	return nil
}

func (s *Session) employeeReport(ctx context.Context) error {
	emp, err := s.pickReportEmployee(ctx)
	if err != nil {
		return err
	}

	payments, err := s.ledger.AllForEmployee(ctx, emp.ID)
	if err != nil {
		return fmt.Errorf("load payments: %w", err)
	}
	addition := s.calc.AdditionEmployeeReport(payments, emp)
	average, err := s.calc.AverageEmployeeReport(payments, emp)
	if errors.Is(err, payroll.ErrDivisionByZero) {
		fmt.Fprintln(s.out)
		s.prompt.say("The selected employee has no payments associated yet.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out)
	s.prompt.say("The employee %s, with id %s has %d payments.",
		addition.FullName(), addition.EmployeeID, addition.PaymentCount)
	fmt.Fprintln(s.out)
	renderReports(s.out, addition.PayrollReport, average.PayrollReport, s.currency)
	return nil
}

func (s *Session) companyReport(ctx context.Context) error {
	payments, err := s.ledger.All(ctx)
	if err != nil {
		return fmt.Errorf("load payments: %w", err)
	}
	employees, err := s.ledger.Employees(ctx)
	if err != nil {
		return fmt.Errorf("load payments: %w", err)
	}

	addition, err := s.calc.AdditionReportConcurrent(ctx, payments, s.chunkSize)
	if err != nil {
		return fmt.Errorf("fold payments: %w", err)
	}
	average, err := addition.Average()
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out)
	s.prompt.say("The company has %d payments across %d employees.", addition.PaymentCount, len(employees))
	fmt.Fprintln(s.out)
	renderReports(s.out, addition, average, s.currency)
	return nil
}

func (s *Session) deleteEmployee(ctx context.Context) error {
	emp, err := s.pickEmployee(ctx, "you want to delete")
	if err != nil {
		return err
	}
	if err := s.registry.DeleteByID(ctx, emp.ID); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	payments, err := s.ledger.AllForEmployee(ctx, emp.ID)
	if err != nil {
		return fmt.Errorf("load payments: %w", err)
	}
	log.Printf("employee %s deleted", emp.ID)
	s.prompt.say("The employee %s was deleted. Their %d payments remain in the ledger.", emp.FullName(), len(payments))
	return nil
}

func (s *Session) exportPayments(ctx context.Context) error {
	payments, err := s.ledger.All(ctx)
	if err != nil {
		return fmt.Errorf("load payments: %w", err)
	}
	fmt.Fprintln(s.out)
	return ExportPayments(s.out, s.calc, payments)
}

// =============================================================================
// EMPLOYEE SELECTION
// =============================================================================

// pickEmployee shows the employees table and asks until a stored id is typed.
func (s *Session) pickEmployee(ctx context.Context, purpose string) (payroll.Employee, error) {
	employees, err := s.registry.List(ctx)
	if err != nil {
		return payroll.Employee{}, fmt.Errorf("list employees: %w", err)
	}

	fmt.Fprintln(s.out)
	s.prompt.say("Ok, these are the current employees:")
	fmt.Fprintln(s.out)
	renderEmployees(s.out, employees)
	fmt.Fprintln(s.out)

	for {
		id, err := s.prompt.text(fmt.Sprintf("Type or paste the id of the employee %s: ", purpose))
		if err != nil {
			return payroll.Employee{}, err
		}
		emp, err := s.registry.GetByID(ctx, payroll.EmployeeID(id))
		if payroll.IsNotFound(err) {
			s.prompt.say("We don't have an Employee with such ID. Try again please.")
			continue
		}
		return emp, err
	}
}

// pickReportEmployee lists every employee that has payments, deleted ones
// included, and asks until one of their ids is typed.
func (s *Session) pickReportEmployee(ctx context.Context) (payroll.Employee, error) {
	employees, err := s.ledger.Employees(ctx)
	if err != nil {
		return payroll.Employee{}, fmt.Errorf("load payments: %w", err)
	}
	byID := make(map[payroll.EmployeeID]payroll.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
	}

	fmt.Fprintln(s.out)
	s.prompt.say("Ok, these are the employees with payments:")
	fmt.Fprintln(s.out)
	renderEmployees(s.out, employees)
	fmt.Fprintln(s.out)

	for {
		id, err := s.prompt.text("Type or paste the id of the employee for whom you want the Payroll Report: ")
		if err != nil {
			return payroll.Employee{}, err
		}
		if emp, ok := byID[payroll.EmployeeID(id)]; ok {
			return emp, nil
		}
		// Registered but never paid.
		emp, err := s.registry.GetByID(ctx, payroll.EmployeeID(id))
		if err == nil {
			return emp, nil
		}
		if !payroll.IsNotFound(err) {
			return payroll.Employee{}, err
		}
		s.prompt.say("We don't have an Employee with such ID. Try again please.")
	}
}
