/*
report.go - Addition and average payroll reports

PURPOSE:
  Folds a set of payments into a PayrollReport. Two construction policies:

  Addition: raw sums of every additive field across the set.
  Average:  the addition report with every additive field divided by
            PaymentCount. PaymentCount itself stays the count.

  Totals (TotalPay, TotalDeductions, NetPay) are derived from the stored
  sums, the same way Payment totals are derived in calc.go.

EMPTY SETS:
  AdditionReport of nothing is the zero report (PaymentCount 0).
  AverageReport of nothing is ErrDivisionByZero. Never NaN, never a panic.

EMPLOYEE REPORTS:
  EmployeePayrollReport embeds PayrollReport and adds the employee's id and
  name for presentation. The payments are filtered to that employee first.

SEE ALSO:
  - calc.go: per-payment values being summed
  - aggregate.go: concurrent fold for large ledgers
*/
package payroll

import "github.com/shopspring/decimal"

// =============================================================================
// PAYROLL REPORT
// =============================================================================

// PayrollReport is an aggregate over a payment subset. It is built on demand
// and never mutated after construction.
type PayrollReport struct {
	PaymentCount   int
	RegularHours   decimal.Decimal
	OvertimeHours  decimal.Decimal
	RegularPay     decimal.Decimal
	OvertimePay    decimal.Decimal
	FICA           decimal.Decimal
	SocialSecurity decimal.Decimal
}

func (r PayrollReport) TotalPay() decimal.Decimal {
	return r.RegularPay.Add(r.OvertimePay)
}

func (r PayrollReport) TotalDeductions() decimal.Decimal {
	return r.FICA.Add(r.SocialSecurity)
}

func (r PayrollReport) NetPay() decimal.Decimal {
	return r.TotalPay().Sub(r.TotalDeductions())
}

func (r PayrollReport) TotalHours() decimal.Decimal {
	return r.RegularHours.Add(r.OvertimeHours)
}

// Merge sums two addition reports.
func (r PayrollReport) Merge(other PayrollReport) PayrollReport {
	return PayrollReport{
		PaymentCount:   r.PaymentCount + other.PaymentCount,
		RegularHours:   r.RegularHours.Add(other.RegularHours),
		OvertimeHours:  r.OvertimeHours.Add(other.OvertimeHours),
		RegularPay:     r.RegularPay.Add(other.RegularPay),
		OvertimePay:    r.OvertimePay.Add(other.OvertimePay),
		FICA:           r.FICA.Add(other.FICA),
		SocialSecurity: r.SocialSecurity.Add(other.SocialSecurity),
	}
}

// Average divides every additive field by PaymentCount.
// Returns ErrDivisionByZero when the report holds no payments.
func (r PayrollReport) Average() (PayrollReport, error) {
	if r.PaymentCount == 0 {
		return PayrollReport{}, ErrDivisionByZero
	}
	n := decimal.NewFromInt(int64(r.PaymentCount))
	return PayrollReport{
		PaymentCount:   r.PaymentCount,
		RegularHours:   r.RegularHours.Div(n),
		OvertimeHours:  r.OvertimeHours.Div(n),
		RegularPay:     r.RegularPay.Div(n),
		OvertimePay:    r.OvertimePay.Div(n),
		FICA:           r.FICA.Div(n),
		SocialSecurity: r.SocialSecurity.Div(n),
	}, nil
}

// EmployeePayrollReport is a PayrollReport annotated with the employee it
// covers.
type EmployeePayrollReport struct {
	PayrollReport
	EmployeeID EmployeeID
	FirstName  string
	LastName   string
}

func (r EmployeePayrollReport) FullName() string {
	return r.FirstName + " " + r.LastName
}

func newEmployeeReport(r PayrollReport, emp Employee) EmployeePayrollReport {
	return EmployeePayrollReport{
		PayrollReport: r,
		EmployeeID:    emp.ID,
		FirstName:     emp.FirstName,
		LastName:      emp.LastName,
	}
}

// =============================================================================
// AGGREGATION
// =============================================================================

// Add folds one payment into an addition report.
func (c Calculator) Add(r PayrollReport, p Payment) PayrollReport {
	b := c.Breakdown(p)
	r.PaymentCount++
	r.RegularHours = r.RegularHours.Add(b.RegularHours)
	r.OvertimeHours = r.OvertimeHours.Add(b.OvertimeHours)
	r.RegularPay = r.RegularPay.Add(b.RegularPay)
	r.OvertimePay = r.OvertimePay.Add(b.OvertimePay)
	r.FICA = r.FICA.Add(b.FICA)
	r.SocialSecurity = r.SocialSecurity.Add(b.SocialSecurity)
	return r
}

// AdditionReport sums every payment in the sequence.
func (c Calculator) AdditionReport(payments []Payment) PayrollReport {
	var r PayrollReport
	for _, p := range payments {
		r = c.Add(r, p)
	}
	return r
}

// AverageReport is AdditionReport divided by the payment count.
func (c Calculator) AverageReport(payments []Payment) (PayrollReport, error) {
	return c.AdditionReport(payments).Average()
}

// AdditionEmployeeReport sums the payments recorded against emp.
func (c Calculator) AdditionEmployeeReport(payments []Payment, emp Employee) EmployeePayrollReport {
	return newEmployeeReport(c.AdditionReport(FilterByEmployee(payments, emp.ID)), emp)
}

// AverageEmployeeReport averages the payments recorded against emp.
// Returns ErrDivisionByZero when emp has no payments.
func (c Calculator) AverageEmployeeReport(payments []Payment, emp Employee) (EmployeePayrollReport, error) {
	avg, err := c.AverageReport(FilterByEmployee(payments, emp.ID))
	if err != nil {
		return EmployeePayrollReport{}, err
	}
	return newEmployeeReport(avg, emp), nil
}
