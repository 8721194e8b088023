package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/payroll"
)

// renderTable writes a boxed table with a dash rule under every row:
//
//	---------------------
//	| Field | Addition  |
//	---------------------
//	| FICA  | $ 190.00  |
//	---------------------
func renderTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	total := 1
	for _, width := range widths {
		total += width + 3
	}
	rule := strings.Repeat("-", total)

	writeRow := func(cells []string) {
		var b strings.Builder
		b.WriteString("|")
		for i, cell := range cells {
			fmt.Fprintf(&b, " %-*s |", widths[i], cell)
		}
		fmt.Fprintln(w, b.String())
		fmt.Fprintln(w, rule)
	}

	fmt.Fprintln(w, rule)
	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
}

func renderEmployees(w io.Writer, employees []payroll.Employee) {
	rows := make([][]string, len(employees))
	for i, emp := range employees {
		rows[i] = []string{string(emp.ID), emp.FullName()}
	}
	renderTable(w, []string{"Unique ID", "Full Name"}, rows)
}

// renderReports writes the addition and average reports side by side.
func renderReports(w io.Writer, addition, average payroll.PayrollReport, currency string) {
	type field struct {
		name  string
		money bool
		get   func(payroll.PayrollReport) decimal.Decimal
	}
	fields := []field{
		{"Regular Hours", false, func(r payroll.PayrollReport) decimal.Decimal { return r.RegularHours }},
		{"Overtime Hours", false, func(r payroll.PayrollReport) decimal.Decimal { return r.OvertimeHours }},
		{"Regular Pay", true, func(r payroll.PayrollReport) decimal.Decimal { return r.RegularPay }},
		{"Overtime Pay", true, func(r payroll.PayrollReport) decimal.Decimal { return r.OvertimePay }},
		{"FICA", true, func(r payroll.PayrollReport) decimal.Decimal { return r.FICA }},
		{"Social Security", true, func(r payroll.PayrollReport) decimal.Decimal { return r.SocialSecurity }},
		{"Total Pay", true, payroll.PayrollReport.TotalPay},
		{"Total Deductions", true, payroll.PayrollReport.TotalDeductions},
		{"Net Pay", true, payroll.PayrollReport.NetPay},
	}

	format := func(f field, r payroll.PayrollReport) string {
		if f.money {
			return Money(f.get(r), currency)
		}
		return Humanize(f.get(r), 2)
	}

	rows := make([][]string, len(fields))
	for i, f := range fields {
		rows[i] = []string{f.name, format(f, addition), format(f, average)}
	}
	renderTable(w, []string{"Field", "Addition", "Average"}, rows)
}
