package console

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/warp/payroll-engine/payroll"
)

// paymentRow is one CSV line: the stored payment plus its derived values.
type paymentRow struct {
	PaymentID       string `csv:"payment_id"`
	EmployeeID      string `csv:"employee_id"`
	FirstName       string `csv:"first_name"`
	LastName        string `csv:"last_name"`
	RecordedAt      string `csv:"recorded_at"`
	HoursWorked     string `csv:"hours_worked"`
	RegularRate     string `csv:"regular_rate"`
	RegularHours    string `csv:"regular_hours"`
	OvertimeHours   string `csv:"overtime_hours"`
	RegularPay      string `csv:"regular_pay"`
	OvertimePay     string `csv:"overtime_pay"`
	TotalPay        string `csv:"total_pay"`
	FICA            string `csv:"fica"`
	SocialSecurity  string `csv:"social_security"`
	TotalDeductions string `csv:"total_deductions"`
	NetPay          string `csv:"net_pay"`
}

// ExportPayments writes every payment with its breakdown as CSV. Amounts
// keep full precision; rounding is left to whoever reads the file.
func ExportPayments(w io.Writer, calc payroll.Calculator, payments []payroll.Payment) error {
	rows := make([]*paymentRow, len(payments))
	for i, p := range payments {
		b := calc.Breakdown(p)
		rows[i] = &paymentRow{
			PaymentID:       string(p.ID),
			EmployeeID:      string(p.EmployeeID),
			FirstName:       p.FirstName,
			LastName:        p.LastName,
			RecordedAt:      p.RecordedAt.Format(time.RFC3339),
			HoursWorked:     p.HoursWorked.String(),
			RegularRate:     p.RegularRate.String(),
			RegularHours:    b.RegularHours.String(),
			OvertimeHours:   b.OvertimeHours.String(),
			RegularPay:      b.RegularPay.String(),
			OvertimePay:     b.OvertimePay.String(),
			TotalPay:        b.TotalPay.String(),
			FICA:            b.FICA.String(),
			SocialSecurity:  b.SocialSecurity.String(),
			TotalDeductions: b.TotalDeductions.String(),
			NetPay:          b.NetPay.String(),
		}
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("marshal payments csv: %w", err)
	}
	return nil
}
