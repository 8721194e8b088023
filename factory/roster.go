/*
Package factory builds demo payroll rosters.

PURPOSE:
  Fills a Registry and Ledger with fake employees and payments so the
  session has something to report on without typing every record by hand.

RANGES:
  Rates are drawn from [MinRegularRate, MaxRegularRate] and rounded to cents.
  Hours are drawn from [0.25, MaxHoursWorked] in quarter-hour steps, so both
  regular-only and overtime payments appear.

  Everything goes through Registry.Add and Ledger.Record, so seeded data
  obeys the same validation as typed input.

USAGE:
  factory.Seed(42) // optional, process-wide
  roster := factory.NewRoster(registry, ledger, rates)
  employees, payments, err := roster.Seed(ctx, 5, 3)

SEE ALSO:
  - payroll/registry.go, payroll/ledger.go
  - cmd/payroll/main.go: --seed flag
*/
package factory

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit"
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/payroll"
)

// Roster seeds employees and payments.
type Roster struct {
	registry *payroll.Registry
	ledger   *payroll.Ledger
	rates    payroll.Rates
}

func NewRoster(registry *payroll.Registry, ledger *payroll.Ledger, rates payroll.Rates) *Roster {
	return &Roster{registry: registry, ledger: ledger, rates: rates}
}

// Seed reseeds gofakeit's package-global source, making every later roster
// reproducible. It affects all Rosters in the process.
func Seed(seed int64) {
	gofakeit.Seed(seed)
}

// Seed adds employees fake employees with paymentsEach payments apiece.
func (r *Roster) Seed(ctx context.Context, employees, paymentsEach int) ([]payroll.Employee, []payroll.Payment, error) {
	var (
		added    []payroll.Employee
		recorded []payroll.Payment
	)
	for i := 0; i < employees; i++ {
		emp, err := r.registry.Add(ctx, gofakeit.FirstName(), gofakeit.LastName(), r.rate())
		if err != nil {
			return added, recorded, fmt.Errorf("seed employee %d: %w", i, err)
		}
		added = append(added, emp)

		for j := 0; j < paymentsEach; j++ {
			p, err := r.ledger.Record(ctx, emp, r.hours())
			if err != nil {
				return added, recorded, fmt.Errorf("seed payment %d for %s: %w", j, emp.ID, err)
			}
			recorded = append(recorded, p)
		}
	}
	return added, recorded, nil
}

func (r *Roster) rate() decimal.Decimal {
	min, _ := r.rates.MinRegularRate.Float64()
	max, _ := r.rates.MaxRegularRate.Float64()
	d := decimal.NewFromFloat(gofakeit.Float64Range(min, max)).Round(2)
	// Rounding can step just past either bound.
	return decimal.Min(decimal.Max(d, r.rates.MinRegularRate), r.rates.MaxRegularRate)
}

func (r *Roster) hours() decimal.Decimal {
	quarters := int(r.rates.MaxHoursWorked.Mul(decimal.NewFromInt(4)).IntPart())
	if quarters < 1 {
		quarters = 1
	}
	return decimal.NewFromInt(int64(gofakeit.Number(1, quarters))).Div(decimal.NewFromInt(4))
}
