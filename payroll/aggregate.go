package payroll

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultFoldChunkSize is the number of payments folded per goroutine.
const DefaultFoldChunkSize = 512

// AdditionReportConcurrent folds payments in chunks of chunkSize on separate
// goroutines and merges the partial reports. Decimal sums are exact, so the
// result equals AdditionReport for the same input.
func (c Calculator) AdditionReportConcurrent(ctx context.Context, payments []Payment, chunkSize int) (PayrollReport, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultFoldChunkSize
	}
	if len(payments) <= chunkSize {
		return c.AdditionReport(payments), nil
	}

	chunks := (len(payments) + chunkSize - 1) / chunkSize
	partials := make([]PayrollReport, chunks)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < chunks; i++ {
		start := i * chunkSize
		end := min(start+chunkSize, len(payments))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			partials[i] = c.AdditionReport(payments[start:end])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return PayrollReport{}, err
	}

	var total PayrollReport
	for _, p := range partials {
		total = total.Merge(p)
	}
	return total, nil
}
