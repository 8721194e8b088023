package store_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/payroll/store"
	"github.com/warp/payroll-engine/payroll/store/storetest"
)

func TestMemory_Contract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) payroll.Store {
		return store.NewMemory()
	})
}

func TestMemory_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	require.NoError(t, m.SaveEmployee(ctx, payroll.Employee{ID: "e-1", FirstName: "Ada", LastName: "Lovelace"}))

	list, err := m.ListEmployees(ctx)
	require.NoError(t, err)
	list[0].FirstName = "Changed"

	got, err := m.GetEmployee(ctx, "e-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)
}

func TestMemory_ConcurrentAppends(t *testing.T) {
	// GIVEN: 8 goroutines appending 100 payments each
	// THEN: Every payment lands exactly once

	ctx := context.Background()
	m := store.NewMemory()
	emp := payroll.Employee{ID: "e-1", FirstName: "Ada", LastName: "Lovelace", RegularRate: decimal.NewFromInt(10)}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				id := payroll.PaymentID(fmt.Sprintf("p-%d-%d", w, i))
				assert.NoError(t, m.AppendPayment(ctx, payroll.NewPayment(id, emp, decimal.NewFromInt(1), time.Now())))
			}
		}()
	}
	wg.Wait()

	all, err := m.LoadPayments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 800)
}
