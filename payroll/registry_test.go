package payroll_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/payroll/store"
)

func newTestRegistry() *payroll.Registry {
	return payroll.NewRegistry(store.NewMemory(), payroll.DefaultRates(),
		payroll.WithEmployeeIDs(sequentialIDs("e")))
}

// =============================================================================
// EMPLOYEE REGISTRY
// =============================================================================

func TestRegistry_AddAndGet(t *testing.T) {
	ctx := context.Background()
	registry := newTestRegistry()

	emp, err := registry.Add(ctx, "  Grace ", "Hopper", dec("25.50"))
	require.NoError(t, err)
	assert.Equal(t, payroll.EmployeeID("e-1"), emp.ID)
	assert.Equal(t, "Grace Hopper", emp.FullName())

	exists, err := registry.Exists(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := registry.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, got.ID)
	assert.True(t, got.RegularRate.Equal(dec("25.50")))
}

func TestRegistry_DefaultIDsAreUUIDs(t *testing.T) {
	registry := payroll.NewRegistry(store.NewMemory(), payroll.DefaultRates())

	a, err := registry.Add(context.Background(), "Ada", "Lovelace", dec("10"))
	require.NoError(t, err)
	b, err := registry.Add(context.Background(), "Ada", "Lovelace", dec("10"))
	require.NoError(t, err)

	assert.Len(t, string(a.ID), 36)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRegistry_ListInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	registry := newTestRegistry()

	for _, name := range []string{"Ada", "Bob", "Cy"} {
		_, err := registry.Add(ctx, name, "Smith", dec("12"))
		require.NoError(t, err)
	}

	list, err := registry.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Ada", list[0].FirstName)
	assert.Equal(t, "Bob", list[1].FirstName)
	assert.Equal(t, "Cy", list[2].FirstName)
}

func TestRegistry_UnknownID(t *testing.T) {
	ctx := context.Background()
	registry := newTestRegistry()

	exists, err := registry.Exists(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = registry.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, payroll.ErrEmployeeNotFound)
	assert.True(t, payroll.IsNotFound(err))

	var nf *payroll.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, payroll.EmployeeID("missing"), nf.ID)
}

func TestRegistry_DeleteByID(t *testing.T) {
	// GIVEN: Two employees
	// WHEN: Deleting the first, then deleting it again
	// THEN: Only the second remains; the repeat delete is a no-op

	ctx := context.Background()
	registry := newTestRegistry()
	first, err := registry.Add(ctx, "Ada", "Lovelace", dec("10"))
	require.NoError(t, err)
	second, err := registry.Add(ctx, "Bob", "Ross", dec("11"))
	require.NoError(t, err)

	require.NoError(t, registry.DeleteByID(ctx, first.ID))
	require.NoError(t, registry.DeleteByID(ctx, first.ID))

	exists, err := registry.Exists(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	list, err := registry.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)
}

func TestRegistry_RejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	registry := newTestRegistry()

	_, err := registry.Add(ctx, " ", "Hopper", dec("20"))
	assert.ErrorIs(t, err, payroll.ErrInvalidName)

	_, err = registry.Add(ctx, "Grace", "", dec("20"))
	assert.ErrorIs(t, err, payroll.ErrInvalidName)

	_, err = registry.Add(ctx, "Grace", "Hopper", dec("9.99"))
	assert.ErrorIs(t, err, payroll.ErrInvalidRate)
	assert.ErrorIs(t, err, payroll.ErrInvalidRange)
	assert.True(t, payroll.IsClientError(err))

	_, err = registry.Add(ctx, "Grace", "Hopper", dec("30.01"))
	assert.ErrorIs(t, err, payroll.ErrInvalidRate)

	list, err := registry.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRegistry_BoundaryRatesAccepted(t *testing.T) {
	ctx := context.Background()
	registry := newTestRegistry()

	_, err := registry.Add(ctx, "Min", "Rate", dec("10.00"))
	assert.NoError(t, err)
	_, err = registry.Add(ctx, "Max", "Rate", dec("30.00"))
	assert.NoError(t, err)
}

func TestRegistry_RetriesOnIDCollision(t *testing.T) {
	// GIVEN: A generator that repeats "dup" before yielding "fresh"
	// WHEN: Adding a second employee
	// THEN: The collision is retried and the fresh id is used

	ctx := context.Background()
	ids := []string{"dup", "dup", "fresh"}
	gen := func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	registry := payroll.NewRegistry(store.NewMemory(), payroll.DefaultRates(), payroll.WithEmployeeIDs(gen))

	first, err := registry.Add(ctx, "Ada", "Lovelace", dec("10"))
	require.NoError(t, err)
	assert.Equal(t, payroll.EmployeeID("dup"), first.ID)

	second, err := registry.Add(ctx, "Bob", "Ross", dec("10"))
	require.NoError(t, err)
	assert.Equal(t, payroll.EmployeeID("fresh"), second.ID)
}

func TestRegistry_GivesUpAfterRepeatedCollisions(t *testing.T) {
	ctx := context.Background()
	registry := payroll.NewRegistry(store.NewMemory(), payroll.DefaultRates(),
		payroll.WithEmployeeIDs(func() string { return "same" }))

	_, err := registry.Add(ctx, "Ada", "Lovelace", dec("10"))
	require.NoError(t, err)

	_, err = registry.Add(ctx, "Bob", "Ross", dec("10"))
	assert.ErrorIs(t, err, payroll.ErrDuplicateEmployee)
}
