// Package store provides Store implementations.
package store

import (
	"context"
	"sync"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (default session backend)
// =============================================================================

type Memory struct {
	mu        sync.RWMutex
	employees []payroll.Employee
	payments  []payroll.Payment
	paymentID map[payroll.PaymentID]bool
}

var _ payroll.Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		paymentID: make(map[payroll.PaymentID]bool),
	}
}

// SaveEmployee appends an employee, keeping insertion order.
func (m *Memory) SaveEmployee(_ context.Context, emp payroll.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexLocked(emp.ID) >= 0 {
		return payroll.ErrDuplicateEmployee
	}
	m.employees = append(m.employees, emp)
	return nil
}

func (m *Memory) GetEmployee(_ context.Context, id payroll.EmployeeID) (payroll.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexLocked(id)
	if i < 0 {
		return payroll.Employee{}, payroll.ErrEmployeeNotFound
	}
	return m.employees[i], nil
}

func (m *Memory) ListEmployees(_ context.Context) ([]payroll.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]payroll.Employee, len(m.employees))
	copy(result, m.employees)
	return result, nil
}

// DeleteEmployee removes at most one employee. Payments are not touched.
func (m *Memory) DeleteEmployee(_ context.Context, id payroll.EmployeeID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexLocked(id)
	if i < 0 {
		return nil
	}
	m.employees = append(m.employees[:i:i], m.employees[i+1:]...)
	return nil
}

func (m *Memory) indexLocked(id payroll.EmployeeID) int {
	for i, emp := range m.employees {
		if emp.ID == id {
			return i
		}
	}
	return -1
}

// AppendPayment adds a payment. Append-only.
func (m *Memory) AppendPayment(_ context.Context, p payroll.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.paymentID[p.ID] {
		return payroll.ErrDuplicatePayment
	}
	m.payments = append(m.payments, p)
	m.paymentID[p.ID] = true
	return nil
}

func (m *Memory) LoadPayments(_ context.Context) ([]payroll.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]payroll.Payment, len(m.payments))
	copy(result, m.payments)
	return result, nil
}

func (m *Memory) LoadPaymentsByEmployee(_ context.Context, id payroll.EmployeeID) ([]payroll.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []payroll.Payment{}
	for _, p := range m.payments {
		if p.EmployeeID == id {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *Memory) HasPayments(_ context.Context, id payroll.EmployeeID) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.payments {
		if p.EmployeeID == id {
			return true, nil
		}
	}
	return false, nil
}
