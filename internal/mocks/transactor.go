package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/bank-api/internal/store"
)

// MockTransactor implements store.Transactor without a database.
// By default it invokes the function with a nil *sql.Tx, which works with
// the store mocks in this package because their WithTx returns the mock
// itself. Set RunInTransactionFn to simulate begin/commit failures.
type MockTransactor struct {
	RunInTransactionFn func(ctx context.Context, fn store.TxFn) error

	// Calls counts RunInTransaction invocations.
	Calls int
}

// Ensure MockTransactor implements store.Transactor
var _ store.Transactor = (*MockTransactor)(nil)

// NewMockTransactor creates a new mock transactor
func NewMockTransactor() *MockTransactor {
	return &MockTransactor{}
}

// RunInTransaction implements the Transactor interface
func (m *MockTransactor) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	m.Calls++
	if m.RunInTransactionFn != nil {
		return m.RunInTransactionFn(ctx, fn)
	}

	var tx *sql.Tx
	return fn(ctx, tx)
}
