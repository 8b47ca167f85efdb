package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/bank-api/internal/domain"
	"github.com/phrazzld/bank-api/internal/store"
)

// MockTransactionStore implements store.TransactionStore for testing
type MockTransactionStore struct {
	// Function fields for customizable behavior
	CreateFn          func(ctx context.Context, tx *domain.Transaction) error
	ListByAccountIDFn func(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*domain.Transaction, error)

	// Data for default implementation, in insertion order
	Transactions []*domain.Transaction
}

// Ensure MockTransactionStore implements store.TransactionStore
var _ store.TransactionStore = (*MockTransactionStore)(nil)

// NewMockTransactionStore creates a new mock store with initialized defaults
func NewMockTransactionStore() *MockTransactionStore {
	return &MockTransactionStore{}
}

// Create implements the TransactionStore interface
func (m *MockTransactionStore) Create(ctx context.Context, tx *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, tx)
	}

	m.Transactions = append(m.Transactions, tx)
	return nil
}

// ListByAccountID implements the TransactionStore interface.
// The default implementation returns newest-first pages, treating later
// insertions as newer.
func (m *MockTransactionStore) ListByAccountID(
	ctx context.Context,
	accountID uuid.UUID,
	limit, offset int,
) ([]*domain.Transaction, error) {
	if m.ListByAccountIDFn != nil {
		return m.ListByAccountIDFn(ctx, accountID, limit, offset)
	}

	matching := make([]*domain.Transaction, 0)
	for i := len(m.Transactions) - 1; i >= 0; i-- {
		if m.Transactions[i].AccountID == accountID {
			matching = append(matching, m.Transactions[i])
		}
	}

	if offset >= len(matching) {
		return []*domain.Transaction{}, nil
	}
	matching = matching[offset:]
	if limit < len(matching) {
		matching = matching[:limit]
	}

	return matching, nil
}

// WithTx implements the TransactionStore interface for transaction support
func (m *MockTransactionStore) WithTx(tx *sql.Tx) store.TransactionStore {
	// For mock purposes, just return the same mock
	return m
}
