package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/bank-api/internal/domain"
)

// TransactionStore defines the interface for ledger entry persistence.
// Transactions are append-only: there are no update or delete operations.
type TransactionStore interface {
	// Create saves a new transaction to the store.
	Create(ctx context.Context, tx *domain.Transaction) error

	// ListByAccountID retrieves transactions for the given account ordered
	// newest-first (descending creation time), skipping offset rows and
	// returning at most limit rows.
	ListByAccountID(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*domain.Transaction, error)

	// WithTx returns a new TransactionStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TransactionStore
}
