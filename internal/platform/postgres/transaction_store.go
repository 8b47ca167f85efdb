package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/bank-api/internal/domain"
	"github.com/phrazzld/bank-api/internal/store"
)

// PostgresTransactionStore implements the store.TransactionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTransactionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTransactionStore creates a new PostgreSQL implementation of the
// TransactionStore interface. If logger is nil, the default logger is used.
func NewPostgresTransactionStore(db store.DBTX, logger *slog.Logger) *PostgresTransactionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresTransactionStore{
		db:     db,
		logger: logger.With(slog.String("component", "transaction_store")),
	}
}

// Ensure PostgresTransactionStore implements store.TransactionStore interface
var _ store.TransactionStore = (*PostgresTransactionStore)(nil)

// Create implements store.TransactionStore.Create
func (s *PostgresTransactionStore) Create(ctx context.Context, tx *domain.Transaction) error {
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO transactions (id, account_id, type, amount_cents,
		                          description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		tx.ID, tx.AccountID, tx.Type, tx.AmountCents,
		tx.Description, tx.Status, tx.CreatedAt)
	if err != nil {
		return MapError(fmt.Errorf("failed to insert transaction: %w", err))
	}

	s.logger.DebugContext(ctx, "transaction created",
		"transaction_id", tx.ID,
		"account_id", tx.AccountID,
		"type", tx.Type)
	return nil
}

// ListByAccountID implements store.TransactionStore.ListByAccountID
func (s *PostgresTransactionStore) ListByAccountID(
	ctx context.Context,
	accountID uuid.UUID,
	limit, offset int,
) ([]*domain.Transaction, error) {
	query := `
		SELECT id, account_id, type, amount_cents, description, status, created_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := s.db.QueryContext(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, MapError(fmt.Errorf("failed to list transactions: %w", err))
	}
	defer func() { _ = rows.Close() }()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(
			&tx.ID, &tx.AccountID, &tx.Type, &tx.AmountCents,
			&tx.Description, &tx.Status, &tx.CreatedAt)
		if err != nil {
			return nil, MapError(fmt.Errorf("failed to scan transaction row: %w", err))
		}
		transactions = append(transactions, &tx)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(fmt.Errorf("failed to iterate transaction rows: %w", err))
	}

	return transactions, nil
}

// WithTx implements store.TransactionStore.WithTx
func (s *PostgresTransactionStore) WithTx(tx *sql.Tx) store.TransactionStore {
	return &PostgresTransactionStore{db: tx, logger: s.logger}
}
