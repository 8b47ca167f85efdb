package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/bank-api/internal/domain"
	"github.com/phrazzld/bank-api/internal/store"
)

// Unique constraints backing account invariants: one account per
// (user, account type) pair, and globally unique account numbers.
const (
	accountsUserTypeConstraint = "accounts_user_id_account_type_key"
	accountsNumberConstraint   = "accounts_account_number_key"
)

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the
// AccountStore interface. If logger is nil, the default logger is used.
func NewPostgresAccountStore(db store.DBTX, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

// Create implements store.AccountStore.Create.
// The database's unique constraints are the last line of defense for the
// per-user-per-type and account-number invariants; concurrent creations
// that race past the service-level existence checks surface here as
// ErrAccountTypeExists or ErrAccountNumberExists.
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if err := account.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO accounts (id, user_id, account_type, account_number,
		                      status, balance_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.db.ExecContext(ctx, query,
		account.ID, account.UserID, account.AccountType, account.AccountNumber,
		account.Status, account.BalanceCents, account.CreatedAt, account.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err, accountsUserTypeConstraint) {
			return fmt.Errorf("%w: %v", store.ErrAccountTypeExists, err)
		}
		if IsUniqueViolation(err, accountsNumberConstraint) {
			return fmt.Errorf("%w: %v", store.ErrAccountNumberExists, err)
		}
		return MapError(fmt.Errorf("failed to insert account: %w", err))
	}

	s.logger.DebugContext(ctx, "account created",
		"account_id", account.ID,
		"user_id", account.UserID,
		"account_type", account.AccountType)
	return nil
}

// GetByID implements store.AccountStore.GetByID
func (s *PostgresAccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `
		SELECT id, user_id, account_type, account_number,
		       status, balance_cents, created_at, updated_at
		FROM accounts
		WHERE id = $1`

	var account domain.Account
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID, &account.UserID, &account.AccountType, &account.AccountNumber,
		&account.Status, &account.BalanceCents, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAccountNotFound
		}
		return nil, MapError(fmt.Errorf("failed to get account by ID: %w", err))
	}
	return &account, nil
}

// ListByUserID implements store.AccountStore.ListByUserID
func (s *PostgresAccountStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error) {
	query := `
		SELECT id, user_id, account_type, account_number,
		       status, balance_cents, created_at, updated_at
		FROM accounts
		WHERE user_id = $1
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, MapError(fmt.Errorf("failed to list accounts: %w", err))
	}
	defer func() { _ = rows.Close() }()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		var account domain.Account
		err := rows.Scan(
			&account.ID, &account.UserID, &account.AccountType, &account.AccountNumber,
			&account.Status, &account.BalanceCents, &account.CreatedAt, &account.UpdatedAt)
		if err != nil {
			return nil, MapError(fmt.Errorf("failed to scan account row: %w", err))
		}
		accounts = append(accounts, &account)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(fmt.Errorf("failed to iterate account rows: %w", err))
	}

	return accounts, nil
}

// ExistsByUserAndType implements store.AccountStore.ExistsByUserAndType
func (s *PostgresAccountStore) ExistsByUserAndType(
	ctx context.Context,
	userID uuid.UUID,
	accountType domain.AccountType,
) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE user_id = $1 AND account_type = $2)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, userID, accountType).Scan(&exists); err != nil {
		return false, MapError(fmt.Errorf("failed to check account type existence: %w", err))
	}
	return exists, nil
}

// ExistsByNumber implements store.AccountStore.ExistsByNumber
func (s *PostgresAccountStore) ExistsByNumber(ctx context.Context, accountNumber string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE account_number = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, accountNumber).Scan(&exists); err != nil {
		return false, MapError(fmt.Errorf("failed to check account number existence: %w", err))
	}
	return exists, nil
}

// IncrementBalance implements store.AccountStore.IncrementBalance.
// The addition happens inside the UPDATE statement so concurrent increments
// serialize on the row and cannot lose updates.
func (s *PostgresAccountStore) IncrementBalance(ctx context.Context, id uuid.UUID, amountCents int64) error {
	query := `
		UPDATE accounts
		SET balance_cents = balance_cents + $2, updated_at = NOW()
		WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id, amountCents)
	if err != nil {
		return MapError(fmt.Errorf("failed to increment balance: %w", err))
	}
	return CheckRowsAffected(result, "account")
}

// WithTx implements store.AccountStore.WithTx
func (s *PostgresAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &PostgresAccountStore{db: tx, logger: s.logger}
}
