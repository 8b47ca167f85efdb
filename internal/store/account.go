package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/bank-api/internal/domain"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// Create saves a new account to the store.
	// Returns ErrAccountTypeExists if the user already holds an account of
	// the same type, and ErrAccountNumberExists if the generated account
	// number collides with an existing one.
	Create(ctx context.Context, account *domain.Account) error

	// GetByID retrieves an account by its unique ID.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// ListByUserID retrieves all accounts owned by the given user in
	// creation order. Returns an empty slice, not an error, when the user
	// owns no accounts.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error)

	// ExistsByUserAndType reports whether the user already holds an account
	// of the given type.
	ExistsByUserAndType(ctx context.Context, userID uuid.UUID, accountType domain.AccountType) (bool, error)

	// ExistsByNumber reports whether any account already uses the given
	// account number. Used by the account-number generation retry loop.
	ExistsByNumber(ctx context.Context, accountNumber string) (bool, error)

	// IncrementBalance atomically adds amountCents to the account's balance.
	// The increment happens inside the database so concurrent funding calls
	// on the same account cannot lose updates.
	// Returns ErrAccountNotFound if the account does not exist.
	IncrementBalance(ctx context.Context, id uuid.UUID, amountCents int64) error

	// WithTx returns a new AccountStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) AccountStore
}
