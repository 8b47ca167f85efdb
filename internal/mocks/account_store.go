package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/bank-api/internal/domain"
	"github.com/phrazzld/bank-api/internal/store"
)

// MockAccountStore implements store.AccountStore for testing
type MockAccountStore struct {
	// Function fields for customizable behavior
	CreateFn              func(ctx context.Context, account *domain.Account) error
	GetByIDFn             func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	ListByUserIDFn        func(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error)
	ExistsByUserAndTypeFn func(ctx context.Context, userID uuid.UUID, accountType domain.AccountType) (bool, error)
	ExistsByNumberFn      func(ctx context.Context, accountNumber string) (bool, error)
	IncrementBalanceFn    func(ctx context.Context, id uuid.UUID, amountCents int64) error

	// Data for default implementation, in insertion order
	Accounts []*domain.Account
}

// Ensure MockAccountStore implements store.AccountStore
var _ store.AccountStore = (*MockAccountStore)(nil)

// NewMockAccountStore creates a new mock store with initialized defaults
func NewMockAccountStore() *MockAccountStore {
	return &MockAccountStore{}
}

// Create implements the AccountStore interface
func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}

	for _, existing := range m.Accounts {
		if existing.UserID == account.UserID && existing.AccountType == account.AccountType {
			return store.ErrAccountTypeExists
		}
		if existing.AccountNumber == account.AccountNumber {
			return store.ErrAccountNumberExists
		}
	}

	m.Accounts = append(m.Accounts, account)
	return nil
}

// GetByID implements the AccountStore interface
func (m *MockAccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, account := range m.Accounts {
		if account.ID == id {
			return account, nil
		}
	}

	return nil, store.ErrAccountNotFound
}

// ListByUserID implements the AccountStore interface
func (m *MockAccountStore) ListByUserID(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Account, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}

	accounts := make([]*domain.Account, 0)
	for _, account := range m.Accounts {
		if account.UserID == userID {
			accounts = append(accounts, account)
		}
	}

	return accounts, nil
}

// ExistsByUserAndType implements the AccountStore interface
func (m *MockAccountStore) ExistsByUserAndType(
	ctx context.Context,
	userID uuid.UUID,
	accountType domain.AccountType,
) (bool, error) {
	if m.ExistsByUserAndTypeFn != nil {
		return m.ExistsByUserAndTypeFn(ctx, userID, accountType)
	}

	for _, account := range m.Accounts {
		if account.UserID == userID && account.AccountType == accountType {
			return true, nil
		}
	}

	return false, nil
}

// ExistsByNumber implements the AccountStore interface
func (m *MockAccountStore) ExistsByNumber(
	ctx context.Context,
	accountNumber string,
) (bool, error) {
	if m.ExistsByNumberFn != nil {
		return m.ExistsByNumberFn(ctx, accountNumber)
	}

	for _, account := range m.Accounts {
		if account.AccountNumber == accountNumber {
			return true, nil
		}
	}

	return false, nil
}

// IncrementBalance implements the AccountStore interface
func (m *MockAccountStore) IncrementBalance(
	ctx context.Context,
	id uuid.UUID,
	amountCents int64,
) error {
	if m.IncrementBalanceFn != nil {
		return m.IncrementBalanceFn(ctx, id, amountCents)
	}

	for _, account := range m.Accounts {
		if account.ID == id {
			account.BalanceCents += amountCents
			return nil
		}
	}

	return store.ErrAccountNotFound
}

// WithTx implements the AccountStore interface for transaction support
func (m *MockAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	// For mock purposes, just return the same mock
	return m
}
